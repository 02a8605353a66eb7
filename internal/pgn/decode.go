package pgn

import (
	"strings"

	"github.com/chesskit-go/chesskit/internal/chess"
	"github.com/chesskit-go/chesskit/internal/errors"
)

// NullMoveText is the movetext representation of a null move.
const NullMoveText = "--"

func isFileChar(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isRankChar(c byte) bool {
	return c >= '1' && c <= '8'
}

func isCaptureChar(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

func isCheckChar(c byte) bool {
	return c == '+' || c == '#'
}

// pieceFromSAN maps an uppercase SAN piece letter to its kind.
func pieceFromSAN(c byte) (chess.PieceKind, bool) {
	switch c {
	case 'K':
		return chess.King, true
	case 'Q':
		return chess.Queen, true
	case 'R':
		return chess.Rook, true
	case 'B':
		return chess.Bishop, true
	case 'N':
		return chess.Knight, true
	default:
		return 0, false
	}
}

func sanErr(text, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrMalformedPGN,
		Got:      "move " + text,
		Expected: expected,
	}
}

// DecodeSAN decodes one Standard Algebraic Notation token into a Move.
// The decode is context-free: disambiguation stays partial and no
// legality is checked. Check suffixes, capture markers, promotions,
// castles ("O-O", "0-0-0", ...), en-passant suffixes and null moves
// ("--", "Z0") are recognized.
func DecodeSAN(text string) (*Move, error) {
	move := &Move{
		Text:     text,
		FromFile: NoDisambiguation,
		FromRank: NoDisambiguation,
	}

	if text == NullMoveText || text == "Z0" {
		move.Class = NullMove
		return move, nil
	}

	body := text

	// Trailing check/checkmate suffix, '++' for double check included.
	for len(body) > 0 && isCheckChar(body[len(body)-1]) {
		if body[len(body)-1] == '#' {
			move.Check = Checkmate
		} else if move.Check == NoCheck {
			move.Check = Check
		}
		body = body[:len(body)-1]
	}

	// Optional en-passant suffix on pawn captures.
	enPassant := false
	if strings.HasSuffix(body, "e.p.") {
		enPassant = true
		body = strings.TrimSuffix(body, "e.p.")
	} else if strings.HasSuffix(body, "ep") && len(body) > 4 {
		enPassant = true
		body = strings.TrimSuffix(body, "ep")
	}

	if len(body) < 2 {
		return nil, sanErr(text, "a SAN move of at least 2 characters")
	}

	if kingside, queenside, ok := castleClass(body); ok {
		if kingside {
			move.Class = KingsideCastle
		} else if queenside {
			move.Class = QueensideCastle
		}
		move.Piece = chess.King
		return move, nil
	}

	if kind, ok := pieceFromSAN(body[0]); ok {
		move.Class = PieceMove
		move.Piece = kind
		if err := decodeTarget(move, body[1:]); err != nil {
			return nil, sanErr(text, "piece letter, optional disambiguation, destination square")
		}
		return move, nil
	}

	// Pawn move, optionally promoting.
	move.Class = PawnMove
	move.Piece = chess.Pawn
	if promo, rest, ok := splitPromotion(body); ok {
		move.Class = PawnPromotion
		move.Promotion = promo
		body = rest
	}
	if err := decodeTarget(move, body); err != nil {
		return nil, sanErr(text, "pawn destination like e4, exd5 or e8=Q")
	}
	if enPassant {
		if move.Class != PawnMove || !move.Capture {
			return nil, sanErr(text, "en-passant suffix only on a pawn capture")
		}
		move.Class = EnPassantPawnMove
	}
	return move, nil
}

// castleClass recognizes kingside and queenside castling spellings
// with 'O', '0', or 'o' and optional separators.
func castleClass(body string) (kingside, queenside, ok bool) {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case '0', 'o':
			return 'O'
		default:
			return r
		}
	}, body)
	switch normalized {
	case "O-O", "OO":
		return true, false, true
	case "O-O-O", "OOO":
		return false, true, true
	default:
		return false, false, false
	}
}

// splitPromotion strips a trailing promotion ("=Q" or bare "Q") and
// returns the promoted kind and the remaining body.
func splitPromotion(body string) (chess.PieceKind, string, bool) {
	if len(body) < 3 {
		return 0, body, false
	}
	kind, ok := pieceFromSAN(body[len(body)-1])
	if !ok || kind == chess.King {
		return 0, body, false
	}
	rest := body[:len(body)-1]
	rest = strings.TrimSuffix(rest, "=")
	return kind, rest, true
}

// decodeTarget parses the tail of a SAN token: optional from-file,
// optional from-rank, optional capture marker, then the destination
// square. Anything else is malformed.
func decodeTarget(move *Move, body string) error {
	if len(body) < 2 {
		return errors.ErrMalformedPGN
	}

	// Destination square is always the final two characters.
	destText := body[len(body)-2:]
	if !isFileChar(destText[0]) || !isRankChar(destText[1]) {
		return errors.ErrMalformedPGN
	}
	dest, err := chess.ParseSquare(destText)
	if err != nil {
		return err
	}
	move.To = dest

	rest := body[:len(body)-2]
	if len(rest) > 0 && isCaptureChar(rest[len(rest)-1]) {
		move.Capture = true
		rest = rest[:len(rest)-1]
	}

	// What remains is disambiguation: a file, a rank, or both.
	switch len(rest) {
	case 0:
		return nil
	case 1:
		switch {
		case isFileChar(rest[0]):
			move.FromFile = int8(rest[0] - 'a')
		case isRankChar(rest[0]):
			move.FromRank = int8(rest[0] - '0')
		default:
			return errors.ErrMalformedPGN
		}
		return nil
	case 2:
		if !isFileChar(rest[0]) || !isRankChar(rest[1]) {
			return errors.ErrMalformedPGN
		}
		move.FromFile = int8(rest[0] - 'a')
		move.FromRank = int8(rest[1] - '0')
		return nil
	default:
		return errors.ErrMalformedPGN
	}
}
