// Package fen converts between Forsyth-Edwards Notation and the
// in-memory Game model. Parsing is strict: every malformed field is
// reported as a recoverable error naming the field, never a panic,
// since bad FEN from files or network peers is an expected condition.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chesskit-go/chesskit/internal/chess"
	"github.com/chesskit-go/chesskit/internal/errors"
)

// Starting is the FEN record of the standard starting position.
const Starting = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// The six space-separated FEN fields, in order.
const (
	fieldBoard     = "piece placement"
	fieldActive    = "active color"
	fieldCastling  = "castling availability"
	fieldEnPassant = "en passant target"
	fieldHalfmove  = "halfmove clock"
	fieldFullmove  = "fullmove number"
)

func fieldErr(field, got, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrMalformedFEN,
		Field:    field,
		Got:      got,
		Expected: expected,
	}
}

// Parse builds a Game from a six-field FEN record, backed by the
// bitboard representation.
func Parse(s string) (*chess.Game, error) {
	return ParseAs(s, chess.BitboardRepr)
}

// ParseAs builds a Game from a six-field FEN record with the chosen
// board representation.
func ParseAs(s string, rep chess.Representation) (*chess.Game, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 6 {
		return nil, errors.Wrapf(errors.ErrMalformedFEN, "expected 6 fields, got %d", len(fields))
	}

	board := chess.NewBoard(rep)
	if err := ParseBoard(fields[0], board); err != nil {
		return nil, err
	}

	active, err := parseActiveColor(fields[1])
	if err != nil {
		return nil, err
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}

	enPassant, hasEnPassant, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, fieldErr(fieldHalfmove, fields[4], "a non-negative integer")
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, fieldErr(fieldFullmove, fields[5], "a positive integer")
	}

	game, err := chess.ResumeGame(board, active, rights, enPassant, hasEnPassant, halfmove, fullmove)
	if err != nil {
		return nil, errors.Wrap(err, "assembling game")
	}
	return game, nil
}

// ParseEPD accepts the four-field EPD body by defaulting the clocks,
// e.g. "rnbq.../... w KQkq -" becomes a game at halfmove 0, move 1.
func ParseEPD(s string, rep chess.Representation) (*chess.Game, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 4 {
		return nil, errors.Wrapf(errors.ErrMalformedFEN, "expected 4 EPD fields, got %d", len(fields))
	}
	return ParseAs(strings.Join(fields, " ")+" 0 1", rep)
}

// ParseBoard consumes exactly the board field of a FEN record,
// populating an empty board of either representation through the
// shared mutation contract. Each of the 8 ranks has to cover exactly
// 8 files.
func ParseBoard(field string, board chess.Board) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardWidth {
		return fieldErr(fieldBoard, field, fmt.Sprintf("%d ranks", chess.BoardWidth))
	}

	for i, rankText := range ranks {
		rank := uint8(chess.BoardWidth - i)
		file := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return fieldErr(fieldBoard, string(c), `a piece letter in "KQRBNPkqrbnp"`)
			}
			if file >= chess.BoardWidth {
				return fieldErr(fieldBoard, rankText, fmt.Sprintf("rank %d no wider than %d files", rank, chess.BoardWidth))
			}
			if err := board.Place(piece, chess.Square{File: uint8(file), Rank: rank}); err != nil {
				return errors.Wrapf(errors.ErrMalformedFEN, "rank %d: %v", rank, err)
			}
			file++
		}
		if file != chess.BoardWidth {
			return fieldErr(fieldBoard, rankText, fmt.Sprintf("rank %d to cover exactly %d files", rank, chess.BoardWidth))
		}
	}
	return nil
}

func parseActiveColor(field string) (chess.Side, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fieldErr(fieldActive, field, `"w" or "b"`)
	}
}

func parseCastling(field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastlingRights, nil
	}
	var rights chess.CastlingRights
	for i := 0; i < len(field); i++ {
		var right chess.CastlingRights
		switch field[i] {
		case 'K':
			right = chess.WhiteKingside
		case 'Q':
			right = chess.WhiteQueenside
		case 'k':
			right = chess.BlackKingside
		case 'q':
			right = chess.BlackQueenside
		default:
			return 0, fieldErr(fieldCastling, field, `"-" or a subset of "KQkq"`)
		}
		if rights.Has(right) {
			return 0, fieldErr(fieldCastling, field, "each right at most once")
		}
		rights |= right
	}
	return rights, nil
}

func parseEnPassant(field string) (chess.Square, bool, error) {
	if field == "-" {
		return chess.Square{}, false, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.Square{}, false, fieldErr(fieldEnPassant, field, `"-" or a square like "e3"`)
	}
	return sq, true, nil
}

// Format serializes a Game into its six-field FEN record. It is the
// exact inverse of Parse for every reachable game state.
func Format(g *chess.Game) string {
	var sb strings.Builder

	g.Board().DumpFEN(&sb)
	sb.WriteByte(' ')

	if g.ActivePlayer() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	sb.WriteString(g.CastlingRights().String())
	sb.WriteByte(' ')

	if target, ok := g.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", g.HalfmoveClock(), g.FullmoveNumber())
	return sb.String()
}
