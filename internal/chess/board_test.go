package chess_test

import (
	"strings"
	"testing"

	"github.com/chesskit-go/chesskit/internal/chess"
	"github.com/chesskit-go/chesskit/internal/fen"
)

var startingDump = strings.Join([]string{
	"r n b q k b n r",
	"p p p p p p p p",
	". . . . . . . .",
	". . . . . . . .",
	". . . . . . . .",
	". . . . . . . .",
	"P P P P P P P P",
	"R N B Q K B N R",
	"",
}, "\n")

var startingFigurineDump = strings.Join([]string{
	"♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜",
	"♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟",
	". . . . . . . .",
	". . . . . . . .",
	". . . . . . . .",
	". . . . . . . .",
	"♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙",
	"♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖",
	"",
}, "\n")

func TestStartingBoardDumps(t *testing.T) {
	for _, rep := range []chess.Representation{chess.BitboardRepr, chess.PieceCentricRepr} {
		board := chess.NewStartingBoard(rep)

		var algebraic, figurine, fenField strings.Builder
		board.Dump(&algebraic)
		board.DumpFigurine(&figurine)
		board.DumpFEN(&fenField)

		if algebraic.String() != startingDump {
			t.Errorf("rep %d Dump:\n%s\nwant:\n%s", rep, algebraic.String(), startingDump)
		}
		if figurine.String() != startingFigurineDump {
			t.Errorf("rep %d DumpFigurine:\n%s\nwant:\n%s", rep, figurine.String(), startingFigurineDump)
		}
		if want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"; fenField.String() != want {
			t.Errorf("rep %d DumpFEN = %q, want %q", rep, fenField.String(), want)
		}
	}
}

// The two representations must answer every query identically for the
// same logical position.
func TestRepresentationEquivalence(t *testing.T) {
	boards := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R",
		"8/5k2/8/8/8/8/5K2/4R3",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R",
		"4k3/P7/8/8/8/8/8/4K3",
	}

	for _, field := range boards {
		t.Run(field, func(t *testing.T) {
			bitboard := chess.NewBoard(chess.BitboardRepr)
			pieceCentric := chess.NewBoard(chess.PieceCentricRepr)
			if err := fen.ParseBoard(field, bitboard); err != nil {
				t.Fatal(err)
			}
			if err := fen.ParseBoard(field, pieceCentric); err != nil {
				t.Fatal(err)
			}

			for index := 0; index < chess.BoardSize; index++ {
				sq := chess.SquareAt(index)
				gotPiece, gotOK := bitboard.OccupantAt(sq)
				wantPiece, wantOK := pieceCentric.OccupantAt(sq)
				if gotPiece != wantPiece || gotOK != wantOK {
					t.Errorf("OccupantAt(%s): bitboard %v,%v piece-centric %v,%v",
						sq, gotPiece, gotOK, wantPiece, wantOK)
				}
			}

			for name, dump := range map[string]func(chess.Board) string{
				"Dump":         func(b chess.Board) string { var sb strings.Builder; b.Dump(&sb); return sb.String() },
				"DumpFigurine": func(b chess.Board) string { var sb strings.Builder; b.DumpFigurine(&sb); return sb.String() },
				"DumpFEN":      func(b chess.Board) string { var sb strings.Builder; b.DumpFEN(&sb); return sb.String() },
			} {
				if got, want := dump(bitboard), dump(pieceCentric); got != want {
					t.Errorf("%s differs between representations:\n%s\nvs\n%s", name, got, want)
				}
			}

			var roundTrip strings.Builder
			bitboard.DumpFEN(&roundTrip)
			if roundTrip.String() != field {
				t.Errorf("DumpFEN = %q, want %q", roundTrip.String(), field)
			}
		})
	}
}
