package pgn

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chesskit-go/chesskit/internal/chess"
	"github.com/chesskit-go/chesskit/internal/errors"
)

// san builds the expected decode of a token with no disambiguation;
// tests adjust the fields a token actually pins down.
func san(text string, class MoveClass, piece chess.PieceKind) Move {
	return Move{
		Text:     text,
		Class:    class,
		Piece:    piece,
		FromFile: NoDisambiguation,
		FromRank: NoDisambiguation,
	}
}

func dest(file, rank uint8) chess.Square {
	return chess.Square{File: file, Rank: rank}
}

func TestDecodeSAN(t *testing.T) {
	tests := []struct {
		text  string
		build func() Move
	}{
		{"e4", func() Move {
			m := san("e4", PawnMove, chess.Pawn)
			m.To = dest(4, 4)
			return m
		}},
		{"exd5", func() Move {
			m := san("exd5", PawnMove, chess.Pawn)
			m.To, m.FromFile, m.Capture = dest(3, 5), 4, true
			return m
		}},
		{"e8=Q", func() Move {
			m := san("e8=Q", PawnPromotion, chess.Pawn)
			m.To, m.Promotion = dest(4, 8), chess.Queen
			return m
		}},
		{"e8N", func() Move {
			m := san("e8N", PawnPromotion, chess.Pawn)
			m.To, m.Promotion = dest(4, 8), chess.Knight
			return m
		}},
		{"exd8=Q+", func() Move {
			m := san("exd8=Q+", PawnPromotion, chess.Pawn)
			m.To, m.FromFile, m.Capture = dest(3, 8), 4, true
			m.Promotion, m.Check = chess.Queen, Check
			return m
		}},
		{"Nf3", func() Move {
			m := san("Nf3", PieceMove, chess.Knight)
			m.To = dest(5, 3)
			return m
		}},
		{"Nbd7", func() Move {
			m := san("Nbd7", PieceMove, chess.Knight)
			m.To, m.FromFile = dest(3, 7), 1
			return m
		}},
		{"N1c3", func() Move {
			m := san("N1c3", PieceMove, chess.Knight)
			m.To, m.FromRank = dest(2, 3), 1
			return m
		}},
		{"Qh4e1", func() Move {
			m := san("Qh4e1", PieceMove, chess.Queen)
			m.To, m.FromFile, m.FromRank = dest(4, 1), 7, 4
			return m
		}},
		{"Rxe1#", func() Move {
			m := san("Rxe1#", PieceMove, chess.Rook)
			m.To, m.Capture, m.Check = dest(4, 1), true, Checkmate
			return m
		}},
		{"Bxf7+", func() Move {
			m := san("Bxf7+", PieceMove, chess.Bishop)
			m.To, m.Capture, m.Check = dest(5, 7), true, Check
			return m
		}},
		{"Kd2", func() Move {
			m := san("Kd2", PieceMove, chess.King)
			m.To = dest(3, 2)
			return m
		}},
		{"axb6", func() Move {
			m := san("axb6", PawnMove, chess.Pawn)
			m.To, m.FromFile, m.Capture = dest(1, 6), 0, true
			return m
		}},
		{"O-O", func() Move {
			return san("O-O", KingsideCastle, chess.King)
		}},
		{"O-O-O", func() Move {
			return san("O-O-O", QueensideCastle, chess.King)
		}},
		{"0-0+", func() Move {
			m := san("0-0+", KingsideCastle, chess.King)
			m.Check = Check
			return m
		}},
		{"o-o-o", func() Move {
			return san("o-o-o", QueensideCastle, chess.King)
		}},
		{"--", func() Move {
			m := san("--", NullMove, 0)
			return m
		}},
		{"Z0", func() Move {
			return san("Z0", NullMove, 0)
		}},
		{"exd6e.p.", func() Move {
			m := san("exd6e.p.", EnPassantPawnMove, chess.Pawn)
			m.To, m.FromFile, m.Capture = dest(3, 6), 4, true
			return m
		}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := DecodeSAN(tt.text)
			if err != nil {
				t.Fatalf("DecodeSAN(%q): %v", tt.text, err)
			}
			want := tt.build()
			if diff := cmp.Diff(&want, got); diff != "" {
				t.Errorf("DecodeSAN(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestDecodeSANRejects(t *testing.T) {
	tests := []string{"", "e", "x", "Qx", "i4", "e9", "Pe4", "exd9", "O-O-O-O"}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			if _, err := DecodeSAN(text); !stderrors.Is(err, errors.ErrMalformedPGN) {
				t.Errorf("DecodeSAN(%q) = %v, want ErrMalformedPGN", text, err)
			}
		})
	}
}
