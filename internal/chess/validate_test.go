package chess_test

import (
	stderrors "errors"
	"testing"

	"github.com/chesskit-go/chesskit/internal/chess"
	"github.com/chesskit-go/chesskit/internal/errors"
	"github.com/chesskit-go/chesskit/internal/fen"
)

func boardFromField(t *testing.T, field string) chess.Board {
	t.Helper()
	board := chess.NewBoard(chess.BitboardRepr)
	if err := fen.ParseBoard(field, board); err != nil {
		t.Fatalf("ParseBoard(%q): %v", field, err)
	}
	return board
}

func TestValidateBoard(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr bool
	}{
		{"starting position", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", false},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3", false},
		{"nine queens", "4k3/8/8/8/QQQQ4/QQQQ4/Q7/4K3", false},
		{"missing white king", "4k3/8/8/8/8/8/8/8", true},
		{"missing black king", "8/8/8/8/8/8/8/4K3", true},
		{"white pawn on rank 8", "P3k3/8/8/8/8/8/8/4K3", true},
		{"black pawn on rank 1", "4k3/8/8/8/8/8/8/p3K3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := boardFromField(t, tt.field)
			err := chess.ValidateBoard(board)
			if tt.wantErr {
				if !stderrors.Is(err, errors.ErrIllegalBoardState) {
					t.Errorf("ValidateBoard = %v, want ErrIllegalBoardState", err)
				}
			} else if err != nil {
				t.Errorf("ValidateBoard = %v, want nil", err)
			}
		})
	}
}
