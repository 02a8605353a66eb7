package chess

import (
	"errors"
	"testing"

	pkgerrors "github.com/chesskit-go/chesskit/internal/errors"
)

func mustSquare(t *testing.T, text string) Square {
	t.Helper()
	sq, err := ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", text, err)
	}
	return sq
}

func TestNewStartingPieceSet(t *testing.T) {
	for _, side := range []Side{White, Black} {
		t.Run(side.String(), func(t *testing.T) {
			ps := NewStartingPieceSet(side)

			wantCounts := map[PieceKind]int{
				King: 1, Queen: 1, Rook: 2, Bishop: 2, Knight: 2, Pawn: 8,
			}
			for kind, want := range wantCounts {
				if got := ps.Count(kind); got != want {
					t.Errorf("Count(%s) = %d, want %d", kind, got, want)
				}
			}
			if ps.Total() != 16 {
				t.Errorf("Total() = %d, want 16", ps.Total())
			}

			kingSquare, pawnRank := "e1", uint8(2)
			if side == Black {
				kingSquare, pawnRank = "e8", 7
			}
			king, ok := ps.PositionOf(King, 0)
			if !ok || king != mustSquare(t, kingSquare) {
				t.Errorf("king on %v, want %s", king, kingSquare)
			}
			for i := 0; i < 8; i++ {
				sq, ok := ps.PositionOf(Pawn, i)
				if !ok || sq.Rank != pawnRank {
					t.Errorf("pawn %d on %v, want rank %d", i, sq, pawnRank)
				}
			}
		})
	}
}

func TestPieceSetPlaceLimits(t *testing.T) {
	t.Run("second king", func(t *testing.T) {
		ps := NewPieceSet(White)
		if err := ps.Place(King, mustSquare(t, "e1")); err != nil {
			t.Fatalf("first king: %v", err)
		}
		err := ps.Place(King, mustSquare(t, "d1"))
		if !errors.Is(err, pkgerrors.ErrIllegalBoardState) {
			t.Errorf("second king = %v, want ErrIllegalBoardState", err)
		}
	})

	t.Run("ninth pawn", func(t *testing.T) {
		ps := NewPieceSet(White)
		for f := uint8(0); f < 8; f++ {
			if err := ps.Place(Pawn, Square{File: f, Rank: 2}); err != nil {
				t.Fatalf("pawn %d: %v", f, err)
			}
		}
		err := ps.Place(Pawn, mustSquare(t, "a3"))
		if !errors.Is(err, pkgerrors.ErrIllegalBoardState) {
			t.Errorf("ninth pawn = %v, want ErrIllegalBoardState", err)
		}
	})

	t.Run("occupied square", func(t *testing.T) {
		ps := NewPieceSet(White)
		if err := ps.Place(Queen, mustSquare(t, "d1")); err != nil {
			t.Fatalf("queen: %v", err)
		}
		err := ps.Place(Rook, mustSquare(t, "d1"))
		if !errors.Is(err, pkgerrors.ErrIllegalBoardState) {
			t.Errorf("stacked pieces = %v, want ErrIllegalBoardState", err)
		}
	})

	t.Run("seventeenth piece", func(t *testing.T) {
		ps := NewStartingPieceSet(White)
		err := ps.Place(Queen, mustSquare(t, "d4"))
		if !errors.Is(err, pkgerrors.ErrIllegalBoardState) {
			t.Errorf("17th piece = %v, want ErrIllegalBoardState", err)
		}
	})

	t.Run("tenth queen allowed", func(t *testing.T) {
		// 9 queens plus a king is a legal promotion extreme.
		ps := NewPieceSet(White)
		if err := ps.Place(King, mustSquare(t, "e1")); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 9; i++ {
			sq := Square{File: uint8(i % 8), Rank: uint8(3 + i/8)}
			if err := ps.Place(Queen, sq); err != nil {
				t.Fatalf("queen %d: %v", i, err)
			}
		}
		if ps.Count(Queen) != 9 {
			t.Errorf("Count(Queen) = %d, want 9", ps.Count(Queen))
		}
		err := ps.Place(Queen, mustSquare(t, "b4"))
		if !errors.Is(err, pkgerrors.ErrIllegalBoardState) {
			t.Errorf("tenth queen = %v, want ErrIllegalBoardState", err)
		}
	})
}

func TestPieceSetRemoveSwapDelete(t *testing.T) {
	ps := NewPieceSet(White)
	squares := []string{"b1", "d4", "g5"}
	for _, text := range squares {
		if err := ps.Place(Knight, mustSquare(t, text)); err != nil {
			t.Fatal(err)
		}
	}

	kind, ok := ps.Remove(mustSquare(t, "d4"))
	if !ok || kind != Knight {
		t.Fatalf("Remove(d4) = %v, %v", kind, ok)
	}
	if ps.Count(Knight) != 2 {
		t.Errorf("Count(Knight) = %d, want 2", ps.Count(Knight))
	}

	// The survivors stay reachable through both query paths.
	for _, text := range []string{"b1", "g5"} {
		if _, ok := ps.OccupantAt(mustSquare(t, text)); !ok {
			t.Errorf("knight on %s lost after swap-delete", text)
		}
	}
	if _, ok := ps.OccupantAt(mustSquare(t, "d4")); ok {
		t.Error("d4 still occupied after Remove")
	}
	if _, ok := ps.Remove(mustSquare(t, "d4")); ok {
		t.Error("second Remove(d4) reported a piece")
	}
}

func TestPieceSetMovePiece(t *testing.T) {
	ps := NewStartingPieceSet(White)

	if err := ps.MovePiece(mustSquare(t, "e2"), mustSquare(t, "e4")); err != nil {
		t.Fatalf("e2e4: %v", err)
	}
	if kind, ok := ps.OccupantAt(mustSquare(t, "e4")); !ok || kind != Pawn {
		t.Errorf("e4 occupant = %v, %v, want pawn", kind, ok)
	}
	if _, ok := ps.OccupantAt(mustSquare(t, "e2")); ok {
		t.Error("e2 still occupied after move")
	}

	if err := ps.MovePiece(mustSquare(t, "e2"), mustSquare(t, "e3")); !errors.Is(err, pkgerrors.ErrIllegalMove) {
		t.Errorf("move from empty square = %v, want ErrIllegalMove", err)
	}
	if err := ps.MovePiece(mustSquare(t, "d2"), mustSquare(t, "d1")); !errors.Is(err, pkgerrors.ErrIllegalBoardState) {
		t.Errorf("move onto own piece = %v, want ErrIllegalBoardState", err)
	}
}
