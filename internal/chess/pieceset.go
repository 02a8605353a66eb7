package chess

import "github.com/chesskit-go/chesskit/internal/errors"

// Capacity bounds for a single side's inventory. Promotion can raise a
// side above its initial counts, up to 9 queens or 10 of a minor piece
// or rook, but never above 16 pieces in total.
const (
	maxPawns    = 8
	maxQueens   = 9
	maxPromoted = 10
	maxPieces   = 16
)

// PieceSet is one side's piece inventory: the king, the queens, and
// bounded slots for the remaining kinds, each holding the square the
// piece stands on. The arrays keep the set a plain value so cloning a
// board is a struct copy.
type PieceSet struct {
	owner Side

	king    Square
	hasKing bool

	queens  [maxQueens]Square
	rooks   [maxPromoted]Square
	bishops [maxPromoted]Square
	knights [maxPromoted]Square
	pawns   [maxPawns]Square

	numQueens  uint8
	numRooks   uint8
	numBishops uint8
	numKnights uint8
	numPawns   uint8
}

// NewPieceSet creates an empty inventory for the given side.
func NewPieceSet(owner Side) *PieceSet {
	return &PieceSet{owner: owner}
}

// NewStartingPieceSet creates the inventory a side owns at the start of
// a standard game, mirrored by rank for Black.
func NewStartingPieceSet(owner Side) *PieceSet {
	back, pawn := uint8(1), uint8(2)
	if owner == Black {
		back, pawn = 8, 7
	}

	ps := NewPieceSet(owner)
	ps.king = Square{File: 4, Rank: back}
	ps.hasKing = true
	ps.queens[0] = Square{File: 3, Rank: back}
	ps.numQueens = 1
	ps.rooks = [maxPromoted]Square{{File: 0, Rank: back}, {File: 7, Rank: back}}
	ps.numRooks = 2
	ps.knights = [maxPromoted]Square{{File: 1, Rank: back}, {File: 6, Rank: back}}
	ps.numKnights = 2
	ps.bishops = [maxPromoted]Square{{File: 2, Rank: back}, {File: 5, Rank: back}}
	ps.numBishops = 2
	for f := uint8(0); f < BoardWidth; f++ {
		ps.pawns[f] = Square{File: f, Rank: pawn}
	}
	ps.numPawns = BoardWidth
	return ps
}

// Owner returns the side the inventory belongs to.
func (ps *PieceSet) Owner() Side {
	return ps.owner
}

// slots returns the storage and live count for a non-king kind.
func (ps *PieceSet) slots(kind PieceKind) ([]Square, *uint8) {
	switch kind {
	case Queen:
		return ps.queens[:], &ps.numQueens
	case Rook:
		return ps.rooks[:], &ps.numRooks
	case Bishop:
		return ps.bishops[:], &ps.numBishops
	case Knight:
		return ps.knights[:], &ps.numKnights
	case Pawn:
		return ps.pawns[:], &ps.numPawns
	default:
		return nil, nil
	}
}

// Count returns the number of live pieces of the given kind.
func (ps *PieceSet) Count(kind PieceKind) int {
	if kind == King {
		if ps.hasKing {
			return 1
		}
		return 0
	}
	_, n := ps.slots(kind)
	if n == nil {
		return 0
	}
	return int(*n)
}

// Total returns the number of live pieces in the set.
func (ps *PieceSet) Total() int {
	total := 0
	for k := PieceKind(0); k < NumPieceKinds; k++ {
		total += ps.Count(k)
	}
	return total
}

// PositionOf returns the square of the i-th live piece of the given
// kind. The second return value is false if no such piece exists.
func (ps *PieceSet) PositionOf(kind PieceKind, i int) (Square, bool) {
	if kind == King {
		if i == 0 && ps.hasKing {
			return ps.king, true
		}
		return Square{}, false
	}
	slots, n := ps.slots(kind)
	if n == nil || i < 0 || i >= int(*n) {
		return Square{}, false
	}
	return slots[i], true
}

// OccupantAt returns the kind of the piece standing on sq, if any.
func (ps *PieceSet) OccupantAt(sq Square) (PieceKind, bool) {
	if ps.hasKing && ps.king == sq {
		return King, true
	}
	for _, kind := range [...]PieceKind{Queen, Rook, Bishop, Knight, Pawn} {
		slots, n := ps.slots(kind)
		for i := 0; i < int(*n); i++ {
			if slots[i] == sq {
				return kind, true
			}
		}
	}
	return 0, false
}

// Place adds a piece of the given kind on sq. It fails with
// ErrIllegalBoardState on a second king, a kind overflow, more than 16
// pieces, or a square already occupied within this set.
func (ps *PieceSet) Place(kind PieceKind, sq Square) error {
	if _, occupied := ps.OccupantAt(sq); occupied {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s already occupies %s", ps.owner, sq)
	}
	if ps.Total() >= maxPieces {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s has %d pieces already", ps.owner, maxPieces)
	}
	if kind == King {
		if ps.hasKing {
			return errors.Wrapf(errors.ErrIllegalBoardState, "%s has two kings", ps.owner)
		}
		ps.king = sq
		ps.hasKing = true
		return nil
	}
	slots, n := ps.slots(kind)
	if int(*n) >= len(slots) {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s has too many %ss", ps.owner, kind)
	}
	slots[*n] = sq
	*n++
	return nil
}

// Remove deletes the piece standing on sq and reports its kind.
// The second return value is false if the square is empty.
func (ps *PieceSet) Remove(sq Square) (PieceKind, bool) {
	if ps.hasKing && ps.king == sq {
		ps.hasKing = false
		return King, true
	}
	for _, kind := range [...]PieceKind{Queen, Rook, Bishop, Knight, Pawn} {
		slots, n := ps.slots(kind)
		for i := 0; i < int(*n); i++ {
			if slots[i] == sq {
				// Swap-delete keeps the live prefix dense.
				slots[i] = slots[*n-1]
				*n--
				return kind, true
			}
		}
	}
	return 0, false
}

// MovePiece relocates the piece on from to to. It fails with
// ErrIllegalMove if from is empty and with ErrIllegalBoardState if to
// is already occupied within this set.
func (ps *PieceSet) MovePiece(from, to Square) error {
	if _, occupied := ps.OccupantAt(to); occupied {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s already occupies %s", ps.owner, to)
	}
	if ps.hasKing && ps.king == from {
		ps.king = to
		return nil
	}
	for _, kind := range [...]PieceKind{Queen, Rook, Bishop, Knight, Pawn} {
		slots, n := ps.slots(kind)
		for i := 0; i < int(*n); i++ {
			if slots[i] == from {
				slots[i] = to
				return nil
			}
		}
	}
	return errors.Wrapf(errors.ErrIllegalMove, "no %s piece on %s", ps.owner, from)
}

// clone returns an independent copy of the set.
func (ps *PieceSet) clone() *PieceSet {
	dup := *ps
	return &dup
}
