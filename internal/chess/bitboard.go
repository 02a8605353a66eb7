package chess

import (
	"io"
	"math/bits"

	"github.com/chesskit-go/chesskit/internal/errors"
)

// Bitboard stores the position as 64-bit occupancy masks: one mask per
// side and one per piece kind. A square's occupant is resolved with
// O(1) bit tests, which suits bulk occupancy and attack queries.
type Bitboard struct {
	sides [2]uint64
	kinds [NumPieceKinds]uint64
}

// NewBitboard creates an empty bitboard.
func NewBitboard() *Bitboard {
	return &Bitboard{}
}

// Starting-position masks, rank 1 at the low byte.
const (
	startWhiteMask  uint64 = 0x000000000000FFFF
	startBlackMask  uint64 = 0xFFFF000000000000
	startKingMask   uint64 = 0x1000000000000010
	startQueenMask  uint64 = 0x0800000000000008
	startRookMask   uint64 = 0x8100000000000081
	startBishopMask uint64 = 0x2400000000000024
	startKnightMask uint64 = 0x4200000000000042
	startPawnMask   uint64 = 0x00FF00000000FF00
)

// NewStartingBitboard creates a bitboard holding the standard starting
// position.
func NewStartingBitboard() *Bitboard {
	return &Bitboard{
		sides: [2]uint64{startWhiteMask, startBlackMask},
		kinds: [NumPieceKinds]uint64{
			King:   startKingMask,
			Queen:  startQueenMask,
			Rook:   startRookMask,
			Bishop: startBishopMask,
			Knight: startKnightMask,
			Pawn:   startPawnMask,
		},
	}
}

// squareMask returns the single-bit mask of a square.
func squareMask(sq Square) uint64 {
	return uint64(1) << uint(sq.Index())
}

// occupied returns the mask of all occupied squares.
func (b *Bitboard) occupied() uint64 {
	return b.sides[White] | b.sides[Black]
}

// SideMask returns the occupancy mask of one side.
func (b *Bitboard) SideMask(side Side) uint64 {
	return b.sides[side]
}

// KindMask returns the occupancy mask of one piece kind, both sides.
func (b *Bitboard) KindMask(kind PieceKind) uint64 {
	return b.kinds[kind]
}

// Count returns the number of pieces of the given side and kind.
func (b *Bitboard) Count(side Side, kind PieceKind) int {
	return bits.OnesCount64(b.sides[side] & b.kinds[kind])
}

// OccupantAt reports which piece, if any, stands on sq.
func (b *Bitboard) OccupantAt(sq Square) (Piece, bool) {
	mask := squareMask(sq)
	var side Side
	switch {
	case b.sides[White]&mask != 0:
		side = White
	case b.sides[Black]&mask != 0:
		side = Black
	default:
		return Piece{}, false
	}
	for kind := PieceKind(0); kind < NumPieceKinds; kind++ {
		if b.kinds[kind]&mask != 0 {
			return Piece{Side: side, Kind: kind}, true
		}
	}
	// A side bit without a kind bit means the masks went out of sync,
	// which only a bug in this package can cause.
	panic("bitboard: side and kind masks out of sync at " + sq.String())
}

// Place puts a piece on an empty square.
func (b *Bitboard) Place(p Piece, sq Square) error {
	mask := squareMask(sq)
	if b.occupied()&mask != 0 {
		occupant, _ := b.OccupantAt(sq)
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s occupied by %s %s", sq, occupant.Side, occupant.Kind)
	}
	if p.Kind == King && b.Count(p.Side, King) == 1 {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s has two kings", p.Side)
	}
	if bits.OnesCount64(b.sides[p.Side]) >= maxPieces {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s has %d pieces already", p.Side, maxPieces)
	}
	b.sides[p.Side] |= mask
	b.kinds[p.Kind] |= mask
	return nil
}

// Remove takes the piece off sq and reports what it was.
func (b *Bitboard) Remove(sq Square) (Piece, bool) {
	piece, ok := b.OccupantAt(sq)
	if !ok {
		return Piece{}, false
	}
	mask := squareMask(sq)
	b.sides[piece.Side] &^= mask
	b.kinds[piece.Kind] &^= mask
	return piece, true
}

// MovePiece relocates the piece on from to the empty square to.
func (b *Bitboard) MovePiece(from, to Square) error {
	piece, ok := b.OccupantAt(from)
	if !ok {
		return errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", from)
	}
	if occupant, occupied := b.OccupantAt(to); occupied {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s occupied by %s %s", to, occupant.Side, occupant.Kind)
	}
	hop := squareMask(from) ^ squareMask(to)
	b.sides[piece.Side] ^= hop
	b.kinds[piece.Kind] ^= hop
	return nil
}

// Clone returns an independent deep copy of the board.
func (b *Bitboard) Clone() Board {
	dup := *b
	return &dup
}

// Dump renders the board with algebraic letters.
func (b *Bitboard) Dump(w io.Writer) {
	writeAlgebraic(w, b)
}

// DumpFigurine renders the board with Unicode figurine glyphs.
func (b *Bitboard) DumpFigurine(w io.Writer) {
	writeFigurine(w, b)
}

// DumpFEN renders the FEN board field.
func (b *Bitboard) DumpFEN(w io.Writer) {
	writeFEN(w, b)
}
