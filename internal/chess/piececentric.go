package chess

import (
	"io"

	"github.com/chesskit-go/chesskit/internal/errors"
)

// PieceCentricBoard stores the position as two per-side piece lists.
// Occupancy queries scan the lists (O(pieces of a side)), while
// "where is piece X" lookups are O(1) through the PieceSet accessors,
// which suits notation and UI callers.
type PieceCentricBoard struct {
	white *PieceSet
	black *PieceSet
}

// NewPieceCentricBoard creates an empty piece-centric board.
func NewPieceCentricBoard() *PieceCentricBoard {
	return &PieceCentricBoard{
		white: NewPieceSet(White),
		black: NewPieceSet(Black),
	}
}

// NewStartingPieceCentricBoard creates a piece-centric board holding
// the standard starting position.
func NewStartingPieceCentricBoard() *PieceCentricBoard {
	return &PieceCentricBoard{
		white: NewStartingPieceSet(White),
		black: NewStartingPieceSet(Black),
	}
}

// Pieces returns the inventory owned by the given side.
func (b *PieceCentricBoard) Pieces(side Side) *PieceSet {
	if side == White {
		return b.white
	}
	return b.black
}

// OccupantAt reports which piece, if any, stands on sq.
func (b *PieceCentricBoard) OccupantAt(sq Square) (Piece, bool) {
	if kind, ok := b.white.OccupantAt(sq); ok {
		return Piece{Side: White, Kind: kind}, true
	}
	if kind, ok := b.black.OccupantAt(sq); ok {
		return Piece{Side: Black, Kind: kind}, true
	}
	return Piece{}, false
}

// Place puts a piece on an empty square.
func (b *PieceCentricBoard) Place(p Piece, sq Square) error {
	if occupant, ok := b.OccupantAt(sq); ok {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s occupied by %s %s", sq, occupant.Side, occupant.Kind)
	}
	return b.Pieces(p.Side).Place(p.Kind, sq)
}

// Remove takes the piece off sq and reports what it was.
func (b *PieceCentricBoard) Remove(sq Square) (Piece, bool) {
	if kind, ok := b.white.Remove(sq); ok {
		return Piece{Side: White, Kind: kind}, true
	}
	if kind, ok := b.black.Remove(sq); ok {
		return Piece{Side: Black, Kind: kind}, true
	}
	return Piece{}, false
}

// MovePiece relocates the piece on from to the empty square to.
func (b *PieceCentricBoard) MovePiece(from, to Square) error {
	if occupant, ok := b.OccupantAt(to); ok {
		return errors.Wrapf(errors.ErrIllegalBoardState, "%s occupied by %s %s", to, occupant.Side, occupant.Kind)
	}
	if _, ok := b.white.OccupantAt(from); ok {
		return b.white.MovePiece(from, to)
	}
	if _, ok := b.black.OccupantAt(from); ok {
		return b.black.MovePiece(from, to)
	}
	return errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", from)
}

// Clone returns an independent deep copy of the board.
func (b *PieceCentricBoard) Clone() Board {
	return &PieceCentricBoard{
		white: b.white.clone(),
		black: b.black.clone(),
	}
}

// Dump renders the board with algebraic letters.
func (b *PieceCentricBoard) Dump(w io.Writer) {
	writeAlgebraic(w, b)
}

// DumpFigurine renders the board with Unicode figurine glyphs.
func (b *PieceCentricBoard) DumpFigurine(w io.Writer) {
	writeFigurine(w, b)
}

// DumpFEN renders the FEN board field.
func (b *PieceCentricBoard) DumpFEN(w io.Writer) {
	writeFEN(w, b)
}
