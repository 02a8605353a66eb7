package chess

import (
	"io"
	"os"
)

// Board is the capability set shared by the two position
// representations: occupancy queries, the mutation primitives used by
// the move applier and the FEN codec, and the board dumps. Callers are
// representation-agnostic; both implementations answer every query
// identically for the same logical position.
type Board interface {
	// OccupantAt reports which piece, if any, stands on sq.
	// It is a pure query.
	OccupantAt(sq Square) (Piece, bool)

	// Place puts a piece on an empty square. Structurally impossible
	// placements fail with ErrIllegalBoardState.
	Place(p Piece, sq Square) error

	// Remove takes the piece off sq and reports what it was.
	Remove(sq Square) (Piece, bool)

	// MovePiece relocates the piece on from to the empty square to.
	// Captures are expressed as Remove followed by MovePiece.
	MovePiece(from, to Square) error

	// Dump renders the 8x8 grid rank 8 to 1 with algebraic letters,
	// uppercase for White and lowercase for Black.
	Dump(w io.Writer)

	// DumpFigurine renders the grid with Unicode figurine glyphs.
	DumpFigurine(w io.Writer)

	// DumpFEN renders the FEN board field: digits compress runs of
	// empty squares, '/' separates ranks. This is only the board
	// portion of a FEN record; the full record comes from the Game.
	DumpFEN(w io.Writer)

	// Clone returns an independent deep copy.
	Clone() Board
}

// Representation selects a Board implementation.
type Representation uint8

const (
	// BitboardRepr uses 64-bit occupancy masks; O(1) occupancy tests.
	BitboardRepr Representation = iota
	// PieceCentricRepr uses per-side piece lists; O(1) piece lookup.
	PieceCentricRepr
)

// NewBoard creates an empty board of the given representation.
func NewBoard(rep Representation) Board {
	if rep == PieceCentricRepr {
		return NewPieceCentricBoard()
	}
	return NewBitboard()
}

// NewStartingBoard creates a board holding the standard starting
// position in the given representation.
func NewStartingBoard(rep Representation) Board {
	if rep == PieceCentricRepr {
		return NewStartingPieceCentricBoard()
	}
	return NewStartingBitboard()
}

// Print writes the algebraic dump to standard output.
func Print(b Board) {
	b.Dump(os.Stdout)
}

// PrintFigurine writes the figurine dump to standard output.
func PrintFigurine(b Board) {
	b.DumpFigurine(os.Stdout)
}

// PrintFEN writes the FEN board field to standard output.
func PrintFEN(b Board) {
	b.DumpFEN(os.Stdout)
}
