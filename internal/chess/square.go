package chess

import (
	"fmt"

	"github.com/chesskit-go/chesskit/internal/errors"
)

// Board dimensions.
const (
	BoardWidth = 8
	BoardSize  = BoardWidth * BoardWidth
	FirstFile  = 'a'
	LastFile   = 'h'
	FirstRank  = '1'
	LastRank   = '8'
	minRankNum = 1
	maxRankNum = 8
	maxFileNum = 7
)

// Square identifies one of the 64 board squares by file and rank.
// File is 0-based ('a' = 0), Rank is 1-based as in algebraic notation.
// It is an immutable value type.
type Square struct {
	File uint8 // 0..7
	Rank uint8 // 1..8
}

// Index returns the bitboard index of the square: a1 = 0, h1 = 7,
// a8 = 56, h8 = 63.
func (sq Square) Index() int {
	return int(sq.File) + int(sq.Rank-1)*BoardWidth
}

// SquareAt returns the square with the given bitboard index.
// The index must be within 0..63.
func SquareAt(index int) Square {
	return Square{File: uint8(index % BoardWidth), Rank: uint8(index/BoardWidth) + 1}
}

// String formats the square in algebraic coordinates, e.g. "e4".
// It is the exact inverse of ParseSquare for every valid square.
func (sq Square) String() string {
	return string([]byte{FirstFile + sq.File, '0' + sq.Rank})
}

// FileToNumeric converts a file letter 'a'..'h' to its numeric
// representation 0..7. Malformed input is an expected condition, so an
// out-of-range letter yields ErrInvalidNotation rather than a panic.
func FileToNumeric(file byte) (uint8, error) {
	if file < FirstFile || file > LastFile {
		return 0, errors.Wrapf(errors.ErrInvalidNotation, "file %q out of range 'a'..'h'", file)
	}
	return file - FirstFile, nil
}

// ParseSquare parses a two-character algebraic coordinate such as "e4".
// It fails with ErrInvalidNotation unless the text is exactly a file
// letter 'a'..'h' followed by a rank digit '1'..'8'.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidNotation, "square %q must be exactly 2 characters", text)
	}
	file, err := FileToNumeric(text[0])
	if err != nil {
		return Square{}, fmt.Errorf("square %q: %w", text, err)
	}
	if text[1] < FirstRank || text[1] > LastRank {
		return Square{}, errors.Wrapf(errors.ErrInvalidNotation, "square %q rank out of range '1'..'8'", text)
	}
	return Square{File: file, Rank: text[1] - '0'}, nil
}

// Valid reports whether both coordinates are in range. Squares built
// by ParseSquare or SquareAt are always valid.
func (sq Square) Valid() bool {
	return sq.File <= maxFileNum && sq.Rank >= minRankNum && sq.Rank <= maxRankNum
}
