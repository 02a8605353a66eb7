package chess

import (
	"bufio"
	"io"
)

// The dump routines are shared by both board representations so that
// the same logical position always renders to the same bytes. They
// only rely on the OccupantAt query.

const emptySquareSymbol = '.'

// writeAlgebraic renders the grid rank 8 to 1, file a to h, one rank
// per line, squares separated by a single space.
func writeAlgebraic(w io.Writer, b Board) {
	bw := bufio.NewWriter(w)
	for rank := uint8(maxRankNum); rank >= minRankNum; rank-- {
		for file := uint8(0); file < BoardWidth; file++ {
			if file > 0 {
				bw.WriteByte(' ')
			}
			if piece, ok := b.OccupantAt(Square{File: file, Rank: rank}); ok {
				bw.WriteByte(piece.Letter())
			} else {
				bw.WriteByte(emptySquareSymbol)
			}
		}
		bw.WriteByte('\n')
	}
	bw.Flush()
}

// writeFigurine renders the grid with Unicode piece glyphs.
func writeFigurine(w io.Writer, b Board) {
	bw := bufio.NewWriter(w)
	for rank := uint8(maxRankNum); rank >= minRankNum; rank-- {
		for file := uint8(0); file < BoardWidth; file++ {
			if file > 0 {
				bw.WriteByte(' ')
			}
			if piece, ok := b.OccupantAt(Square{File: file, Rank: rank}); ok {
				bw.WriteRune(piece.Figurine())
			} else {
				bw.WriteByte(emptySquareSymbol)
			}
		}
		bw.WriteByte('\n')
	}
	bw.Flush()
}

// writeFEN renders the FEN board field: ranks 8 to 1 separated by '/',
// runs of empty squares compressed to digits.
func writeFEN(w io.Writer, b Board) {
	bw := bufio.NewWriter(w)
	for rank := uint8(maxRankNum); rank >= minRankNum; rank-- {
		empty := 0
		for file := uint8(0); file < BoardWidth; file++ {
			piece, ok := b.OccupantAt(Square{File: file, Rank: rank})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				bw.WriteByte(byte('0' + empty))
				empty = 0
			}
			bw.WriteByte(piece.Letter())
		}
		if empty > 0 {
			bw.WriteByte(byte('0' + empty))
		}
		if rank > minRankNum {
			bw.WriteByte('/')
		}
	}
	bw.Flush()
}
