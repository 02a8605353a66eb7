// Package render draws board positions as SVG diagrams.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chesskit-go/chesskit/internal/chess"
)

const (
	squareSize = 64
	boardSide  = squareSize * chess.BoardWidth

	lightFill = "#f0d9b5"
	darkFill  = "#b58863"

	glyphStyle = "font-size:48px;font-family:serif;text-anchor:middle;dominant-baseline:central"
	labelStyle = "font-size:11px;font-family:sans-serif;fill:#00000080"
)

// WriteSVG renders the board as an SVG diagram with rank 8 at the top
// and pieces drawn as figurine glyphs.
func WriteSVG(w io.Writer, board chess.Board) {
	canvas := svg.New(w)
	canvas.Start(boardSide, boardSide)

	for rank := uint8(chess.BoardWidth); rank >= 1; rank-- {
		y := int(chess.BoardWidth-rank) * squareSize
		for file := uint8(0); file < chess.BoardWidth; file++ {
			x := int(file) * squareSize
			fill := lightFill
			if (int(file)+int(rank))%2 == 1 {
				fill = darkFill
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			sq := chess.Square{File: file, Rank: rank}
			if piece, ok := board.OccupantAt(sq); ok {
				canvas.Text(x+squareSize/2, y+squareSize/2, string(piece.Figurine()), glyphStyle)
			}
		}
	}

	// Coordinate labels along the left and bottom edges.
	for rank := uint8(1); rank <= chess.BoardWidth; rank++ {
		y := int(chess.BoardWidth-rank)*squareSize + 14
		canvas.Text(4, y, string(rune('0'+rank)), labelStyle)
	}
	for file := uint8(0); file < chess.BoardWidth; file++ {
		x := int(file)*squareSize + squareSize - 10
		canvas.Text(x, boardSide-5, string(rune('a'+file)), labelStyle)
	}

	canvas.End()
}
