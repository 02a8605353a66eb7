// Package chess provides the core position model: squares, pieces,
// the dual board representation, and the game-state wrapper.
package chess

// Side represents the colour of a piece or player.
type Side uint8

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposing side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type.
type PieceKind uint8

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"King", "Queen", "Rook", "Bishop", "Knight", "Pawn"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the uppercase algebraic letter of a piece kind,
// as used in SAN and FEN for White.
func (k PieceKind) Letter() byte {
	letters := []byte{'K', 'Q', 'R', 'B', 'N', 'P'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a piece kind owned by a side.
type Piece struct {
	Side Side
	Kind PieceKind
}

// Algebraic letter lookup tables indexed by PieceKind. FEN and board
// dumps use uppercase for White and lowercase for Black.
var (
	whiteLetters = [NumPieceKinds]byte{'K', 'Q', 'R', 'B', 'N', 'P'}
	blackLetters = [NumPieceKinds]byte{'k', 'q', 'r', 'b', 'n', 'p'}
)

// Unicode figurine glyph tables indexed by PieceKind.
var (
	whiteFigurines = [NumPieceKinds]rune{'♔', '♕', '♖', '♗', '♘', '♙'}
	blackFigurines = [NumPieceKinds]rune{'♚', '♛', '♜', '♝', '♞', '♟'}
)

// Letter returns the algebraic letter of the piece: uppercase for
// White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.Side == White {
		return whiteLetters[p.Kind]
	}
	return blackLetters[p.Kind]
}

// Figurine returns the Unicode figurine glyph of the piece.
func (p Piece) Figurine() rune {
	if p.Side == White {
		return whiteFigurines[p.Kind]
	}
	return blackFigurines[p.Kind]
}

// String returns the algebraic letter of the piece as a string.
func (p Piece) String() string {
	return string(p.Letter())
}

// PieceFromLetter converts an algebraic piece letter to a Piece.
// Uppercase letters are White, lowercase are Black. The second return
// value reports whether the letter is a valid piece symbol.
func PieceFromLetter(c byte) (Piece, bool) {
	for k := PieceKind(0); k < NumPieceKinds; k++ {
		switch c {
		case whiteLetters[k]:
			return Piece{Side: White, Kind: k}, true
		case blackLetters[k]:
			return Piece{Side: Black, Kind: k}, true
		}
	}
	return Piece{}, false
}
