package chess

// MoveClass categorizes the moves the applier has to treat specially.
type MoveClass uint8

const (
	NormalMove MoveClass = iota
	PromotionMove
	EnPassantCapture
	KingsideCastle
	QueensideCastle
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{"Normal", "Promotion", "EnPassant", "KingsideCastle", "QueensideCastle"}
	if int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move is a fully resolved move as handed to Game.Apply by the
// external move generator: both squares are known. Castling is
// expressed through the king's from/to squares; the rook hop is
// derived. SAN tokens with partial source information live in the pgn
// package until an external collaborator resolves them.
type Move struct {
	From  Square
	To    Square
	Class MoveClass

	// Promotion holds the replacement kind when Class is PromotionMove.
	Promotion PieceKind
}

// String formats the move in coordinate notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Class == PromotionMove {
		s += string(blackLetters[m.Promotion])
	}
	return s
}
