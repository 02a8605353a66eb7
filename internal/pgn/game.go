package pgn

import "github.com/chesskit-go/chesskit/internal/chess"

// MoveClass categorizes SAN move tokens.
type MoveClass uint8

const (
	PawnMove MoveClass = iota
	PawnPromotion
	EnPassantPawnMove
	PieceMove
	KingsideCastle
	QueensideCastle
	NullMove
)

// CheckStatus records a check or checkmate suffix on a SAN token.
type CheckStatus uint8

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

// NoDisambiguation marks an absent from-file or from-rank in a SAN
// move. SAN only spells out the source coordinates needed to
// disambiguate, so either may be missing.
const NoDisambiguation = -1

// Move is a SAN move token as written in movetext: the destination is
// known, the source only partially. The external move applier resolves
// it against the current position into a chess.Move.
type Move struct {
	// Text is the token as it appeared, e.g. "Nbd7" or "exd8=Q+".
	Text string

	Class MoveClass

	// Piece is the moving piece kind (King for castles, Pawn for pawn
	// moves).
	Piece chess.PieceKind

	// FromFile and FromRank carry SAN disambiguation when present:
	// file 0..7, rank 1..8, or NoDisambiguation.
	FromFile int8
	FromRank int8

	// To is the destination square. Unset for castles and null moves.
	To chess.Square

	// Capture reports an 'x' (or ':') capture indicator.
	Capture bool

	// Promotion is the promoted-to kind when Class is PawnPromotion.
	Promotion chess.PieceKind

	Check CheckStatus

	// NAGs and Comments annotate the move.
	NAGs     []string
	Comments []string

	// Variations are the alternative lines branching at this move.
	Variations []*Variation
}

// Variation is an alternative line enclosed in parentheses.
type Variation struct {
	Moves    []*Move
	Comments []string
}

// Game is one parsed PGN game: tag pairs plus the main movetext line.
type Game struct {
	// Tags holds the tag-pair header block, e.g. Event, Site, Result.
	Tags map[string]string

	// PrefixComments appear between the tags and the first move.
	PrefixComments []string

	// Moves is the main line.
	Moves []*Move

	// Result is the terminating marker: 1-0, 0-1, 1/2-1/2, or *.
	Result string

	// StartLine and EndLine delimit the game in the input.
	StartLine int
	EndLine   int
}

// NewGame creates an empty game.
func NewGame() *Game {
	return &Game{Tags: make(map[string]string)}
}

// Tag returns a tag value, or the empty string if absent.
func (g *Game) Tag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	g.Tags[name] = value
}

// PlyCount returns the number of half-moves on the main line.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// Seven tag roster order for PGN export.
var rosterTags = []string{"Event", "Site", "Date", "Round", "White", "Black", "Result"}
