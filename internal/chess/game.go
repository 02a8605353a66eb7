package chess

import "github.com/chesskit-go/chesskit/internal/errors"

// Halfmove-clock value at which the fifty-move rule allows a draw
// claim: 100 half-moves without a pawn move or capture.
const fiftyMoveHalfmoves = 100

// DrawReason names a claimable draw condition the Game can detect on
// its own. Checkmate and stalemate need move generation, which is an
// external collaborator's job.
type DrawReason uint8

const (
	FiftyMoveRule DrawReason = iota
	ThreefoldRepetition
)

// String returns the string representation of a draw reason.
func (r DrawReason) String() string {
	if r == FiftyMoveRule {
		return "fifty-move rule"
	}
	return "threefold repetition"
}

// Game wraps one Board with the rest of the position state: side to
// move, castling rights, the en-passant target, the halfmove clock and
// fullmove number, and position-repetition history. The Board is owned
// exclusively by its Game. A Game is mutated only through Apply, which
// updates board and counters as one atomic step; a failed Apply leaves
// the Game untouched.
type Game struct {
	board        Board
	active       Side
	rights       CastlingRights
	enPassant    Square
	hasEnPassant bool
	halfmove     int
	fullmove     int

	// repetitions counts how many times each position key has been
	// reached, the current position included.
	repetitions map[uint64]int
}

// NewGame creates a game at the standard starting position, backed by
// the bitboard representation.
func NewGame() *Game {
	return NewGameWithRepresentation(BitboardRepr)
}

// NewGameWithRepresentation creates a game at the standard starting
// position with the chosen board representation.
func NewGameWithRepresentation(rep Representation) *Game {
	g := &Game{
		board:    NewStartingBoard(rep),
		active:   White,
		rights:   AllCastlingRights,
		fullmove: 1,
	}
	g.repetitions = map[uint64]int{g.PositionKey(): 1}
	return g
}

// ResumeGame wraps an already populated board with explicit state, as
// the FEN codec does. It fails with ErrMalformedFEN semantics left to
// the caller; here only the numeric invariants are enforced.
func ResumeGame(board Board, active Side, rights CastlingRights, enPassant Square, hasEnPassant bool, halfmoveClock, fullmoveNumber int) (*Game, error) {
	if halfmoveClock < 0 {
		return nil, errors.Wrapf(errors.ErrIllegalBoardState, "negative halfmove clock %d", halfmoveClock)
	}
	if fullmoveNumber < 1 {
		return nil, errors.Wrapf(errors.ErrIllegalBoardState, "fullmove number %d below 1", fullmoveNumber)
	}
	if hasEnPassant && !enPassant.Valid() {
		return nil, errors.Wrapf(errors.ErrIllegalBoardState, "en-passant target %s out of range", enPassant)
	}
	g := &Game{
		board:        board,
		active:       active,
		rights:       rights,
		enPassant:    enPassant,
		hasEnPassant: hasEnPassant,
		halfmove:     halfmoveClock,
		fullmove:     fullmoveNumber,
	}
	g.repetitions = map[uint64]int{g.PositionKey(): 1}
	return g, nil
}

// Board exposes the owned board for queries and dumps. Mutating it
// directly bypasses the Game invariants; use Apply.
func (g *Game) Board() Board {
	return g.board
}

// ActivePlayer returns the side to move.
func (g *Game) ActivePlayer() Side {
	return g.active
}

// CastlingRights returns the remaining castling availabilities.
func (g *Game) CastlingRights() CastlingRights {
	return g.rights
}

// EnPassantTarget returns the en-passant target square, if one exists.
func (g *Game) EnPassantTarget() (Square, bool) {
	return g.enPassant, g.hasEnPassant
}

// HalfmoveClock returns the fifty-move-rule counter: half-moves since
// the last pawn move or capture.
func (g *Game) HalfmoveClock() int {
	return g.halfmove
}

// FullmoveNumber returns the 1-based fullmove number. It increments
// after each Black move.
func (g *Game) FullmoveNumber() int {
	return g.fullmove
}

// RepetitionCount returns how many times the current position has been
// reached, the present occurrence included.
func (g *Game) RepetitionCount() int {
	return g.repetitions[g.PositionKey()]
}

// DrawClaimable reports whether the side to move can claim a draw and
// why: the halfmove clock reached 100 or the position repeated three
// times.
func (g *Game) DrawClaimable() (DrawReason, bool) {
	if g.halfmove >= fiftyMoveHalfmoves {
		return FiftyMoveRule, true
	}
	if g.RepetitionCount() >= 3 {
		return ThreefoldRepetition, true
	}
	return 0, false
}

// Clone returns an independent copy of the game, board and repetition
// history included. Search workers operate on clones rather than
// sharing one mutable Game.
func (g *Game) Clone() *Game {
	dup := *g
	dup.board = g.board.Clone()
	dup.repetitions = make(map[uint64]int, len(g.repetitions))
	for key, count := range g.repetitions {
		dup.repetitions[key] = count
	}
	return &dup
}

// Apply mutates the game with a fully resolved move: the board update,
// the clocks, the castling rights, the en-passant target and the
// repetition history change together or not at all. Legality beyond
// structural consistency (check evasion and the like) is the move
// generator's responsibility.
func (g *Game) Apply(m Move) error {
	piece, ok := g.board.OccupantAt(m.From)
	if !ok {
		return errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", m.From)
	}
	if piece.Side != g.active {
		return errors.Wrapf(errors.ErrIllegalMove, "%s piece on %s but %s to move", piece.Side, m.From, g.active)
	}

	// Mutate a scratch copy so a structurally impossible move cannot
	// leave the game half-updated.
	board := g.board.Clone()

	captured, err := g.applyToBoard(board, piece, m)
	if err != nil {
		return err
	}

	g.board = board
	if piece.Kind == Pawn || captured {
		g.halfmove = 0
	} else {
		g.halfmove++
	}
	g.rights &= retainedRights[m.From.Index()] & retainedRights[m.To.Index()]

	g.hasEnPassant = false
	if piece.Kind == Pawn {
		if m.To.Rank == m.From.Rank+2 {
			g.enPassant = Square{File: m.From.File, Rank: m.From.Rank + 1}
			g.hasEnPassant = true
		} else if m.From.Rank == m.To.Rank+2 {
			g.enPassant = Square{File: m.From.File, Rank: m.From.Rank - 1}
			g.hasEnPassant = true
		}
	}

	if g.active == Black {
		g.fullmove++
	}
	g.active = g.active.Opposite()
	g.repetitions[g.PositionKey()]++
	return nil
}

// applyToBoard performs the board portion of Apply on a scratch board
// and reports whether a piece was captured.
func (g *Game) applyToBoard(board Board, piece Piece, m Move) (captured bool, err error) {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return false, applyCastle(board, piece, m)

	case EnPassantCapture:
		if piece.Kind != Pawn {
			return false, errors.Wrapf(errors.ErrIllegalMove, "en passant by %s", piece.Kind)
		}
		victim := Square{File: m.To.File, Rank: m.From.Rank}
		taken, ok := board.Remove(victim)
		if !ok || taken.Kind != Pawn || taken.Side == piece.Side {
			return false, errors.Wrapf(errors.ErrIllegalMove, "no enemy pawn on %s for en passant", victim)
		}
		return true, board.MovePiece(m.From, m.To)

	case PromotionMove:
		if piece.Kind != Pawn {
			return false, errors.Wrapf(errors.ErrIllegalMove, "promotion of %s", piece.Kind)
		}
		if m.Promotion == King || m.Promotion == Pawn {
			return false, errors.Wrapf(errors.ErrIllegalMove, "promotion to %s", m.Promotion)
		}
		captured, err = removeCaptured(board, piece.Side, m.To)
		if err != nil {
			return false, err
		}
		if _, ok := board.Remove(m.From); !ok {
			return false, errors.Wrapf(errors.ErrIllegalMove, "no piece on %s", m.From)
		}
		return captured, board.Place(Piece{Side: piece.Side, Kind: m.Promotion}, m.To)

	default:
		captured, err = removeCaptured(board, piece.Side, m.To)
		if err != nil {
			return false, err
		}
		return captured, board.MovePiece(m.From, m.To)
	}
}

// removeCaptured clears the destination square of an enemy piece, if
// one stands there. Capturing a friendly piece is an illegal move.
func removeCaptured(board Board, mover Side, to Square) (bool, error) {
	occupant, ok := board.OccupantAt(to)
	if !ok {
		return false, nil
	}
	if occupant.Side == mover {
		return false, errors.Wrapf(errors.ErrIllegalMove, "%s occupied by own %s", to, occupant.Kind)
	}
	board.Remove(to)
	return true, nil
}

// applyCastle moves the king and hops the rook. The move carries the
// king's squares; the rook's follow from the side and wing.
func applyCastle(board Board, piece Piece, m Move) error {
	if piece.Kind != King {
		return errors.Wrapf(errors.ErrIllegalMove, "castle by %s", piece.Kind)
	}
	rank := m.From.Rank
	var rookFrom, rookTo Square
	if m.Class == KingsideCastle {
		rookFrom = Square{File: 7, Rank: rank}
		rookTo = Square{File: 5, Rank: rank}
	} else {
		rookFrom = Square{File: 0, Rank: rank}
		rookTo = Square{File: 3, Rank: rank}
	}
	rook, ok := board.OccupantAt(rookFrom)
	if !ok || rook.Kind != Rook || rook.Side != piece.Side {
		return errors.Wrapf(errors.ErrIllegalMove, "no %s rook on %s", piece.Side, rookFrom)
	}
	if err := board.MovePiece(m.From, m.To); err != nil {
		return err
	}
	return board.MovePiece(rookFrom, rookTo)
}
