package chess

import "github.com/chesskit-go/chesskit/internal/errors"

// ValidateBoard checks a board for structurally impossible states:
// a missing or duplicated king, more than 16 pieces or 8 pawns for a
// side, or a pawn on its impossible back ranks. Parsing never calls
// this; it is a defensive check for callers that mutate boards.
func ValidateBoard(b Board) error {
	var kings, pawns, total [2]int

	for i := 0; i < BoardSize; i++ {
		sq := SquareAt(i)
		piece, ok := b.OccupantAt(sq)
		if !ok {
			continue
		}
		total[piece.Side]++
		switch piece.Kind {
		case King:
			kings[piece.Side]++
		case Pawn:
			pawns[piece.Side]++
			if sq.Rank == minRankNum || sq.Rank == maxRankNum {
				return errors.Wrapf(errors.ErrIllegalBoardState, "%s pawn on %s", piece.Side, sq)
			}
		}
	}

	for _, side := range [...]Side{White, Black} {
		if kings[side] != 1 {
			return errors.Wrapf(errors.ErrIllegalBoardState, "%s has %d kings", side, kings[side])
		}
		if pawns[side] > maxPawns {
			return errors.Wrapf(errors.ErrIllegalBoardState, "%s has %d pawns", side, pawns[side])
		}
		if total[side] > maxPieces {
			return errors.Wrapf(errors.ErrIllegalBoardState, "%s has %d pieces", side, total[side])
		}
	}
	return nil
}
