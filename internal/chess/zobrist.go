package chess

import "math/rand"

// Zobrist key tables. The tables are seeded deterministically so keys
// are stable across processes, which keeps repetition counts and
// duplicate signatures comparable between runs.
var (
	pieceSquareKeys [2][NumPieceKinds][BoardSize]uint64
	sideKey         uint64
	castlingKeys    [16]uint64
	enPassantKeys   [BoardWidth]uint64
)

func init() {
	r := rand.New(rand.NewSource(0x5eed))
	for side := range pieceSquareKeys {
		for kind := range pieceSquareKeys[side] {
			for sq := range pieceSquareKeys[side][kind] {
				pieceSquareKeys[side][kind][sq] = r.Uint64()
			}
		}
	}
	sideKey = r.Uint64()

	var corner [4]uint64
	for i := range corner {
		corner[i] = r.Uint64()
	}
	for i := range castlingKeys {
		for j := 0; j < 4; j++ {
			if i&(1<<uint(j)) != 0 {
				castlingKeys[i] ^= corner[j]
			}
		}
	}

	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}
}

// BoardKey returns the Zobrist key of the piece placement alone.
func BoardKey(b Board) uint64 {
	var key uint64
	for i := 0; i < BoardSize; i++ {
		if piece, ok := b.OccupantAt(SquareAt(i)); ok {
			key ^= pieceSquareKeys[piece.Side][piece.Kind][i]
		}
	}
	return key
}

// PositionKey returns the Zobrist key of a full position: placement,
// side to move, castling rights, and en-passant file. Two positions
// repeat, in the threefold-repetition sense, exactly when their keys
// and placements coincide.
func (g *Game) PositionKey() uint64 {
	key := BoardKey(g.board)
	if g.active == White {
		key ^= sideKey
	}
	key ^= castlingKeys[g.rights]
	if g.hasEnPassant {
		key ^= enPassantKeys[g.enPassant.File]
	}
	return key
}
