package chess

// CastlingRights is a bitmask of the four independent castling
// availabilities.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	AllCastlingRights                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
	NoCastlingRights  CastlingRights = 0
)

// Has reports whether every right in mask is available.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

// String formats the rights in FEN syntax: a subset of "KQkq", or "-"
// when no right remains.
func (cr CastlingRights) String() string {
	if cr == NoCastlingRights {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if cr.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if cr.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if cr.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if cr.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// retainedRights maps a square index to the rights a side keeps when a
// piece moves from or to that square. Touching a rook corner revokes
// that corner's right; touching a king home square revokes both of the
// side's rights.
var retainedRights [BoardSize]CastlingRights

func init() {
	for i := range retainedRights {
		retainedRights[i] = AllCastlingRights
	}
	retainedRights[Square{File: 0, Rank: 1}.Index()] &^= WhiteQueenside
	retainedRights[Square{File: 4, Rank: 1}.Index()] &^= WhiteKingside | WhiteQueenside
	retainedRights[Square{File: 7, Rank: 1}.Index()] &^= WhiteKingside
	retainedRights[Square{File: 0, Rank: 8}.Index()] &^= BlackQueenside
	retainedRights[Square{File: 4, Rank: 8}.Index()] &^= BlackKingside | BlackQueenside
	retainedRights[Square{File: 7, Rank: 8}.Index()] &^= BlackKingside
}
