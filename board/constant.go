package board

import (
	"github.com/daystram/chess/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	// DefaultLayout lists rows 0 to 7. Player2 musters on rows 0-1, Player1 on rows 6-7.
	DefaultLayout = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

	// row, col deltas
	directionsLateral  = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	directionsDiagonal = [4][2]int{{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}
	offsetsKnight      = [8][2]int{{-2, 1}, {-2, -1}, {-1, 2}, {-1, -2}, {1, 2}, {1, -2}, {2, 1}, {2, -1}}

	// king side only; [0] is the original square, [1] the post-castle square
	posCastling = [2 + 1][kindCount][2]position.Pos{
		Player1: {
			KindKing: {position.MustParse("e7"), position.MustParse("g7")},
			KindRook: {position.MustParse("h7"), position.MustParse("f7")},
		},
		Player2: {
			KindKing: {position.MustParse("e0"), position.MustParse("g0")},
			KindRook: {position.MustParse("h0"), position.MustParse("f0")},
		},
	}
	posCastlingBetween = [2 + 1][]position.Pos{
		Player1: {position.MustParse("f7"), position.MustParse("g7")},
		Player2: {position.MustParse("f0"), position.MustParse("g0")},
	}

	materialPieceValue = [kindCount]uint32{
		KindPawn:   100,
		KindKnight: 320,
		KindBishop: 350,
		KindRook:   500,
		KindQueen:  900,
	}
)

// MaterialValue is the conventional centipawn value of a kind. Kings are worth 0.
func MaterialValue(k Kind) uint32 {
	if int(k) >= len(materialPieceValue) {
		return 0
	}
	return materialPieceValue[k]
}
