package rules

import (
	"github.com/notnil/chess"
)

func isLightSquare(sq chess.Square) bool {
	return (int(sq.File())+int(sq.Rank()))%2 == 1
}

// InsufficientMaterial is true when neither side can ever deliver mate: bare
// kings, a single minor piece, or only bishops that all stand on one colour.
func InsufficientMaterial(pieces map[chess.Square]chess.Piece) bool {
	knights := 0
	lightBishops := 0
	darkBishops := 0

	for sq, piece := range pieces {
		switch piece.Type() {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			knights++
		case chess.Bishop:
			if isLightSquare(sq) {
				lightBishops++
			} else {
				darkBishops++
			}
		}
	}

	minors := knights + lightBishops + darkBishops
	if minors <= 1 {
		return true
	}
	return knights == 0 && (lightBishops == 0 || darkBishops == 0)
}
