package evaluation

import (
	"github.com/notnil/chess"
)

type PieceMapper interface {
	PieceMap() map[chess.Square]chess.Piece
}

// PieceValues must not be modified. The king is worth nothing: mate is a
// game-over condition reported by the rules, never a material loss.
var PieceValues = map[chess.PieceType]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// MaxMaterial is the most material one side can start with.
const MaxMaterial = 8*1 + 2*3 + 2*3 + 2*5 + 9

func PieceValue(piece chess.Piece) int {
	return PieceValues[piece.Type()]
}

func colorDirection(color chess.Color) int {
	if color == chess.White {
		return 1
	}
	return -1
}

// Evaluate scores the position by material, positive when White is ahead.
func Evaluate(p PieceMapper) int {
	score := 0
	for _, piece := range p.PieceMap() {
		score += colorDirection(piece.Color()) * PieceValue(piece)
	}
	return score
}

func EvaluatePlayer(p PieceMapper, player chess.Color) int {
	return colorDirection(player) * Evaluate(p)
}
