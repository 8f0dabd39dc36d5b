package search

import (
	"github.com/cricklet/minimaxchess/internal/evaluation"
	"github.com/cricklet/minimaxchess/internal/rules"
	"github.com/notnil/chess"
)

type ChessSearcher = Searcher[*chess.Move, *rules.Board]

type ChessResult = Result[*chess.Move]

var _ Position[*chess.Move] = (*rules.Board)(nil)

func evaluateBoard(b *rules.Board) int {
	return evaluation.Evaluate(b)
}

func NewChessSearcher(opts ...SearchOption) *ChessSearcher {
	return NewSearcher[*chess.Move, *rules.Board](evaluateBoard, opts...)
}

// White maximizes, black minimizes.
func MaximizingFor(player chess.Color) bool {
	return player == chess.White
}
