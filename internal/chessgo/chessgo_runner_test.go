package chessgo

import (
	"strings"
	"testing"

	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/rules"
	"github.com/cricklet/minimaxchess/internal/search"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
)

func TestSearchBeforeSetup(t *testing.T) {
	r := NewChessGoRunner()
	assert.True(t, r.IsNew())

	_, _, err := r.Search(SearchParams{})
	assert.True(t, err.HasError())

	err = r.PerformMoveFromString("e2e4")
	assert.True(t, err.HasError())
}

func TestCapturesQueen(t *testing.T) {
	r := NewChessGoRunner()
	err := r.SetupPosition(UciPosition{
		Fen:   "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
		Moves: []string{},
	})
	assert.True(t, IsNil(err), err)

	move, score, err := r.Search(SearchParams{})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Some("d1d5"), move)
	assert.Equal(t, Some(5), score)
	assert.Greater(t, r.LastStats.Nodes, 0)

	// the search leaves the position alone
	assert.Equal(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1", r.FenString())
}

func TestSearchDepthOverride(t *testing.T) {
	r := NewChessGoRunner(WithDepth{1})
	err := r.SetupPosition(UciPosition{Fen: StartFen})
	assert.True(t, IsNil(err), err)

	_, _, err = r.Search(SearchParams{})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, 21, r.LastStats.Nodes)

	_, _, err = r.Search(SearchParams{Depth: Some(2)})
	assert.True(t, IsNil(err), err)
	assert.Greater(t, r.LastStats.Nodes, 21)
}

func TestSearchLogsStats(t *testing.T) {
	output := []string{}
	r := NewChessGoRunner(
		WithDepth{2},
		WithLogger{FuncLogger(func(s string) {
			output = append(output, s)
		})},
		WithSearchOptions{[]search.SearchOption{search.WithoutPruning{}}},
	)
	err := r.SetupPosition(UciPosition{Fen: StartFen})
	assert.True(t, IsNil(err), err)

	_, _, err = r.Search(SearchParams{})
	assert.True(t, IsNil(err), err)

	// 1 + 20 + 400 without pruning
	assert.Equal(t, 421, r.LastStats.Nodes)
	assert.Equal(t, 0, r.LastStats.Cutoffs)
	assert.Contains(t, strings.Join(output, ""), "searched 421 nodes at depth 2")
}

func TestPerformMovesReusesHistory(t *testing.T) {
	r := NewChessGoRunner()
	err := r.PerformMoves(StartFen, []string{"e2e4", "e7e5", "g1f3"})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3"}, r.MoveHistory())

	err = r.PerformMoves(StartFen, []string{"e2e4", "e7e5", "g1f3", "b8c6"})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3", "b8c6"}, r.MoveHistory())

	// diverges after e7e5
	err = r.PerformMoves(StartFen, []string{"e2e4", "e7e5", "f1c4"})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, []string{"e2e4", "e7e5", "f1c4"}, r.MoveHistory())
	assert.Equal(t, chess.Black, r.Player())

	err = r.PerformMoves(StartFen, []string{"e2e4", "e7e5", "f1c4", "e1e3"})
	assert.True(t, err.HasError())
}

func TestPerformMovesFromAnotherPosition(t *testing.T) {
	r := NewChessGoRunner()
	err := r.PerformMoves(StartFen, []string{"e2e4"})
	assert.True(t, IsNil(err), err)

	fen := "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1"
	err = r.PerformMoves(fen, []string{"d1d5"})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, fen, r.StartFen)
	assert.Equal(t, []string{"d1d5"}, r.MoveHistory())
}

func TestRewind(t *testing.T) {
	r := NewChessGoRunner()
	err := r.SetupPosition(UciPosition{Fen: StartFen, Moves: []string{"d2d4", "d7d5", "c2c4"}})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Some("c2c4"), r.LastMove())

	err = r.Rewind(2)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, []string{"d2d4"}, r.MoveHistory())

	err = r.Rewind(5)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, StartFen, r.FenString())
	assert.True(t, r.LastMove().IsEmpty())
}

func TestRewindToTheStart(t *testing.T) {
	r := NewChessGoRunner()
	err := r.SetupPosition(UciPosition{Fen: StartFen, Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6"}})
	assert.True(t, IsNil(err), err)

	err = r.Rewind(4)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, []string{}, r.MoveHistory())
	assert.Equal(t, StartFen, r.FenString())
	assert.Equal(t, 0, r.Board().Ply())
}

func TestPerformMovesLeavingHistory(t *testing.T) {
	r := NewChessGoRunner()
	err := r.SetupPosition(UciPosition{Fen: StartFen, Moves: []string{"e2e4", "e7e5", "g1f3", "b8c6"}})
	assert.True(t, IsNil(err), err)

	err = r.PerformMoves(StartFen, []string{"d2d4", "d7d5"})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, []string{"d2d4", "d7d5"}, r.MoveHistory())

	expected := rules.NewBoard()
	assert.True(t, IsNil(expected.PushString("d2d4")))
	assert.True(t, IsNil(expected.PushString("d7d5")))
	assert.Equal(t, expected.Fen(), r.FenString())
	assert.Equal(t, chess.White, r.Player())
}

func TestCastlingSelection(t *testing.T) {
	fen := "rn1qk2r/ppp3pp/3b1n2/3ppb2/8/2NPBNP1/PPP2PBP/R2QK2R b KQkq - 15 8"

	r := NewChessGoRunner()
	err := r.SetupPosition(UciPosition{Fen: fen})
	assert.True(t, IsNil(err), err)

	kingMoves, err := r.MovesForSelection("e8")
	assert.True(t, IsNil(err), err)
	assert.Contains(t, kingMoves, "e8g8")

	err = r.PerformMoves(fen, []string{"e8g8", "d3d4"})
	assert.True(t, IsNil(err), err)

	kingMoves, err = r.MovesForSelection("g8")
	assert.True(t, IsNil(err), err)
	assert.Contains(t, kingMoves, "g8h8")
	assert.NotContains(t, kingMoves, "g8f8")

	_, err = r.MovesForSelection("z9")
	assert.True(t, err.HasError())
}

func TestPgnFromMoveHistory(t *testing.T) {
	r := NewChessGoRunner()
	err := r.SetupPosition(UciPosition{Fen: StartFen, Moves: []string{"f2f3", "e7e5", "g2g4"}})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, "1. f3 e5 2. g4", r.PgnFromMoveHistory())
	assert.False(t, r.IsGameOver())

	err = r.PerformMoveFromString("d8h4")
	assert.True(t, IsNil(err), err)
	assert.True(t, r.IsGameOver())
	assert.Equal(t, "1. f3 e5 2. g4 Qh4# 0-1", r.PgnFromMoveHistory())

	outcome, method := r.Outcome()
	assert.Equal(t, chess.BlackWon, outcome)
	assert.Equal(t, chess.Checkmate, method)

	move, score, err := r.Search(SearchParams{})
	assert.True(t, IsNil(err), err)
	assert.True(t, move.IsEmpty())
	assert.Equal(t, Some(0), score)
}

func TestPgnFromBlackToMove(t *testing.T) {
	r := NewChessGoRunner()
	assert.Equal(t, "", r.PgnFromMoveHistory())

	err := r.SetupPosition(UciPosition{Fen: "3rk3/8/8/8/3Q4/8/8/4K3 b - - 0 1", Moves: []string{"d8d4"}})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, "1... Rxd4", r.PgnFromMoveHistory())
}

func TestBlackRunnerPlaysBack(t *testing.T) {
	r := NewChessGoRunner(WithDepth{2})
	err := r.SetupPosition(UciPosition{Fen: "3rk3/8/8/8/3Q4/8/8/4K3 b - - 0 1"})
	assert.True(t, IsNil(err), err)

	move, score, err := r.Search(SearchParams{})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Some("d8d4"), move)
	assert.Equal(t, Some(-5), score)
	assert.Equal(t, 9-5, r.Evaluate())

	err = r.PerformMoveFromString(move.Value())
	assert.True(t, IsNil(err), err)
	assert.Equal(t, -5, r.Evaluate())
	assert.Equal(t, 0, r.DrawClock())
}
