package chessgo

import (
	"strings"
	"time"

	"github.com/cricklet/minimaxchess/internal/evaluation"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/rules"
	"github.com/cricklet/minimaxchess/internal/search"
	"github.com/dustin/go-humanize"
	"github.com/notnil/chess"
)

const DefaultDepth = 3

type ChessGoRunner struct {
	Logger Logger

	depth         int
	searchOptions []search.SearchOption

	board    *rules.Board
	StartFen string

	LastStats search.SearchStats
}

var _ Runner = (*ChessGoRunner)(nil)

type ChessGoOption interface {
	apply(r *ChessGoRunner)
}

type WithLogger struct {
	Logger Logger
}

func (o WithLogger) apply(r *ChessGoRunner) {
	r.Logger = o.Logger
}

type WithDepth struct {
	Depth int
}

func (o WithDepth) apply(r *ChessGoRunner) {
	r.depth = o.Depth
}

type WithSearchOptions struct {
	SearchOptions []search.SearchOption
}

func (o WithSearchOptions) apply(r *ChessGoRunner) {
	r.searchOptions = append(r.searchOptions, o.SearchOptions...)
}

func NewChessGoRunner(opts ...ChessGoOption) *ChessGoRunner {
	r := &ChessGoRunner{
		Logger: &SilentLogger,
		depth:  DefaultDepth,
	}
	for _, opt := range opts {
		opt.apply(r)
	}
	return r
}

func (r *ChessGoRunner) Reset() {
	r.board = nil
	r.StartFen = ""
	r.LastStats = search.SearchStats{}
}

func (r *ChessGoRunner) IsNew() bool {
	return r.board == nil
}

func (r *ChessGoRunner) Board() *rules.Board {
	return r.board
}

func (r *ChessGoRunner) Depth() int {
	return r.depth
}

func (r *ChessGoRunner) LastMove() Optional[string] {
	if r.IsNew() || r.board.LastMove().IsEmpty() {
		return Empty[string]()
	}
	return Some(rules.MoveString(r.board.LastMove().Value()))
}

func (r *ChessGoRunner) Rewind(num int) Error {
	if r.IsNew() {
		return Errorf("position not setup")
	}
	n := MinInt(num, r.board.Ply())
	for i := 0; i < n; i++ {
		err := r.board.Pop()
		if !IsNil(err) {
			return Errorf("Rewind: %w", err)
		}
	}
	return NilError
}

func (r *ChessGoRunner) PerformMoveFromString(s string) Error {
	if r.IsNew() {
		return Errorf("position not setup")
	}
	err := r.board.PushString(s)
	if !IsNil(err) {
		return Errorf("PerformMove: %w", err)
	}
	return NilError
}

func firstIndexNotMatching[A any, B any](a []A, b []B, matches func(A, B) bool) int {
	for i := 0; i < MinInt(len(a), len(b)); i++ {
		if !matches(a[i], b[i]) {
			return i
		}
	}
	return MinInt(len(a), len(b))
}

// PerformMoves brings the board to startFen + moves, keeping whatever prefix
// of the current history already matches.
func (r *ChessGoRunner) PerformMoves(startFen string, moves []string) Error {
	if r.IsNew() || r.StartFen != startFen {
		return r.SetupPosition(UciPosition{Fen: startFen, Moves: moves})
	}

	history := r.MoveHistory()
	startIndex := firstIndexNotMatching(history, moves, func(a string, b string) bool {
		return a == b
	})

	err := r.Rewind(len(history) - startIndex)
	if !IsNil(err) {
		return err
	}

	for i := startIndex; i < len(moves); i++ {
		err := r.PerformMoveFromString(moves[i])
		if !IsNil(err) {
			return err
		}
	}

	return NilError
}

func (r *ChessGoRunner) SetupPosition(position UciPosition) Error {
	if !r.IsNew() {
		r.Reset()
	}

	board, err := rules.BoardFromFen(position.Fen)
	if !IsNil(err) {
		return Errorf("couldn't create game from %v, %w", position, err)
	}
	r.board = board
	r.StartFen = position.Fen

	for _, m := range position.Moves {
		err := r.PerformMoveFromString(m)
		if !IsNil(err) {
			return err
		}
	}

	return NilError
}

func (r *ChessGoRunner) MovesForSelection(selection string) ([]string, Error) {
	if r.IsNew() {
		return nil, Errorf("position not setup")
	}

	square, err := rules.ParseSquare(selection)
	if !IsNil(err) {
		return nil, Errorf("failed to parse selection %w", err)
	}

	moves := FilterSlice(r.board.LegalMoves(), func(m *chess.Move) bool {
		return m.S1() == square
	})
	return MapSlice(moves, rules.MoveString), NilError
}

func (r *ChessGoRunner) FenString() string {
	if r.IsNew() {
		return ""
	}
	return r.board.Fen()
}

func (r *ChessGoRunner) MoveHistory() []string {
	if r.IsNew() {
		return []string{}
	}
	return MapSlice(r.board.History(), rules.MoveString)
}

// PgnFromMoveHistory is the PGN movetext of the game so far in SAN, with the
// result once the game is over.
func (r *ChessGoRunner) PgnFromMoveHistory() string {
	if r.IsNew() {
		return ""
	}
	result := r.board.MoveText()
	if r.board.IsGameOver() {
		result = strings.TrimSpace(result + " " + r.board.Result())
	}
	return result
}

func (r *ChessGoRunner) Player() chess.Color {
	return r.board.Turn()
}

func (r *ChessGoRunner) IsGameOver() bool {
	return !r.IsNew() && r.board.IsGameOver()
}

func (r *ChessGoRunner) Outcome() (chess.Outcome, chess.Method) {
	if r.IsNew() {
		return chess.NoOutcome, chess.NoMethod
	}
	return r.board.Outcome()
}

func (r *ChessGoRunner) Evaluate() int {
	return evaluation.Evaluate(r.board)
}

func (r *ChessGoRunner) DrawClock() int {
	return r.board.HalfMoveClock()
}

// Search returns the best move for the side to move. White maximizes the
// material score, black minimizes it; the score is always white's.
func (r *ChessGoRunner) Search(params SearchParams) (Optional[string], Optional[int], Error) {
	if r.IsNew() {
		return Empty[string](), Empty[int](), Errorf("position not setup")
	}

	depth := params.Depth.ValueOr(r.depth)
	searcher := search.NewChessSearcher(append(
		[]search.SearchOption{search.WithLogger{Logger: r.Logger}},
		r.searchOptions...)...)

	start := time.Now()
	result, err := searcher.SearchFromRoot(r.board, depth, search.MaximizingFor(r.board.Turn()))
	elapsed := time.Since(start)

	r.LastStats = searcher.Stats
	r.Logger.Println("searched", humanize.Comma(int64(searcher.Stats.Nodes)), "nodes",
		"at depth", depth, "in", elapsed.Round(time.Millisecond))

	if !IsNil(err) {
		return Empty[string](), Empty[int](), err
	}

	if result.Move.HasValue() {
		return Some(rules.MoveString(result.Move.Value())), Some(result.Score), NilError
	}

	return Empty[string](), Some(result.Score), NilError
}
