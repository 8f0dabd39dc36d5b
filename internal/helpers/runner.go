package helpers

const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type UciPosition struct {
	Fen   string
	Moves []string
}

type SearchParams struct {
	Depth Optional[int]
}

// Runner is what the UCI loop and the terminal game drive. Moves are UCI
// strings, eg "e2e4" or "e7e8q".
type Runner interface {
	SetupPosition(position UciPosition) Error
	PerformMoveFromString(s string) Error
	PerformMoves(startFen string, moves []string) Error
	MovesForSelection(s string) ([]string, Error)
	Rewind(num int) Error
	Reset()
	Search(params SearchParams) (Optional[string], Optional[int], Error)
	IsNew() bool
	FenString() string
}
