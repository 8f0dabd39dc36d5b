package rules

import (
	"strconv"
	"strings"

	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/notnil/chess"
)

type entry struct {
	position *chess.Position
	// move that produced position, nil for the root
	move *chess.Move

	repetitionKey string
	halfMoveClock int
}

// Board is a stack of positions. Push and Pop move along the stack so the
// searcher can explore a line and come back to exactly where it started.
type Board struct {
	stack []entry
}

func NewBoard() *Board {
	b, err := BoardFromFen(StartFen)
	if err.HasError() {
		panic(err)
	}
	return b
}

func BoardFromFen(fen string) (*Board, Error) {
	opt, err := chess.FEN(fen)
	if !IsNil(err) {
		return nil, Errorf("couldn't parse fen %q: %w", fen, err)
	}
	position := chess.NewGame(opt).Position()
	return &Board{stack: []entry{newEntry(position, nil)}}, NilError
}

func newEntry(position *chess.Position, move *chess.Move) entry {
	// placement, side to move, castling rights, en passant square, half move clock, full move number
	fields := strings.Fields(position.String())
	if len(fields) > 3 && fields[3] != "-" && !canCaptureEnPassant(position) {
		fields[3] = "-"
	}
	e := entry{
		position:      position,
		move:          move,
		repetitionKey: strings.Join(fields[:MinInt(4, len(fields))], " "),
	}
	if len(fields) > 4 {
		e.halfMoveClock, _ = strconv.Atoi(fields[4])
	}
	return e
}

// An en passant square only distinguishes positions when the capture is
// actually available.
func canCaptureEnPassant(position *chess.Position) bool {
	return FindInSlice(position.ValidMoves(), func(m *chess.Move) bool {
		return m.HasTag(chess.EnPassant)
	}).HasValue()
}

func (b *Board) top() *entry {
	return &b.stack[len(b.stack)-1]
}

func (b *Board) Position() *chess.Position {
	return b.top().position
}

func (b *Board) Turn() chess.Color {
	return b.Position().Turn()
}

func (b *Board) Fen() string {
	return b.Position().String()
}

func (b *Board) String() string {
	return b.Fen()
}

func (b *Board) HalfMoveClock() int {
	return b.top().halfMoveClock
}

// Ply is the number of moves pushed since the board was created.
func (b *Board) Ply() int {
	return len(b.stack) - 1
}

func (b *Board) History() []*chess.Move {
	return MapSlice(b.stack[1:], func(e entry) *chess.Move {
		return e.move
	})
}

func (b *Board) LastMove() Optional[*chess.Move] {
	if b.Ply() == 0 {
		return Empty[*chess.Move]()
	}
	return Some(b.top().move)
}

func (b *Board) LegalMoves() []*chess.Move {
	return b.Position().ValidMoves()
}

func (b *Board) PieceMap() map[chess.Square]chess.Piece {
	return b.Position().Board().SquareMap()
}

// Push plays move, which must be one of LegalMoves().
func (b *Board) Push(move *chess.Move) {
	b.stack = append(b.stack, newEntry(b.Position().Update(move), move))
}

func (b *Board) Pop() Error {
	if b.Ply() == 0 {
		return Errorf("no move to pop from %v", b.Fen())
	}
	b.stack[len(b.stack)-1] = entry{}
	b.stack = b.stack[:len(b.stack)-1]
	return NilError
}

func (b *Board) IsGameOver() bool {
	_, method := b.Outcome()
	return method != chess.NoMethod
}

func (b *Board) Outcome() (chess.Outcome, chess.Method) {
	position := b.Position()
	switch position.Status() {
	case chess.Checkmate:
		if position.Turn() == chess.White {
			return chess.BlackWon, chess.Checkmate
		}
		return chess.WhiteWon, chess.Checkmate
	case chess.Stalemate:
		return chess.Draw, chess.Stalemate
	}

	if InsufficientMaterial(b.PieceMap()) {
		return chess.Draw, chess.InsufficientMaterial
	}
	if b.HalfMoveClock() >= 150 {
		return chess.Draw, chess.SeventyFiveMoveRule
	}
	if b.Repetitions() >= 5 {
		return chess.Draw, chess.FivefoldRepetition
	}
	return chess.NoOutcome, chess.NoMethod
}

func (b *Board) Result() string {
	outcome, _ := b.Outcome()
	return string(outcome)
}

// Repetitions counts how many times the current position has occurred.
// Only the reversible plies since the last capture or pawn move can repeat.
func (b *Board) Repetitions() int {
	current := b.top()
	count := 0
	oldest := MaxInt(0, len(b.stack)-1-current.halfMoveClock)
	for i := len(b.stack) - 1; i >= oldest; i-- {
		if b.stack[i].repetitionKey == current.repetitionKey {
			count++
		}
	}
	return count
}
