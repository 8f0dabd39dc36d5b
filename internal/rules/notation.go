package rules

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/notnil/chess"
)

var _promotionSuffix = map[chess.PieceType]string{
	chess.Queen:  "q",
	chess.Rook:   "r",
	chess.Bishop: "b",
	chess.Knight: "n",
}

// MoveString renders move in UCI notation, eg "e2e4" or "e7e8q".
func MoveString(move *chess.Move) string {
	return move.S1().String() + move.S2().String() + _promotionSuffix[move.Promo()]
}

func (b *Board) ParseMove(s string) (*chess.Move, Error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if len(input) < 4 || len(input) > 5 {
		return nil, Errorf("couldn't parse move %q", s)
	}

	move := FindInSlice(b.LegalMoves(), func(m *chess.Move) bool {
		return MoveString(m) == input
	})
	if move.IsEmpty() {
		return nil, Errorf("illegal move %q in %v", s, b.Fen())
	}
	return move.Value(), NilError
}

func (b *Board) PushString(s string) Error {
	move, err := b.ParseMove(s)
	if err.HasError() {
		return err
	}
	b.Push(move)
	return NilError
}

// MoveText renders the pushed moves as PGN movetext in SAN, numbered from
// the root position, eg "1. f3 e5 2. g4 Qh4#" or "12... Rxd4 13. Ke2".
func (b *Board) MoveText() string {
	parts := []string{}
	for i := 1; i < len(b.stack); i++ {
		before := b.stack[i-1].position
		if before.Turn() == chess.White {
			parts = append(parts, fmt.Sprintf("%v.", fullMoveNumber(before)))
		} else if i == 1 {
			parts = append(parts, fmt.Sprintf("%v...", fullMoveNumber(before)))
		}
		parts = append(parts, chess.AlgebraicNotation{}.Encode(before, b.stack[i].move))
	}
	return strings.Join(parts, " ")
}

func fullMoveNumber(position *chess.Position) int {
	fields := strings.Fields(position.String())
	if len(fields) < 6 {
		return 1
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParseSquare reads algebraic squares like "e4" (case-insensitive).
func ParseSquare(s string) (chess.Square, Error) {
	input := strings.ToLower(strings.TrimSpace(s))
	if len(input) != 2 || input[0] < 'a' || input[0] > 'h' || input[1] < '1' || input[1] > '8' {
		return chess.NoSquare, Errorf("couldn't parse square %q", s)
	}
	return chess.NewSquare(chess.File(input[0]-'a'), chess.Rank(input[1]-'1')), NilError
}

var _methodStrings = map[chess.Method]string{
	chess.Checkmate:            "checkmate",
	chess.Stalemate:            "stalemate",
	chess.InsufficientMaterial: "insufficient material",
	chess.SeventyFiveMoveRule:  "seventy-five-move rule",
	chess.FivefoldRepetition:   "fivefold repetition",
}

func MethodString(method chess.Method) string {
	if s, ok := _methodStrings[method]; ok {
		return s
	}
	return "none"
}
