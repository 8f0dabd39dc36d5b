package uci

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cricklet/minimaxchess/internal/display"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/rules"
)

type UciRunner struct {
	Runner Runner
}

func NewUciRunner(runner Runner) *UciRunner {
	return &UciRunner{runner}
}

func parseFen(input string) (string, Error) {
	s := strings.TrimPrefix(input, "position ")

	if strings.HasPrefix(s, "fen ") {
		s = strings.TrimPrefix(s, "fen ")
		return strings.TrimSpace(strings.Split(s, " moves")[0]), NilError
	} else if strings.HasPrefix(s, "startpos") {
		return StartFen, NilError
	}

	return "", Errorf("couldn't parse '%v'", s)
}

func parseMoves(input string) []string {
	result := []string{}
	if strings.Contains(input, " moves ") {
		fields := strings.Fields(strings.SplitN(input, " moves ", 2)[1])
		result = append(result, fields...)
	}
	return result
}

func parsePosition(input string) (UciPosition, Error) {
	fen, err := parseFen(input)
	if !IsNil(err) {
		return UciPosition{}, err
	}
	return UciPosition{Fen: fen, Moves: parseMoves(input)}, NilError
}

func parseSearchParams(input string) (SearchParams, Error) {
	params := SearchParams{}
	fields := strings.Fields(input)
	for i := 1; i < len(fields); i++ {
		if fields[i] == "depth" && i+1 < len(fields) {
			depth, err := strconv.Atoi(fields[i+1])
			if err != nil || depth < 1 {
				return params, Errorf("bad depth in '%v'", input)
			}
			params.Depth = Some(depth)
			i++
		}
	}
	return params, NilError
}

// IsQuit reports whether input asks the engine to exit.
func IsQuit(input string) bool {
	return strings.TrimSpace(input) == "quit"
}

func (u *UciRunner) HandleInput(input string) ([]string, Error) {
	input = strings.TrimSpace(input)
	result := []string{}
	if input == "uci" {
		result = append(result, "id name minimaxchess 1")
		result = append(result, "id author cricklet")
		result = append(result, "uciok")
	} else if input == "ucinewgame" {
		u.Runner.Reset()
	} else if input == "isready" {
		result = append(result, "readyok")
	} else if strings.HasPrefix(input, "position ") {
		position, err := parsePosition(input)
		if !IsNil(err) {
			return result, err
		}
		if u.Runner.IsNew() {
			err = u.Runner.SetupPosition(position)
		} else {
			err = u.Runner.PerformMoves(position.Fen, position.Moves)
		}
		if !IsNil(err) {
			return result, err
		}
	} else if input == "go" || strings.HasPrefix(input, "go ") {
		params, err := parseSearchParams(input)
		if !IsNil(err) {
			return result, err
		}

		move, _, err := u.Runner.Search(params)
		if !IsNil(err) {
			return result, err
		}

		if move.IsEmpty() {
			return result, Errorf("no legal moves")
		}

		result = append(result, fmt.Sprintf("bestmove %v", move.Value()))
	} else if input == "d" {
		if u.Runner.IsNew() {
			return result, Errorf("position not setup")
		}
		b, err := rules.BoardFromFen(u.Runner.FenString())
		if !IsNil(err) {
			return result, err
		}
		result = append(result, display.RenderBoard(b))
		result = append(result, "Fen: "+b.Fen())
	} else if input == "fen" {
		result = append(result, u.Runner.FenString())
	}
	return result, NilError
}
