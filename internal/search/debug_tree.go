package search

import (
	"fmt"
	"strings"
)

type debugSearchLine struct {
	DebugString string
	Depth       int
	Alpha       int
	Beta        int
	Score       int
}

type debugSearchTree struct {
	Result []debugSearchLine
	// indices into Result of the moves currently on the board
	open []int
}

func (s *debugSearchTree) Reset() {
	s.Result = s.Result[:0]
	s.open = s.open[:0]
}

// DebugString renders every explored move shallower than maxDepth plies,
// indented by ply, with the window it was searched with and its score.
func (s *debugSearchTree) DebugString(maxDepth int) string {
	result := ""
	for _, line := range s.Result {
		if line.Depth >= maxDepth {
			continue
		}
		result += fmt.Sprintf("%v%v (%v %v) %v\n",
			strings.Repeat(" ", line.Depth),
			line.DebugString,
			ScoreString(line.Alpha),
			ScoreString(line.Beta),
			ScoreString(line.Score))
	}
	return result
}

func (s *debugSearchTree) MovePush(move string, role Role, alpha int, beta int) {
	s.open = append(s.open, len(s.Result))
	s.Result = append(s.Result, debugSearchLine{
		DebugString: fmt.Sprintf("%v %v", role, move),
		Depth:       len(s.open) - 1,
		Alpha:       alpha,
		Beta:        beta,
	})
}

func (s *debugSearchTree) MovePop(score int) {
	last := len(s.open) - 1
	s.Result[s.open[last]].Score = score
	s.open = s.open[:last]
}
