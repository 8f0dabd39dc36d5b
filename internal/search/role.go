package search

import (
	"fmt"

	. "github.com/cricklet/minimaxchess/internal/helpers"
)

// Inf bounds every score. Material never gets close (39 points a side).
const Inf int = 999999

func ScoreString(score int) string {
	switch {
	case score >= Inf:
		return "+inf"
	case score <= -Inf:
		return "-inf"
	case score > 0:
		return fmt.Sprint("+", score)
	}
	return fmt.Sprint(score)
}

type Role int

const (
	Maximizing Role = iota
	Minimizing
)

var _roleStrings = [2]string{
	"maximizing", "minimizing",
}

func (r Role) String() string {
	return _roleStrings[r]
}

func RoleFor(maximizing bool) Role {
	if maximizing {
		return Maximizing
	}
	return Minimizing
}

func (r Role) Other() Role {
	return 1 - r
}

// Worst is the starting best-so-far score: every real score improves on it.
func (r Role) Worst() int {
	if r == Maximizing {
		return -Inf
	}
	return Inf
}

func (r Role) Improves(score int, best int) bool {
	if r == Maximizing {
		return score > best
	}
	return score < best
}

func (r Role) Tighten(alpha int, beta int, best int) (int, int) {
	if r == Maximizing {
		return MaxInt(alpha, best), beta
	}
	return alpha, MinInt(beta, best)
}
