package search

import (
	"strings"

	. "github.com/cricklet/minimaxchess/internal/helpers"
)

type searchConfig struct {
	logger          Logger
	pruning         bool
	debugSearchTree bool
}

func defaultSearchConfig() searchConfig {
	return searchConfig{
		logger:  &SilentLogger,
		pruning: true,
	}
}

type SearchOption interface {
	apply(config *searchConfig)
}

type WithLogger struct {
	Logger Logger
}

func (o WithLogger) apply(config *searchConfig) {
	config.logger = o.Logger
}

// WithoutPruning explores every move. Scores are identical, only slower.
type WithoutPruning struct {
}

func (o WithoutPruning) apply(config *searchConfig) {
	config.pruning = false
}

type WithDebugSearchTree struct {
}

func (o WithDebugSearchTree) apply(config *searchConfig) {
	config.debugSearchTree = true
}

var AllSearchOptions = []string{
	"nopruning",
	"debugSearchTree",
}

func SearchOptionsFromArgs(args ...string) ([]SearchOption, Error) {
	options := []SearchOption{}

	for _, arg := range args {
		if strings.HasPrefix(arg, "nopruning") {
			options = append(options, WithoutPruning{})
		} else if strings.HasPrefix(arg, "debugSearchTree") {
			options = append(options, WithDebugSearchTree{})
		} else {
			return options, Errorf("unknown search option: %s", arg)
		}
	}

	return options, NilError
}
