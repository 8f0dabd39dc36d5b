package config

import (
	"strconv"
	"strings"

	"github.com/cricklet/minimaxchess/internal/chessgo"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/rules"
	"github.com/cricklet/minimaxchess/internal/search"
	"github.com/notnil/chess"
)

type Options struct {
	Depth int
	// the side the person at the keyboard plays
	Human chess.Color
	Fen   string

	Verbose bool
	NoColor bool
	Profile bool

	SearchOptions []search.SearchOption
}

func DefaultOptions() Options {
	return Options{
		Depth: chessgo.DefaultDepth,
		Human: chess.White,
		Fen:   StartFen,
	}
}

var AllOptions = append([]string{
	"depth=N",
	"white",
	"black",
	"fen=FEN",
	"verbose",
	"nocolor",
	"profile",
}, search.AllSearchOptions...)

func OptionsFromArgs(args ...string) (Options, Error) {
	options := DefaultOptions()
	searchArgs := []string{}

	for _, arg := range args {
		key, value, hasValue := strings.Cut(arg, "=")
		switch {
		case key == "depth" && hasValue:
			depth, err := strconv.Atoi(value)
			if err != nil || depth < 1 {
				return options, Errorf("depth must be a positive integer: %q", value)
			}
			options.Depth = depth
		case key == "fen" && hasValue:
			_, err := rules.BoardFromFen(value)
			if !IsNil(err) {
				return options, err
			}
			options.Fen = value
		case arg == "white":
			options.Human = chess.White
		case arg == "black":
			options.Human = chess.Black
		case arg == "verbose":
			options.Verbose = true
		case arg == "nocolor":
			options.NoColor = true
		case arg == "profile":
			options.Profile = true
		default:
			searchArgs = append(searchArgs, arg)
		}
	}

	searchOptions, err := search.SearchOptionsFromArgs(searchArgs...)
	if !IsNil(err) {
		return options, Errorf("%w, expected one of %v", err, AllOptions)
	}
	options.SearchOptions = searchOptions

	return options, NilError
}

func (o Options) Computer() chess.Color {
	return o.Human.Other()
}

func (o Options) Logger() Logger {
	if o.Verbose {
		return &DefaultLogger
	}
	return &SilentLogger
}
