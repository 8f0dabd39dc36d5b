package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/cricklet/minimaxchess/internal/config"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/play"
	"github.com/pkg/profile"
	"golang.org/x/term"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
			os.Exit(1)
		}
	}()

	args := os.Args[1:]

	if len(args) > 0 && args[0] == "options" {
		for _, option := range config.AllOptions {
			fmt.Println(option)
		}
		return
	}

	options, err := config.OptionsFromArgs(args...)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err.Message())
		os.Exit(2)
	}

	if options.Profile {
		p := profile.Start(profile.ProfilePath(DataDir("CmdChessMain")))
		defer p.Stop()
	}

	highlight := !options.NoColor && term.IsTerminal(int(os.Stdout.Fd()))

	g, err := play.NewGame(os.Stdin, os.Stdout, options, highlight)
	if !IsNil(err) {
		panic(err)
	}

	err = g.Run()
	if !IsNil(err) {
		panic(err)
	}
}
