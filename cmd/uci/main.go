package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/cricklet/minimaxchess/internal/chessgo"
	"github.com/cricklet/minimaxchess/internal/config"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/uci"
	"github.com/pkg/profile"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
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
		panic(err)
	}

	if options.Profile {
		p := profile.Start(profile.ProfilePath(DataDir("CmdUciMain")))
		defer p.Stop()
	}

	// the default logger writes to stderr, stdout belongs to the protocol
	r := uci.NewUciRunner(chessgo.NewChessGoRunner(
		chessgo.WithDepth{Depth: options.Depth},
		chessgo.WithSearchOptions{SearchOptions: options.SearchOptions},
		chessgo.WithLogger{Logger: options.Logger()},
	))

	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if uci.IsQuit(input) {
			break
		}
		result, err := r.HandleInput(input)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
			time.Sleep(200 * time.Millisecond)
			break
		}
		for _, v := range result {
			fmt.Println(v)
		}
	}
}
