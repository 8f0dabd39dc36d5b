package play

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cricklet/minimaxchess/internal/chessgo"
	"github.com/cricklet/minimaxchess/internal/config"
	"github.com/cricklet/minimaxchess/internal/display"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/rules"
	"github.com/notnil/chess"
)

// Game is a human playing the computer over a line based terminal.
type Game struct {
	Logger

	scanner   *bufio.Scanner
	out       io.Writer
	highlight bool

	human  chess.Color
	runner *chessgo.ChessGoRunner
}

func NewGame(in io.Reader, out io.Writer, options config.Options, highlight bool) (*Game, Error) {
	logger := options.Logger()
	runner := chessgo.NewChessGoRunner(
		chessgo.WithLogger{Logger: logger},
		chessgo.WithDepth{Depth: options.Depth},
		chessgo.WithSearchOptions{SearchOptions: options.SearchOptions},
	)
	err := runner.SetupPosition(UciPosition{Fen: options.Fen})
	if !IsNil(err) {
		return nil, err
	}

	return &Game{
		Logger:    logger,
		scanner:   bufio.NewScanner(in),
		out:       out,
		highlight: highlight,
		human:     options.Human,
		runner:    runner,
	}, NilError
}

func (g *Game) Runner() *chessgo.ChessGoRunner {
	return g.runner
}

func (g *Game) println(v ...any) {
	fmt.Fprintln(g.out, v...)
}

func colorName(c chess.Color) string {
	if c == chess.White {
		return "White"
	}
	return "Black"
}

func (g *Game) printWelcome() {
	g.println("========================================")
	g.println()
	g.println("       Welcome to the Chess Game!       ")
	g.println()
	g.println("========================================")
	g.println()
	g.println("You will be playing as", colorName(g.human))
	g.println("The computer will play as", colorName(g.human.Other()))
	g.println()
	g.println("Instructions:")
	g.println("- Enter your move using the UCI (Universal Chess Interface) format.")
	g.println("  Example: To move the pawn from e2 to e4, enter 'e2e4'.")
	g.println("  Promotions add the piece, eg 'e7e8q'.")
	g.println("- Type 'undo' to take back your last move.")
	g.println("- Type 'quit' at any time to exit the game.")
	g.println()
	g.println("Good luck and have fun!")
	g.println()
	g.println("Starting the game...")
	g.println()
}

func (g *Game) printBoard() {
	g.println(display.RenderBoard(g.runner.Board(), display.WithHighlight{Highlight: g.highlight}))
}

// Run plays until the game ends, the human quits or the input runs out.
func (g *Game) Run() Error {
	g.printWelcome()

	for !g.runner.IsGameOver() {
		g.printBoard()

		if g.runner.Player() == g.human {
			quit, err := g.humanTurn()
			if !IsNil(err) {
				return err
			}
			if quit {
				g.println("Exiting the game...")
				return NilError
			}
		} else {
			err := g.computerTurn()
			if !IsNil(err) {
				return err
			}
		}
	}

	g.printBoard()
	g.printResult()
	return NilError
}

func (g *Game) humanTurn() (bool, Error) {
	g.println()
	g.println("***** Human's Turn *****")
	g.println("All Possible Moves: ")
	g.println(display.FormatMoves(g.runner.Board().LegalMoves()))

	for {
		fmt.Fprint(g.out, "Enter Your Move (e.g., 'e2e4') or type 'quit' to exit the game: ")
		if !g.scanner.Scan() {
			g.println()
			return true, Wrap(g.scanner.Err())
		}

		input := strings.TrimSpace(g.scanner.Text())
		switch strings.ToLower(input) {
		case "quit":
			return true, NilError
		case "undo":
			// back to the previous position with the human to move
			if g.runner.Board().Ply() < 2 {
				g.println("Nothing to undo.")
				continue
			}
			err := g.runner.Rewind(2)
			if !IsNil(err) {
				return false, err
			}
			g.println("Undid the last two moves.")
			return false, NilError
		}

		err := g.runner.PerformMoveFromString(input)
		if !IsNil(err) {
			g.Println(err.Message())
			g.println("Invalid Move. Try Again!")
			continue
		}

		g.println("Human Move:", g.runner.LastMove().Value())
		return false, NilError
	}
}

func (g *Game) computerTurn() Error {
	g.println()
	g.println("***** Computer's Turn *****")

	move, score, err := g.runner.Search(SearchParams{})
	if !IsNil(err) {
		return err
	}
	if move.IsEmpty() {
		return Errorf("no move found for %v", g.runner.FenString())
	}

	err = g.runner.PerformMoveFromString(move.Value())
	if !IsNil(err) {
		return err
	}

	g.Println("score", score.Value(), g.runner.LastStats)
	g.println("Computer Move:", move.Value())
	return NilError
}

func (g *Game) printResult() {
	outcome, method := g.runner.Outcome()
	g.println("Game Over. Result:", outcome, "("+rules.MethodString(method)+")")

	switch {
	case outcome == chess.Draw:
		g.println("Draw")
	case (outcome == chess.WhiteWon) == (g.human == chess.White):
		g.println("Human Wins")
	default:
		g.println("Computer Wins")
	}
}
