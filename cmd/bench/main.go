package main

import (
	"fmt"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/cricklet/minimaxchess/internal/config"
	. "github.com/cricklet/minimaxchess/internal/helpers"
	"github.com/cricklet/minimaxchess/internal/rules"
	"github.com/cricklet/minimaxchess/internal/search"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
)

var _suite = []string{
	StartFen,
	"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4",
	"rn1qk2r/ppp3pp/3b1n2/3ppb2/8/2NPBNP1/PPP2PBP/R2QK2R b KQkq - 15 8",
	"2kr3r/p1p2ppp/2n1b3/2bqp3/Pp1p4/1P1P1N1P/2PBBPP1/R2Q1RK1 w - - 24 13",
	"2k1r3/8/2np2p1/p1bq4/Pp2P1P1/1P1p4/2PBQ3/R4RK1 w - - 48 25",
	"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
}

type benchResult struct {
	fen     string
	move    string
	score   int
	stats   search.SearchStats
	elapsed time.Duration
}

func (r benchResult) String() string {
	rate := float64(r.stats.Nodes) / math.Max(r.elapsed.Seconds(), 1e-9)
	return fmt.Sprintf("%v %v nodes, %v cutoffs, %v in %v (%v)",
		r.move,
		humanize.Comma(int64(r.stats.Nodes)),
		humanize.Comma(int64(r.stats.Cutoffs)),
		search.ScoreString(r.score),
		r.elapsed.Round(time.Millisecond),
		humanize.SIWithDigits(rate, 1, "nodes/s"))
}

func bench(fen string, depth int, opts ...search.SearchOption) (benchResult, Error) {
	b, err := rules.BoardFromFen(fen)
	if !IsNil(err) {
		return benchResult{}, err
	}

	searcher := search.NewChessSearcher(opts...)
	start := time.Now()
	result, err := searcher.SearchFromRoot(b, depth, search.MaximizingFor(b.Turn()))
	if !IsNil(err) {
		return benchResult{}, err
	}

	move := "none"
	if result.Move.HasValue() {
		move = rules.MoveString(result.Move.Value())
	}
	return benchResult{
		fen:     fen,
		move:    move,
		score:   result.Score,
		stats:   searcher.Stats,
		elapsed: time.Since(start),
	}, NilError
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
			os.Exit(1)
		}
	}()

	options, err := config.OptionsFromArgs(os.Args[1:]...)
	if !IsNil(err) {
		panic(err)
	}

	if options.Profile {
		p := profile.Start(profile.ProfilePath(DataDir("CmdBenchMain")))
		defer p.Stop()
	}

	suite := _suite
	if options.Fen != StartFen {
		suite = []string{options.Fen}
	}

	progress := CreateProgressBar(2*len(suite), fmt.Sprintf("depth %v", options.Depth))

	pruned := []benchResult{}
	full := []benchResult{}
	for _, fen := range suite {
		progress.Describe(fen)

		result, err := bench(fen, options.Depth, options.SearchOptions...)
		if !IsNil(err) {
			panic(err)
		}
		pruned = append(pruned, result)
		progress.Add(1)

		result, err = bench(fen, options.Depth, search.WithoutPruning{})
		if !IsNil(err) {
			panic(err)
		}
		full = append(full, result)
		progress.Add(1)
	}
	progress.Close()

	total := [2]search.SearchStats{}
	mismatches := 0
	for i := range suite {
		fmt.Println(suite[i])
		fmt.Println("  pruned:", pruned[i])
		fmt.Println("  full:  ", full[i])
		if pruned[i].score != full[i].score {
			fmt.Println("  score mismatch!")
			mismatches++
		}
		total[0] = total[0].Add(pruned[i].stats)
		total[1] = total[1].Add(full[i].stats)
	}

	fmt.Println()
	fmt.Println("pruned:", humanize.Comma(int64(total[0].Nodes)), "nodes")
	fmt.Println("full:  ", humanize.Comma(int64(total[1].Nodes)), "nodes")
	if total[1].Nodes > 0 {
		fmt.Printf("pruning visits %.1f%% of the full tree\n", 100*float64(total[0].Nodes)/float64(total[1].Nodes))
	}

	if mismatches > 0 {
		fmt.Fprintln(os.Stderr, mismatches, "positions scored differently with pruning")
		os.Exit(1)
	}
}
