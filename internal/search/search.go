package search

import (
	"fmt"

	. "github.com/cricklet/minimaxchess/internal/helpers"
)

/*
minimax with alpha/beta, scores are always from white's point of view

           a
       /        \     <-- white moves (maximizing)
      b          c
   /   \       /   \   <-- black moves (minimizing)
  d     e     f     g

alpha = the best score white can already force somewhere above this node
beta  = the best score black can already force somewhere above this node

once we're exploring c and black finds c=>f with a score <= alpha, white
will never play a=>c, so c=>g is skipped. that's the only pruning we do and
it never changes the score returned for a.
*/

// Position is the part of a rules engine the searcher needs. Push and Pop
// must form a stack: every Pop undoes exactly the most recent Push.
type Position[M any] interface {
	LegalMoves() []M
	Push(move M)
	Pop() Error
	IsGameOver() bool
}

type Result[M any] struct {
	Score int
	// empty at a leaf, where no move was made
	Move Optional[M]
}

func (r Result[M]) String() string {
	if r.Move.IsEmpty() {
		return fmt.Sprintf("(%v, none)", ScoreString(r.Score))
	}
	return fmt.Sprintf("(%v, %v)", ScoreString(r.Score), r.Move.Value())
}

type Searcher[M any, P Position[M]] struct {
	Logger

	evaluate  func(P) int
	pruning   bool
	debugTree *debugSearchTree

	Stats SearchStats
}

func NewSearcher[M any, P Position[M]](evaluate func(P) int, opts ...SearchOption) *Searcher[M, P] {
	config := defaultSearchConfig()
	for _, opt := range opts {
		opt.apply(&config)
	}

	s := &Searcher[M, P]{
		Logger:   config.logger,
		evaluate: evaluate,
		pruning:  config.pruning,
	}
	if config.debugSearchTree {
		s.debugTree = &debugSearchTree{}
	}
	return s
}

// SearchFromRoot searches with the widest possible window, which is how a
// computer turn is played.
func (s *Searcher[M, P]) SearchFromRoot(p P, depth int, maximizing bool) (Result[M], Error) {
	return s.Search(p, depth, -Inf, Inf, maximizing)
}

// Search returns the best score reachable in depth plies and the move that
// leads there. p is back in its original state when Search returns.
func (s *Searcher[M, P]) Search(p P, depth int, alpha int, beta int, maximizing bool) (Result[M], Error) {
	s.Stats = SearchStats{}
	if s.debugTree != nil {
		s.debugTree.Reset()
	}

	errs := ErrorRef{}
	result := s.alphaBeta(&errs, p, depth, alpha, beta, RoleFor(maximizing))

	if s.debugTree != nil {
		s.Println(s.debugTree.DebugString(depth))
	}
	s.Println("search", RoleFor(maximizing), "depth", depth, "=>", result, s.Stats)

	return result, errs.Error()
}

func (s *Searcher[M, P]) alphaBeta(errs *ErrorRef, p P, depth int, alpha int, beta int, role Role) Result[M] {
	s.Stats.Nodes++

	if depth <= 0 || p.IsGameOver() {
		s.Stats.Leaves++
		return Result[M]{Score: s.evaluate(p)}
	}

	moves := p.LegalMoves()
	if len(moves) == 0 {
		panic(Errorf("no legal moves but the game isn't over: %v", p))
	}

	best := Result[M]{Score: role.Worst()}
	for _, move := range moves {
		score := s.scoreMove(errs, p, move, depth, alpha, beta, role)
		if errs.HasError() {
			break
		}

		// ties keep the earlier move
		if role.Improves(score, best.Score) {
			best = Result[M]{Score: score, Move: Some(move)}
		}

		alpha, beta = role.Tighten(alpha, beta, best.Score)
		if s.pruning && beta <= alpha {
			s.Stats.Cutoffs++
			break
		}
	}

	return best
}

func (s *Searcher[M, P]) scoreMove(errs *ErrorRef, p P, move M, depth int, alpha int, beta int, role Role) int {
	if s.debugTree != nil {
		s.debugTree.MovePush(fmt.Sprint(move), role, alpha, beta)
	}

	p.Push(move)
	defer func() {
		errs.Add(p.Pop())
	}()

	score := s.alphaBeta(errs, p, depth-1, alpha, beta, role.Other()).Score

	if s.debugTree != nil {
		s.debugTree.MovePop(score)
	}
	return score
}
