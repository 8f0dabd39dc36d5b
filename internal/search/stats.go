package search

import (
	"fmt"
)

type SearchStats struct {
	// every call into the recursion, leaves included
	Nodes int
	// nodes scored by the evaluation function
	Leaves int
	// nodes whose remaining moves were skipped
	Cutoffs int
}

func (s SearchStats) String() string {
	return fmt.Sprint("nodes: ", s.Nodes, ", leaves: ", s.Leaves, ", cutoffs: ", s.Cutoffs)
}

func (s SearchStats) Add(other SearchStats) SearchStats {
	return SearchStats{
		Nodes:   s.Nodes + other.Nodes,
		Leaves:  s.Leaves + other.Leaves,
		Cutoffs: s.Cutoffs + other.Cutoffs,
	}
}
