package liftstrategy

import (
	"sort"

	"github.com/katalvlaran/parityscope/pgame"
)

// sortedOrder is the shared shape behind LeastSuccessors/MostSuccessors: a
// static ordering computed once at construction, never recomputed between
// passes.
type sortedOrder struct {
	order []int
	pos   int
}

func (s *sortedOrder) Next() (int, bool) {
	if s.pos == len(s.order) {
		s.pos = 0
		return 0, false
	}
	id := s.order[s.pos]
	s.pos++
	return id, true
}

func (s *sortedOrder) NotifyLifted(int, bool) {}

// LeastSuccessors visits ids ascending by out-degree.
type LeastSuccessors struct{ sortedOrder }

// NewLeastSuccessors builds the strategy from g's vertex out-degrees.
func NewLeastSuccessors(g *pgame.Game) *LeastSuccessors {
	return &LeastSuccessors{sortedOrder{order: byOutDegree(g, false)}}
}

// MostSuccessors visits ids descending by out-degree.
type MostSuccessors struct{ sortedOrder }

// NewMostSuccessors builds the strategy from g's vertex out-degrees.
func NewMostSuccessors(g *pgame.Game) *MostSuccessors {
	return &MostSuccessors{sortedOrder{order: byOutDegree(g, true)}}
}

func byOutDegree(g *pgame.Game, descending bool) []int {
	ids := make([]int, g.NumVertices())
	for i := range ids {
		ids[i] = i
	}
	sort.SliceStable(ids, func(i, j int) bool {
		di := len(g.Vertex(ids[i]).Succ)
		dj := len(g.Vertex(ids[j]).Succ)
		if descending {
			return di > dj
		}
		return di < dj
	})
	return ids
}
