package liftstrategy

import "github.com/katalvlaran/parityscope/pgame"

// IsTop reports whether vertex id's current progress-measure entry is
// Top. PredecessorQueue is the one strategy that needs to see into rho —
// it skips enqueuing already-Top predecessors — so the lifting loop
// supplies this narrow read-only view rather than handing over the whole
// mutable measure.
type IsTop func(id int) bool

// PredecessorQueue maintains a FIFO of ids to visit plus a membership bit
// vector, seeded with every vertex (at the start of a solve every entry
// is the all-zero measure, so nothing is Top yet). On a successful lift it
// enqueues every not-yet-queued, not-yet-Top predecessor of the lifted
// vertex. Pass boundary: the queue runs empty.
type PredecessorQueue struct {
	queue  []int
	queued []bool
	preds  [][]int // preds[v] = ids u with v in succ(u)
	isTop  IsTop
}

// NewPredecessorQueue builds the strategy over g, precomputing the
// inverse successor map once per solve.
func NewPredecessorQueue(g *pgame.Game, isTop IsTop) *PredecessorQueue {
	v := g.NumVertices()
	preds := make([][]int, v)
	for _, vertex := range g.Vertices() {
		for _, t := range vertex.Succ {
			preds[t] = append(preds[t], vertex.ID)
		}
	}

	initial := make([]int, v)
	queued := make([]bool, v)
	for i := 0; i < v; i++ {
		initial[i] = i
		queued[i] = true
	}

	return &PredecessorQueue{
		queue:  initial,
		queued: queued,
		preds:  preds,
		isTop:  isTop,
	}
}

func (s *PredecessorQueue) Next() (int, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	id := s.queue[0]
	s.queue = s.queue[1:]
	s.queued[id] = false
	return id, true
}

func (s *PredecessorQueue) NotifyLifted(v int, updated bool) {
	if !updated {
		return
	}
	for _, u := range s.preds[v] {
		if s.queued[u] {
			continue
		}
		if s.isTop(u) {
			continue
		}
		s.queued[u] = true
		s.queue = append(s.queue, u)
	}
}
