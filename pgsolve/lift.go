package pgsolve

import (
	"github.com/katalvlaran/parityscope/measure"
	"github.com/katalvlaran/parityscope/pgame"
)

// ProgressMeasure is rho, a length-V vector of measures indexed by vertex
// id. Solve allocates one, mutates it in place, and returns it.
type ProgressMeasure []measure.Measure

// newProgressMeasure returns the initial all-zero rho for a game of
// dimension d.
func newProgressMeasure(g *pgame.Game) ProgressMeasure {
	d := g.Dimension()
	rho := make(ProgressMeasure, g.NumVertices())
	for i := range rho {
		rho[i] = measure.Zero(d)
	}
	return rho
}

// WinningRegionEven returns {v | rho(v) != Top}, the vertices won by Even.
func (rho ProgressMeasure) WinningRegionEven() []int {
	var out []int
	for id, m := range rho {
		if !m.IsTop() {
			out = append(out, id)
		}
	}
	return out
}

// liftVertex computes Lift_v(rho) restricted to vertex v: X = min (Even)
// or max (Odd) over v's successors of Prog(rho,v,w), then
// rho(v) <- max(rho(v), X). Returns the new value and whether it differs
// from the old one.
func liftVertex(g *pgame.Game, rho ProgressMeasure, v int) (measure.Measure, bool) {
	vertex := g.Vertex(v)
	p := vertex.Priority

	progs := make([]measure.Measure, len(vertex.Succ))
	for i, w := range vertex.Succ {
		progs[i] = measure.Prog(rho[w], p)
	}

	var x measure.Measure
	if vertex.Owner == pgame.Even {
		x = measure.Min(progs)
	} else {
		x = measure.MaxOf(progs)
	}

	old := rho[v]
	next := measure.Max(old, x)
	return next, !next.Equal(old)
}
