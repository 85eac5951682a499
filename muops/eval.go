package muops

import (
	"github.com/katalvlaran/parityscope/formula"
	"github.com/katalvlaran/parityscope/lts"
)

// evaluator is the mutable walker shared by both fixed-point disciplines.
// It owns A for the duration of one Check call; no reference to it escapes.
type evaluator struct {
	machine *lts.LTS
	a       Valuation
	open    formula.OpenSets // nil for the naive discipline
}

// eval recursively evaluates n against the current valuation, mutating
// w.a in place at every Fix node it descends through.
func (w *evaluator) eval(n *formula.Node) lts.StateSet {
	switch n.Kind {
	case formula.KFalse:
		return lts.NewStateSet()

	case formula.KTrue:
		return w.machine.AllStates()

	case formula.KVar:
		return w.a.Get(n.VarName)

	case formula.KAnd:
		return w.eval(n.Left).Intersect(w.eval(n.Right))

	case formula.KOr:
		return w.eval(n.Left).Union(w.eval(n.Right))

	case formula.KDiamond:
		return w.machine.PreExists(n.Action, w.eval(n.Body))

	case formula.KBox:
		return w.machine.PreForall(n.Action, w.eval(n.Body))

	case formula.KFix:
		return w.evalFix(n)

	default:
		panic("muops: unrecognised formula node kind")
	}
}

// evalFix is the Fix shape shared by both disciplines: selective
// reinitialisation of OPEN(x) (Emerson-Lei only, and only on a polarity
// flip), an unconditional reset of x's own approximant, then iteration to
// a fixed point.
func (w *evaluator) evalFix(n *formula.Node) lts.StateSet {
	if w.open != nil && n.Enclosing != n.FixPolarity {
		for y := range w.open[n.VarName] {
			w.a[y] = w.extremal(n.FixPolarity)
		}
	}

	w.a[n.VarName] = w.extremal(n.FixPolarity)
	for {
		next := w.eval(n.Body)
		stable := next.Equal(w.a[n.VarName])
		w.a[n.VarName] = next
		if stable {
			break
		}
	}

	return w.a[n.VarName]
}

// extremal returns ∅ for μ and S for ν, the two fixed-point starting points.
func (w *evaluator) extremal(pol formula.Polarity) lts.StateSet {
	if pol == formula.Nu {
		return w.machine.AllStates()
	}
	return lts.NewStateSet()
}
