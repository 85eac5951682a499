package muops

import (
	"errors"

	"github.com/katalvlaran/parityscope/formula"
	"github.com/katalvlaran/parityscope/lts"
)

// Algorithm selects which fixed-point discipline Check runs.
type Algorithm int

const (
	// Naive reinitialises only the entered Fix's own variable.
	Naive Algorithm = iota
	// EmersonLei additionally reinitialises OPEN(x) on a polarity flip.
	EmersonLei
)

// String renders the algorithm name the way a driver CLI flag would.
func (a Algorithm) String() string {
	switch a {
	case Naive:
		return "naive"
	case EmersonLei:
		return "emerson-lei"
	default:
		return "unknown"
	}
}

// ErrNilMachine and ErrNilFormula guard Check's malformed-input boundary:
// the evaluator assumes well-formed inputs and fails fast rather than
// dereferencing a nil.
var (
	ErrNilMachine = errors.New("muops: nil lts")
	ErrNilFormula = errors.New("muops: nil formula")
)

// Check evaluates f.Root over m using the chosen algorithm and returns the
// set of states satisfying it. f must already be closed (package formula's
// Close, or an equivalent external producer).
func Check(m *lts.LTS, f *formula.Formula, alg Algorithm) (lts.StateSet, error) {
	if m == nil {
		return nil, ErrNilMachine
	}
	if f == nil || f.Root == nil {
		return nil, ErrNilFormula
	}

	w := &evaluator{machine: m, a: NewValuation()}
	if alg == EmersonLei {
		w.open = formula.ComputeOpen(f)
	}

	return w.eval(f.Root), nil
}
