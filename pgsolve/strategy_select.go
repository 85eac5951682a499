package pgsolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parityscope/liftstrategy"
	"github.com/katalvlaran/parityscope/pgame"
)

// StrategyKind names one of the six lifting strategies Solve selects
// between.
type StrategyKind int

const (
	InputOrder StrategyKind = iota
	RandomPermutation
	LeastSuccessors
	MostSuccessors
	PredecessorQueue
	FocusList
)

// String renders the strategy name the way a driver CLI flag would.
func (k StrategyKind) String() string {
	switch k {
	case InputOrder:
		return "input-order"
	case RandomPermutation:
		return "random"
	case LeastSuccessors:
		return "least-successors"
	case MostSuccessors:
		return "most-successors"
	case PredecessorQueue:
		return "predecessor-queue"
	case FocusList:
		return "focus-list"
	default:
		return "unknown"
	}
}

// ErrUnknownStrategy is returned by NewStrategy for an unrecognised kind.
var ErrUnknownStrategy = errors.New("pgsolve: unknown lifting strategy")

// StrategyParams carries the parameters strategies beyond the
// parameterless ones need: Seed for RandomPermutation, FocusMaxSize and
// FocusMaxAttempts for FocusList.
type StrategyParams struct {
	Seed             int64
	FocusMaxSize     int
	FocusMaxAttempts int
}

// NewStrategy builds the liftstrategy.Strategy for kind over g, wiring in
// the progress-measure-aware callback PredecessorQueue needs without
// handing the strategy the whole mutable rho: it
// only ever asks "is v currently Top?", answered by allocating rho here
// and sharing that single slice by reference with both the strategy and
// Solve's own lifting loop.
func NewStrategy(g *pgame.Game, kind StrategyKind, params StrategyParams) (liftstrategy.Strategy, ProgressMeasure, error) {
	if g == nil {
		return nil, nil, ErrNilGame
	}

	rho := newProgressMeasure(g)

	switch kind {
	case InputOrder:
		return liftstrategy.NewInputOrder(g.NumVertices()), rho, nil
	case RandomPermutation:
		return liftstrategy.NewRandomPermutation(g.NumVertices(), params.Seed), rho, nil
	case LeastSuccessors:
		return liftstrategy.NewLeastSuccessors(g), rho, nil
	case MostSuccessors:
		return liftstrategy.NewMostSuccessors(g), rho, nil
	case PredecessorQueue:
		s := liftstrategy.NewPredecessorQueue(g, func(id int) bool { return rho[id].IsTop() })
		return s, rho, nil
	case FocusList:
		size, attempts := params.FocusMaxSize, params.FocusMaxAttempts
		if size <= 0 {
			size = g.NumVertices()
		}
		if attempts <= 0 {
			attempts = g.NumVertices()
		}
		return liftstrategy.NewFocusList(g.NumVertices(), size, attempts), rho, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, kind)
	}
}
