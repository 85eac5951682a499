package pgsolve

import (
	"errors"

	"github.com/katalvlaran/parityscope/pgame"
)

// ErrNilGame guards Solve's malformed-input boundary.
var ErrNilGame = errors.New("pgsolve: nil game")

// Solve is the solve(game, strategy) entry point: it builds the requested
// strategy over g, allocates g's progress measure, and runs the fixpoint
// lifting loop until one full pass of the strategy yields no update. Both
// the measure and the strategy are scoped to this call and dropped at
// return.
//
// A strategy kind that needs to observe rho (PredecessorQueue is the only
// one) is wired against the very rho this call mutates — see NewStrategy,
// which returns the two already paired up.
func Solve(g *pgame.Game, kind StrategyKind, params StrategyParams) (ProgressMeasure, error) {
	if g == nil {
		return nil, ErrNilGame
	}

	strat, rho, err := NewStrategy(g, kind, params)
	if err != nil {
		return nil, err
	}

	for {
		anyUpdated := false
		for {
			id, ok := strat.Next()
			if !ok {
				break
			}
			next, updated := liftVertex(g, rho, id)
			rho[id] = next
			strat.NotifyLifted(id, updated)
			if updated {
				anyUpdated = true
			}
		}
		if !anyUpdated {
			break
		}
	}

	return rho, nil
}
