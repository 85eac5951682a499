package bench

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/parityscope/formula"
	"github.com/katalvlaran/parityscope/lts"
	"github.com/katalvlaran/parityscope/muops"
	"github.com/katalvlaran/parityscope/pgame"
	"github.com/katalvlaran/parityscope/pgsolve"
)

// RunMuFixture times one muops.Check call and logs the outcome via
// logger, returning a MuResult tagged with a fresh run id.
func RunMuFixture(logger *zap.Logger, name string, m *lts.LTS, f *formula.Formula, alg muops.Algorithm) (MuResult, error) {
	runID, err := newRunID()
	if err != nil {
		return MuResult{}, err
	}

	start := time.Now()
	states, err := muops.Check(m, f, alg)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("mu-calculus check failed",
			zap.String("run_id", runID),
			zap.String("fixture", name),
			zap.String("algorithm", alg.String()),
			zap.Error(err),
		)
		return MuResult{}, err
	}

	result := MuResult{
		RunID:            runID,
		FixtureName:      name,
		Algorithm:        alg.String(),
		SatisfyingStates: len(states),
		Elapsed:          elapsed,
	}
	logger.Info("mu-calculus check complete",
		zap.String("run_id", result.RunID),
		zap.String("fixture", result.FixtureName),
		zap.String("algorithm", result.Algorithm),
		zap.Int("satisfying_states", result.SatisfyingStates),
		zap.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}

// RunGameFixture times one pgsolve.Solve call and logs the outcome via
// logger, returning a GameResult tagged with a fresh run id.
func RunGameFixture(logger *zap.Logger, name string, g *pgame.Game, kind pgsolve.StrategyKind, params pgsolve.StrategyParams) (GameResult, error) {
	runID, err := newRunID()
	if err != nil {
		return GameResult{}, err
	}

	start := time.Now()
	rho, err := pgsolve.Solve(g, kind, params)
	elapsed := time.Since(start)
	if err != nil {
		logger.Error("parity-game solve failed",
			zap.String("run_id", runID),
			zap.String("fixture", name),
			zap.String("strategy", kind.String()),
			zap.Error(err),
		)
		return GameResult{}, err
	}

	result := GameResult{
		RunID:            runID,
		FixtureName:      name,
		Strategy:         kind.String(),
		NumVertices:      g.NumVertices(),
		WinningEvenCount: len(rho.WinningRegionEven()),
		Elapsed:          elapsed,
	}
	logger.Info("parity-game solve complete",
		zap.String("run_id", result.RunID),
		zap.String("fixture", result.FixtureName),
		zap.String("strategy", result.Strategy),
		zap.Int("num_vertices", result.NumVertices),
		zap.Int("winning_even_count", result.WinningEvenCount),
		zap.Duration("elapsed", result.Elapsed),
	)

	return result, nil
}
