package genbench

import "github.com/katalvlaran/parityscope/pgame"

// RandomGame builds a random parity game with the given options. Every
// vertex gets a priority uniformly in [0,maxPriority], an owner chosen by
// coin flip, and exactly min(outDegree, vertices) distinct successors
// chosen uniformly (repeated draws are redrawn). An outDegree below one
// leaves a vertex without successors, and RandomGame returns the
// builder's dead-end error.
// Deterministic given the same seed and options.
func RandomGame(opts ...Option) (*pgame.Game, error) {
	cfg := newConfig(opts...)

	b, err := pgame.NewBuilder(cfg.vertices)
	if err != nil {
		return nil, err
	}

	for v := 0; v < cfg.vertices; v++ {
		priority := cfg.rng.Intn(cfg.maxPriority + 1)
		owner := pgame.Even
		if cfg.rng.Intn(2) == 1 {
			owner = pgame.Odd
		}

		degree := cfg.outDegree
		if degree > cfg.vertices {
			degree = cfg.vertices
		}
		seen := make(map[int]struct{}, degree)
		succ := make([]int, 0, degree)
		for len(succ) < degree {
			t := cfg.rng.Intn(cfg.vertices)
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			succ = append(succ, t)
		}

		if err := b.AddVertex(v, priority, owner, succ); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
