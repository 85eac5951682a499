package genbench

import "github.com/katalvlaran/parityscope/lts"

// RandomLTS builds a random LTS with the given options. For every state
// and action label, with probability WithEdgeDensity the state gets one
// or two outgoing edges with that label, each to a uniformly chosen
// target (the state itself included; a repeated target is deduplicated).
// The initial state is always 0. Deterministic given the same seed and
// options.
func RandomLTS(opts ...Option) (*lts.LTS, error) {
	cfg := newConfig(opts...)

	b, err := lts.NewBuilder(cfg.states, 0)
	if err != nil {
		return nil, err
	}

	for s := 0; s < cfg.states; s++ {
		for _, a := range cfg.actions {
			if cfg.rng.Float64() >= cfg.edgeDensity {
				continue
			}
			// At least one edge, possibly more, for richer branching.
			edges := 1 + cfg.rng.Intn(2)
			for i := 0; i < edges; i++ {
				t := cfg.rng.Intn(cfg.states)
				if err := b.AddTransition(s, a, t); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Build()
}
