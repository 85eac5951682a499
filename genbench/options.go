package genbench

import "math/rand"

// config collects the resolved generation parameters. Never constructed
// directly by callers; use Option constructors and newConfig.
type config struct {
	rng *rand.Rand

	// LTS parameters.
	states       int
	actions      []string
	edgeDensity  float64 // probability that a (state,action) pair gets outgoing edges

	// Parity-game parameters.
	vertices    int
	maxPriority int
	outDegree   int // fixed out-degree per vertex, clamped to the vertex count
}

// Option customises a generator via functional options.
type Option func(*config)

// WithSeed creates a deterministic RNG from seed. Mutually exclusive in
// effect with WithRand (the later option wins).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG, for callers composing several
// generators off one shared stream.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("genbench: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithStates sets the LTS state count (RandomLTS only).
func WithStates(n int) Option {
	return func(c *config) { c.states = n }
}

// WithActions sets the LTS action-label alphabet (RandomLTS only).
func WithActions(labels ...string) Option {
	return func(c *config) { c.actions = labels }
}

// WithEdgeDensity sets the expected fraction of (state,action) pairs that
// receive at least one outgoing edge (RandomLTS only).
func WithEdgeDensity(d float64) Option {
	return func(c *config) { c.edgeDensity = d }
}

// WithVertices sets the parity-game vertex count (RandomGame only).
func WithVertices(n int) Option {
	return func(c *config) { c.vertices = n }
}

// WithMaxPriority sets the parity-game's highest priority (RandomGame only).
func WithMaxPriority(p int) Option {
	return func(c *config) { c.maxPriority = p }
}

// WithOutDegree sets each vertex's successor-list length (RandomGame only).
func WithOutDegree(k int) Option {
	return func(c *config) { c.outDegree = k }
}

func newConfig(opts ...Option) config {
	c := config{
		states:      8,
		actions:     []string{"a", "b"},
		edgeDensity: 0.5,
		vertices:    8,
		maxPriority: 3,
		outDegree:   2,
	}
	for _, o := range opts {
		o(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(1))
	}
	return c
}
