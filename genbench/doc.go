// Package genbench generates deterministic random LTS and parity-game
// fixtures for tests and the benchmark harness (package internal/bench).
// Functional options resolve into an immutable config before generation
// starts, and every stochastic constructor is seeded through
// WithSeed/WithRand so that the same options and seed reproduce the same
// fixture.
package genbench
