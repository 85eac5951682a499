// Package liftstrategy implements the pluggable vertex-scheduling
// strategies for small-progress-measures lifting: input order, random
// permutation, least- and most-successors, predecessor queue, and focus
// list. Every strategy satisfies the Strategy interface; package
// pgsolve's lifting loop is strategy-agnostic and owns the progress
// measure itself — a strategy owns only scheduling state.
package liftstrategy
