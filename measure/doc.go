// Package measure implements the small-progress-measures lattice:
// M = {Top} union N^d, ordered lexicographically up to an index k with
// Top as the greatest element everywhere. It exposes the comparisons
// <_k/<=_k, the Prog function, and min/max reduction over a set of
// measures (used by package pgsolve's Lift_v).
//
// A Measure is a small fixed-length value; d (= 1 + max priority) is
// known at construction time for a whole solve, so every non-Top Measure
// in one run shares the same length d. The tuple is held in an []int
// slice allocated per Measure.
package measure
