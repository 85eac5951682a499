// Package muops evaluates a closed modal μ-calculus formula over a labelled
// transition system, producing the set of states that satisfy it.
//
// Two disciplines share one recursive walker: the naive evaluator always
// reinitialises a Fix node's own variable on entry and nothing else; the
// Emerson-Lei evaluator additionally reinitialises same-polarity variables
// that formula.ComputeOpen marks open in the entered Fix, but only when the
// Fix's own polarity differs from its enclosing binder's. Both converge to
// the same answer (package formula guarantees well-formedness and fills in
// Enclosing; package lts supplies the pre_exists/pre_forall primitives the
// walker calls at Diamond/Box nodes).
package muops
