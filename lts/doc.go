// Package lts implements the finite labelled transition system (LTS) that
// the μ-calculus evaluator (see package muops) reads formulas against.
//
// An LTS is the tuple (S, I, →, s0): S = {0,...,N-1}, I is a set of string
// action labels, → ⊆ S x I x S, and s0 in S is the initial state. It is
// built once via a Builder and frozen into an immutable LTS; every read
// method thereafter is lock-free and side-effect-free.
//
// Two read operations matter to the evaluator:
//
//	PreExists(a, F) = { s | exists t: s -a-> t and t in F }   (diamond pre-image)
//	PreForall(a, F) = { s | forall t: s -a-> t implies t in F } (box pre-image)
//
// Both are O(out-degree) per candidate state; PreForall treats a state with
// no outgoing a-edge as vacuously satisfying the universal.
package lts
