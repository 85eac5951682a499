// Package pgsolve implements the small-progress-measures engine: Lift_v
// and the fixpoint lifting loop it drives. It allocates one mutable
// progress measure and one mutable strategy per solve, both dropped at
// return; package pgame and package measure supply the immutable game
// and the ordered value type.
package pgsolve
