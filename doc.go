// Package parityscope is a formal-verification toolkit: a mu-calculus
// model checker and a parity-game solver over finite labelled transition
// systems, sharing one design (immutable graph, mutable valuation
// indexed by node id, iterate-to-stable loop).
//
// Two cores, each with a naive-vs-refined pair of algorithms:
//
//	lts/ + formula/ + muops/   mu-calculus model checking
//	  lts        immutable labelled transition system
//	  formula    mu-calculus formula AST, well-formedness, OPEN(x), stats
//	  muops      naive and Emerson-Lei fixed-point evaluators
//
//	pgame/ + measure/ + liftstrategy/ + pgsolve/   parity-game solving
//	  pgame         parity-game vertex/graph data model
//	  measure       the tuple-or-Top progress-measure lattice and Prog
//	  liftstrategy  six pluggable vertex-scheduling strategies
//	  pgsolve       Lift_v and the fixpoint lifting loop
//
// External file formats are handled by internal/aut (.aut), internal/mcf
// (.mcf), and internal/gm (.gm parity games); none of the core packages
// above parse text. cmd/mucheck and cmd/pgsolve are thin driver CLIs;
// internal/bench is the benchmark harness tying fixtures, algorithms, and
// strategies together for repeatable sweeps. genbench generates
// deterministic random fixtures for both.
//
//	go get github.com/katalvlaran/parityscope
package parityscope
