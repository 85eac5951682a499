// Package formula defines the modal μ-calculus formula AST consumed by
// package muops, and the static analyses run over it: well-formedness
// closing (filling in each Fix node's enclosing-binder polarity), the
// OPEN(x) same-polarity free-variable analysis the Emerson-Lei evaluator
// needs, and nesting/alternation/dependent-alternation depth statistics.
//
// A Formula is a tagged variant (Node.Kind) rather than a Go interface
// hierarchy: one flat struct with a discriminant field, dispatched on by
// a single recursive evaluator. Formulas are assumed to be in positive
// normal form: there is no negation constructor, so evaluation (package
// muops) is monotone in every free variable by construction.
//
// Concrete surface syntax — true, false, identifiers, g1 && g2, g1 || g2,
// [a]g, <a>g, mu X . g, nu X . g — is the concern of package internal/mcf;
// this package only models the AST those parsers hand to the evaluator.
package formula
