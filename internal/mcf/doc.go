// Package mcf parses the .mcf textual μ-calculus formula surface syntax
// into a formula.Formula: "true", "false", identifiers, "g1 && g2",
// "g1 || g2", "[a]g", "<a>g", "mu X . g", "nu X . g", and
// parenthesisation. The parser builds a raw formula.Node tree and hands
// it to formula.Close, which is the single place well-formedness is
// enforced — this package never re-implements that check.
package mcf
