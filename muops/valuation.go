package muops

import "github.com/katalvlaran/parityscope/lts"

// Valuation maps a recursion-variable name to its current state-set
// approximant. A variable with no entry reads as the empty set; Get
// materialises that lazily rather than requiring every formula variable
// to be pre-seeded.
type Valuation map[string]lts.StateSet

// NewValuation returns an empty valuation.
func NewValuation() Valuation {
	return make(Valuation)
}

// Get returns v's current approximant, or the empty set if v has never
// been assigned.
func (a Valuation) Get(v string) lts.StateSet {
	if s, ok := a[v]; ok {
		return s
	}
	return lts.NewStateSet()
}
