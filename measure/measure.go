package measure

// Measure is a single entry of a progress measure: either Top (the
// greatest element, witnessing an Odd win) or a tuple of d non-negative
// integers with a zero at every even index. The zero value is NOT a
// valid Measure; use Zero or TopMeasure to construct one.
type Measure struct {
	vec []int
	top bool
}

// Zero returns the all-zero measure of dimension d, the initial value of
// every progress-measure entry.
func Zero(d int) Measure {
	return Measure{vec: make([]int, d)}
}

// TopMeasure returns the greatest element of M, independent of dimension.
func TopMeasure() Measure {
	return Measure{top: true}
}

// FromInts builds a non-Top measure from an explicit tuple, copying vec so
// the caller's slice may be reused or mutated afterward.
func FromInts(vec []int) Measure {
	cp := make([]int, len(vec))
	copy(cp, vec)
	return Measure{vec: cp}
}

// IsTop reports whether m is the greatest element.
func (m Measure) IsTop() bool { return m.top }

// Dim returns the tuple length, or 0 for Top (Top has no fixed dimension).
func (m Measure) Dim() int { return len(m.vec) }

// At returns the entry at index i. Panics if m is Top or i is out of
// range; callers never index a Top measure, by construction of Prog/Lift_v.
func (m Measure) At(i int) int { return m.vec[i] }

// Ints returns a copy of the underlying tuple. For Top it returns an
// empty slice.
func (m Measure) Ints() []int {
	out := make([]int, len(m.vec))
	copy(out, m.vec)
	return out
}

// Equal reports whether m and other denote the same element of M.
func (m Measure) Equal(other Measure) bool {
	if m.top != other.top {
		return false
	}
	if m.top {
		return true
	}
	if len(m.vec) != len(other.vec) {
		return false
	}
	for i := range m.vec {
		if m.vec[i] != other.vec[i] {
			return false
		}
	}
	return true
}

// LessThanK reports m <_k other: lexicographic comparison of (m[0..k],
// other[0..k]) with Top strictly greater than any tuple.
func (m Measure) LessThanK(k int, other Measure) bool {
	if other.top && !m.top {
		return true
	}
	if m.top {
		return false // Top is never strictly less than anything
	}
	for i := 0; i <= k; i++ {
		if m.vec[i] != other.vec[i] {
			return m.vec[i] < other.vec[i]
		}
	}
	return false // equal up to k
}

// LessOrEqualK reports m <=_k other.
func (m Measure) LessOrEqualK(k int, other Measure) bool {
	return m.LessThanK(k, other) || m.equalUpToK(k, other)
}

func (m Measure) equalUpToK(k int, other Measure) bool {
	if m.top != other.top {
		return false
	}
	if m.top {
		return true
	}
	for i := 0; i <= k; i++ {
		if m.vec[i] != other.vec[i] {
			return false
		}
	}
	return true
}

// Max returns the greater of m and other under the full lexicographic
// order (k = d-1), breaking ties by returning m. Used by Lift_v to
// enforce monotonicity: rho(v) <- max(rho(v), X).
func Max(m, other Measure) Measure {
	if m.top || other.top {
		if m.top {
			return m
		}
		return other
	}
	if other.LessThanK(len(other.vec)-1, m) || m.equalUpToK(len(m.vec)-1, other) {
		return m
	}
	return other
}
