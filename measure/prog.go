package measure

// Prog computes Prog(rho, v, w), given p = priority(v) and mw = rho(w).
// It returns the least m in M such that, if p is even, m >=_p mw, and if
// p is odd, m >_p mw (or mw is Top, forcing m = Top).
//
// Concretely: take mw's tuple, zero every entry at an index > p. If p is
// even, that tuple is the answer. If p is odd, attempt to increment it
// lexicographically at odd indices <= p, rightmost first, carrying
// leftward; an odd index already at d-1 overflows and carries further
// left; if every odd index in [0,p] overflows, the answer is Top.
func Prog(mw Measure, p int) Measure {
	if mw.IsTop() {
		return TopMeasure()
	}

	d := mw.Dim()
	r := make([]int, d)
	copy(r, mw.vec)
	for i := p + 1; i < d; i++ {
		r[i] = 0
	}

	if p%2 == 0 {
		return Measure{vec: r}
	}

	for i := p; i >= 0; i-- {
		if i%2 != 1 {
			continue
		}
		if r[i] < d-1 {
			r[i]++
			return Measure{vec: r}
		}
		r[i] = 0 // overflow: carry to the next odd index leftward
	}

	return TopMeasure()
}

// Min returns the least element of ms under the full lexicographic order,
// Top largest. Ties are broken by returning the first minimal element
// encountered in ms's order (a fold with strict "<" as the replace test).
// Panics if ms is empty; Lift_v never calls Min/MaxOf on an empty
// successor list because pgame.Vertex.Succ is non-empty by construction.
func Min(ms []Measure) Measure {
	best := ms[0]
	for _, m := range ms[1:] {
		if compareFull(m, best) < 0 {
			best = m
		}
	}
	return best
}

// MaxOf reduces ms to its greatest element under the full lexicographic
// order, same tie-breaking rule as Min.
func MaxOf(ms []Measure) Measure {
	best := ms[0]
	for _, m := range ms[1:] {
		if compareFull(m, best) > 0 {
			best = m
		}
	}
	return best
}

// compareFull returns -1, 0, or 1 comparing a and b under the full
// lexicographic order (Top greatest).
func compareFull(a, b Measure) int {
	if a.top && b.top {
		return 0
	}
	if a.top {
		return 1
	}
	if b.top {
		return -1
	}
	for i := range a.vec {
		if a.vec[i] != b.vec[i] {
			if a.vec[i] < b.vec[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
