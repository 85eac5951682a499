package measure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/parityscope/measure"
)

// Even priority: d=4, rho(w)=(0,2,0,0), p(v)=0 -> (0,0,0,0).
func TestProgEvenPriorityZerosTail(t *testing.T) {
	mw := measure.FromInts([]int{0, 2, 0, 0})
	got := measure.Prog(mw, 0)
	assert.False(t, got.IsTop())
	assert.Equal(t, []int{0, 0, 0, 0}, got.Ints())
}

// Carry overflow: d=3, rho(w)=(0,2,0), p(v)=1 (odd), the only odd index
// <= 1 is already at d-1=2: Prog = Top.
func TestProgCarryOverflowToTop(t *testing.T) {
	mw := measure.FromInts([]int{0, 2, 0})
	got := measure.Prog(mw, 1)
	assert.True(t, got.IsTop())
}

// Odd-priority increment: d=4, rho(w)=(0,2,0,0), p(v)=3 (odd): (0,2,0,1).
func TestProgOddPriorityIncrement(t *testing.T) {
	mw := measure.FromInts([]int{0, 2, 0, 0})
	got := measure.Prog(mw, 3)
	assert.False(t, got.IsTop())
	assert.Equal(t, []int{0, 2, 0, 1}, got.Ints())
}

func TestProgTopPropagates(t *testing.T) {
	got := measure.Prog(measure.TopMeasure(), 2)
	assert.True(t, got.IsTop())
}

// Prog(rho, v, w) is monotone in rho(w) under <=_p(v).
func TestProgMonotone(t *testing.T) {
	lo := measure.FromInts([]int{0, 1, 0, 0})
	hi := measure.FromInts([]int{0, 2, 0, 0})
	assert.True(t, lo.LessOrEqualK(1, hi))

	p := 1
	progLo := measure.Prog(lo, p)
	progHi := measure.Prog(hi, p)
	assert.True(t, progLo.LessOrEqualK(p, progHi))
}

func TestMinMaxTieBreakFirstFound(t *testing.T) {
	a := measure.FromInts([]int{0, 0})
	b := measure.FromInts([]int{0, 0})
	c := measure.FromInts([]int{0, 2})

	min := measure.Min([]measure.Measure{a, c, b})
	assert.True(t, min.Equal(a)) // first of the two equal minima

	max := measure.MaxOf([]measure.Measure{a, c, b})
	assert.True(t, max.Equal(c))
}

func TestMaxIsMonotoneAndIdempotent(t *testing.T) {
	zero := measure.Zero(3)
	hi := measure.FromInts([]int{0, 1, 0})
	assert.True(t, measure.Max(zero, hi).Equal(hi))
	assert.True(t, measure.Max(hi, hi).Equal(hi))
}

func TestTopIsGreatestUnderLessThanK(t *testing.T) {
	top := measure.TopMeasure()
	z := measure.Zero(2)
	assert.True(t, z.LessThanK(1, top))
	assert.False(t, top.LessThanK(1, z))
}
