package liftstrategy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parityscope/liftstrategy"
	"github.com/katalvlaran/parityscope/pgame"
)

func drainPass(t *testing.T, s liftstrategy.Strategy) []int {
	t.Helper()
	var out []int
	for {
		id, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, id)
		s.NotifyLifted(id, false)
	}
}

func TestInputOrderPassBoundary(t *testing.T) {
	s := liftstrategy.NewInputOrder(4)
	assert.Equal(t, []int{0, 1, 2, 3}, drainPass(t, s))
	assert.Equal(t, []int{0, 1, 2, 3}, drainPass(t, s))
}

func TestRandomPermutationDeterministicGivenSeed(t *testing.T) {
	a := liftstrategy.NewRandomPermutation(6, 42)
	b := liftstrategy.NewRandomPermutation(6, 42)
	assert.Equal(t, drainPass(t, a), drainPass(t, b))
}

func threeVertexGame(t *testing.T) *pgame.Game {
	t.Helper()
	b, err := pgame.NewBuilder(3)
	require.NoError(t, err)
	require.NoError(t, b.AddVertex(0, 0, pgame.Even, []int{0, 1}))
	require.NoError(t, b.AddVertex(1, 0, pgame.Even, []int{2}))
	require.NoError(t, b.AddVertex(2, 0, pgame.Even, []int{2}))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestLeastAndMostSuccessorsStableByOutDegree(t *testing.T) {
	g := threeVertexGame(t)
	least := drainPass(t, liftstrategy.NewLeastSuccessors(g))
	most := drainPass(t, liftstrategy.NewMostSuccessors(g))
	// Out-degrees of ids 0,1,2 are 2,1,1; the tied ids 1,2 keep input order.
	assert.Equal(t, []int{1, 2, 0}, least)
	assert.Equal(t, []int{0, 1, 2}, most)
}

func TestPredecessorQueueSeedsAllThenEnqueuesOnUpdate(t *testing.T) {
	g := threeVertexGame(t)
	top := make([]bool, g.NumVertices())
	s := liftstrategy.NewPredecessorQueue(g, func(id int) bool { return top[id] })

	first := drainPass(t, s)
	assert.ElementsMatch(t, []int{0, 1, 2}, first)

	// queue now empty; a notify for vertex 1 updated should enqueue vertex 0
	// (0 -> 1 is an edge), re-arming the queue for a new pass.
	s.NotifyLifted(1, true)
	id, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestFocusListEntersFocusPhaseAtScanEnd(t *testing.T) {
	s := liftstrategy.NewFocusList(3, 8, 8)

	// Scan: only vertex 1 lifts successfully.
	var scan []int
	for i := 0; i < 3; i++ {
		id, ok := s.Next()
		require.True(t, ok)
		scan = append(scan, id)
		s.NotifyLifted(id, id == 1)
	}
	assert.Equal(t, []int{0, 1, 2}, scan)

	// Scan complete with one success below maxSize: the focus phase takes
	// over and round-robins vertex 1 until its credit is spent (2 -> 1 ->
	// 0 -> dropped after three failed lifts).
	for i := 0; i < 3; i++ {
		id, ok := s.Next()
		require.True(t, ok)
		assert.Equal(t, 1, id)
		s.NotifyLifted(id, false)
	}

	// Focus list empty again: back to a scan, which is dry and ends the pass.
	var rescan []int
	for {
		id, ok := s.Next()
		if !ok {
			break
		}
		rescan = append(rescan, id)
		s.NotifyLifted(id, false)
	}
	assert.Equal(t, []int{0, 1, 2}, rescan)
}

func TestFocusListGlobalPassBoundaryOnDryScan(t *testing.T) {
	s := liftstrategy.NewFocusList(3, 8, 8)
	// Every lift fails: one full scan with zero successes ends the pass.
	var seen []int
	for {
		id, ok := s.Next()
		if !ok {
			break
		}
		seen = append(seen, id)
		s.NotifyLifted(id, false)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}
