package muops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parityscope/formula"
	"github.com/katalvlaran/parityscope/lts"
	"github.com/katalvlaran/parityscope/muops"
)

func oneStateDeadlock(t *testing.T) *lts.LTS {
	t.Helper()
	b, err := lts.NewBuilder(1, 0)
	require.NoError(t, err)
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

func TestCheck_EmptyLTS_NuBoxIsUniverse(t *testing.T) {
	m := oneStateDeadlock(t)
	f, err := formula.Close(formula.NuFix("X", formula.Box("a", formula.Var("X"))))
	require.NoError(t, err)

	for _, alg := range []muops.Algorithm{muops.Naive, muops.EmersonLei} {
		got, err := muops.Check(m, f, alg)
		require.NoError(t, err)
		assert.Equal(t, lts.NewStateSet(0), got, "algorithm %s", alg)
	}
}

func TestCheck_EmptyLTS_MuDiamondIsEmpty(t *testing.T) {
	m := oneStateDeadlock(t)
	f, err := formula.Close(formula.MuFix("X", formula.Diamond("a", formula.Var("X"))))
	require.NoError(t, err)

	for _, alg := range []muops.Algorithm{muops.Naive, muops.EmersonLei} {
		got, err := muops.Check(m, f, alg)
		require.NoError(t, err)
		assert.Empty(t, got, "algorithm %s", alg)
	}
}

func TestCheck_NuXX_IsUniverse(t *testing.T) {
	m := twoStateChain(t)
	f, err := formula.Close(formula.NuFix("X", formula.Var("X")))
	require.NoError(t, err)

	got, err := muops.Check(m, f, muops.Naive)
	require.NoError(t, err)
	assert.Equal(t, m.AllStates(), got)
}

func TestCheck_MuXX_IsEmpty(t *testing.T) {
	m := twoStateChain(t)
	f, err := formula.Close(formula.MuFix("X", formula.Var("X")))
	require.NoError(t, err)

	got, err := muops.Check(m, f, muops.Naive)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// twoStateChain builds 0 --a--> 1, state 1 a deadlock.
func twoStateChain(t *testing.T) *lts.LTS {
	t.Helper()
	b, err := lts.NewBuilder(2, 0)
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(0, "a", 1))
	m, err := b.Build()
	require.NoError(t, err)
	return m
}

// TestCheck_NaiveAndEmersonLeiAgree exercises an alternating formula
// (reachability under an inevitable eventuality) on a three-state cycle
// and asserts both disciplines return the same answer.
func TestCheck_NaiveAndEmersonLeiAgree(t *testing.T) {
	b, err := lts.NewBuilder(3, 0)
	require.NoError(t, err)
	require.NoError(t, b.AddTransition(0, "a", 1))
	require.NoError(t, b.AddTransition(1, "a", 2))
	require.NoError(t, b.AddTransition(2, "a", 0))
	m, err := b.Build()
	require.NoError(t, err)

	// mu Y . (nu X . (<a>X && [a]Y)) -- alternation-depth-2 formula.
	inner := formula.NuFix("X", formula.And(
		formula.Diamond("a", formula.Var("X")),
		formula.Box("a", formula.Var("Y")),
	))
	root := formula.MuFix("Y", inner)
	f, err := formula.Close(root)
	require.NoError(t, err)

	naive, err := muops.Check(m, f, muops.Naive)
	require.NoError(t, err)
	el, err := muops.Check(m, f, muops.EmersonLei)
	require.NoError(t, err)

	assert.Equal(t, naive, el)
}

func TestCheck_RejectsNilInputs(t *testing.T) {
	m := oneStateDeadlock(t)
	f, err := formula.Close(formula.True())
	require.NoError(t, err)

	_, err = muops.Check(nil, f, muops.Naive)
	assert.ErrorIs(t, err, muops.ErrNilMachine)

	_, err = muops.Check(m, nil, muops.Naive)
	assert.ErrorIs(t, err, muops.ErrNilFormula)
}
