package pgame_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parityscope/pgame"
)

func sevenVertexGame(t *testing.T) *pgame.Game {
	t.Helper()

	b, err := pgame.NewBuilder(7)
	require.NoError(t, err)

	// X, X', Y, Y', Z, Z', W with priorities 1,1,2,2,3,3,3.
	const (
		X = iota
		Xp
		Y
		Yp
		Z
		Zp
		W
	)
	require.NoError(t, b.AddVertex(X, 1, pgame.Odd, []int{X, Xp}))
	require.NoError(t, b.AddVertex(Xp, 1, pgame.Even, []int{Y, Z}))
	require.NoError(t, b.AddVertex(Y, 2, pgame.Odd, []int{Yp, W}))
	require.NoError(t, b.AddVertex(Yp, 2, pgame.Even, []int{Y, X}))
	require.NoError(t, b.AddVertex(Z, 3, pgame.Even, []int{Zp}))
	require.NoError(t, b.AddVertex(Zp, 3, pgame.Even, []int{Zp}))
	require.NoError(t, b.AddVertex(W, 3, pgame.Even, []int{W, Z}))

	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestBuilderRejectsInvalidSize(t *testing.T) {
	_, err := pgame.NewBuilder(0)
	assert.ErrorIs(t, err, pgame.ErrInvalidSize)
}

func TestBuilderRejectsEmptySuccessors(t *testing.T) {
	b, err := pgame.NewBuilder(1)
	require.NoError(t, err)
	err = b.AddVertex(0, 0, pgame.Even, nil)
	assert.ErrorIs(t, err, pgame.ErrEmptySuccessors)
}

func TestBuilderRejectsOutOfRangeSuccessor(t *testing.T) {
	b, err := pgame.NewBuilder(1)
	require.NoError(t, err)
	err = b.AddVertex(0, 0, pgame.Even, []int{5})
	assert.ErrorIs(t, err, pgame.ErrVertexOutOfRange)
}

func TestBuilderRejectsDuplicateVertex(t *testing.T) {
	b, err := pgame.NewBuilder(1)
	require.NoError(t, err)
	require.NoError(t, b.AddVertex(0, 0, pgame.Even, []int{0}))
	err = b.AddVertex(0, 0, pgame.Even, []int{0})
	assert.ErrorIs(t, err, pgame.ErrDuplicateVertex)
}

func TestBuildRejectsMissingVertex(t *testing.T) {
	b, err := pgame.NewBuilder(2)
	require.NoError(t, err)
	require.NoError(t, b.AddVertex(0, 0, pgame.Even, []int{0}))
	_, err = b.Build()
	assert.True(t, errors.Is(err, pgame.ErrMissingVertex))
}

func TestSevenVertexGameDimension(t *testing.T) {
	g := sevenVertexGame(t)
	assert.Equal(t, 4, g.Dimension()) // d = 1 + maxPriority(3)
	assert.Equal(t, 7, g.NumVertices())
}
