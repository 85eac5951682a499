package bench_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/parityscope/internal/bench"
	"github.com/katalvlaran/parityscope/internal/gm"
	"github.com/katalvlaran/parityscope/pgsolve"
)

func TestLoadSuiteConfigValidatesAndParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	doc := `version: 1
fixture_globs:
  - "**/*.aut"
mu_fixtures:
  - name: s1
    lts_path: s1.aut
    formula_path: s1.mcf
    algorithms: [naive, emerson-lei]
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := bench.LoadSuiteConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	require.Len(t, cfg.MuFixtures, 1)
	assert.Equal(t, "s1", cfg.MuFixtures[0].Name)
}

func TestLoadSuiteConfigRejectsSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	doc := `mu_fixtures:
  - name: missing-required-fields
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := bench.LoadSuiteConfig(path, true)
	assert.Error(t, err)
}

func TestDiscoverFixturesFindsGlobMatches(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.aut"), []byte("des (0,0,1)\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.aut"), []byte("des (0,0,1)\n"), 0o644))

	hits, err := bench.DiscoverFixtures(dir, []string{"**/*.aut"})
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestRunGameFixtureProducesResult(t *testing.T) {
	doc := `parity 1;
0 0 0 0,1;
1 1 0 1;
`
	g, err := gm.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	result, err := bench.RunGameFixture(logger, "tiny", g, pgsolve.InputOrder, pgsolve.StrategyParams{})
	require.NoError(t, err)
	assert.Equal(t, "tiny", result.FixtureName)
	assert.NotEmpty(t, result.RunID)
}
