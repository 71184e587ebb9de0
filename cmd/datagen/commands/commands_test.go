package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/datasets/errors"
	dstest "github.com/teranos/datasets/internal/testing"
)

const pairConfig = `
[[dataset]]
name = "pairs"
columns = [
  { name = "a", type = "f64" },
  { name = "b", type = "String" },
]
`

// project writes a config and raw CSV into a temp dir and points the global
// --config flag at it.
func project(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dstest.WriteFileIn(t, dir, "datagen.toml", pairConfig)
	dstest.WriteFileIn(t, dir, "raw_data/pairs.csv", "a,b\n1.0,x\n2.5,y\n")

	prev := ConfigPath
	ConfigPath = filepath.Join(dir, "datagen.toml")
	t.Cleanup(func() { ConfigPath = prev })
	return dir
}

func TestGenerateThenCheck(t *testing.T) {
	dir := project(t)

	require.NoError(t, runGenerate(GenerateCmd, nil))
	out := filepath.Join(dir, "datasets", "pairs", "pairs_data.go")
	assert.FileExists(t, out)
	assert.Contains(t, dstest.ReadFile(t, out), "var Data = [2]Pairs{")

	require.NoError(t, runCheck(CheckCmd, nil))

	// Editing the raw data makes the committed file stale.
	dstest.WriteFileIn(t, dir, "raw_data/pairs.csv", "a,b\n1.0,x\n")
	err := runCheck(CheckCmd, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrStale))
}

func TestGenerateUnknownDataset(t *testing.T) {
	project(t)

	err := runGenerate(GenerateCmd, []string{"nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestGenerateMissingSource(t *testing.T) {
	dir := project(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "raw_data", "pairs.csv")))

	err := runGenerate(GenerateCmd, nil)
	require.Error(t, err)
	assert.True(t, errors.IsSourceError(err))
}

func TestFetchWithoutURL(t *testing.T) {
	project(t)

	err := runFetch(FetchCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no url")
}
