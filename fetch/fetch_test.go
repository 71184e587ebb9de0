package fetch

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/datasets/config"
	"github.com/teranos/datasets/errors"
	dstest "github.com/teranos/datasets/internal/testing"
)

const irisCSV = "sepal_length_in_cm,class\n5.1,Iris-setosa\n"

func TestFetchLocalFile(t *testing.T) {
	src := dstest.WriteFile(t, "mirror/iris.csv", irisCSV)
	dst := filepath.Join(t.TempDir(), "raw_data", "iris.csv")

	f := &Fetcher{}
	res, err := f.FetchOne(context.Background(), Target{Name: "iris", URL: src, Path: dst})
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, int64(len(irisCSV)), res.Bytes)
	assert.Equal(t, irisCSV, dstest.ReadFile(t, dst))

	info, err := os.Lstat(dst)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "fetched source must be a copy, not a link")

	// Temp directories are cleaned up.
	entries, err := os.ReadDir(filepath.Dir(dst))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFetchSkipsExisting(t *testing.T) {
	src := dstest.WriteFile(t, "mirror/iris.csv", irisCSV)
	dst := dstest.WriteFile(t, "raw_data/iris.csv", "local edits\n")

	res, err := (&Fetcher{}).FetchOne(context.Background(), Target{Name: "iris", URL: src, Path: dst})
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, "local edits\n", dstest.ReadFile(t, dst))

	res, err = (&Fetcher{Force: true}).FetchOne(context.Background(), Target{Name: "iris", URL: src, Path: dst})
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, irisCSV, dstest.ReadFile(t, dst))
}

func TestFetchMissingSource(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "iris.csv")
	missing := filepath.Join(t.TempDir(), "nope.csv")

	_, err := (&Fetcher{}).FetchOne(context.Background(), Target{Name: "iris", URL: missing, Path: dst})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset iris")
	assert.NoFileExists(t, dst)
}

func TestFetchStopsAtFirstFailure(t *testing.T) {
	src := dstest.WriteFile(t, "mirror/iris.csv", irisCSV)
	dir := t.TempDir()

	targets := []Target{
		{Name: "iris", URL: src, Path: filepath.Join(dir, "iris.csv")},
		{Name: "broken", URL: filepath.Join(dir, "missing.csv"), Path: filepath.Join(dir, "broken.csv")},
		{Name: "after", URL: src, Path: filepath.Join(dir, "after.csv")},
	}
	results, err := (&Fetcher{}).Fetch(context.Background(), targets)
	require.Error(t, err)
	assert.Len(t, results, 1)
	assert.NoFileExists(t, filepath.Join(dir, "after.csv"))
}

func TestTargets(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{
		Path: filepath.Join(root, config.FileName),
		Datasets: []config.DatasetConfig{
			{Name: "iris", URL: "https://example.com/iris.csv", Source: "raw_data/iris.csv"},
			{Name: "local", Source: "raw_data/local.csv"},
		},
	}

	targets, err := Targets(cfg, cfg.Datasets[:1])
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, filepath.Join(root, "raw_data", "iris.csv"), targets[0].Path)
	assert.Equal(t, "https://example.com/iris.csv", targets[0].URL)

	_, err = Targets(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "local")
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestFetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, irisCSV)
	}))
	defer srv.Close()

	t.Run("private address blocked", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "iris.csv")
		_, err := (&Fetcher{}).FetchOne(context.Background(), Target{Name: "iris", URL: srv.URL + "/iris.csv", Path: dst})
		require.Error(t, err)
		assert.NoFileExists(t, dst)
	})

	t.Run("private address allowed", func(t *testing.T) {
		dst := filepath.Join(t.TempDir(), "iris.csv")
		res, err := (&Fetcher{AllowPrivate: true}).FetchOne(context.Background(), Target{Name: "iris", URL: srv.URL + "/iris.csv", Path: dst})
		require.NoError(t, err)
		assert.Equal(t, int64(len(irisCSV)), res.Bytes)
		assert.Equal(t, irisCSV, dstest.ReadFile(t, dst))
	})
}
