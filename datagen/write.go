package datagen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/teranos/datasets/errors"
)

// writeArtifact replaces path with data unless it already holds exactly
// data. The new content goes to a temp file in the same directory first and
// is renamed into place, so readers never see a partial artifact.
func writeArtifact(path string, data []byte) (changed bool, err error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, errors.Wrapf(err, "failed to create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".datagen-*.go.tmp")
	if err != nil {
		return false, errors.Wrapf(err, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return false, errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err = tmp.Close(); err != nil {
		return false, errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return false, errors.Wrapf(err, "failed to chmod %s", tmpName)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return false, errors.Wrapf(err, "failed to move artifact into %s", path)
	}
	return true, nil
}
