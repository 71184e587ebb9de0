// Package fetch downloads raw dataset sources into the project.
//
// Any source go-getter understands works as a dataset url: http(s), local
// paths, s3:: and gcs:: addresses, and compressed files (decompressed on
// download).
package fetch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	getter "github.com/hashicorp/go-getter"

	"github.com/teranos/datasets/config"
	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/internal/httpclient"
	"github.com/teranos/datasets/logger"
)

// Target is one download: URL into Path.
type Target struct {
	Name string
	URL  string
	Path string
}

// Result describes one fetched target.
type Result struct {
	Name    string
	Path    string
	Bytes   int64
	Skipped bool // Path already existed and Force was not set
}

// Fetcher downloads targets with go-getter.
type Fetcher struct {
	// Force re-downloads sources that already exist.
	Force bool

	// Pwd resolves relative URLs such as "../mirror/iris.csv".
	Pwd string

	// Timeout bounds each http(s) download. Zero means no limit.
	Timeout time.Duration

	// AllowPrivate lets http(s) downloads reach loopback and private
	// addresses, for mirrors on the local network.
	AllowPrivate bool
}

// Targets builds download targets for the selected datasets of cfg. A dataset
// without a url cannot be fetched.
func Targets(cfg *config.Config, selected []config.DatasetConfig) ([]Target, error) {
	if selected == nil {
		selected = cfg.Datasets
	}

	targets := make([]Target, 0, len(selected))
	for _, ds := range selected {
		if ds.URL == "" {
			return nil, errors.WithHint(
				errors.Newf("dataset %s has no url", ds.Name),
				"set url in its [[dataset]] table or place the file at "+ds.Source+" by hand",
			)
		}
		targets = append(targets, Target{Name: ds.Name, URL: ds.URL, Path: cfg.Resolve(ds.Source)})
	}
	return targets, nil
}

// Fetch downloads every target in order and stops at the first failure.
func (f *Fetcher) Fetch(ctx context.Context, targets []Target) ([]Result, error) {
	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		res, err := f.FetchOne(ctx, t)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

// FetchOne downloads a single target. The file is written next to its final
// path and renamed into place, so an interrupted download never leaves a
// truncated source behind.
func (f *Fetcher) FetchOne(ctx context.Context, t Target) (Result, error) {
	res := Result{Name: t.Name, Path: t.Path}
	log := logger.DatasetLogger("fetch", t.Name)

	if !f.Force {
		if info, err := os.Stat(t.Path); err == nil {
			log.Infow("source already present", logger.FieldFile, t.Path)
			res.Skipped = true
			res.Bytes = info.Size()
			return res, nil
		}
	}

	dir := filepath.Dir(t.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, errors.Wrapf(err, "failed to create %s", dir)
	}
	tmpDir, err := os.MkdirTemp(dir, ".fetch-*")
	if err != nil {
		return res, errors.Wrapf(err, "failed to create temp directory in %s", dir)
	}
	defer os.RemoveAll(tmpDir)

	pwd := f.Pwd
	if pwd == "" {
		if pwd, err = os.Getwd(); err != nil {
			return res, errors.Wrap(err, "failed to get working directory")
		}
	}

	dst := filepath.Join(tmpDir, filepath.Base(t.Path))
	web := &getter.HttpGetter{Client: httpclient.New(httpclient.Options{
		Timeout:      f.Timeout,
		AllowPrivate: f.AllowPrivate,
	})}
	client := &getter.Client{
		Ctx:  ctx,
		Src:  t.URL,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
		Getters: map[string]getter.Getter{
			"file":  &getter.FileGetter{Copy: true},
			"http":  web,
			"https": web,
			"s3":    getter.Getters["s3"],
			"gcs":   getter.Getters["gcs"],
		},
	}

	log.Infow("fetching", "url", t.URL, logger.FieldFile, t.Path)
	if err := client.Get(); err != nil {
		return res, errors.Wrapf(err, "dataset %s: failed to fetch %s", t.Name, t.URL)
	}

	info, err := os.Stat(dst)
	if err != nil {
		return res, errors.Wrapf(err, "dataset %s: download produced no file", t.Name)
	}
	if err := os.Rename(dst, t.Path); err != nil {
		return res, errors.Wrapf(err, "dataset %s: failed to move download into %s", t.Name, t.Path)
	}

	res.Bytes = info.Size()
	log.Infow("fetched", logger.FieldFile, t.Path, logger.FieldBytes, res.Bytes)
	return res, nil
}
