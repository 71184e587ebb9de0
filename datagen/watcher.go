package datagen

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/logger"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// ReloadFunc re-reads the configuration and returns the datasets to watch.
type ReloadFunc func() ([]Dataset, error)

// ResultFunc receives the outcome of every regeneration.
type ResultFunc func(results []Result, err error)

// Watcher regenerates datasets when their source CSV changes, and every
// dataset when the config file changes.
type Watcher struct {
	gen        *Generator
	configPath string
	reload     ReloadFunc
	onResult   ResultFunc
	debounce   time.Duration

	watcher  *fsnotify.Watcher
	datasets map[string]Dataset // by absolute source path
	log      *zap.SugaredLogger
}

// NewWatcher watches the source directories of datasets and, if configPath is
// set, the config file. Directories are watched rather than files so that
// editors which replace a file on save are still seen.
func NewWatcher(gen *Generator, datasets []Dataset, configPath string, reload ReloadFunc, onResult ResultFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		gen:        gen,
		configPath: configPath,
		reload:     reload,
		onResult:   onResult,
		debounce:   DefaultDebounce,
		watcher:    fw,
		log:        logger.ComponentLogger("watch"),
	}
	if err := w.track(datasets); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// SetDebounce changes the quiet period before a regeneration starts.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// track replaces the watched dataset set.
func (w *Watcher) track(datasets []Dataset) error {
	w.datasets = make(map[string]Dataset, len(datasets))
	dirs := make(map[string]bool)
	for _, ds := range datasets {
		src := filepath.Clean(ds.Source)
		w.datasets[src] = ds
		dirs[filepath.Dir(src)] = true
	}
	if w.configPath != "" {
		dirs[filepath.Dir(w.configPath)] = true
	}

	watched := make(map[string]bool)
	for _, dir := range w.watcher.WatchList() {
		watched[dir] = true
	}
	for dir := range dirs {
		if watched[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
		w.log.Debugw("watching directory", "dir", dir)
	}
	return nil
}

// Run blocks until ctx is done, regenerating affected datasets after each
// debounced burst of changes.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	pending := make(map[string]Dataset)
	configChanged := false
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			name := filepath.Clean(event.Name)
			switch {
			case w.configPath != "" && name == filepath.Clean(w.configPath):
				configChanged = true
			default:
				ds, ok := w.datasets[name]
				if !ok {
					continue
				}
				pending[name] = ds
			}
			w.log.Infow("change detected", logger.FieldFile, event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("watcher error", logger.FieldError, err)

		case <-timer.C:
			w.flush(ctx, pending, configChanged)
			pending = make(map[string]Dataset)
			configChanged = false
		}
	}
}

func (w *Watcher) flush(ctx context.Context, pending map[string]Dataset, configChanged bool) {
	var batch []Dataset

	if configChanged && w.reload != nil {
		datasets, err := w.reload()
		if err != nil {
			w.log.Errorw("config reload failed, keeping previous datasets", logger.FieldError, err)
		} else if err := w.track(datasets); err != nil {
			w.log.Errorw("failed to watch reloaded datasets", logger.FieldError, err)
		} else {
			batch = datasets
		}
	}
	if batch == nil {
		for _, ds := range pending {
			batch = append(batch, ds)
		}
		sort.Slice(batch, func(i, j int) bool { return batch[i].Name < batch[j].Name })
	}
	if len(batch) == 0 {
		return
	}

	results, err := w.gen.Run(ctx, batch)
	if err != nil {
		w.log.Errorw("regeneration failed", logger.FieldError, err)
	}
	if w.onResult != nil {
		w.onResult(results, err)
	}
}
