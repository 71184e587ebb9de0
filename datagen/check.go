package datagen

import (
	"bytes"
	"os"

	"github.com/teranos/datasets/errors"
)

// CheckStatus is the state of a committed artifact relative to a fresh render
type CheckStatus int

const (
	UpToDate CheckStatus = iota
	Stale
	Missing
)

func (s CheckStatus) String() string {
	switch s {
	case UpToDate:
		return "up to date"
	case Stale:
		return "stale"
	case Missing:
		return "missing"
	default:
		return "unknown"
	}
}

// CheckResult holds the result of checking one dataset
type CheckResult struct {
	Dataset string
	Output  string
	Status  CheckStatus
	Err     error // set when the dataset could not be rendered
}

// Check renders every dataset in memory and compares it with the artifact on
// disk. Nothing is written. The error wraps errors.ErrStale when any artifact
// is stale or missing, and also carries every render failure.
func (g *Generator) Check(datasets []Dataset) ([]CheckResult, error) {
	results := make([]CheckResult, 0, len(datasets))
	var errs error
	var stale []string

	for _, ds := range datasets {
		res := CheckResult{Dataset: ds.Name, Output: ds.Output}

		want, err := g.Render(ds)
		if err != nil {
			res.Err = err
			errs = errors.Append(errs, err)
			results = append(results, res)
			continue
		}

		got, err := os.ReadFile(ds.Output)
		switch {
		case errors.Is(err, os.ErrNotExist):
			res.Status = Missing
		case err != nil:
			res.Err = errors.Wrapf(err, "dataset %s: failed to read artifact", ds.Name)
			errs = errors.Append(errs, res.Err)
		case !bytes.Equal(got, want):
			res.Status = Stale
		}

		if res.Status != UpToDate {
			stale = append(stale, ds.Name)
		}
		results = append(results, res)
	}

	if len(stale) > 0 {
		err := errors.Wrapf(errors.ErrStale, "%d generated dataset(s) out of date: %v", len(stale), stale)
		errs = errors.Append(errs, errors.WithHint(err, "run 'datagen generate' and commit the result"))
	}
	return results, errs
}

// Render collects ds and returns its artifact without writing it.
func (g *Generator) Render(ds Dataset) ([]byte, error) {
	if g.Strict {
		ds.Strict = true
	}
	t, err := Collect(ds)
	if err != nil {
		return nil, err
	}
	return Render(t)
}
