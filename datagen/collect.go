package datagen

import (
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/teranos/datasets/csvread"
	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/logger"
)

// Table is the materialized content of one dataset: every retained record in
// file order plus the per-row errors that were discarded.
type Table struct {
	Dataset Dataset
	Rows    [][]any
	Dropped []error
	Header  []string
}

// Collect reads ds.Source to the end. Per-row failures are logged and
// counted; a source failure aborts with an error naming the dataset and file.
// In strict mode any dropped row is fatal.
func Collect(ds Dataset) (*Table, error) {
	if err := ds.validate(); err != nil {
		return nil, err
	}
	log := logger.DatasetLogger("datagen", ds.Name)

	r, err := csvread.Open(ds.Source, ds.Schema)
	if err != nil {
		return nil, sourceFailure(ds, err)
	}
	defer r.Close()

	t := &Table{Dataset: ds, Header: r.Header()}

	if logger.ShouldOutput(logger.Verbosity, logger.OutputReaderFlow) {
		log.Debugw("skipping header row", "header", strings.Join(t.Header, ","))
	}
	if err := checkHeader(ds, t.Header); err != nil {
		return nil, err
	}

	for rec, err := range r.All() {
		switch {
		case err == nil:
			t.Rows = append(t.Rows, rec.Values)
		case errors.IsRowError(err):
			t.Dropped = append(t.Dropped, err)
			log.Warnw("dropped row", logger.FieldLine, rec.Line, logger.FieldError, err)
		default:
			return nil, sourceFailure(ds, err)
		}
	}

	if len(t.Dropped) > 0 {
		log.Warnw("rows dropped",
			logger.FieldFile, ds.label(),
			logger.FieldDropped, len(t.Dropped),
			logger.FieldRetained, len(t.Rows))

		if ds.Strict {
			err := errors.Wrapf(errors.ErrRowsDropped, "dataset %s: %d of %d rows in %s failed to parse",
				ds.Name, len(t.Dropped), len(t.Dropped)+len(t.Rows), ds.label())
			err = errors.WithDetail(err, t.Dropped[0].Error())
			return nil, errors.WithHint(err, "fix the listed rows or disable strict mode for this dataset")
		}
	}

	if logger.ShouldOutput(logger.Verbosity, logger.OutputDataDump) {
		log.Debugw("retained rows", "dump", spew.Sdump(t.Rows))
	}
	return t, nil
}

// checkHeader compares the skipped header with the schema. Mismatches are
// warnings unless the dataset asks for a strict header.
func checkHeader(ds Dataset, header []string) error {
	if header == nil {
		return nil
	}
	mismatches := ds.Schema.HeaderMismatches(header)
	if len(mismatches) == 0 {
		return nil
	}

	if ds.StrictHeader {
		err := errors.Wrapf(errors.ErrHeaderMismatch, "dataset %s: header of %s does not match schema", ds.Name, ds.label())
		return errors.WithDetail(err, strings.Join(mismatches, "\n"))
	}

	log := logger.DatasetLogger("datagen", ds.Name)
	for _, m := range mismatches {
		log.Warnw("header does not match schema", logger.FieldFile, ds.label(), "mismatch", m)
	}
	return nil
}

func sourceFailure(ds Dataset, err error) error {
	err = errors.Wrapf(err, "dataset %s: %s", ds.Name, ds.label())
	if errors.Is(err, os.ErrNotExist) {
		err = errors.WithHint(err, "run 'datagen fetch "+ds.Name+"' to download the raw data")
	}
	return err
}
