// Package csvread streams the records of a raw CSV file, converting every
// cell to the type declared by a schema.
//
// The first record is a header and is skipped. Each remaining record yields
// either a typed Record or a per-row error naming the line and column.
// Source failures (open, read or CSV syntax) end the sequence.
package csvread

import (
	"encoding/csv"
	"io"
	"iter"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/schema"
)

// Record is one fully converted row. Values[i] has the Go type of column i.
type Record struct {
	Line   int
	Values []any
}

// Reader reads typed records from one CSV file. It is consumed once and is
// not safe for concurrent use.
type Reader struct {
	path   string
	schema schema.Schema

	file   *os.File
	csv    *csv.Reader
	header []string

	// err is terminal: once set every Next returns it.
	err error
}

// Open opens path and reads its header row.
func Open(path string, s schema.Schema) (*Reader, error) {
	if len(s) == 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "open %s: empty schema", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}

	// A UTF-8 byte order mark would otherwise end up in the first header cell.
	cr := csv.NewReader(transform.NewReader(f, unicode.BOMOverride(transform.Nop)))
	cr.FieldsPerRecord = -1

	r := &Reader{
		path:   path,
		schema: s,
		file:   f,
		csv:    cr,
	}

	header, err := cr.Read()
	switch {
	case errors.Is(err, io.EOF):
		r.finish(io.EOF)
	case err != nil:
		r.finish(&SourceError{Path: path, Err: err})
		return nil, r.err
	default:
		r.header = header
	}
	return r, nil
}

// Path returns the file being read.
func (r *Reader) Path() string { return r.path }

// Header returns the skipped header row, or nil for an empty file.
func (r *Reader) Header() []string { return r.header }

// Next returns the next record. Per-row failures return a *ColumnNotFoundError
// or *InvalidColumnValueError and leave the reader usable. At the end of the
// file Next returns io.EOF; after a source failure it keeps returning the
// same *SourceError.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}

	fields, err := r.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.finish(io.EOF)
		} else {
			r.finish(&SourceError{Path: r.path, Err: err})
		}
		return Record{}, r.err
	}

	line, _ := r.csv.FieldPos(0)
	values := make([]any, len(r.schema))
	for i, col := range r.schema {
		if i >= len(fields) {
			return Record{Line: line}, &ColumnNotFoundError{Line: line, Column: col.Name}
		}
		v, err := col.Type.Parse(fields[i])
		if err != nil {
			return Record{Line: line}, &InvalidColumnValueError{
				Line:   line,
				Column: col.Name,
				Value:  fields[i],
				Type:   col.Type,
				Err:    err,
			}
		}
		values[i] = v
	}

	return Record{Line: line, Values: values}, nil
}

// All returns the remaining records as a sequence. The file is closed when
// the sequence ends or the caller breaks out of the loop. A source failure is
// yielded once and ends the sequence.
func (r *Reader) All() iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		defer r.Close()
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || errors.IsSourceError(err) {
				return
			}
		}
	}
}

// Close releases the file. Calling Close more than once is safe.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	if r.err == nil {
		r.err = &SourceError{Path: r.path, Err: os.ErrClosed}
	}
	if err != nil {
		return &SourceError{Path: r.path, Err: err}
	}
	return nil
}

func (r *Reader) finish(err error) {
	r.err = err
	if r.file != nil {
		r.file.Close()
		r.file = nil
	}
}
