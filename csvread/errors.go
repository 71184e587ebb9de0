package csvread

import (
	"fmt"

	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/schema"
)

// SourceError reports that the CSV source could not be opened, read or
// tokenized. It ends the record sequence.
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", errors.ErrSourceRead, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == errors.ErrSourceRead }

// ColumnNotFoundError reports a record with fewer cells than the schema has
// columns. Only the record at Line is affected.
type ColumnNotFoundError struct {
	Line   int
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("line %d: %s %q", e.Line, errors.ErrColumnNotFound, e.Column)
}

func (e *ColumnNotFoundError) Is(target error) bool { return target == errors.ErrColumnNotFound }

// InvalidColumnValueError reports a cell that does not convert to its
// declared column type. Only the record at Line is affected.
type InvalidColumnValueError struct {
	Line   int
	Column string
	Value  string
	Type   schema.ColumnType
	Err    error
}

func (e *InvalidColumnValueError) Error() string {
	return fmt.Sprintf("line %d: %s %q for column %q (%s)", e.Line, errors.ErrInvalidColumnValue, e.Value, e.Column, e.Type)
}

func (e *InvalidColumnValueError) Unwrap() error { return e.Err }

func (e *InvalidColumnValueError) Is(target error) bool {
	return target == errors.ErrInvalidColumnValue
}
