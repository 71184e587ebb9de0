// Package errors provides error handling for datagen and the bundled datasets.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Wrap with context
//	if err := reader.Close(); err != nil {
//	    return errors.Wrap(err, "failed to close source")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'datagen fetch' to download the raw data")
//
//	// Check errors
//	if errors.Is(err, errors.ErrColumnNotFound) {
//	    // row was too short for the schema
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// AssertionFailedf reports a broken internal invariant.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors. Typed errors in csvread and datagen match these via Is,
// so callers can branch on the category without importing the concrete type.
var (
	// ErrSourceRead indicates the raw CSV could not be opened, read or tokenized
	ErrSourceRead = New("source read failure")

	// ErrColumnNotFound indicates a record had fewer fields than the schema
	ErrColumnNotFound = New("column not found")

	// ErrInvalidColumnValue indicates a cell could not be converted to its declared type
	ErrInvalidColumnValue = New("invalid column value")

	// ErrRowsDropped indicates a strict dataset lost rows to per-row errors
	ErrRowsDropped = New("rows dropped")

	// ErrHeaderMismatch indicates header names disagree with the schema
	ErrHeaderMismatch = New("header mismatch")

	// ErrStale indicates a committed artifact differs from a fresh render
	ErrStale = New("artifact out of date")

	// ErrInvalidConfig indicates the dataset configuration is unusable
	ErrInvalidConfig = New("invalid configuration")
)

// Append combines two errors, either of which may be nil.
// Used to collect independent per-dataset failures without stopping at the first.
func Append(left, right error) error {
	return multierr.Append(left, right)
}

// Errors flattens an error produced by Append back into its parts.
func Errors(err error) []error {
	return multierr.Errors(err)
}

// IsRowError reports whether err is a per-row failure that only invalidates
// a single record (as opposed to a source failure that ends the sequence).
func IsRowError(err error) bool {
	return err != nil && IsAny(err, ErrColumnNotFound, ErrInvalidColumnValue)
}

// IsSourceError reports whether err is or wraps ErrSourceRead
func IsSourceError(err error) bool {
	return err != nil && Is(err, ErrSourceRead)
}
