// Package schema describes the shape of a dataset: an ordered list of named,
// typed columns matching the physical column order of the raw CSV body.
package schema

import (
	"fmt"
	"strings"

	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/internal/util"
)

// Column is one (name, declared type) pair.
type Column struct {
	Name string     `mapstructure:"name" toml:"name"`
	Type ColumnType `mapstructure:"type" toml:"type"`
}

// FieldName is the exported Go field name generated for the column.
func (c Column) FieldName() string {
	return util.ToPascalCase(c.Name)
}

// Schema is an ordered column list. Order is positional: column i maps to
// cell i of every CSV record.
type Schema []Column

// Validate checks that the schema can drive both the reader and the generator.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "schema has no columns")
	}

	seenNames := make(map[string]int, len(s))
	seenFields := make(map[string]int, len(s))
	for i, col := range s {
		if strings.TrimSpace(col.Name) == "" {
			return errors.Wrapf(errors.ErrInvalidConfig, "column %d has an empty name", i)
		}
		if !col.Type.Valid() {
			return errors.Wrapf(errors.ErrInvalidConfig, "column %q has no valid type", col.Name)
		}
		if j, dup := seenNames[col.Name]; dup {
			return errors.Wrapf(errors.ErrInvalidConfig, "column %q declared twice (positions %d and %d)", col.Name, j, i)
		}
		seenNames[col.Name] = i

		field := col.FieldName()
		if !util.IsExportedIdentifier(field) {
			return errors.Wrapf(errors.ErrInvalidConfig, "column %q does not map to a Go field name", col.Name)
		}
		if j, dup := seenFields[field]; dup {
			return errors.Wrapf(errors.ErrInvalidConfig,
				"columns %q and %q both map to field %s", s[j].Name, col.Name, field)
		}
		seenFields[field] = i
	}
	return nil
}

// Names returns the column names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, col := range s {
		names[i] = col.Name
	}
	return names
}

// Index returns the position of the named column, or -1.
func (s Schema) Index(name string) int {
	for i, col := range s {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// HeaderMismatches compares a CSV header row with the schema names and
// returns a description for every position that disagrees. Names are compared
// after snake-casing, so "sepal length" matches "sepal_length". A header with
// a different width is reported once.
func (s Schema) HeaderMismatches(header []string) []string {
	var out []string
	if len(header) != len(s) {
		out = append(out, fmt.Sprintf("header has %d columns, schema has %d", len(header), len(s)))
	}
	for i := 0; i < len(s) && i < len(header); i++ {
		got := util.ToSnakeCase(strings.TrimSpace(header[i]))
		want := util.ToSnakeCase(s[i].Name)
		if got != want {
			out = append(out, fmt.Sprintf("column %d: header %q, schema %q", i, header[i], s[i].Name))
		}
	}
	return out
}
