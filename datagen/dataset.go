package datagen

import (
	"path/filepath"
	"slices"

	"github.com/teranos/datasets/config"
	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/schema"
)

// Dataset is one fully resolved generation job.
type Dataset struct {
	Name     string
	TypeName string // record struct name
	Package  string
	Table    string // fixed-length array variable name
	Schema   schema.Schema

	// Source and Output are absolute paths.
	Source string
	Output string

	// SourceLabel is the source path as shown in the generated header,
	// relative to the project root with forward slashes.
	SourceLabel string

	Scalable     bool
	Strict       bool
	StrictHeader bool
}

// FromConfig resolves the selected datasets of cfg into generation jobs.
// Pass nil to resolve every configured dataset.
func FromConfig(cfg *config.Config, selected []config.DatasetConfig) ([]Dataset, error) {
	if selected == nil {
		selected = cfg.Datasets
	}

	out := make([]Dataset, 0, len(selected))
	for _, dc := range selected {
		s, err := dc.Schema()
		if err != nil {
			return nil, err
		}

		source := cfg.Resolve(dc.Source)
		label := filepath.ToSlash(dc.Source)
		if rel, err := filepath.Rel(cfg.Root(), source); err == nil {
			label = filepath.ToSlash(rel)
		}

		out = append(out, Dataset{
			Name:         dc.Name,
			TypeName:     dc.Type,
			Package:      dc.Package,
			Table:        dc.Table,
			Schema:       s,
			Source:       source,
			Output:       cfg.Resolve(dc.Output),
			SourceLabel:  label,
			Scalable:     dc.Scalable,
			Strict:       cfg.IsStrict(dc),
			StrictHeader: dc.StrictHeader,
		})
	}
	return out, nil
}

// scalableMethods are generated on Scalable records and cannot double as
// field names.
var scalableMethods = []string{"ColumnCount", "Float", "SetFloat"}

func (d Dataset) validate() error {
	if d.Name == "" || d.TypeName == "" || d.Package == "" || d.Table == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "dataset %q is missing a name, type, package or table", d.Name)
	}
	if d.Source == "" || d.Output == "" {
		return errors.Wrapf(errors.ErrInvalidConfig, "dataset %s needs both a source and an output path", d.Name)
	}
	if err := d.Schema.Validate(); err != nil {
		return err
	}
	if d.Scalable {
		for _, col := range d.Schema {
			if slices.Contains(scalableMethods, col.FieldName()) {
				return errors.WithHint(
					errors.Wrapf(errors.ErrInvalidConfig, "dataset %s: column %q becomes field %s, which clashes with a generated Scalable method", d.Name, col.Name, col.FieldName()),
					"rename the column or set scalable = false",
				)
			}
		}
	}
	return nil
}

func (d Dataset) label() string {
	if d.SourceLabel != "" {
		return d.SourceLabel
	}
	return filepath.ToSlash(filepath.Base(d.Source))
}
