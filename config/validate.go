package config

import (
	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/internal/util"
)

// Validate checks that the configuration is valid. Every problem is reported,
// not just the first.
func (c *Config) Validate() error {
	var errs error
	invalid := func(format string, args ...interface{}) {
		errs = errors.Append(errs, errors.Wrapf(errors.ErrInvalidConfig, format, args...))
	}

	// Jobs: 0 would mean no progress, negative is invalid
	if c.Generate.Jobs < 1 {
		invalid("generate.jobs must be >= 1, got %d", c.Generate.Jobs)
	}

	if len(c.Datasets) == 0 {
		invalid("no [[dataset]] tables configured")
	}

	names := make(map[string]bool, len(c.Datasets))
	outputs := make(map[string]string, len(c.Datasets))
	for i, ds := range c.Datasets {
		if ds.Name == "" {
			invalid("dataset %d has no name", i)
			continue
		}
		if names[ds.Name] {
			invalid("dataset %q configured twice", ds.Name)
		}
		names[ds.Name] = true

		if !util.IsPackageName(ds.Package) {
			invalid("dataset %s: package %q is not a valid Go package name", ds.Name, ds.Package)
		}
		if !util.IsExportedIdentifier(ds.Type) {
			invalid("dataset %s: type %q is not an exported Go identifier", ds.Name, ds.Type)
		}
		if !util.IsExportedIdentifier(ds.Table) {
			invalid("dataset %s: table %q is not an exported Go identifier", ds.Name, ds.Table)
		}
		if ds.Type == ds.Table {
			invalid("dataset %s: type and table are both named %q", ds.Name, ds.Type)
		}
		if ds.Source == "" {
			invalid("dataset %s: source cannot be empty", ds.Name)
		}
		if ds.Output == "" {
			invalid("dataset %s: output cannot be empty", ds.Name)
		} else {
			out := c.Resolve(ds.Output)
			if other, dup := outputs[out]; dup {
				invalid("datasets %s and %s write the same output %s", other, ds.Name, ds.Output)
			}
			outputs[out] = ds.Name
		}

		if _, err := ds.Schema(); err != nil {
			errs = errors.Append(errs, err)
		}
	}

	return errs
}
