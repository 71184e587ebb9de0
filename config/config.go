// Package config loads datagen.toml: generator settings plus one [[dataset]]
// table per generated artifact.
package config

import (
	"path/filepath"

	"github.com/teranos/datasets/errors"
	"github.com/teranos/datasets/internal/util"
	"github.com/teranos/datasets/schema"
)

// FileName is the config file searched for when no path is given.
const FileName = "datagen.toml"

// Config is the parsed datagen.toml.
type Config struct {
	// Requires is a semver constraint the running generator must satisfy
	Requires string          `mapstructure:"requires" toml:"requires,omitempty"`
	Generate GenerateConfig  `mapstructure:"generate" toml:"generate"`
	Datasets []DatasetConfig `mapstructure:"dataset" toml:"dataset"`

	// Path is the file the config was read from. Relative dataset paths
	// resolve against its directory.
	Path string `mapstructure:"-" toml:"-"`
}

// GenerateConfig holds settings shared by every dataset
type GenerateConfig struct {
	RawDir string `mapstructure:"raw_dir" toml:"raw_dir"`
	Jobs   int    `mapstructure:"jobs" toml:"jobs"`     // datasets generated concurrently (default: 1)
	Strict bool   `mapstructure:"strict" toml:"strict"` // dropped rows fail every dataset
}

// DatasetConfig describes one generated artifact.
type DatasetConfig struct {
	Name    string `mapstructure:"name" toml:"name"`
	Type    string `mapstructure:"type" toml:"type"`       // record struct name
	Package string `mapstructure:"package" toml:"package"` // package clause of the artifact
	Table   string `mapstructure:"table" toml:"table"`     // array variable name (default: Data)
	Source  string `mapstructure:"source" toml:"source"`
	Output  string `mapstructure:"output" toml:"output"`
	URL     string `mapstructure:"url" toml:"url,omitempty"`

	Scalable     bool `mapstructure:"scalable" toml:"scalable,omitempty"`
	Strict       bool `mapstructure:"strict" toml:"strict,omitempty"`
	StrictHeader bool `mapstructure:"strict_header" toml:"strict_header,omitempty"`

	Columns []ColumnConfig `mapstructure:"columns" toml:"columns"`
}

// ColumnConfig is one column as written in the file. Type accepts every
// spelling schema.ParseColumnType does.
type ColumnConfig struct {
	Name string `mapstructure:"name" toml:"name"`
	Type string `mapstructure:"type" toml:"type"`
}

// Root returns the directory relative paths resolve against.
func (c *Config) Root() string {
	if c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

// Resolve makes p absolute relative to Root. Absolute paths are returned cleaned.
func (c *Config) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root(), p)
}

// Dataset returns the dataset with the given name.
func (c *Config) Dataset(name string) (DatasetConfig, bool) {
	for _, ds := range c.Datasets {
		if ds.Name == name {
			return ds, true
		}
	}
	return DatasetConfig{}, false
}

// Select returns the named datasets in the given order, or all datasets when
// names is empty.
func (c *Config) Select(names []string) ([]DatasetConfig, error) {
	if len(names) == 0 {
		return c.Datasets, nil
	}

	selected := make([]DatasetConfig, 0, len(names))
	for _, name := range names {
		ds, ok := c.Dataset(name)
		if !ok {
			return nil, errors.WithHint(
				errors.Newf("unknown dataset %q", name),
				"run 'datagen config show' to list configured datasets",
			)
		}
		selected = append(selected, ds)
	}
	return selected, nil
}

// IsStrict reports whether dropped rows are fatal for ds.
func (c *Config) IsStrict(ds DatasetConfig) bool {
	return c.Generate.Strict || ds.Strict
}

// Schema converts the configured columns.
func (d DatasetConfig) Schema() (schema.Schema, error) {
	s := make(schema.Schema, 0, len(d.Columns))
	for i, col := range d.Columns {
		t, err := schema.ParseColumnType(col.Type)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidConfig, "dataset %s: column %d (%s): %v", d.Name, i, col.Name, err)
		}
		s = append(s, schema.Column{Name: col.Name, Type: t})
	}
	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "dataset %s", d.Name)
	}
	return s, nil
}

// applyDatasetDefaults fills names and paths left out of a [[dataset]] table.
func (c *Config) applyDatasetDefaults() {
	for i := range c.Datasets {
		ds := &c.Datasets[i]
		if ds.Package == "" {
			ds.Package = ds.Name
		}
		if ds.Type == "" {
			ds.Type = util.ToPascalCase(ds.Name)
		}
		if ds.Table == "" {
			ds.Table = DefaultTable
		}
		if ds.Source == "" && ds.Name != "" {
			ds.Source = filepath.ToSlash(filepath.Join(c.Generate.RawDir, ds.Name+".csv"))
		}
		if ds.Output == "" && ds.Package != "" {
			ds.Output = filepath.ToSlash(filepath.Join("datasets", ds.Package, ds.Package+"_data.go"))
		}
	}
}
