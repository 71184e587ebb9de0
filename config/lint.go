package config

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/teranos/datasets/errors"
)

// LintFile decodes path strictly and returns every key the generator would
// silently ignore, such as a misspelled "strict_heder".
func LintFile(path string) ([]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	sort.Strings(unknown)
	return unknown, nil
}
