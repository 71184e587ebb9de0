package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/datasets/errors"
)

// Render marshals the effective configuration (file values, defaults and
// environment overrides) back to TOML.
func (c *Config) Render() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal config")
	}
	return data, nil
}
