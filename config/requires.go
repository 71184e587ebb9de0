package config

import (
	"github.com/Masterminds/semver/v3"

	"github.com/teranos/datasets/errors"
)

// CheckRequires verifies the running generator version satisfies the
// config's requires constraint. An empty constraint always passes. A
// development build (non-semver version) passes with no check.
func (c *Config) CheckRequires(generatorVersion string) error {
	if c.Requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(c.Requires)
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "requires %q is not a valid version constraint: %v", c.Requires, err)
	}

	ver, err := semver.NewVersion(generatorVersion)
	if err != nil {
		return nil
	}

	if !constraint.Check(ver) {
		return errors.WithHint(
			errors.Newf("config requires datagen %s, running %s", c.Requires, ver),
			"install a datagen release matching the requires constraint",
		)
	}
	return nil
}
