package config

import "github.com/spf13/viper"

// Default values
const (
	DefaultRawDir = "raw_data"
	DefaultJobs   = 1
	DefaultTable  = "Data"
)

// SetDefaults configures default values for all generator options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("requires", "")

	v.SetDefault("generate.raw_dir", DefaultRawDir)
	v.SetDefault("generate.jobs", DefaultJobs)
	v.SetDefault("generate.strict", false)
}
