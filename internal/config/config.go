// Package config loads optional LORS build configuration from a YAML
// file (lorsc.yaml), parsed with github.com/goccy/go-yaml.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds driver defaults overridable by CLI flags. All fields
// are optional; zero values mean "use the driver's built-in default".
// Unknown keys in the YAML document are ignored rather than rejected,
// so a config file can gain new driver knobs without breaking old
// ones.
type Config struct {
	CXX          string   `yaml:"cxx"`
	CXXFlags     []string `yaml:"cxxflags"`
	IncludePaths []string `yaml:"includePaths"`
	KeepCPP      bool     `yaml:"keepCpp"`
}

// Load reads and parses the YAML config at path. A missing file is not
// an error: Load returns a zero-value Config so callers can apply
// built-in defaults unconditionally.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Merge returns a Config with fields from override taking precedence
// over c wherever override's field is non-zero.
func (c Config) Merge(override Config) Config {
	result := c
	if override.CXX != "" {
		result.CXX = override.CXX
	}
	if len(override.CXXFlags) > 0 {
		result.CXXFlags = override.CXXFlags
	}
	if len(override.IncludePaths) > 0 {
		result.IncludePaths = override.IncludePaths
	}
	if override.KeepCPP {
		result.KeepCPP = true
	}
	return result
}
