package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the settings a run/bench invocation reads from
// an optional YAML file, overridable by CLI flags. Flags win when both
// are set; a missing file yields a zero-value config, not an error.
type RunConfig struct {
	DB            string  `yaml:"db"`
	Fixture       string  `yaml:"fixture"`
	DampingFactor float64 `yaml:"damping_factor"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
	Workers       int     `yaml:"workers"`
	Format        string  `yaml:"format"`
}

// loadConfig reads path as YAML into a RunConfig. A missing path
// returns a zero-value config rather than an error, matching how a
// CLI run with only flags and no config file should behave.
func loadConfig(path string) (*RunConfig, error) {
	cfg := &RunConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
