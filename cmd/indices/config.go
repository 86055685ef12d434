package main

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// Config holds the parameters of the analysis.
type Config struct {
	// Input is the path of an HDF5 file recorded by the flock command.
	Input string

	// Output is a filename for the CSV output,
	// or the empty string for standard output.
	Output string

	// Dataset is the name of the population to analyze.
	Dataset string

	// MaxGroupDist is the distance under which two agents belong to the
	// same group.
	MaxGroupDist float64
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Input:        "flock.h5",
	Output:       "",
	Dataset:      "boids",
	MaxGroupDist: 20,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := DefaultConf
	_, err := toml.DecodeFile(path, conf)
	return conf, err
}

// Validate rejects configurations that cannot drive an analysis.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("no input file")
	}
	if c.Dataset == "" {
		return fmt.Errorf("no dataset name")
	}
	if math.IsNaN(c.MaxGroupDist) || math.IsInf(c.MaxGroupDist, 0) || c.MaxGroupDist < 0 {
		return fmt.Errorf("bad group distance %v", c.MaxGroupDist)
	}
	return nil
}
