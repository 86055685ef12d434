package main

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// Config holds the various parameters required for running a simulation.
type Config struct {
	// Output is either a filename (path) for the HDF5 output file,
	// or the empty string for an interactive OpenGL simulation.
	Output string

	FlockSize     int   // number of boids
	PredatorCount int   // number of predators
	AreaCount     int   // number of poor-quality areas
	Steps         int   // number of ticks (hdf5 only)
	Seed          int64 // random seed, 0 seeds from wall clock

	// Arena dimensions
	Width  float64
	Height float64

	// Boid speed and steering-force bounds. The reference behavior uses
	// MaxForce equal to MaxSpeed; a smaller MaxForce gives the gentler
	// steering of the sibling variant.
	MaxSpeed float64
	MaxForce float64

	NeighborRadius float64 // boid-to-boid interaction radius
	PredatorRadius float64 // predator avoidance radius

	// Per-area avoidance radii are drawn once at setup as
	// round(Width / U(AreaRadiusDivMin, AreaRadiusDivMax)).
	AreaRadiusDivMin float64
	AreaRadiusDivMax float64

	// Rule weights
	SeparationWeight    float64
	AlignmentWeight     float64
	CohesionWeight      float64
	PredatorAvoidWeight float64
	AreaAvoidWeight     float64

	PredRelSpeed float64 // predator speed multiplier
	Noise        float64 // velocity perturbation amplitude

	// Boundary selects the boundary policy: rebound, damped or wrap.
	Boundary string
	Damping  float64 // reversed-velocity factor for the damped policy

	// AreaDrift is the maximum initial speed of areas. 0 keeps them static.
	AreaDrift float64
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Output:              "",
	FlockSize:           150,
	PredatorCount:       2,
	AreaCount:           3,
	Steps:               1000,
	Seed:                0,
	Width:               200,
	Height:              200,
	MaxSpeed:            2,
	MaxForce:            2,
	NeighborRadius:      20,
	PredatorRadius:      40,
	AreaRadiusDivMin:    10,
	AreaRadiusDivMax:    30,
	SeparationWeight:    1.5,
	AlignmentWeight:     1.0,
	CohesionWeight:      1.0,
	PredatorAvoidWeight: 2.5,
	AreaAvoidWeight:     2.0,
	PredRelSpeed:        1.2,
	Noise:               0.05,
	Boundary:            "rebound",
	Damping:             0.9,
	AreaDrift:           0,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := DefaultConf
	_, err := toml.DecodeFile(path, conf)
	return conf, err
}

// Validate rejects configurations that cannot drive a run. Population
// sizes and geometry are checked here; the interaction parameters are
// checked by Params.Validate once the populations are built.
func (c *Config) Validate() error {
	if c.FlockSize < 0 || c.PredatorCount < 0 || c.AreaCount < 0 {
		return fmt.Errorf("negative population size")
	}
	if c.Steps < 0 {
		return fmt.Errorf("negative step count")
	}
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"Width", c.Width},
		{"Height", c.Height},
		{"AreaRadiusDivMin", c.AreaRadiusDivMin},
		{"AreaRadiusDivMax", c.AreaRadiusDivMax},
		{"AreaDrift", c.AreaDrift},
		{"Damping", c.Damping},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%s is not finite", f.name)
		}
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("arena dimensions must be positive")
	}
	if c.AreaRadiusDivMin <= 0 || c.AreaRadiusDivMax < c.AreaRadiusDivMin {
		return fmt.Errorf("bad area radius divisor range [%g, %g]", c.AreaRadiusDivMin, c.AreaRadiusDivMax)
	}
	if c.AreaDrift < 0 {
		return fmt.Errorf("negative area drift")
	}
	switch c.Boundary {
	case "rebound", "wrap":
	case "damped":
		if !(c.Damping > 0 && c.Damping <= 1) {
			return fmt.Errorf("damping %g outside (0, 1]", c.Damping)
		}
	default:
		return fmt.Errorf("bad boundary type %q", c.Boundary)
	}
	return nil
}
