// Command flock runs gregarious-species flocking simulations.
//
// # Usage
//
// The flock command takes one optional argument:
//
//	flock [config_file]
//
// It is the path to a TOML config file.
// If no config file is specified, an interactive simulation
// with default parameters will run in an OpenGL window.
//
// # Config file
//
// The config file is written in TOML. Keys are the field names of the
// Config struct. If the 'output' key names a file, the run is recorded
// there as HDF5 instead of being displayed.
//
// # Interactive mode
//
// In interactive mode, the simulation can be paused/resumed with space.
// While in pause, pressing right arrow will perform a single step.
// Scrolling zooms, R resets the view.
// Pressing Esc or closing the window will quit.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
)

const usage = `Usage: flock [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, an interactive simulation
with default parameters will run in an OpenGL window.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	// This is needed to arrange that main() runs on main thread.
	// See https://github.com/golang/go/wiki/LockOSThread for more info.
	runtime.LockOSThread()
}

func main() {
	var conf *Config
	var err error
	switch len(os.Args) {
	case 1:
		conf = DefaultConf
	case 2:
		conf, err = ParseConfig(os.Args[1])
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 1 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}
	if err := conf.Validate(); err != nil {
		Fatal(err)
	}

	// setup simulation
	sim, err := setup(conf)
	if err != nil {
		Fatal(err)
	}

	// run interactively or not depending on config
	if conf.Output == "" {
		err = RunOpenGL(conf, sim)
	} else {
		err = RunHDF5(conf, sim)
	}
	if err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// setup initializes the populations and parameters of a run.
func setup(conf *Config) (*flock.Simulation, error) {
	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &flock.Simulation{
		Env: flock.Environment{
			Width:  conf.Width,
			Height: conf.Height,
		},
		Params: flock.Params{
			MaxSpeed:            conf.MaxSpeed,
			MaxForce:            conf.MaxForce,
			NeighborRadius:      conf.NeighborRadius,
			PredatorRadius:      conf.PredatorRadius,
			SeparationWeight:    conf.SeparationWeight,
			AlignmentWeight:     conf.AlignmentWeight,
			CohesionWeight:      conf.CohesionWeight,
			PredatorAvoidWeight: conf.PredatorAvoidWeight,
			AreaAvoidWeight:     conf.AreaAvoidWeight,
			PredRelSpeed:        conf.PredRelSpeed,
			Noise:               conf.Noise,
		},
		Rand: rng,
	}

	switch conf.Boundary {
	case "rebound":
		s.Env.Bounce = flock.Rebound(conf.Width, conf.Height)
	case "damped":
		s.Env.Bounce = flock.DampedRebound(conf.Width, conf.Height, conf.Damping)
	case "wrap":
		s.Env.Bounce = flock.Wrap(conf.Width, conf.Height)
	}

	s.Boids = randomAgents(conf.FlockSize, conf, rng, conf.MaxSpeed)
	s.Predators = randomAgents(conf.PredatorCount, conf, rng, conf.MaxSpeed*conf.PredRelSpeed)
	s.Areas = randomAgents(conf.AreaCount, conf, rng, conf.AreaDrift)

	// per-area avoidance radii are drawn once and fixed for the run
	radii := make([]float64, conf.AreaCount)
	for k := range radii {
		div := conf.AreaRadiusDivMin + rng.Float64()*(conf.AreaRadiusDivMax-conf.AreaRadiusDivMin)
		radii[k] = math.Round(conf.Width / div)
	}
	s.Params.AreaRadius = radii

	if err := s.Params.Validate(len(s.Areas)); err != nil {
		return nil, err
	}
	return s, nil
}

// randomAgents places n agents uniformly in the arena with each velocity
// component drawn uniformly in [-vmax, vmax].
func randomAgents(n int, conf *Config, rng *rand.Rand, vmax float64) []flock.Agent {
	a := make([]flock.Agent, n)
	for i := range a {
		a[i].Pos = flock.Vec2{X: rng.Float64() * conf.Width, Y: rng.Float64() * conf.Height}
		a[i].Vel = flock.Vec2{X: vmax * (2*rng.Float64() - 1), Y: vmax * (2*rng.Float64() - 1)}
	}
	return a
}
