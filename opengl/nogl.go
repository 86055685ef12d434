//go:build nogl

package opengl

import (
	"fmt"
	"os"

	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
)

// Config holds the parameters of the OpenGL driver.
type Config struct {
	// Go to next tick.
	Step func()

	// Step manually only?
	ForcePause bool

	// Bounds of default viewport.
	Xmin float64
	Ymin float64
	Xmax float64
	Ymax float64
}

// Run returns an error explaining that OpenGL support is disabled.
func Run(s *flock.Simulation, conf *Config) error {
	return fmt.Errorf("%s was built without OpenGL support", os.Args[0])
}
