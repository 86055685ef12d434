//go:build nogl

package main

import (
	"fmt"
	"os"

	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
)

// RunOpenGL returns an error.
func RunOpenGL(conf *Config, s *flock.Simulation) error {
	return fmt.Errorf("%s was built without OpenGL support\n"+
		"You must specify an output file ('output' key in the config file).", os.Args[0])
}
