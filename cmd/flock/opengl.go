//go:build !nogl

package main

import (
	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
	"github.com/GuillaumeBal/2025.gregarious.species.indices/opengl"
)

// RunOpenGL runs an interactive simulation in an OpenGL window.
func RunOpenGL(conf *Config, s *flock.Simulation) error {
	return opengl.Run(s, &opengl.Config{
		Step: s.Step,
		Xmin: 0,
		Ymin: 0,
		Xmax: conf.Width,
		Ymax: conf.Height,
	})
}
