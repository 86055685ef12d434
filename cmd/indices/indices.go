// Command indices computes gregariousness indices from a recorded run.
//
// # Usage
//
// The indices command takes one optional argument:
//
//	indices [config_file]
//
// It is the path to a TOML config file.
//
// The command walks the frames of a population recorded by the flock
// command and prints one CSV line per frame with the polarization, the
// mean nearest-neighbour distance and the number of groups at the
// configured distance threshold.
package main

import (
	"bufio"
	"fmt"
	"os"

	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
	"github.com/GuillaumeBal/2025.gregarious.species.indices/hdf5"
	"github.com/GuillaumeBal/2025.gregarious.species.indices/indices"
)

const usage = `Usage: indices [config_file]

The first argument is optional and is the path to a TOML config file.
If no config file is specified, default parameters are used.
`

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
	if err := run(conf); err != nil {
		Fatal(err)
	}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// run loads the recorded frames and writes one line of indices per frame.
func run(conf *Config) (err error) {
	l, err := hdf5.NewLoader(conf.Input, conf.Dataset)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := l.Close(); err == nil {
			err = cerr
		}
	}()

	out := os.Stdout
	if conf.Output != "" {
		out, err = os.Create(conf.Output)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := out.Close(); err == nil {
				err = cerr
			}
		}()
	}
	w := bufio.NewWriter(out)

	fmt.Fprintln(w, "frame,polarization,mean_nn_dist,groups")
	agents := make([]flock.Agent, 0, l.Count())
	for k := 0; k < l.Frames(); k++ {
		if err := l.Load(&agents); err != nil {
			return err
		}
		fmt.Fprintf(w, "%d,%.6g,%.6g,%d\n", k,
			indices.Polarization(agents),
			indices.MeanNearestNeighbor(agents),
			indices.Groups(agents, conf.MaxGroupDist))
	}
	return w.Flush()
}
