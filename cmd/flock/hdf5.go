package main

import (
	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
	"github.com/GuillaumeBal/2025.gregarious.species.indices/hdf5"
)

// RunHDF5 records a run to the HDF5 file named by the config, one frame
// per tick for each of the three populations.
func RunHDF5(conf *Config, s *flock.Simulation) error {
	return hdf5.Run(s, &hdf5.Config{
		Output: conf.Output,
		Steps:  conf.Steps,
		Step:   s.Step,
		Attrs:  conf,
		Datasets: []*hdf5.Dataset{
			{
				Name: "boids",
				Val:  hdf5.Record{},
				Dims: []int{conf.FlockSize},
				Data: records(func(s *flock.Simulation) []flock.Agent { return s.Boids }),
			},
			{
				Name: "predators",
				Val:  hdf5.Record{},
				Dims: []int{conf.PredatorCount},
				Data: records(func(s *flock.Simulation) []flock.Agent { return s.Predators }),
			},
			{
				Name: "areas",
				Val:  hdf5.Record{},
				Dims: []int{conf.AreaCount},
				Data: records(func(s *flock.Simulation) []flock.Agent { return s.Areas }),
			},
		},
	})
}

// records adapts a population accessor into a dataset data producer.
func records(pop func(*flock.Simulation) []flock.Agent) func(*flock.Simulation) interface{} {
	return func(s *flock.Simulation) interface{} {
		agents := pop(s)
		r := make([]hdf5.Record, len(agents))
		for i, a := range agents {
			r[i] = hdf5.Record{Pos: a.Pos, Vel: a.Vel}
		}
		return &r
	}
}
