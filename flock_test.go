package flock

import (
	"math"
	"math/rand"
	"testing"
)

func TestParamsValidate(t *testing.T) {
	valid := func() Params {
		p := basicParams()
		p.AreaRadius = []float64{5, 8}
		return p
	}

	if err := func() error { p := valid(); return p.Validate(2) }(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Params)
		areas  int
	}{
		{"NaN max speed", func(p *Params) { p.MaxSpeed = math.NaN() }, 2},
		{"Inf weight", func(p *Params) { p.CohesionWeight = math.Inf(1) }, 2},
		{"negative radius", func(p *Params) { p.NeighborRadius = -1 }, 2},
		{"negative noise", func(p *Params) { p.Noise = -0.05 }, 2},
		{"radius count mismatch", func(p *Params) {}, 3},
		{"NaN area radius", func(p *Params) { p.AreaRadius[1] = math.NaN() }, 2},
		{"negative area radius", func(p *Params) { p.AreaRadius[0] = -4 }, 2},
	}
	for _, c := range cases {
		p := valid()
		c.mutate(&p)
		if err := p.Validate(c.areas); err == nil {
			t.Errorf("%s: no error", c.name)
		}
	}
}

func TestSimulationStep(t *testing.T) {
	const width, height = 100.0, 100.0
	s := &Simulation{
		Env: Environment{Width: width, Height: height, Bounce: Rebound(width, height)},
		Params: Params{
			MaxSpeed:            2,
			MaxForce:            2,
			NeighborRadius:      20,
			PredatorRadius:      30,
			AreaRadius:          []float64{12},
			SeparationWeight:    1.5,
			AlignmentWeight:     1,
			CohesionWeight:      1,
			PredatorAvoidWeight: 2.5,
			AreaAvoidWeight:     2,
			PredRelSpeed:        1.2,
			Noise:               0.05,
		},
		Rand: rand.New(rand.NewSource(3)),
	}
	rng := rand.New(rand.NewSource(4))
	random := func(n int) []Agent {
		a := make([]Agent, n)
		for i := range a {
			a[i].Pos = Vec2{rng.Float64() * width, rng.Float64() * height}
			a[i].Vel = Vec2{2*rng.Float64() - 1, 2*rng.Float64() - 1}
		}
		return a
	}
	s.Boids, s.Predators, s.Areas = random(20), random(2), random(1)

	if err := s.Params.Validate(len(s.Areas)); err != nil {
		t.Fatal(err)
	}

	for tick := 0; tick < 20; tick++ {
		s.Step()
		if len(s.Boids) != 20 || len(s.Predators) != 2 || len(s.Areas) != 1 {
			t.Fatalf("tick %d: population sizes changed", tick)
		}
	}
	for i, b := range s.Boids {
		if !finite(b.Pos) || !finite(b.Vel) {
			t.Fatalf("boid %d: non-finite state %+v", i, b)
		}
	}
}
