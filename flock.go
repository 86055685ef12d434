// Package flock simulates emergent collective motion of simple mobile agents.
//
// A fixed number of boids interact in a bounded 2D arena through the three
// classical flocking rules (separation, alignment, cohesion) plus avoidance
// of predators and of poor-quality areas. Predators chase the nearest boid.
// Steppers are pure: each reads one immutable snapshot of the populations
// and returns the next one.
package flock

import (
	"fmt"
	"math"
	"math/rand"
)

// An Environment contains all the parameters relative to the arena.
type Environment struct {
	// Width and Height are the dimensions of the arena.
	Width  float64
	Height float64

	// Bounce canonicalizes the state of an agent after integration.
	// It implements the boundary condition: hard rebound, damped
	// rebound, or wraparound. A nil Bounce leaves the arena unbounded.
	Bounce func(a Agent) Agent
}

// Params contains the interaction parameters shared by all steppers.
type Params struct {
	// MaxSpeed bounds the speed of boids.
	// Predators are bounded by MaxSpeed * PredRelSpeed instead.
	MaxSpeed float64

	// MaxForce bounds the steering stage of each rule. The primary
	// reference scripts reuse MaxSpeed as the bound, so setting
	// MaxForce = MaxSpeed reproduces them; a sibling variant uses a
	// smaller bound. The two produce different dynamics.
	MaxForce float64

	// NeighborRadius is the single radius shared by separation,
	// alignment and cohesion.
	NeighborRadius float64

	// PredatorRadius is the distance under which a predator repels boids.
	PredatorRadius float64

	// AreaRadius holds one avoidance radius per poor-quality area,
	// drawn once at initialization. Its length must equal the number
	// of areas passed to StepBoids.
	AreaRadius []float64

	SeparationWeight    float64
	AlignmentWeight     float64
	CohesionWeight      float64
	PredatorAvoidWeight float64
	AreaAvoidWeight     float64

	// PredRelSpeed is the predator speed multiplier relative to MaxSpeed.
	PredRelSpeed float64

	// Noise is the amplitude of the uniform random perturbation added to
	// each velocity component of a boid every tick. Zero disables it.
	// The perturbation prevents deterministic lock-step and is part of
	// the model, not an artifact: without it groups behave differently.
	Noise float64
}

// Validate checks that a parameter set can drive a run with the given
// number of areas. Malformed parameters are rejected here, before a run
// starts, never mid-tick.
func (p *Params) Validate(areas int) error {
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"max_speed", p.MaxSpeed},
		{"max_force", p.MaxForce},
		{"neighbor_radius", p.NeighborRadius},
		{"predator_radius", p.PredatorRadius},
		{"separation_weight", p.SeparationWeight},
		{"alignment_weight", p.AlignmentWeight},
		{"cohesion_weight", p.CohesionWeight},
		{"predator_avoid_weight", p.PredatorAvoidWeight},
		{"area_avoid_weight", p.AreaAvoidWeight},
		{"pred_rel_speed", p.PredRelSpeed},
		{"noise", p.Noise},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("flock: %s is not finite", f.name)
		}
	}
	switch {
	case p.MaxSpeed < 0, p.MaxForce < 0:
		return fmt.Errorf("flock: negative speed or force bound")
	case p.NeighborRadius < 0, p.PredatorRadius < 0:
		return fmt.Errorf("flock: negative interaction radius")
	case p.PredRelSpeed < 0:
		return fmt.Errorf("flock: negative predator speed multiplier")
	case p.Noise < 0:
		return fmt.Errorf("flock: negative noise amplitude")
	}
	if len(p.AreaRadius) != areas {
		return fmt.Errorf("flock: %d area radii for %d areas", len(p.AreaRadius), areas)
	}
	for k, r := range p.AreaRadius {
		if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
			return fmt.Errorf("flock: bad radius %v for area %d", r, k)
		}
	}
	return nil
}

// A Simulation contains all the state and parameters of a run.
type Simulation struct {
	Boids     []Agent
	Predators []Agent
	Areas     []Agent
	Env       Environment
	Params    Params

	// Rand drives the boid velocity perturbation. It must be set
	// whenever Params.Noise is positive.
	Rand *rand.Rand
}

// Step advances the simulation by one tick. Boids step first against the
// pre-tick snapshot, predators then chase the updated boids, and areas
// drift last. Population sizes and agent order never change.
func (s *Simulation) Step() {
	s.Boids = StepBoids(s.Boids, s.Predators, s.Areas, &s.Env, &s.Params, s.Rand)
	s.Predators = StepPredators(s.Predators, s.Boids, &s.Env, &s.Params)
	s.Areas = StepAreas(s.Areas, &s.Env)
}
