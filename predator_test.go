package flock

import "testing"

func TestPursuitNudge(t *testing.T) {
	p := basicParams()
	env := &Environment{}
	predators := []Agent{{Pos: Vec2{0, 0}}}
	boids := []Agent{{Pos: Vec2{0, 10}}}

	next := StepPredators(predators, boids, env, &p)
	if got, want := next[0].Vel, (Vec2{0, pursuitGain}); !near(got.X, want.X) || !near(got.Y, want.Y) {
		t.Errorf("pursuit nudge: got %v, want %v", got, want)
	}
	if got, want := next[0].Pos, next[0].Vel; got != want {
		t.Errorf("position: got %v, want %v", got, want)
	}
}

func TestPursuitTieBreak(t *testing.T) {
	// two boids at equal distance: the lower index wins
	p := basicParams()
	env := &Environment{}
	predators := []Agent{{Pos: Vec2{0, 0}}}
	boids := []Agent{
		{Pos: Vec2{5, 0}},
		{Pos: Vec2{-5, 0}},
	}

	next := StepPredators(predators, boids, env, &p)
	if got := next[0].Vel; got.X <= 0 || got.Y != 0 {
		t.Errorf("tie broken toward wrong boid: got velocity %v", got)
	}
}

func TestPursuitCoincidentBoid(t *testing.T) {
	// nearest distance 0: no pursuit nudge, no NaN
	p := basicParams()
	env := &Environment{}
	predators := []Agent{{Pos: Vec2{3, 3}, Vel: Vec2{1, 0}}}
	boids := []Agent{{Pos: Vec2{3, 3}}}

	next := StepPredators(predators, boids, env, &p)
	if got, want := next[0].Vel, (Vec2{1, 0}); got != want {
		t.Errorf("velocity: got %v, want %v", got, want)
	}
}

func TestPredatorSpeedClamp(t *testing.T) {
	p := basicParams()
	p.MaxSpeed = 2
	p.PredRelSpeed = 1.2
	env := &Environment{}
	predators := []Agent{{Pos: Vec2{0, 0}, Vel: Vec2{10, 0}}}

	next := StepPredators(predators, nil, env, &p)
	if got, want := next[0].Vel.Mag(), 2.4; !near(got, want) {
		t.Errorf("clamped speed: got %g, want %g", got, want)
	}
}

func TestPredatorNoBoids(t *testing.T) {
	// pursuit vanishes but clamp, integration and rebound still apply
	const width, height = 100.0, 100.0
	p := basicParams()
	env := &Environment{Width: width, Height: height, Bounce: Rebound(width, height)}
	predators := []Agent{{Pos: Vec2{width - 1, 50}, Vel: Vec2{4, 0}}}

	next := StepPredators(predators, nil, env, &p)
	if got, want := next[0].Pos, (Vec2{width, 50}); got != want {
		t.Errorf("position: got %v, want %v", got, want)
	}
	if got, want := next[0].Vel, (Vec2{-4, 0}); got != want {
		t.Errorf("velocity: got %v, want %v", got, want)
	}
}

func TestStepPredatorsEmpty(t *testing.T) {
	p := basicParams()
	env := &Environment{}
	next := StepPredators(nil, nil, env, &p)
	if len(next) != 0 {
		t.Fatalf("got %d predators, want 0", len(next))
	}
}
