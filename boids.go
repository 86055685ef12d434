package flock

import "math/rand"

// An Agent is a point mass with a position and a velocity. It is used for
// boids, predators and poor-quality areas alike. Agents have no identity
// beyond their index in a population; steppers preserve index order so
// the same index refers to the same agent across ticks.
type Agent struct {
	Pos Vec2
	Vel Vec2
}

// StepBoids computes the next boid population from the pre-tick snapshots
// of all populations. Every boid scans every other agent (the model is
// defined by the exhaustive pairwise scan), blends the five steering
// rules by their weights, is perturbed by noise, clamped to MaxSpeed,
// integrated, and passed through the boundary policy.
//
// rng is only consulted when p.Noise > 0 and may be nil otherwise.
func StepBoids(boids, predators, areas []Agent, env *Environment, p *Params, rng *rand.Rand) []Agent {
	next := make([]Agent, len(boids))
	for i, b := range boids {
		var sep, ali, coh, pred, avoid Vec2
		var nsep, nnbr int

		for j, o := range boids {
			if i == j {
				continue
			}
			d := b.Pos.Dist(o.Pos)
			if d >= p.NeighborRadius {
				continue
			}
			// coincident agents contribute nothing to separation
			if d > 0 {
				sep = sep.Add(b.Pos.Sub(o.Pos).Scale(1 / d))
				nsep++
			}
			ali = ali.Add(o.Vel)
			coh = coh.Add(o.Pos)
			nnbr++
		}

		// threatening predators compound: summed, not averaged
		for _, q := range predators {
			d := b.Pos.Dist(q.Pos)
			if d > 0 && d < p.PredatorRadius {
				pred = pred.Add(b.Pos.Sub(q.Pos).Scale(1 / d))
			}
		}
		for k, q := range areas {
			d := b.Pos.Dist(q.Pos)
			if d > 0 && d < p.AreaRadius[k] {
				avoid = avoid.Add(b.Pos.Sub(q.Pos).Scale(1 / d))
			}
		}

		if nsep > 0 {
			sep = steer(sep.Scale(1/float64(nsep)), b.Vel, p)
		}
		if nnbr > 0 {
			ali = steer(ali.Scale(1/float64(nnbr)), b.Vel, p)
			coh = steer(coh.Scale(1/float64(nnbr)).Sub(b.Pos), b.Vel, p)
		}
		if pred.Mag() > 0 {
			pred = steer(pred, b.Vel, p)
		}
		if avoid.Mag() > 0 {
			avoid = steer(avoid, b.Vel, p)
		}

		v := b.Vel.
			Add(sep.Scale(p.SeparationWeight)).
			Add(ali.Scale(p.AlignmentWeight)).
			Add(coh.Scale(p.CohesionWeight)).
			Add(pred.Scale(p.PredatorAvoidWeight)).
			Add(avoid.Scale(p.AreaAvoidWeight))

		if p.Noise > 0 {
			v.X += p.Noise * (2*rng.Float64() - 1)
			v.Y += p.Noise * (2*rng.Float64() - 1)
		}
		v = v.Limit(p.MaxSpeed)

		next[i] = bounce(env, Agent{Pos: b.Pos.Add(v), Vel: v})
	}
	return next
}

// steer converts a desired vector into a steering force: clamp the
// desire to MaxSpeed, subtract the current velocity, clamp the result
// to MaxForce.
func steer(desired, vel Vec2, p *Params) Vec2 {
	return desired.Limit(p.MaxSpeed).Sub(vel).Limit(p.MaxForce)
}

// bounce applies the boundary policy, if any.
func bounce(env *Environment, a Agent) Agent {
	if env.Bounce == nil {
		return a
	}
	return env.Bounce(a)
}
