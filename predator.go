package flock

import "math"

// pursuitGain is the fixed magnitude of the per-tick steering nudge a
// predator receives toward the nearest boid.
const pursuitGain = 0.05

// StepPredators computes the next predator population. Each predator
// chases the boid nearest to it in the given snapshot, ties broken by the
// lowest boid index. Unlike boids there is no averaging or force stage:
// the pursuit nudge accumulates directly into the velocity, which is then
// clamped to MaxSpeed * PredRelSpeed, integrated and bounced. With no
// boids the pursuit term vanishes but clamp, integration and bounce
// still apply.
func StepPredators(predators, boids []Agent, env *Environment, p *Params) []Agent {
	next := make([]Agent, len(predators))
	max := p.MaxSpeed * p.PredRelSpeed
	for i, q := range predators {
		closest, dist := -1, math.Inf(1)
		for j, b := range boids {
			if d := q.Pos.Dist(b.Pos); d < dist {
				closest, dist = j, d
			}
		}
		v := q.Vel
		if closest >= 0 && dist > 0 {
			v = v.Add(boids[closest].Pos.Sub(q.Pos).Scale(pursuitGain / dist))
		}
		v = v.Limit(max)
		next[i] = bounce(env, Agent{Pos: q.Pos.Add(v), Vel: v})
	}
	return next
}
