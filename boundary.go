package flock

import "math"

// Rebound returns the canonical boundary policy: hard elastic rebound.
// An agent leaving the arena has the offending velocity component
// negated, magnitude preserved, and its position clamped to the edge.
// Axes are independent: exiting through a corner flips both components.
func Rebound(width, height float64) func(Agent) Agent {
	return func(a Agent) Agent {
		if a.Pos.X < 0 || a.Pos.X > width {
			a.Vel.X = -a.Vel.X
			a.Pos.X = math.Max(0, math.Min(width, a.Pos.X))
		}
		if a.Pos.Y < 0 || a.Pos.Y > height {
			a.Vel.Y = -a.Vel.Y
			a.Pos.Y = math.Max(0, math.Min(height, a.Pos.Y))
		}
		return a
	}
}

// DampedRebound is Rebound with the reversed velocity component scaled
// by damping, which must be in (0, 1].
func DampedRebound(width, height, damping float64) func(Agent) Agent {
	return func(a Agent) Agent {
		if a.Pos.X < 0 || a.Pos.X > width {
			a.Vel.X = -a.Vel.X * damping
			a.Pos.X = math.Max(0, math.Min(width, a.Pos.X))
		}
		if a.Pos.Y < 0 || a.Pos.Y > height {
			a.Vel.Y = -a.Vel.Y * damping
			a.Pos.Y = math.Max(0, math.Min(height, a.Pos.Y))
		}
		return a
	}
}

// Wrap folds positions into the arena toroidally, leaving velocities
// untouched.
func Wrap(width, height float64) func(Agent) Agent {
	return func(a Agent) Agent {
		a.Pos.X = math.Mod(a.Pos.X, width)
		if a.Pos.X < 0 {
			a.Pos.X += width
		}
		a.Pos.Y = math.Mod(a.Pos.Y, height)
		if a.Pos.Y < 0 {
			a.Pos.Y += height
		}
		return a
	}
}
