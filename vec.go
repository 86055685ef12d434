package flock

import "math"

// A Vec2 is a simple 2D vector.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns u + v.
func (u Vec2) Add(v Vec2) Vec2 {
	return Vec2{u.X + v.X, u.Y + v.Y}
}

// Sub returns u - v.
func (u Vec2) Sub(v Vec2) Vec2 {
	return Vec2{u.X - v.X, u.Y - v.Y}
}

// Scale returns k * u.
func (u Vec2) Scale(k float64) Vec2 {
	return Vec2{k * u.X, k * u.Y}
}

// Mag returns the magnitude of u.
func (u Vec2) Mag() float64 {
	return math.Hypot(u.X, u.Y)
}

// Dist returns the distance between two points.
func (u Vec2) Dist(v Vec2) float64 {
	return math.Hypot(u.X-v.X, u.Y-v.Y)
}

// Limit rescales u to magnitude max if it is longer than max.
func (u Vec2) Limit(max float64) Vec2 {
	if m := u.Mag(); m > max {
		return u.Scale(max / m)
	}
	return u
}
