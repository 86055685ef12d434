package flock

import "testing"

func TestRebound(t *testing.T) {
	bounce := Rebound(100, 80)
	cases := []struct {
		name string
		in   Agent
		out  Agent
	}{
		{
			"inside",
			Agent{Pos: Vec2{50, 40}, Vel: Vec2{1, 1}},
			Agent{Pos: Vec2{50, 40}, Vel: Vec2{1, 1}},
		},
		{
			"right edge",
			Agent{Pos: Vec2{105, 40}, Vel: Vec2{3, 2}},
			Agent{Pos: Vec2{100, 40}, Vel: Vec2{-3, 2}},
		},
		{
			"left edge",
			Agent{Pos: Vec2{-5, 40}, Vel: Vec2{-3, 2}},
			Agent{Pos: Vec2{0, 40}, Vel: Vec2{3, 2}},
		},
		{
			"corner flips both",
			Agent{Pos: Vec2{-5, -3}, Vel: Vec2{-1, -2}},
			Agent{Pos: Vec2{0, 0}, Vel: Vec2{1, 2}},
		},
	}
	for _, c := range cases {
		if got := bounce(c.in); got != c.out {
			t.Errorf("%s: got %+v, want %+v", c.name, got, c.out)
		}
	}
}

func TestDampedRebound(t *testing.T) {
	bounce := DampedRebound(100, 80, 0.9)
	got := bounce(Agent{Pos: Vec2{105, 40}, Vel: Vec2{3, 2}})
	want := Agent{Pos: Vec2{100, 40}, Vel: Vec2{-2.7, 2}}
	if !near(got.Pos.X, want.Pos.X) || !near(got.Vel.X, want.Vel.X) || got.Vel.Y != want.Vel.Y {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestWrap(t *testing.T) {
	bounce := Wrap(100, 80)
	got := bounce(Agent{Pos: Vec2{105, -10}, Vel: Vec2{3, -2}})
	want := Agent{Pos: Vec2{5, 70}, Vel: Vec2{3, -2}}
	if !near(got.Pos.X, want.Pos.X) || !near(got.Pos.Y, want.Pos.Y) || got.Vel != want.Vel {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestStepAreas(t *testing.T) {
	env := &Environment{Width: 100, Height: 80, Bounce: Rebound(100, 80)}

	// static area stays put
	areas := []Agent{{Pos: Vec2{50, 40}}}
	next := StepAreas(areas, env)
	if next[0] != areas[0] {
		t.Errorf("static area moved: %+v", next[0])
	}

	// drifting area integrates and rebounds
	areas = []Agent{{Pos: Vec2{99, 40}, Vel: Vec2{3, 0}}}
	next = StepAreas(areas, env)
	want := Agent{Pos: Vec2{100, 40}, Vel: Vec2{-3, 0}}
	if next[0] != want {
		t.Errorf("drifting area: got %+v, want %+v", next[0], want)
	}
}
