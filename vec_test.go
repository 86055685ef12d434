package flock

import "testing"

func TestVecLimit(t *testing.T) {
	cases := []struct {
		name string
		in   Vec2
		max  float64
		out  Vec2
	}{
		{"under", Vec2{3, 4}, 10, Vec2{3, 4}},
		{"at bound", Vec2{3, 4}, 5, Vec2{3, 4}},
		{"over", Vec2{6, 8}, 5, Vec2{3, 4}},
		{"zero", Vec2{0, 0}, 5, Vec2{0, 0}},
	}
	for _, c := range cases {
		got := c.in.Limit(c.max)
		if !near(got.X, c.out.X) || !near(got.Y, c.out.Y) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.out)
		}
	}
}

func TestVecDist(t *testing.T) {
	if got := (Vec2{1, 2}).Dist(Vec2{4, 6}); !near(got, 5) {
		t.Errorf("got %g, want 5", got)
	}
}
