package indices

import (
	"math"
	"testing"

	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
)

func near(a, b float64) bool {
	return math.Abs(a-b) <= 1e-12
}

func at(x, y float64) flock.Agent {
	return flock.Agent{Pos: flock.Vec2{X: x, Y: y}}
}

func moving(vx, vy float64) flock.Agent {
	return flock.Agent{Vel: flock.Vec2{X: vx, Y: vy}}
}

func TestPolarization(t *testing.T) {
	cases := []struct {
		name   string
		agents []flock.Agent
		want   float64
	}{
		{"empty", nil, 0},
		{"all stopped", []flock.Agent{moving(0, 0)}, 0},
		{"aligned", []flock.Agent{moving(1, 0), moving(3, 0)}, 1},
		{"opposed", []flock.Agent{moving(1, 0), moving(-2, 0)}, 0},
		{"orthogonal", []flock.Agent{moving(1, 0), moving(0, 1)}, math.Sqrt2 / 2},
	}
	for _, c := range cases {
		if got := Polarization(c.agents); !near(got, c.want) {
			t.Errorf("%s: got %g, want %g", c.name, got, c.want)
		}
	}
}

func TestMeanNearestNeighbor(t *testing.T) {
	if got := MeanNearestNeighbor([]flock.Agent{at(0, 0)}); got != 0 {
		t.Errorf("single agent: got %g, want 0", got)
	}
	agents := []flock.Agent{at(0, 0), at(3, 0), at(10, 0)}
	if got, want := MeanNearestNeighbor(agents), 13.0/3; !near(got, want) {
		t.Errorf("got %g, want %g", got, want)
	}
}

func TestGroups(t *testing.T) {
	cases := []struct {
		name    string
		agents  []flock.Agent
		maxDist float64
		want    int
	}{
		{"empty", nil, 5, 0},
		{"two clusters", []flock.Agent{at(0, 0), at(3, 0), at(100, 0), at(103, 0)}, 5, 2},
		{"chain is transitive", []flock.Agent{at(0, 0), at(4, 0), at(8, 0)}, 5, 1},
		{"exactly at threshold", []flock.Agent{at(0, 0), at(5, 0)}, 5, 1},
		{"all isolated", []flock.Agent{at(0, 0), at(50, 0), at(100, 0)}, 5, 3},
	}
	for _, c := range cases {
		if got := Groups(c.agents, c.maxDist); got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}
