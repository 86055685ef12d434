// Package indices computes per-frame collective-motion indices from
// population snapshots: polarization, nearest-neighbour distance and
// group count. They quantify how gregarious a population is at a given
// tick and are meant to be aggregated over recorded runs.
package indices

import (
	"math"

	flock "github.com/GuillaumeBal/2025.gregarious.species.indices"
)

// Polarization returns the magnitude of the mean normalized velocity.
// It is 1 when all agents move in the same direction and close to 0 for
// disordered motion. Agents with zero velocity are skipped; with no
// moving agent the polarization is 0.
func Polarization(agents []flock.Agent) float64 {
	var sum flock.Vec2
	var n int
	for _, a := range agents {
		m := a.Vel.Mag()
		if m == 0 {
			continue
		}
		sum = sum.Add(a.Vel.Scale(1 / m))
		n++
	}
	if n == 0 {
		return 0
	}
	return sum.Scale(1 / float64(n)).Mag()
}

// MeanNearestNeighbor returns the mean distance from each agent to its
// nearest neighbour, 0 with fewer than two agents.
func MeanNearestNeighbor(agents []flock.Agent) float64 {
	if len(agents) < 2 {
		return 0
	}
	var sum float64
	for i, a := range agents {
		min := math.Inf(1)
		for j, b := range agents {
			if i == j {
				continue
			}
			if d := a.Pos.Dist(b.Pos); d < min {
				min = d
			}
		}
		sum += min
	}
	return sum / float64(len(agents))
}

// Groups returns the number of groups in the population, where a group
// is the transitive closure of the "within maxDist of each other"
// relation. Agents at exactly maxDist belong to the same group.
func Groups(agents []flock.Agent, maxDist float64) int {
	n := len(agents)
	visited := make([]bool, n)
	var groups int
	stack := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		groups++
		visited[i] = true
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			k := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for j := 0; j < n; j++ {
				if !visited[j] && agents[k].Pos.Dist(agents[j].Pos) <= maxDist {
					visited[j] = true
					stack = append(stack, j)
				}
			}
		}
	}
	return groups
}
