package flock

// StepAreas advances drifting poor-quality areas by one tick. Areas
// follow the predator kinematics minus pursuit: integrate the constant
// velocity and apply the boundary policy. Static areas have zero
// velocity and come out unchanged.
func StepAreas(areas []Agent, env *Environment) []Agent {
	next := make([]Agent, len(areas))
	for i, a := range areas {
		next[i] = bounce(env, Agent{Pos: a.Pos.Add(a.Vel), Vel: a.Vel})
	}
	return next
}
