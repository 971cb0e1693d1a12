// Package systems provides ECS systems for the simulation.
package systems

import "github.com/mlange-42/ark/ecs"

// Roster is the fixed iteration order of a population's agents.
// Every system walks agents in this order so random draws are reproducible.
type Roster struct {
	Males   []ecs.Entity
	Females []ecs.Entity
}

// All returns males followed by females.
func (r Roster) All() []ecs.Entity {
	all := make([]ecs.Entity, 0, len(r.Males)+len(r.Females))
	all = append(all, r.Males...)
	return append(all, r.Females...)
}

// Len returns the total number of agents.
func (r Roster) Len() int {
	return len(r.Males) + len(r.Females)
}
