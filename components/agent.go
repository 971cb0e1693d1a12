// Package components defines ECS components for the simulation.
package components

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"
)

// Gender is fixed by the population slot an agent is created in.
type Gender uint8

const (
	Male Gender = iota
	Female
)

// String returns the display name for a Gender.
func (g Gender) String() string {
	switch g {
	case Male:
		return "M"
	case Female:
		return "F"
	}
	return "?"
}

// Position represents an agent's position in the arena.
type Position struct {
	X, Y float64
}

// Vec returns the position as a gonum vector.
func (p Position) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Partner holds the agent's current pair, if any.
// Mutate only through Link and Unlink so both sides stay in step.
type Partner struct {
	Entity ecs.Entity
	Paired bool
}

// Has reports whether the agent is currently paired.
func (p *Partner) Has() bool {
	return p.Paired
}

// Link pairs a and b symmetrically.
func Link(a *Partner, ae ecs.Entity, b *Partner, be ecs.Entity) {
	a.Entity, a.Paired = be, true
	b.Entity, b.Paired = ae, true
}

// Unlink dissolves the pair between a and b.
func Unlink(a, b *Partner) {
	*a = Partner{}
	*b = Partner{}
}

// Profile holds per-agent attributes drawn once at creation.
// Attractiveness is carried for compatibility; no rule reads it.
type Profile struct {
	Attractiveness float64
}

// Origin records where an agent's seeded relationship began.
type Origin struct {
	MetAtUniversity bool
}

// Meetings counts candidates encountered during the current day.
type Meetings struct {
	Count int
}
