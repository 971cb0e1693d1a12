package systems

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/courtship/components"
)

// MovementSystem moves every agent one random step per day.
type MovementSystem struct {
	posMap    *ecs.Map[components.Position]
	speed     float64
	spaceSize float64
	lastDay   int
}

// NewMovementSystem creates a movement system.
// Agents stay put on lastDay so the final frame is stationary.
func NewMovementSystem(w *ecs.World, speed, spaceSize float64, lastDay int) *MovementSystem {
	return &MovementSystem{
		posMap:    ecs.NewMap[components.Position](w),
		speed:     speed,
		spaceSize: spaceSize,
		lastDay:   lastDay,
	}
}

// Update moves all agents in roster order. One heading is drawn per agent.
func (s *MovementSystem) Update(rng *rand.Rand, roster Roster, day int) {
	if day >= s.lastDay {
		return
	}
	for _, e := range roster.Males {
		s.move(rng, e)
	}
	for _, e := range roster.Females {
		s.move(rng, e)
	}
}

func (s *MovementSystem) move(rng *rand.Rand, e ecs.Entity) {
	pos := s.posMap.Get(e)
	heading := rng.Float64() * 2 * math.Pi
	*pos = Step(*pos, heading, s.speed, s.spaceSize)
}

// Step advances pos by speed along heading and wraps into the arena.
func Step(pos components.Position, heading, speed, spaceSize float64) components.Position {
	dir := r2.Vec{X: math.Cos(heading), Y: math.Sin(heading)}
	next := r2.Add(pos.Vec(), r2.Scale(speed, dir))
	return WrapPosition(next, spaceSize)
}
