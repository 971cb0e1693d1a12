package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/courtship/components"
)

// DissolutionSystem breaks up existing pairs at random.
type DissolutionSystem struct {
	partnerMap *ecs.Map[components.Partner]
	breakProb  float64
}

// NewDissolutionSystem creates a dissolution system.
func NewDissolutionSystem(w *ecs.World, breakProb float64) *DissolutionSystem {
	return &DissolutionSystem{
		partnerMap: ecs.NewMap[components.Partner](w),
		breakProb:  breakProb,
	}
}

// Update rolls once per paired male and returns the number of pairs dissolved.
// Females are not rolled, so each pair breaks with exactly breakProb per day.
func (s *DissolutionSystem) Update(rng *rand.Rand, roster Roster) int {
	dissolved := 0
	for _, m := range roster.Males {
		p := s.partnerMap.Get(m)
		if !p.Has() {
			continue
		}
		if rng.Float64() < s.breakProb {
			components.Unlink(p, s.partnerMap.Get(p.Entity))
			dissolved++
		}
	}
	return dissolved
}
