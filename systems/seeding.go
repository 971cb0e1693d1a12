package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/courtship/components"
)

// SeedParams describes the initial population.
type SeedParams struct {
	PerGender int     // Agents of each gender
	Pairs     int     // Pairs formed before day 0
	SpaceSize float64 // Arena side length
	UnivRate  float64 // Chance a seeded pair met at university
}

// Seeder creates agents and their initial relationships.
type Seeder struct {
	mapper *ecs.Map6[
		components.Gender,
		components.Position,
		components.Partner,
		components.Profile,
		components.Origin,
		components.Meetings,
	]
	partnerMap *ecs.Map[components.Partner]
	originMap  *ecs.Map[components.Origin]
}

// NewSeeder creates a seeder for the given world.
func NewSeeder(w *ecs.World) *Seeder {
	return &Seeder{
		mapper: ecs.NewMap6[
			components.Gender,
			components.Position,
			components.Partner,
			components.Profile,
			components.Origin,
			components.Meetings,
		](w),
		partnerMap: ecs.NewMap[components.Partner](w),
		originMap:  ecs.NewMap[components.Origin](w),
	}
}

// Populate creates all males, then all females, then seeds the initial pairs.
// The returned roster carries the shuffled order used for the rest of the run.
func (s *Seeder) Populate(rng *rand.Rand, p SeedParams) Roster {
	roster := Roster{
		Males:   make([]ecs.Entity, p.PerGender),
		Females: make([]ecs.Entity, p.PerGender),
	}
	for i := range roster.Males {
		roster.Males[i] = s.spawn(rng, components.Male, p.SpaceSize)
	}
	for i := range roster.Females {
		roster.Females[i] = s.spawn(rng, components.Female, p.SpaceSize)
	}

	s.seedPairs(rng, roster, p)
	return roster
}

// spawn creates one unpaired agent at a uniformly random position.
func (s *Seeder) spawn(rng *rand.Rand, g components.Gender, spaceSize float64) ecs.Entity {
	pos := components.Position{
		X: rng.Float64() * spaceSize,
		Y: rng.Float64() * spaceSize,
	}
	profile := components.Profile{Attractiveness: rng.Float64()}
	return s.mapper.NewEntity(&g, &pos, &components.Partner{}, &profile, &components.Origin{}, &components.Meetings{})
}

// seedPairs shuffles both rosters in place and pairs the first p.Pairs of each.
func (s *Seeder) seedPairs(rng *rand.Rand, roster Roster, p SeedParams) {
	males, females := roster.Males, roster.Females
	rng.Shuffle(len(males), func(i, j int) { males[i], males[j] = males[j], males[i] })
	rng.Shuffle(len(females), func(i, j int) { females[i], females[j] = females[j], females[i] })

	n := min(p.Pairs, len(males), len(females))
	for i := 0; i < n; i++ {
		m, f := males[i], females[i]
		components.Link(s.partnerMap.Get(m), m, s.partnerMap.Get(f), f)
		if rng.Float64() < p.UnivRate {
			s.originMap.Get(m).MetAtUniversity = true
			s.originMap.Get(f).MetAtUniversity = true
		}
	}
}
