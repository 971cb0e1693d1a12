// Package sim runs the two courtship populations side by side.
package sim

import (
	"math/rand"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/courtship/components"
	"github.com/pthm-cable/courtship/config"
	"github.com/pthm-cable/courtship/systems"
	"github.com/pthm-cable/courtship/telemetry"
)

// Population is one scenario: a fixed set of agents in their own world,
// plus the pair-count history.
type Population struct {
	UsesApp bool

	world  *ecs.World
	roster systems.Roster

	movement    *systems.MovementSystem
	pairing     *systems.PairingSystem
	dissolution *systems.DissolutionSystem
	census      *systems.CensusSystem

	posMap     *ecs.Map[components.Position]
	genderMap  *ecs.Map[components.Gender]
	partnerMap *ecs.Map[components.Partner]
	originMap  *ecs.Map[components.Origin]
	meetMap    *ecs.Map[components.Meetings]

	history []int

	perf *telemetry.PerfCollector // optional phase timing
}

// DayResult summarises one population's day.
type DayResult struct {
	Snapshot  Snapshot
	Meetings  int
	Formed    int
	Dissolved int
}

// NewPopulation creates and seeds a population. cfg must be validated.
func NewPopulation(cfg *config.Config, rng *rand.Rand, usesApp bool) *Population {
	w := ecs.NewWorld()

	univRate := cfg.University.MeetRateNoApp
	if usesApp {
		univRate = cfg.University.MeetRateApp
	}

	p := &Population{
		UsesApp: usesApp,
		world:   w,

		movement: systems.NewMovementSystem(w, cfg.Movement.Speed, cfg.Arena.SpaceSize, cfg.Run.TotalDays-1),
		pairing: systems.NewPairingSystem(w, systems.PairingParams{
			MeetDistance: cfg.Pairing.MeetDistance,
			SpaceSize:    cfg.Arena.SpaceSize,
			WrapDistance: cfg.Pairing.WrapDistance,
			StrictApp:    cfg.Pairing.StrictApp,
		}),
		dissolution: systems.NewDissolutionSystem(w, cfg.Dissolution.BreakProbability),
		census:      systems.NewCensusSystem(w),

		posMap:     ecs.NewMap[components.Position](w),
		genderMap:  ecs.NewMap[components.Gender](w),
		partnerMap: ecs.NewMap[components.Partner](w),
		originMap:  ecs.NewMap[components.Origin](w),
		meetMap:    ecs.NewMap[components.Meetings](w),

		history: make([]int, 0, max(cfg.Run.TotalDays, 0)),
	}

	p.roster = systems.NewSeeder(w).Populate(rng, systems.SeedParams{
		PerGender: cfg.Derived.AgentsPerGender,
		Pairs:     cfg.Derived.InitialPairs,
		SpaceSize: cfg.Arena.SpaceSize,
		UnivRate:  univRate,
	})

	return p
}

// Step runs one day: movement, meeting reset, pairing, dissolution,
// snapshot, then the history append. The phases must not be reordered.
func (p *Population) Step(rng *rand.Rand, day int) DayResult {
	p.phase(telemetry.PhaseMovement)
	p.movement.Update(rng, p.roster, day)
	p.phase(telemetry.PhaseMeetingReset)
	p.census.ResetMeetings()
	p.phase(telemetry.PhasePairing)
	paired := p.pairing.Update(rng, p.roster, p.UsesApp)
	p.phase(telemetry.PhaseDissolution)
	dissolved := p.dissolution.Update(rng, p.roster)

	p.phase(telemetry.PhaseSnapshot)
	snap := p.Snapshot(day)
	p.history = append(p.history, snap.Pairs)
	if p.perf != nil {
		p.perf.EndPhase()
	}

	return DayResult{
		Snapshot:  snap,
		Meetings:  paired.Meetings,
		Formed:    paired.Formed,
		Dissolved: dissolved,
	}
}

func (p *Population) phase(name string) {
	if p.perf != nil {
		p.perf.StartPhase(name)
	}
}

// PairCount returns the current number of pairs.
func (p *Population) PairCount() int {
	return p.census.CountPairs()
}

// History returns a copy of the pair-count series, one entry per completed day.
func (p *Population) History() []int {
	return slices.Clone(p.history)
}

// NumMales returns the number of male agents.
func (p *Population) NumMales() int {
	return len(p.roster.Males)
}

// NumFemales returns the number of female agents.
func (p *Population) NumFemales() int {
	return len(p.roster.Females)
}
