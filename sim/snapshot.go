package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/courtship/components"
	"github.com/pthm-cable/courtship/telemetry"
)

// AgentState is one agent as seen by the presentation layer.
type AgentState struct {
	Position        components.Position
	Gender          components.Gender
	Status          components.Status
	MetAtUniversity bool
	MeetCount       int
}

// Edge connects a visible pair, male first.
type Edge struct {
	From, To components.Position
}

// Snapshot is an immutable description of a population at the end of a day.
type Snapshot struct {
	Day     int
	UsesApp bool
	Agents  []AgentState // Males then females, in roster order
	Edges   []Edge
	Pairs   int
}

// Snapshot captures the population's current state.
//
// Every pair counts toward Pairs. Edges hold every pair when the app is not
// in use; with the app only pairs where both partners met at university
// are drawn.
func (p *Population) Snapshot(day int) Snapshot {
	snap := Snapshot{
		Day:     day,
		UsesApp: p.UsesApp,
		Agents:  make([]AgentState, 0, p.roster.Len()),
	}

	paired := 0
	add := func(e ecs.Entity) {
		partner := p.partnerMap.Get(e)
		gender := *p.genderMap.Get(e)
		if partner.Has() {
			paired++
		}
		snap.Agents = append(snap.Agents, AgentState{
			Position:        *p.posMap.Get(e),
			Gender:          gender,
			Status:          components.Classify(gender, partner.Has()),
			MetAtUniversity: p.originMap.Get(e).MetAtUniversity,
			MeetCount:       p.meetMap.Get(e).Count,
		})
	}
	for _, e := range p.roster.Males {
		add(e)
	}
	for _, e := range p.roster.Females {
		add(e)
	}
	snap.Pairs = paired / 2

	for _, m := range p.roster.Males {
		partner := p.partnerMap.Get(m)
		if !partner.Has() || !p.edgeVisible(m, partner.Entity) {
			continue
		}
		snap.Edges = append(snap.Edges, Edge{
			From: *p.posMap.Get(m),
			To:   *p.posMap.Get(partner.Entity),
		})
	}

	return snap
}

func (p *Population) edgeVisible(m, f ecs.Entity) bool {
	if !p.UsesApp {
		return true
	}
	return p.originMap.Get(m).MetAtUniversity && p.originMap.Get(f).MetAtUniversity
}

// Records converts the snapshot into rows for the agent table.
func (s Snapshot) Records(label string) []telemetry.AgentRecord {
	records := make([]telemetry.AgentRecord, len(s.Agents))
	for i, a := range s.Agents {
		records[i] = telemetry.AgentRecord{
			Population:      label,
			Index:           i,
			Gender:          a.Gender.String(),
			X:               a.Position.X,
			Y:               a.Position.Y,
			Status:          a.Status.String(),
			MetAtUniversity: a.MetAtUniversity,
		}
	}
	return records
}
