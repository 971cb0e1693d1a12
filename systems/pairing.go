package systems

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/courtship/components"
)

// PairingParams configures pair formation.
type PairingParams struct {
	MeetDistance float64
	SpaceSize    float64
	WrapDistance bool // Shortest toroidal distance instead of raw coordinates
	StrictApp    bool // App population only pairs agents who both met at university
}

// PairingResult summarises one day of pair formation.
type PairingResult struct {
	Meetings int // Male/female candidate encounters
	Formed   int // New pairs
}

// PairingSystem forms pairs between nearby unpaired agents.
type PairingSystem struct {
	posMap     *ecs.Map[components.Position]
	partnerMap *ecs.Map[components.Partner]
	originMap  *ecs.Map[components.Origin]
	meetMap    *ecs.Map[components.Meetings]
	params     PairingParams

	candidates []ecs.Entity
}

// NewPairingSystem creates a pairing system.
func NewPairingSystem(w *ecs.World, params PairingParams) *PairingSystem {
	return &PairingSystem{
		posMap:     ecs.NewMap[components.Position](w),
		partnerMap: ecs.NewMap[components.Partner](w),
		originMap:  ecs.NewMap[components.Origin](w),
		meetMap:    ecs.NewMap[components.Meetings](w),
		params:     params,
	}
}

// Update runs one day of pair formation.
//
// Males are visited in roster order. Each unpaired male scans every female
// still unpaired at that moment; females within meeting distance are
// candidates and count a meeting on both sides. One candidate is chosen
// uniformly at random. A female claimed by an earlier male is skipped by
// later ones, so roster order matters.
//
// usesApp has no effect on formation unless StrictApp is set.
func (s *PairingSystem) Update(rng *rand.Rand, roster Roster, usesApp bool) PairingResult {
	var res PairingResult
	strict := usesApp && s.params.StrictApp

	for _, m := range roster.Males {
		mPartner := s.partnerMap.Get(m)
		if mPartner.Has() {
			continue
		}
		mPos := s.posMap.Get(m)
		mMeet := s.meetMap.Get(m)
		mMetAtUniv := s.originMap.Get(m).MetAtUniversity

		s.candidates = s.candidates[:0]
		for _, f := range roster.Females {
			if s.partnerMap.Get(f).Has() {
				continue
			}
			if Distance(*mPos, *s.posMap.Get(f), s.params.SpaceSize, s.params.WrapDistance) >= s.params.MeetDistance {
				continue
			}
			mMeet.Count++
			s.meetMap.Get(f).Count++
			res.Meetings++

			if strict && !(mMetAtUniv && s.originMap.Get(f).MetAtUniversity) {
				continue
			}
			s.candidates = append(s.candidates, f)
		}

		if len(s.candidates) == 0 {
			continue
		}
		f := s.candidates[rng.Intn(len(s.candidates))]
		components.Link(mPartner, m, s.partnerMap.Get(f), f)
		res.Formed++
	}

	return res
}
