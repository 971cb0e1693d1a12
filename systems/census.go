package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/courtship/components"
)

// CensusSystem holds order-independent whole-population passes.
type CensusSystem struct {
	meetFilter    ecs.Filter1[components.Meetings]
	partnerFilter ecs.Filter1[components.Partner]
}

// NewCensusSystem creates a census system.
func NewCensusSystem(w *ecs.World) *CensusSystem {
	return &CensusSystem{
		meetFilter:    *ecs.NewFilter1[components.Meetings](w),
		partnerFilter: *ecs.NewFilter1[components.Partner](w),
	}
}

// ResetMeetings zeroes every agent's daily meeting counter.
func (s *CensusSystem) ResetMeetings() {
	query := s.meetFilter.Query()
	for query.Next() {
		m := query.Get()
		m.Count = 0
	}
}

// CountPairs returns the number of paired agents divided by two.
func (s *CensusSystem) CountPairs() int {
	paired := 0
	query := s.partnerFilter.Query()
	for query.Next() {
		if query.Get().Has() {
			paired++
		}
	}
	return paired / 2
}
