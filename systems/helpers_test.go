package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/courtship/components"
)

// testPop builds a world with agents at fixed positions.
type testPop struct {
	world      *ecs.World
	roster     Roster
	posMap     *ecs.Map[components.Position]
	partnerMap *ecs.Map[components.Partner]
	originMap  *ecs.Map[components.Origin]
	meetMap    *ecs.Map[components.Meetings]
}

func newTestPop(males, females []components.Position) *testPop {
	w := ecs.NewWorld()
	mapper := ecs.NewMap6[
		components.Gender,
		components.Position,
		components.Partner,
		components.Profile,
		components.Origin,
		components.Meetings,
	](w)

	spawn := func(g components.Gender, pos components.Position) ecs.Entity {
		return mapper.NewEntity(&g, &pos, &components.Partner{}, &components.Profile{}, &components.Origin{}, &components.Meetings{})
	}

	tp := &testPop{
		world:      w,
		posMap:     ecs.NewMap[components.Position](w),
		partnerMap: ecs.NewMap[components.Partner](w),
		originMap:  ecs.NewMap[components.Origin](w),
		meetMap:    ecs.NewMap[components.Meetings](w),
	}
	for _, p := range males {
		tp.roster.Males = append(tp.roster.Males, spawn(components.Male, p))
	}
	for _, p := range females {
		tp.roster.Females = append(tp.roster.Females, spawn(components.Female, p))
	}
	return tp
}

func (tp *testPop) link(m, f ecs.Entity) {
	components.Link(tp.partnerMap.Get(m), m, tp.partnerMap.Get(f), f)
}

func (tp *testPop) partnerOf(e ecs.Entity) (ecs.Entity, bool) {
	p := tp.partnerMap.Get(e)
	return p.Entity, p.Has()
}

// checkSymmetry reports the first agent whose partner does not point back.
func (tp *testPop) checkSymmetry() (ecs.Entity, bool) {
	for _, e := range tp.roster.All() {
		p := tp.partnerMap.Get(e)
		if !p.Has() {
			continue
		}
		back := tp.partnerMap.Get(p.Entity)
		if !back.Has() || back.Entity != e {
			return e, false
		}
	}
	return ecs.Entity{}, true
}
