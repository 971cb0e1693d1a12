package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/courtship/components"
)

func pairedPop(n int) *testPop {
	males := make([]components.Position, n)
	females := make([]components.Position, n)
	tp := newTestPop(males, females)
	for i := 0; i < n; i++ {
		tp.link(tp.roster.Males[i], tp.roster.Females[i])
	}
	return tp
}

func TestDissolutionZeroProbability(t *testing.T) {
	tp := pairedPop(10)
	sys := NewDissolutionSystem(tp.world, 0)
	rng := rand.New(rand.NewSource(1))

	for day := 0; day < 100; day++ {
		if n := sys.Update(rng, tp.roster); n != 0 {
			t.Fatalf("day %d: dissolved %d pairs with probability 0", day, n)
		}
	}
	if got := NewCensusSystem(tp.world).CountPairs(); got != 10 {
		t.Errorf("pairs = %d, want 10", got)
	}
}

func TestDissolutionCertain(t *testing.T) {
	tp := pairedPop(6)
	n := NewDissolutionSystem(tp.world, 1).Update(rand.New(rand.NewSource(1)), tp.roster)

	if n != 6 {
		t.Errorf("dissolved = %d, want 6", n)
	}
	for _, e := range tp.roster.All() {
		if _, ok := tp.partnerOf(e); ok {
			t.Error("agent still paired after certain dissolution")
		}
	}
}

func TestDissolutionSymmetricAndNeverPairs(t *testing.T) {
	tp := pairedPop(40)
	sys := NewDissolutionSystem(tp.world, 0.3)
	census := NewCensusSystem(tp.world)
	rng := rand.New(rand.NewSource(9))

	prev := census.CountPairs()
	for day := 0; day < 10; day++ {
		n := sys.Update(rng, tp.roster)
		got := census.CountPairs()
		if got != prev-n {
			t.Fatalf("day %d: pairs %d, want %d - %d", day, got, prev, n)
		}
		if _, ok := tp.checkSymmetry(); !ok {
			t.Fatalf("day %d: partner symmetry broken", day)
		}
		prev = got
	}
}

func TestDissolutionRatePerPair(t *testing.T) {
	const pairs = 2000
	tp := pairedPop(pairs)
	n := NewDissolutionSystem(tp.world, 0.25).Update(rand.New(rand.NewSource(21)), tp.roster)

	// Rolled once per pair, not once per agent
	rate := float64(n) / pairs
	if rate < 0.2 || rate > 0.3 {
		t.Errorf("dissolution rate = %.3f, want about 0.25", rate)
	}
}
