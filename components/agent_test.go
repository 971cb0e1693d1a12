package components

import (
	"testing"

	"github.com/mlange-42/ark/ecs"
)

func TestLinkUnlinkSymmetric(t *testing.T) {
	w := ecs.NewWorld()
	m := ecs.NewMap[Partner](w)
	a := m.NewEntity(&Partner{})
	b := m.NewEntity(&Partner{})

	pa, pb := m.Get(a), m.Get(b)
	Link(pa, a, pb, b)

	if !pa.Has() || !pb.Has() {
		t.Fatal("both sides should be paired after Link")
	}
	if pa.Entity != b || pb.Entity != a {
		t.Errorf("partner references not symmetric: a->%v b->%v", pa.Entity, pb.Entity)
	}

	Unlink(pa, pb)
	if pa.Has() || pb.Has() {
		t.Error("both sides should be unpaired after Unlink")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		gender Gender
		paired bool
		want   Status
	}{
		{Male, true, StatusPaired},
		{Female, true, StatusPaired},
		{Male, false, StatusUnpairedMale},
		{Female, false, StatusUnpairedFemale},
	}
	for _, tt := range tests {
		if got := Classify(tt.gender, tt.paired); got != tt.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tt.gender, tt.paired, got, tt.want)
		}
	}
}

func TestStatusString(t *testing.T) {
	if StatusPaired.String() != "paired" {
		t.Errorf("StatusPaired.String() = %q", StatusPaired.String())
	}
	if Status(99).String() != "Unknown" {
		t.Errorf("out-of-range status should be Unknown, got %q", Status(99).String())
	}
}
