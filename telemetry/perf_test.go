package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorPhases(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartDay()
		pc.StartPhase(PhaseMovement)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhasePairing)
		time.Sleep(200 * time.Microsecond)
		pc.EndPhase()
		pc.EndDay()
	}

	stats := pc.Stats()
	if stats.AvgDayDuration <= 0 {
		t.Error("expected positive average day duration")
	}
	for _, phase := range []string{PhaseMovement, PhasePairing} {
		if stats.PhaseAvg[phase] <= 0 {
			t.Errorf("expected %s to be tracked", phase)
		}
	}
	if _, ok := stats.PhaseAvg[PhaseDissolution]; ok {
		t.Error("dissolution never ran and should not be reported")
	}
	if stats.PhasePct[PhasePairing] > 100 {
		t.Errorf("pairing share %v%% exceeds the whole day", stats.PhasePct[PhasePairing])
	}
}

func TestPerfCollectorSumsRepeatedPhases(t *testing.T) {
	pc := NewPerfCollector(1)

	// Two populations run the same phase within one day
	pc.StartDay()
	pc.StartPhase(PhasePairing)
	time.Sleep(200 * time.Microsecond)
	pc.EndPhase()
	pc.StartPhase(PhasePairing)
	time.Sleep(200 * time.Microsecond)
	pc.EndPhase()
	pc.EndDay()

	if got := pc.Stats().PhaseAvg[PhasePairing]; got < 400*time.Microsecond {
		t.Errorf("pairing = %v, want both runs summed (>= 400us)", got)
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)
	for i := 0; i < 12; i++ {
		pc.StartDay()
		pc.StartPhase(PhaseSnapshot)
		pc.EndDay()
	}

	if pc.sampleCount != 5 {
		t.Errorf("sampleCount = %d, want window size 5", pc.sampleCount)
	}
	stats := pc.Stats()
	if stats.MinDayDuration > stats.AvgDayDuration || stats.AvgDayDuration > stats.MaxDayDuration {
		t.Errorf("min/avg/max out of order: %v %v %v", stats.MinDayDuration, stats.AvgDayDuration, stats.MaxDayDuration)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	stats := NewPerfCollector(0).Stats()
	if stats.AvgDayDuration != 0 || stats.DaysPerSecond != 0 {
		t.Errorf("empty collector should report zeros, got %+v", stats)
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("maps should be non-nil")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgDayDuration: 1500 * time.Microsecond,
		PhasePct: map[string]float64{
			PhaseMovement:    20,
			PhasePairing:     70,
			PhaseDissolution: 10,
		},
	}
	row := s.ToCSV(42)
	if row.Day != 42 || row.AvgDayUS != 1500 {
		t.Errorf("row = %+v", row)
	}
	if row.MovementPct != 20 || row.PairingPct != 70 || row.DissolutionPct != 10 || row.SnapshotPct != 0 {
		t.Errorf("phase columns = %+v", row)
	}
}
