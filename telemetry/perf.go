package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one simulated day.
const (
	PhaseMovement     = "movement"
	PhaseMeetingReset = "meeting_reset"
	PhasePairing      = "pairing"
	PhaseDissolution  = "dissolution"
	PhaseSnapshot     = "snapshot"
)

// phases lists every phase in the order they run.
var phases = []string{PhaseMovement, PhaseMeetingReset, PhasePairing, PhaseDissolution, PhaseSnapshot}

// PerfSample holds timing data for a single day.
type PerfSample struct {
	DayDuration time.Duration
	Phases      map[string]time.Duration
}

// PerfCollector tracks performance metrics over a rolling window of days.
// Both populations report into the same day, so phase times are their sum.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	dayStart      time.Time
	phaseStart    time.Time
	lastPhase     string

	// Frame timing (for graphics mode)
	lastFrameTime time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of days to average over.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 30
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartDay begins timing a new simulated day.
func (p *PerfCollector) StartDay() {
	p.dayStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, ending the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndPhase closes the running phase without starting another.
func (p *PerfCollector) EndPhase() {
	if p.lastPhase == "" {
		return
	}
	p.currentPhases[p.lastPhase] += time.Since(p.phaseStart)
	p.lastPhase = ""
}

// EndDay finishes timing the current day and records the sample.
func (p *PerfCollector) EndDay() {
	p.EndPhase()

	p.samples[p.writeIndex] = PerfSample{
		DayDuration: time.Since(p.dayStart),
		Phases:      p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrameTime.IsZero() {
		p.frameDuration = now.Sub(p.lastFrameTime)
	}
	p.lastFrameTime = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgDayDuration time.Duration
	MinDayDuration time.Duration
	MaxDayDuration time.Duration

	// Phase breakdown (average durations and share of the day)
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	DaysPerSecond float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	var fps float64
	if p.frameDuration > 0 {
		fps = float64(time.Second) / float64(p.frameDuration)
	}

	stats := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frameDuration,
		FPS:           fps,
	}
	if p.sampleCount == 0 {
		return stats
	}

	var total time.Duration
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s.DayDuration

		if i == 0 || s.DayDuration < stats.MinDayDuration {
			stats.MinDayDuration = s.DayDuration
		}
		if s.DayDuration > stats.MaxDayDuration {
			stats.MaxDayDuration = s.DayDuration
		}
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	n := time.Duration(p.sampleCount)
	stats.AvgDayDuration = total / n
	for phase, sum := range phaseSum {
		stats.PhaseAvg[phase] = sum / n
		if stats.AvgDayDuration > 0 {
			stats.PhasePct[phase] = float64(stats.PhaseAvg[phase]) / float64(stats.AvgDayDuration) * 100
		}
	}
	if stats.AvgDayDuration > 0 {
		stats.DaysPerSecond = float64(time.Second) / float64(stats.AvgDayDuration)
	}

	return stats
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf_stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_day_us", s.AvgDayDuration.Microseconds()),
		slog.Int64("min_day_us", s.MinDayDuration.Microseconds()),
		slog.Int64("max_day_us", s.MaxDayDuration.Microseconds()),
		slog.Float64("days_per_sec", s.DaysPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Day             int     `csv:"day"`
	AvgDayUS        int64   `csv:"avg_day_us"`
	MinDayUS        int64   `csv:"min_day_us"`
	MaxDayUS        int64   `csv:"max_day_us"`
	DaysPerSec      float64 `csv:"days_per_sec"`
	FPS             float64 `csv:"fps"`
	MovementPct     float64 `csv:"movement_pct"`
	MeetingResetPct float64 `csv:"meeting_reset_pct"`
	PairingPct      float64 `csv:"pairing_pct"`
	DissolutionPct  float64 `csv:"dissolution_pct"`
	SnapshotPct     float64 `csv:"snapshot_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(day int) PerfStatsCSV {
	return PerfStatsCSV{
		Day:             day,
		AvgDayUS:        s.AvgDayDuration.Microseconds(),
		MinDayUS:        s.MinDayDuration.Microseconds(),
		MaxDayUS:        s.MaxDayDuration.Microseconds(),
		DaysPerSec:      s.DaysPerSecond,
		FPS:             s.FPS,
		MovementPct:     s.PhasePct[PhaseMovement],
		MeetingResetPct: s.PhasePct[PhaseMeetingReset],
		PairingPct:      s.PhasePct[PhasePairing],
		DissolutionPct:  s.PhasePct[PhaseDissolution],
		SnapshotPct:     s.PhasePct[PhaseSnapshot],
	}
}
