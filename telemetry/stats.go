package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DayStats holds both populations' statistics for one simulated day.
type DayStats struct {
	Day int `csv:"day"`

	// Pair counts after dissolution
	PairsNoApp int `csv:"pairs_noapp"`
	PairsApp   int `csv:"pairs_app"`

	// Pairs drawn with an edge
	VisibleNoApp int `csv:"visible_noapp"`
	VisibleApp   int `csv:"visible_app"`

	// Events during the day
	MeetingsNoApp  int `csv:"meetings_noapp"`
	MeetingsApp    int `csv:"meetings_app"`
	FormedNoApp    int `csv:"formed_noapp"`
	FormedApp      int `csv:"formed_app"`
	DissolvedNoApp int `csv:"dissolved_noapp"`
	DissolvedApp   int `csv:"dissolved_app"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s DayStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("day", s.Day),
		slog.Int("pairs_noapp", s.PairsNoApp),
		slog.Int("pairs_app", s.PairsApp),
		slog.Int("visible_noapp", s.VisibleNoApp),
		slog.Int("visible_app", s.VisibleApp),
		slog.Int("meetings_noapp", s.MeetingsNoApp),
		slog.Int("meetings_app", s.MeetingsApp),
		slog.Int("formed_noapp", s.FormedNoApp),
		slog.Int("formed_app", s.FormedApp),
		slog.Int("dissolved_noapp", s.DissolvedNoApp),
		slog.Int("dissolved_app", s.DissolvedApp),
	)
}

// LogStats logs the day stats using slog.
func (s DayStats) LogStats() {
	slog.Info("stats", "day_stats", s)
}

// SeriesSummary describes one pair-count history.
type SeriesSummary struct {
	Days  int
	Final int
	Peak  int
	Mean  float64
}

// Summarize reduces a pair-count history. An empty history yields zeros.
func Summarize(history []int) SeriesSummary {
	if len(history) == 0 {
		return SeriesSummary{}
	}

	values := make([]float64, len(history))
	for i, v := range history {
		values[i] = float64(v)
	}

	return SeriesSummary{
		Days:  len(history),
		Final: history[len(history)-1],
		Peak:  int(floats.Max(values)),
		Mean:  stat.Mean(values, nil),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s SeriesSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("days", s.Days),
		slog.Int("final", s.Final),
		slog.Int("peak", s.Peak),
		slog.Float64("mean", s.Mean),
	)
}
