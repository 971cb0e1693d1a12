// Package telemetry collects per-day statistics and writes run output.
package telemetry

// counters holds one population's events for the current day.
type counters struct {
	meetings  int
	formed    int
	dissolved int
}

// Collector accumulates events within a day and produces DayStats.
type Collector struct {
	noApp counters
	app   counters
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) pick(usesApp bool) *counters {
	if usesApp {
		return &c.app
	}
	return &c.noApp
}

// RecordMeetings records candidate encounters for a population.
func (c *Collector) RecordMeetings(usesApp bool, n int) {
	c.pick(usesApp).meetings += n
}

// RecordFormed records newly formed pairs.
func (c *Collector) RecordFormed(usesApp bool, n int) {
	c.pick(usesApp).formed += n
}

// RecordDissolved records dissolved pairs.
func (c *Collector) RecordDissolved(usesApp bool, n int) {
	c.pick(usesApp).dissolved += n
}

// PopulationCounts holds end-of-day state for one population.
type PopulationCounts struct {
	Pairs   int // All pairs
	Visible int // Pairs drawn with an edge
}

// Flush produces a DayStats and resets counters for the next day.
func (c *Collector) Flush(day int, noApp, app PopulationCounts) DayStats {
	stats := DayStats{
		Day: day,

		PairsNoApp:   noApp.Pairs,
		PairsApp:     app.Pairs,
		VisibleNoApp: noApp.Visible,
		VisibleApp:   app.Visible,

		MeetingsNoApp: c.noApp.meetings,
		MeetingsApp:   c.app.meetings,

		FormedNoApp:    c.noApp.formed,
		FormedApp:      c.app.formed,
		DissolvedNoApp: c.noApp.dissolved,
		DissolvedApp:   c.app.dissolved,
	}

	c.noApp = counters{}
	c.app = counters{}

	return stats
}
