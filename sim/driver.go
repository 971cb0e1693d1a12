package sim

import (
	"math/rand"

	"github.com/pthm-cable/courtship/config"
	"github.com/pthm-cable/courtship/telemetry"
)

// Population labels used in output.
const (
	LabelNoApp = telemetry.LabelNoApp
	LabelApp   = telemetry.LabelApp
)

// SimulationState is everything that changes during a run.
type SimulationState struct {
	Day       int // Next day to simulate
	TotalDays int
	NoApp     *Population
	App       *Population

	rng *rand.Rand
}

// Frame is the output of one simulated day.
type Frame struct {
	Day   int
	NoApp Snapshot
	App   Snapshot
	Stats telemetry.DayStats
}

// Result is the output of a complete run.
type Result struct {
	Frames       []Frame
	NoAppHistory []int
	AppHistory   []int
}

// Driver advances both populations in lockstep from a single random source.
type Driver struct {
	cfg       *config.Config
	seed      int64
	state     *SimulationState
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
}

// NewDriver validates cfg and seeds both populations, no-app first.
func NewDriver(cfg *config.Config, seed int64) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	state := &SimulationState{
		TotalDays: cfg.Run.TotalDays,
		rng:       rng,
	}
	state.NoApp = NewPopulation(cfg, rng, false)
	state.App = NewPopulation(cfg, rng, true)

	perf := telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	state.NoApp.perf = perf
	state.App.perf = perf

	return &Driver{
		cfg:       cfg,
		seed:      seed,
		state:     state,
		collector: telemetry.NewCollector(),
		perf:      perf,
	}, nil
}

// Config returns the validated configuration the driver runs with.
func (d *Driver) Config() *config.Config {
	return d.cfg
}

// Seed returns the seed the driver was created with.
func (d *Driver) Seed() int64 {
	return d.seed
}

// Day returns the number of completed days.
func (d *Driver) Day() int {
	return d.state.Day
}

// TotalDays returns the run length.
func (d *Driver) TotalDays() int {
	return d.state.TotalDays
}

// Done reports whether every day has been simulated.
func (d *Driver) Done() bool {
	return d.state.Day >= d.state.TotalDays
}

// Step simulates one day for both populations. It returns false once the
// run is complete.
func (d *Driver) Step() (Frame, bool) {
	if d.Done() {
		return Frame{}, false
	}

	s := d.state
	day := s.Day

	d.perf.StartDay()
	noApp := s.NoApp.Step(s.rng, day)
	d.record(false, noApp)
	app := s.App.Step(s.rng, day)
	d.record(true, app)
	d.perf.EndDay()

	frame := Frame{
		Day:   day,
		NoApp: noApp.Snapshot,
		App:   app.Snapshot,
		Stats: d.collector.Flush(day, counts(noApp.Snapshot), counts(app.Snapshot)),
	}

	s.Day++
	return frame, true
}

func (d *Driver) record(usesApp bool, r DayResult) {
	d.collector.RecordMeetings(usesApp, r.Meetings)
	d.collector.RecordFormed(usesApp, r.Formed)
	d.collector.RecordDissolved(usesApp, r.Dissolved)
}

func counts(s Snapshot) telemetry.PopulationCounts {
	return telemetry.PopulationCounts{Pairs: s.Pairs, Visible: len(s.Edges)}
}

// Perf returns the phase timing collector shared by both populations.
func (d *Driver) Perf() *telemetry.PerfCollector {
	return d.perf
}

// Current returns snapshots of both populations without advancing.
// Before the first step this is the seeded state.
func (d *Driver) Current() (noApp, app Snapshot) {
	return d.state.NoApp.Snapshot(d.state.Day), d.state.App.Snapshot(d.state.Day)
}

// Histories returns copies of both pair-count series.
func (d *Driver) Histories() (noApp, app []int) {
	return d.state.NoApp.History(), d.state.App.History()
}

// Run simulates all remaining days.
func (d *Driver) Run() Result {
	var res Result
	for {
		frame, ok := d.Step()
		if !ok {
			break
		}
		res.Frames = append(res.Frames, frame)
	}
	res.NoAppHistory, res.AppHistory = d.Histories()
	return res
}

// Run validates cfg and runs a complete simulation.
func Run(cfg *config.Config, seed int64) (Result, error) {
	d, err := NewDriver(cfg, seed)
	if err != nil {
		return Result{}, err
	}
	return d.Run(), nil
}
