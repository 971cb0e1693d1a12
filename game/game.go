// Package game is the graphical front end: two arenas side by side and the
// comparative pair-count curve. It only reads driver snapshots.
package game

import (
	"github.com/pthm-cable/courtship/sim"
	"github.com/pthm-cable/courtship/telemetry"
	"github.com/pthm-cable/courtship/ui"
)

// Options configures the graphical front end.
type Options struct {
	Width         int
	Height        int
	DaysPerSecond float64
	OnFrame       func(sim.Frame) // Called after every simulated day
}

// Game holds the presentation state.
type Game struct {
	driver  *sim.Driver
	onFrame func(sim.Frame)

	noApp, app         sim.Snapshot
	noAppHist, appHist []int
	stats              telemetry.DayStats
	haveStats          bool
	statsPanel         *ui.StatsPanel

	paused        bool
	stepRequested bool
	daysPerSecond float32
	accum         float32

	width, height float32
	maxPairs      int
}

// NewGame creates a game around a driver.
func NewGame(d *sim.Driver, opts Options) *Game {
	g := &Game{
		driver:        d,
		onFrame:       opts.OnFrame,
		daysPerSecond: float32(opts.DaysPerSecond),
		width:         float32(opts.Width),
		height:        float32(opts.Height),
		maxPairs:      d.Config().Derived.MaxPairs,
		statsPanel:    ui.NewStatsPanel(0, 0, statsPanelW),
	}
	if g.daysPerSecond <= 0 {
		g.daysPerSecond = 10
	}
	g.noApp, g.app = d.Current()
	return g
}

// Done reports whether the run has finished.
func (g *Game) Done() bool {
	return g.driver.Done()
}

// Update advances the simulation according to elapsed time.
func (g *Game) Update(dt float32) {
	g.handleInput()

	if g.stepRequested {
		g.stepRequested = false
		g.step()
		return
	}
	if g.paused || g.driver.Done() {
		return
	}

	g.accum += dt * g.daysPerSecond
	for g.accum >= 1 {
		g.accum--
		if !g.step() {
			g.accum = 0
			return
		}
	}
}

// step simulates one day and refreshes the displayed state.
func (g *Game) step() bool {
	frame, ok := g.driver.Step()
	if !ok {
		return false
	}
	g.noApp, g.app = frame.NoApp, frame.App
	g.noAppHist, g.appHist = g.driver.Histories()
	g.stats, g.haveStats = frame.Stats, true
	if g.onFrame != nil {
		g.onFrame(frame)
	}
	return true
}
