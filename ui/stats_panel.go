package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/courtship/telemetry"
)

// PopulationRows is the per-population slice of a day's stats.
type PopulationRows struct {
	Title     string
	Color     rl.Color
	Pairs     int
	Visible   int
	Meetings  int
	Formed    int
	Dissolved int
}

// SplitDayStats separates a DayStats into rows for each population.
func SplitDayStats(s telemetry.DayStats, noAppColor, appColor rl.Color) [2]PopulationRows {
	return [2]PopulationRows{
		{
			Title: "No app", Color: noAppColor,
			Pairs: s.PairsNoApp, Visible: s.VisibleNoApp,
			Meetings: s.MeetingsNoApp, Formed: s.FormedNoApp, Dissolved: s.DissolvedNoApp,
		},
		{
			Title: "With app", Color: appColor,
			Pairs: s.PairsApp, Visible: s.VisibleApp,
			Meetings: s.MeetingsApp, Formed: s.FormedApp, Dissolved: s.DissolvedApp,
		},
	}
}

// StatsPanel renders the latest day's statistics.
type StatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewStatsPanel creates a new stats panel.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition moves the panel.
func (p *StatsPanel) SetPosition(x, y int32) {
	p.x, p.y = x, y
}

// Toggle switches panel visibility.
func (p *StatsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Draw renders the panel. maxPairs scales the pair bars.
func (p *StatsPanel) Draw(day int, rows [2]PopulationRows, maxPairs int) {
	if !p.visible {
		return
	}

	r := p.renderer
	padding := r.Theme.Padding
	lh := r.Theme.LineHeight
	height := padding*2 + lh + 2*(lh+2) + 2*(4*lh+2+lh/2)

	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + padding
	x := p.x + padding
	inner := p.width - 2*padding

	rl.DrawText("Day "+itoa(day), x, y, r.Theme.HeaderFontSize, r.Theme.ValueColor)
	y += lh + 4

	for _, row := range rows {
		y = r.DrawSectionHeader(x, y, row.Title, row.Color)
		y = r.DrawBar(x, y, "Pairs", row.Pairs, maxPairs, inner, row.Color)
		y = r.DrawLabelValue(x, y, "Drawn", itoa(row.Visible))
		y = r.DrawLabelValue(x, y, "Meetings", itoa(row.Meetings))
		y = r.DrawLabelValue(x, y, "+/-", "+"+itoa(row.Formed)+" / -"+itoa(row.Dissolved))
		y += lh / 2
	}
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
