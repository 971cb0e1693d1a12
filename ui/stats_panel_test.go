package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/courtship/telemetry"
)

func TestSplitDayStats(t *testing.T) {
	s := telemetry.DayStats{
		Day:            7,
		PairsNoApp:     16,
		PairsApp:       14,
		VisibleNoApp:   16,
		VisibleApp:     1,
		MeetingsNoApp:  3,
		MeetingsApp:    5,
		FormedNoApp:    1,
		FormedApp:      2,
		DissolvedNoApp: 0,
		DissolvedApp:   1,
	}

	rows := SplitDayStats(s, rl.Blue, rl.Red)

	noApp, app := rows[0], rows[1]
	if noApp.Title != "No app" || app.Title != "With app" {
		t.Fatalf("titles = %q, %q", noApp.Title, app.Title)
	}
	if noApp.Color != rl.Blue || app.Color != rl.Red {
		t.Error("row colours not carried through")
	}

	want := PopulationRows{Title: "No app", Color: rl.Blue, Pairs: 16, Visible: 16, Meetings: 3, Formed: 1, Dissolved: 0}
	if noApp != want {
		t.Errorf("no-app row = %+v, want %+v", noApp, want)
	}
	want = PopulationRows{Title: "With app", Color: rl.Red, Pairs: 14, Visible: 1, Meetings: 5, Formed: 2, Dissolved: 1}
	if app != want {
		t.Errorf("app row = %+v, want %+v", app, want)
	}
}

func TestStatsPanelToggle(t *testing.T) {
	p := NewStatsPanel(0, 0, 200)
	if !p.visible {
		t.Fatal("panel should start visible")
	}
	if p.Toggle() {
		t.Error("first toggle should hide the panel")
	}
	if !p.Toggle() {
		t.Error("second toggle should show the panel")
	}
}
