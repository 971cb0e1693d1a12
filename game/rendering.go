package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/courtship/camera"
	"github.com/pthm-cable/courtship/components"
	"github.com/pthm-cable/courtship/sim"
	"github.com/pthm-cable/courtship/ui"
)

// Colours shared by the arenas and the curve.
var (
	colorNoApp    = rl.Blue
	colorApp      = rl.Red
	colorEdge     = rl.NewColor(255, 109, 194, 128) // pink, half alpha
	statusColours = map[components.Status]rl.Color{
		components.StatusPaired:         rl.Red,
		components.StatusUnpairedMale:   rl.Blue,
		components.StatusUnpairedFemale: rl.Green,
	}
)

const agentRadius = 4

// Draw renders the game.
func (g *Game) Draw() {
	g.driver.Perf().RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	l := computeLayout(g.width, g.height)
	spaceSize := float32(g.driver.Config().Arena.SpaceSize)

	left := camera.New(l.noApp.X, l.noApp.Y, l.noApp.Width, spaceSize)
	right := camera.New(l.app.X, l.app.Y, l.app.Width, spaceSize)
	g.drawArena(left, g.noApp, colorNoApp, "No app")
	g.drawArena(right, g.app, colorApp, "With app")
	g.drawHover(left, g.noApp)
	g.drawHover(right, g.app)

	g.drawHistory(l.graph)

	if g.haveStats {
		g.statsPanel.SetPosition(int32(l.stats.X), int32(l.stats.Y))
		g.statsPanel.Draw(g.stats.Day, ui.SplitDayStats(g.stats, colorNoApp, colorApp), g.maxPairs)
	}

	g.drawControls(margin, margin)
	switch {
	case g.Done():
		rl.DrawText("FINISHED", int32(g.width-120), margin+6, 18, rl.DarkGreen)
	case g.paused:
		rl.DrawText("PAUSED", int32(g.width-100), margin+6, 18, rl.Maroon)
	}

	rl.EndDrawing()
}

// toScreen projects an agent position through cam.
func toScreen(cam *camera.Camera, p components.Position) rl.Vector2 {
	x, y := cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: x, Y: y}
}

// drawArena renders one population's snapshot inside the camera rectangle.
func (g *Game) drawArena(cam *camera.Camera, snap sim.Snapshot, frame rl.Color, title string) {
	bounds := rl.Rectangle{X: cam.ScreenX, Y: cam.ScreenY, Width: cam.Side, Height: cam.Side}

	rl.DrawText(fmt.Sprintf("%s (day %d)  pairs: %d", title, snap.Day, snap.Pairs), int32(bounds.X), int32(bounds.Y-20), 16, rl.DarkGray)
	rl.DrawRectangleLinesEx(bounds, 2, frame)

	for _, e := range snap.Edges {
		rl.DrawLineEx(toScreen(cam, e.From), toScreen(cam, e.To), 1.5, colorEdge)
	}
	for _, a := range snap.Agents {
		rl.DrawCircleV(toScreen(cam, a.Position), agentRadius, statusColours[a.Status])
	}
}

// drawHistory renders both pair-count curves.
func (g *Game) drawHistory(bounds rl.Rectangle) {
	rl.DrawRectangleLinesEx(bounds, 1, rl.LightGray)
	rl.DrawText("Pairs", int32(bounds.X+4), int32(bounds.Y+4), 14, rl.DarkGray)
	rl.DrawText("Day", int32(bounds.X+bounds.Width-30), int32(bounds.Y+bounds.Height-18), 14, rl.DarkGray)

	days := max(g.driver.TotalDays(), 1)
	maxPairs := max(g.maxPairs, 1)
	point := func(day, pairs int) rl.Vector2 {
		return rl.Vector2{
			X: bounds.X + float32(day)/float32(days)*bounds.Width,
			Y: bounds.Y + bounds.Height - float32(pairs)/float32(maxPairs)*bounds.Height,
		}
	}

	drawSeries := func(h []int, c rl.Color) {
		for i := 1; i < len(h); i++ {
			rl.DrawLineEx(point(i-1, h[i-1]), point(i, h[i]), 2, c)
		}
	}
	drawSeries(g.noAppHist, colorNoApp)
	drawSeries(g.appHist, colorApp)

	legendX := int32(bounds.X + bounds.Width - 140)
	legendY := int32(bounds.Y + 6)
	rl.DrawText("No app", legendX, legendY, 14, colorNoApp)
	rl.DrawText("With app", legendX+60, legendY, 14, colorApp)
}

// drawHover shows details for the agent under the mouse, if any.
func (g *Game) drawHover(cam *camera.Camera, snap sim.Snapshot) {
	mouse := rl.GetMousePosition()
	if !cam.Contains(mouse.X, mouse.Y) {
		return
	}

	best := -1
	bestDist := float32(agentRadius * agentRadius * 4)
	for i, a := range snap.Agents {
		p := toScreen(cam, a.Position)
		dx, dy := p.X-mouse.X, p.Y-mouse.Y
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		wx, wy := cam.ScreenToWorld(mouse.X, mouse.Y)
		label := fmt.Sprintf("(%.1f, %.1f)", wx, wy)
		rl.DrawText(label, int32(cam.ScreenX+cam.Side)-rl.MeasureText(label, 14)-4, int32(cam.ScreenY+cam.Side)-18, 14, rl.Gray)
		return
	}

	a := snap.Agents[best]
	text := fmt.Sprintf("%s %s  (%.1f, %.1f)  met today: %d  campus: %v",
		a.Gender, a.Status, a.Position.X, a.Position.Y, a.MeetCount, a.MetAtUniversity)
	w := rl.MeasureText(text, 14)
	x, y := int32(mouse.X)+12, int32(mouse.Y)+12
	rl.DrawRectangle(x-4, y-3, w+8, 20, rl.Fade(rl.Black, 0.75))
	rl.DrawText(text, x, y, 14, rl.White)
}
