package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const maxDaysPerSecond = 60

// drawControls renders the pause/step buttons and the speed slider.
func (g *Game) drawControls(x, y float32) {
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 90, Height: 26}, toggleText(g.paused, "Resume", "Pause")) {
		g.paused = !g.paused
	}
	if gui.Button(rl.Rectangle{X: x + 100, Y: y, Width: 90, Height: 26}, "Step") {
		g.paused = true
		g.stepRequested = true
	}

	rl.DrawText("Days/s", int32(x+210), int32(y+6), 14, rl.DarkGray)
	g.daysPerSecond = gui.SliderBar(
		rl.Rectangle{X: x + 270, Y: y + 3, Width: 160, Height: 20},
		"1", fmt.Sprintf("%d", maxDaysPerSecond),
		g.daysPerSecond, 1, maxDaysPerSecond,
	)
	rl.DrawText(fmt.Sprintf("%.0f", g.daysPerSecond), int32(x+460), int32(y+6), 14, rl.DarkGray)
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
