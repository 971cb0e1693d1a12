package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.statsPanel.Toggle()
	}

	// Single step while paused
	if g.paused && rl.IsKeyPressed(rl.KeyRight) {
		g.stepRequested = true
	}

	// Speed control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.daysPerSecond > 1 {
		g.daysPerSecond--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.daysPerSecond < maxDaysPerSecond {
		g.daysPerSecond++
	}
}
