package game

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	margin      = 20
	controlsH   = 34
	titleH      = 20
	statsPanelW = 200
)

// layout holds the screen rectangles for one frame.
type layout struct {
	noApp, app rl.Rectangle // square arenas
	stats      rl.Rectangle // stats panel column, right of the arenas
	graph      rl.Rectangle
}

// computeLayout splits the window into two arenas, a stats column beside
// them and the history graph underneath. Nothing overlaps.
func computeLayout(width, height float32) layout {
	arenaTop := float32(margin+controlsH) + titleH
	graphH := (height - arenaTop) / 4
	arenaH := height - arenaTop - graphH - 2*margin
	arenaW := (width - 4*margin - statsPanelW) / 2
	side := max(min(arenaW, arenaH), 0)

	l := layout{
		noApp: rl.Rectangle{X: margin, Y: arenaTop, Width: side, Height: side},
		app:   rl.Rectangle{X: 2*margin + side, Y: arenaTop, Width: side, Height: side},
		graph: rl.Rectangle{X: margin, Y: height - graphH - margin, Width: width - 2*margin, Height: graphH},
	}
	l.stats = rl.Rectangle{
		X:      l.app.X + side + margin,
		Y:      float32(margin + controlsH),
		Width:  statsPanelW,
		Height: l.graph.Y - margin - float32(margin+controlsH),
	}
	return l
}
