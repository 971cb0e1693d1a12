package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/courtship/components"
)

// Wrap maps v into [0, size) with modulo arithmetic.
func Wrap(v, size float64) float64 {
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	// Tiny negatives can round up to size itself
	if r >= size {
		r = 0
	}
	return r
}

// WrapPosition wraps both coordinates into the arena.
func WrapPosition(v r2.Vec, size float64) components.Position {
	return components.Position{X: Wrap(v.X, size), Y: Wrap(v.Y, size)}
}

// ToroidalDelta returns the shortest path delta from (x1,y1) to (x2,y2).
func ToroidalDelta(x1, y1, x2, y2, w, h float64) (dx, dy float64) {
	dx = x2 - x1
	dy = y2 - y1

	if dx > w/2 {
		dx -= w
	} else if dx < -w/2 {
		dx += w
	}
	if dy > h/2 {
		dy -= h
	} else if dy < -h/2 {
		dy += h
	}

	return dx, dy
}

// Distance returns the distance between two agents.
// Without wrap it is the straight Euclidean distance between raw
// coordinates, so agents near opposite edges are considered far apart.
func Distance(a, b components.Position, size float64, wrap bool) float64 {
	if wrap {
		dx, dy := ToroidalDelta(a.X, a.Y, b.X, b.Y, size, size)
		return r2.Norm(r2.Vec{X: dx, Y: dy})
	}
	return r2.Norm(r2.Sub(b.Vec(), a.Vec()))
}
