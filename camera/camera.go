// Package camera maps arena coordinates onto a screen rectangle.
package camera

// Camera controls the viewport of one square toroidal arena.
// World y grows upward; screen y grows downward.
type Camera struct {
	// Screen rectangle the arena is drawn into
	ScreenX, ScreenY float32
	Side             float32

	// Arena side length in world units
	WorldSize float32
}

// New creates a camera showing the whole arena inside a square of the given side.
func New(screenX, screenY, side, worldSize float32) *Camera {
	return &Camera{
		ScreenX:   screenX,
		ScreenY:   screenY,
		Side:      side,
		WorldSize: worldSize,
	}
}

// Scale returns screen pixels per world unit.
func (c *Camera) Scale() float32 {
	if c.WorldSize <= 0 {
		return 0
	}
	return c.Side / c.WorldSize
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	s := c.Scale()
	return c.ScreenX + wx*s, c.ScreenY + c.Side - wy*s
}

// ScreenToWorld converts screen coordinates to world coordinates,
// wrapped into the arena.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	s := c.Scale()
	if s == 0 {
		return 0, 0
	}
	wx = mod((sx-c.ScreenX)/s, c.WorldSize)
	wy = mod((c.ScreenY+c.Side-sy)/s, c.WorldSize)
	return wx, wy
}

// Contains reports whether a screen point lies inside the arena rectangle.
func (c *Camera) Contains(sx, sy float32) bool {
	return sx >= c.ScreenX && sx < c.ScreenX+c.Side &&
		sy >= c.ScreenY && sy < c.ScreenY+c.Side
}

// mod returns x modulo m, always non-negative.
func mod(x, m float32) float32 {
	for x < 0 {
		x += m
	}
	for x >= m {
		x -= m
	}
	return x
}
