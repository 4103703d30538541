package object

import "github.com/tomz197/driftrocks/internal/physics"

// Bounds is the play rectangle, centered on the origin.
type Bounds struct {
	Width  float64
	Height float64
}

// HalfWidth returns half the rectangle width.
func (b Bounds) HalfWidth() float64 { return b.Width / 2 }

// HalfHeight returns half the rectangle height.
func (b Bounds) HalfHeight() float64 { return b.Height / 2 }

// Valid reports whether the rectangle has a positive area.
func (b Bounds) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// Contains reports whether p lies inside the rectangle, edges included.
func (b Bounds) Contains(p physics.Vec2) bool {
	hw, hh := b.HalfWidth(), b.HalfHeight()
	return p.X >= -hw && p.X <= hw && p.Y >= -hh && p.Y <= hh
}

// Grow returns the rectangle expanded by margin on every side.
func (b Bounds) Grow(margin float64) Bounds {
	return Bounds{Width: b.Width + 2*margin, Height: b.Height + 2*margin}
}

// Wrap teleports p to the opposite edge on each axis it has crossed
// (Asteroids-style). A position exactly on an edge is left alone, so
// wrapping is idempotent.
func (b Bounds) Wrap(p *physics.Vec2) {
	hw, hh := b.HalfWidth(), b.HalfHeight()

	if p.X > hw {
		p.X = -hw
	} else if p.X < -hw {
		p.X = hw
	}

	if p.Y > hh {
		p.Y = -hh
	} else if p.Y < -hh {
		p.Y = hh
	}
}
