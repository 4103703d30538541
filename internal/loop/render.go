package loop

import (
	"math"
	"time"

	"github.com/tomz197/driftrocks/internal/draw"
	"github.com/tomz197/driftrocks/internal/object"
	"github.com/tomz197/driftrocks/internal/physics"
	"github.com/tomz197/driftrocks/internal/sim"
)

// Ship shape as (angle from forward, fraction of radius) pairs.
var shipShape = [...]struct{ angle, dist float64 }{
	{0, 1},
	{2.5, 0.9},
	{math.Pi, 0.35},
	{-2.5, 0.9},
}

// asteroidSides is the vertex count of an asteroid outline.
const asteroidSides = 9

// drawFrame clears the screen and draws the world and the UI overlay.
func (c *Client) drawFrame(now time.Time) error {
	c.out.WriteString("\033[2J")
	c.canvas.Clear()

	if !c.sized {
		c.drawTooSmall()
		return c.out.Flush()
	}

	c.entities = c.game.AppendEntities(c.entities[:0])
	for _, e := range c.entities {
		drawEntity(c.canvas, e)
	}
	c.canvas.Render(c.out)
	c.canvas.RenderBorder(c.out)

	// Draw UI overlay (after canvas render so it's on top)
	c.drawUI(now)
	return c.out.Flush()
}

// drawEntity draws one entity onto the canvas.
func drawEntity(canvas *draw.Canvas, e sim.EntityView) {
	switch e.Kind {
	case object.KindPlayer:
		pts := canvas.BorrowPoints(len(shipShape))
		for i, v := range shipShape {
			pts[i] = e.Pos.Add(object.Forward(e.Angle + v.angle).Scale(e.Radius * v.dist))
		}
		canvas.DrawPolygon(pts, true)
	case object.KindAsteroid:
		pts := canvas.BorrowPoints(asteroidSides)
		for i := range pts {
			angle := float64(i) * 2 * math.Pi / asteroidSides
			pts[i] = e.Pos.Add(physics.FromAngle(angle).Scale(e.Radius * lumpiness(e.ID, i)))
		}
		canvas.DrawPolygon(pts, false)
	case object.KindProjectile:
		// Shots stay a single pixel unless zoomed in far enough to show their size.
		if e.Radius*canvas.Scale() >= 2 {
			canvas.DrawCircle(e.Pos, e.Radius)
		} else {
			canvas.Plot(e.Pos)
		}
	}
}

// lumpiness returns a stable per-vertex radius factor in [0.75, 1.05] so
// each asteroid keeps its outline from frame to frame.
func lumpiness(id object.ID, vertex int) float64 {
	h := id.Key() ^ uint64(vertex)*0x9e3779b97f4a7c15
	h ^= h >> 31
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 29
	return 0.75 + 0.30*float64(h%1000)/1000
}
