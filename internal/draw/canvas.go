package draw

import (
	"math"
	"slices"

	"github.com/tomz197/driftrocks/internal/physics"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It maps a world rectangle centered on the origin (y up) onto terminal cells.
type Canvas struct {
	termWidth      int    // Canvas columns
	termHeight     int    // Canvas rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	// World rectangle and the scale from world units to pixels
	worldWidth  float64
	worldHeight float64
	scaleX      float64 // termWidth / worldWidth
	scaleY      float64 // (termHeight*2) / worldHeight

	// Offset for centering the render area inside a larger terminal.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	scaledBuf       []physics.Vec2 // Reusable buffer for fillPolygon scaled points
	intersectionBuf []float64      // Reusable buffer for scanline intersections
	polygonBuf      []physics.Vec2 // Reusable buffer for polygon point generation
}

// NewCanvas creates a termWidth×termHeight canvas showing a worldWidth×worldHeight rectangle.
func NewCanvas(termWidth, termHeight int, worldWidth, worldHeight float64) *Canvas {
	c := &Canvas{worldWidth: worldWidth, worldHeight: worldHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the world size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.worldWidth
	c.scaleY = float64(subPixelHeight) / c.worldHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Project converts a world position to fractional pixel coordinates.
func (c *Canvas) Project(p physics.Vec2) (px, py float64) {
	return (p.X + c.worldWidth/2) * c.scaleX, (c.worldHeight/2 - p.Y) * c.scaleY
}

// Scale returns the number of horizontal pixels per world unit.
func (c *Canvas) Scale() float64 {
	return c.scaleX
}

// setPixel sets a pixel at canvas pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Lit reports whether the pixel at canvas pixel coordinates is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// Plot sets the pixel under a world position.
func (c *Canvas) Plot(p physics.Vec2) {
	px, py := c.Project(p)
	c.setPixel(int(math.Floor(px)), int(math.Floor(py)))
}

// DrawLine draws a line between two world positions using Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 physics.Vec2) {
	fx1, fy1 := c.Project(p1)
	fx2, fy2 := c.Project(p2)
	x1, y1 := int(math.Floor(fx1)), int(math.Floor(fy1))
	x2, y2 := int(math.Floor(fx2)), int(math.Floor(fy2))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon given in world positions.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []physics.Vec2, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// circleSegments is the polygon resolution used for circles.
const circleSegments = 16

// DrawCircle draws a circle outline of radius r around center.
func (c *Canvas) DrawCircle(center physics.Vec2, r float64) {
	if r*c.scaleX < 1 {
		c.Plot(center)
		return
	}
	pts := c.BorrowPoints(circleSegments)
	for i := range pts {
		angle := float64(i) * 2 * math.Pi / circleSegments
		pts[i] = center.Add(physics.FromAngle(angle).Scale(r))
	}
	c.DrawPolygon(pts, false)
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []physics.Vec2) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]physics.Vec2, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		px, py := c.Project(p)
		scaled[i] = physics.Vec2{X: px, Y: py}
	}

	// Find bounding box in pixel space
	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		slices.Sort(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i] - 0.5))
			xEnd := int(math.Floor(intersections[i+1] - 0.5))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render outputs the canvas to the writer using half-block characters.
// Only non-empty cells are written, each with its own cursor move.
func (c *Canvas) Render(w *ChunkWriter) {
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			w.MoveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			w.WriteRune(ch)
		}
	}
}

// RenderBorder draws a box just outside the canvas area, on whichever sides
// the offsets leave room for.
func (c *Canvas) RenderBorder(w *ChunkWriter) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	horizontal := func(row int, l, r rune) {
		if hasH {
			w.MoveCursor(left, row)
			w.WriteRune(l)
		} else {
			w.MoveCursor(c.offsetCol+1, row)
		}
		for range c.termWidth {
			w.WriteRune('─')
		}
		if hasH {
			w.WriteRune(r)
		}
	}

	if hasV {
		horizontal(top, '┌', '┐')
		horizontal(bottom, '└', '┘')
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			w.WriteAt(left, row, "│")
			w.WriteAt(right, row, "│")
		}
	}
}

// TerminalWidth returns the canvas column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the canvas row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// ToCell converts a world position to a 1-based terminal position (col, row),
// offsets included. Useful for placing text next to drawn objects.
func (c *Canvas) ToCell(p physics.Vec2) (col, row int) {
	px, py := c.Project(p)
	return int(math.Floor(px)) + 1 + c.offsetCol, int(math.Floor(py))/2 + 1 + c.offsetRow
}

// BorrowPoints returns a reusable slice of points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []physics.Vec2 {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]physics.Vec2, n)
	}
	return c.polygonBuf[:n]
}

// Fit sizes a canvas for a world of the given aspect inside a terminal of
// cols×rows, reserving the top row for a status line. It returns the canvas
// size and the 0-based offsets that center it. A terminal cell is assumed to
// be twice as tall as it is wide.
func Fit(cols, rows int, worldWidth, worldHeight float64) (width, height, offCol, offRow int) {
	const hud = 1
	availCols := cols - 2 // Leave room for the side borders
	availRows := rows - hud - 2
	if availCols < 1 || availRows < 1 || worldWidth <= 0 || worldHeight <= 0 {
		return max(cols, 1), max(rows-hud, 1), 0, hud
	}

	aspect := worldWidth / worldHeight // Columns per sub-pixel row
	width = availCols
	height = int(float64(width) / aspect / 2)
	if height > availRows {
		height = availRows
		width = int(float64(height) * 2 * aspect)
	}
	width = max(width, 1)
	height = max(height, 1)

	offCol = (cols - width) / 2
	offRow = hud + (rows-hud-height)/2
	return width, height, offCol, offRow
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
