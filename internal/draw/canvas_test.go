package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/driftrocks/internal/physics"
)

func TestProject(t *testing.T) {
	c := NewCanvas(80, 30, 800, 600)

	tests := []struct {
		name   string
		p      physics.Vec2
		px, py float64
	}{
		{"center", physics.Vec2{}, 40, 30},
		{"top left", physics.Vec2{X: -400, Y: 300}, 0, 0},
		{"bottom right", physics.Vec2{X: 400, Y: -300}, 80, 60},
		{"y is up", physics.Vec2{Y: 100}, 40, 20},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			px, py := c.Project(tc.p)
			assert.InDelta(t, tc.px, px, 1e-9)
			assert.InDelta(t, tc.py, py, 1e-9)
		})
	}
}

func TestPlotClipsToCanvas(t *testing.T) {
	c := NewCanvas(80, 30, 800, 600)
	c.Plot(physics.Vec2{X: -400, Y: 300})
	c.Plot(physics.Vec2{X: 400, Y: -300}) // One past the last pixel
	c.Plot(physics.Vec2{X: 1e6})

	assert.True(t, c.Lit(0, 0))
	lit := 0
	for y := range 60 {
		for x := range 80 {
			if c.Lit(x, y) {
				lit++
			}
		}
	}
	assert.Equal(t, 1, lit)

	c.Clear()
	assert.False(t, c.Lit(0, 0))
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(80, 30, 800, 600)
	c.DrawLine(physics.Vec2{X: -400}, physics.Vec2{X: 395})

	for x := range 80 {
		assert.True(t, c.Lit(x, 30), "x=%d", x)
		assert.False(t, c.Lit(x, 29))
	}
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewCanvas(80, 30, 800, 600)
	square := []physics.Vec2{{X: -100, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: -100}, {X: -100, Y: -100}}
	c.DrawPolygon(square, true)

	assert.True(t, c.Lit(40, 30), "interior is filled")
	assert.True(t, c.Lit(30, 20), "corner is drawn")
	assert.False(t, c.Lit(20, 30))

	c.Clear()
	c.DrawPolygon(square, false)
	assert.False(t, c.Lit(40, 30), "outline only")
	assert.True(t, c.Lit(30, 30))
}

func TestDrawCircle(t *testing.T) {
	c := NewCanvas(80, 30, 800, 600)
	c.DrawCircle(physics.Vec2{}, 100)
	assert.True(t, c.Lit(50, 30), "rightmost point")
	assert.False(t, c.Lit(40, 30), "center stays empty")

	// Tiny circles collapse to a dot.
	c.Clear()
	c.DrawCircle(physics.Vec2{X: 200}, 2)
	assert.True(t, c.Lit(60, 30))
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	w := NewChunkWriter(&out)

	c := NewCanvas(10, 5, 100, 100)
	c.SetOffset(2, 3)
	c.Plot(physics.Vec2{X: -50, Y: 50}) // Pixel (0,0): top half of cell (1,1)
	c.Plot(physics.Vec2{X: 0, Y: -45})  // Pixel (5,9): bottom half of cell (6,5)
	c.Render(w)
	require.NoError(t, w.Flush())

	assert.Equal(t, "\033[4;3H▀\033[8;8H▄", out.String())
}

func TestRenderBorder(t *testing.T) {
	var out bytes.Buffer
	w := NewChunkWriter(&out)

	c := NewCanvas(3, 2, 100, 100)
	c.SetOffset(1, 1)
	c.RenderBorder(w)
	require.NoError(t, w.Flush())

	s := out.String()
	assert.Contains(t, s, "\033[1;1H┌───┐")
	assert.Contains(t, s, "\033[4;1H└───┘")
	assert.Equal(t, 4, strings.Count(s, "│"))
}

func TestChunkWriterFlushesLargeFrames(t *testing.T) {
	var out bytes.Buffer
	w := NewChunkWriter(&out)

	big := strings.Repeat("x", 5*maxChunkSize+7)
	w.WriteString(big)
	w.WriteAt(3, 4, "hi")
	assert.Positive(t, w.Len())

	require.NoError(t, w.Flush())
	assert.Equal(t, big+"\033[4;3Hhi", out.String())
	assert.Zero(t, w.Len())
}

func TestFit(t *testing.T) {
	width, height, offCol, offRow := Fit(82, 33, 800, 600)
	assert.Equal(t, 80, width)
	assert.Equal(t, 30, height)
	assert.Equal(t, 1, offCol)
	assert.Equal(t, 2, offRow)

	// Wide terminals are limited by height and centered horizontally.
	width, height, offCol, _ = Fit(200, 33, 800, 600)
	assert.Equal(t, 30, height)
	assert.InDelta(t, 80, width, 1)
	assert.InDelta(t, (200-width)/2, offCol, 0)

	// Degenerate terminals still get a usable canvas.
	width, height, _, _ = Fit(1, 1, 800, 600)
	assert.Positive(t, width)
	assert.Positive(t, height)
}
