package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection over a
// rectangle centered on the origin. Items are inserted by position and an
// opaque index, then nearby items are queried through a 3x3 cell neighborhood.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding items so that every potential pair is found within the
// neighborhood. Positions outside the rectangle are clamped to the border
// cells; the grid does not wrap.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize
	halfW       float64
	halfH       float64
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items within a cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering a width×height rectangle centered on the origin.
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		halfW:       width / 2,
		halfH:       height / 2,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Fits reports whether the grid already covers a width×height rectangle with the given cell size.
func (g *SpatialGrid) Fits(width, height, cellSize float64) bool {
	return g.halfW == width/2 && g.halfH == height/2 && g.cellSize == cellSize
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item at the given position.
func (g *SpatialGrid) Insert(pos Vec2, index int) {
	col, row := g.posToCell(pos)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood around pos.
// Items are visited in insertion order within a cell. If fn returns true, iteration stops.
func (g *SpatialGrid) QueryAround(pos Vec2, fn func(index int) bool) {
	col, row := g.posToCell(pos)

	for r := row - 1; r <= row+1; r++ {
		if r < 0 || r >= g.rows {
			continue
		}
		rowOffset := r * g.cols
		for c := col - 1; c <= col+1; c++ {
			if c < 0 || c >= g.cols {
				continue
			}
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts a centered position to grid cell coordinates,
// clamping to the valid range.
func (g *SpatialGrid) posToCell(pos Vec2) (col, row int) {
	col = int(math.Floor((pos.X + g.halfW) * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor((pos.Y + g.halfH) * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
