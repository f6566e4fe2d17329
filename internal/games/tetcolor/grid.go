package tetcolor

import "fmt"

// Board dimensions.
const (
	Cols = 7
	Rows = 18
)

// Grid is the playfield indexed as [column][row], row 0 at the top.
type Grid [Cols][Rows]Field

// InsideWalls reports whether (x, y) addresses a grid cell.
func InsideWalls(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Occupied reports whether the cell holds a block. Cells outside the grid are never occupied.
func (g *Grid) Occupied(x, y int) bool {
	if !InsideWalls(x, y) {
		return false
	}
	return g[x][y].Color != 0
}

// Validate reports whether every filled cell of the piece is inside the walls
// and on an empty cell. Empty shape cells never collide.
func (g *Grid) Validate(p Piece) bool {
	for _, b := range p.Blocks() {
		if !InsideWalls(b.X, b.Y) || g.Occupied(b.X, b.Y) {
			return false
		}
	}
	return true
}

// Freeze writes the piece's blocks into the grid, replacing what was there.
// It must only be called for a piece that can no longer descend; a block
// outside the grid means move validation is broken and panics.
func (g *Grid) Freeze(p Piece) {
	for _, b := range p.Blocks() {
		if !InsideWalls(b.X, b.Y) {
			panic(fmt.Sprintf("tetcolor: freezing block outside the grid at (%d, %d)", b.X, b.Y))
		}
		g[b.X][b.Y] = Field{Color: b.Color}
	}
}

// Count returns the number of colored and marked cells in column x.
func (g *Grid) Count(x int) (colored, marked int) {
	for _, f := range g[x] {
		if !f.Empty() {
			colored++
		}
		if f.Marked {
			marked++
		}
	}
	return colored, marked
}
