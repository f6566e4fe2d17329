// Package tetcolor implements the Tetcolor playfield engine: colored pieces
// fall into a 7x18 grid and runs of three or more equal colors are cleared
// in rows, columns and diagonals.
//
// The engine is pure and synchronous. The platform feeds it commands and
// elapsed time through Board.Issue and Board.Advance and reads the results
// back through accessors and Snapshot.
package tetcolor

// Field is a single grid cell.
type Field struct {
	Color  int  // 0 = empty, 1..ColorCount = color id
	Marked bool // part of a run waiting to be collapsed
}

// Empty reports whether the cell holds no block.
func (f Field) Empty() bool {
	return f.Color == 0
}
