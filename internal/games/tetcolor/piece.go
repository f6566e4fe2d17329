package tetcolor

import (
	"fmt"
	"slices"
)

// Rotation is a quarter-turn direction.
type Rotation int

const (
	RotateLeft Rotation = iota
	RotateRight
)

const (
	// PieceTypes is the number of piece templates.
	PieceTypes = 4
	// ColorCount is the number of block colors; color ids are 1..ColorCount.
	ColorCount = 6
)

// shapes holds the piece templates indexed by type id (1-based).
var shapes = [PieceTypes + 1][][]int{
	nil,
	{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	},
	{
		{0, 1},
		{1, 1},
	},
	{
		{1, 0},
		{1, 0},
	},
	{
		{1},
	},
}

// Rand is the source of random integers used to generate pieces.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Block is one filled cell of a piece in grid coordinates.
type Block struct {
	X, Y  int
	Color int
}

// Piece is a falling shape. It is a value type: Offset and Rotate return new
// pieces with their own shape matrix.
type Piece struct {
	Type   int
	Shape  [][]int // 0 = empty cell, 1..ColorCount = color id
	X, Y   int     // top-left anchor in grid coordinates
	Locked bool    // set by a hard drop or when the piece lands
}

// NewPiece creates a piece of a random type whose filled cells are colored independently.
func NewPiece(rng Rand) Piece {
	return NewPieceOfType(rng.Intn(PieceTypes)+1, rng)
}

// NewPieceOfType creates a piece of the given type (1..PieceTypes) with random cell colors.
func NewPieceOfType(typ int, rng Rand) Piece {
	if typ < 1 || typ > PieceTypes {
		panic(fmt.Sprintf("tetcolor: unknown piece type %d", typ))
	}
	tmpl := shapes[typ]
	shape := make([][]int, len(tmpl))
	for y, row := range tmpl {
		shape[y] = make([]int, len(row))
		for x, v := range row {
			if v != 0 {
				shape[y][x] = rng.Intn(ColorCount) + 1
			}
		}
	}
	return Piece{Type: typ, Shape: shape}
}

// AtStart returns the piece moved to its spawn position: column 2 for the
// three-cell-tall shapes, column 3 for the narrow ones, row 0.
func (p Piece) AtStart() Piece {
	q := p.clone()
	q.X = 3
	if p.Type < 3 {
		q.X = 2
	}
	q.Y = 0
	return q
}

// Offset returns a copy translated by (dx, dy). No bounds check is done.
func (p Piece) Offset(dx, dy int) Piece {
	q := p.clone()
	q.X += dx
	q.Y += dy
	return q
}

// Rotate returns a copy rotated a quarter turn. A locked piece keeps its shape.
// There are no wall kicks: the caller validates the result and may discard it.
func (p Piece) Rotate(dir Rotation) Piece {
	q := p.clone()
	if p.Locked || len(p.Shape) == 0 {
		return q
	}

	rows, cols := len(p.Shape), len(p.Shape[0])
	t := make([][]int, cols)
	for x := range cols {
		t[x] = make([]int, rows)
		for y := range rows {
			t[x][y] = p.Shape[y][x]
		}
	}

	switch dir {
	case RotateRight:
		for _, row := range t {
			slices.Reverse(row)
		}
	case RotateLeft:
		slices.Reverse(t)
	}
	q.Shape = t
	return q
}

// MoveInto commits a validated transformation: the shape is always adopted,
// the position only while the piece is not locked.
func (p *Piece) MoveInto(other Piece) {
	if !p.Locked {
		p.X, p.Y = other.X, other.Y
	}
	p.Shape = cloneShape(other.Shape)
}

// Lock freezes the piece position. There is no way back.
func (p *Piece) Lock() {
	p.Locked = true
}

// Blocks returns the filled cells of the piece in grid coordinates.
func (p Piece) Blocks() []Block {
	var blocks []Block
	for dy, row := range p.Shape {
		for dx, c := range row {
			if c != 0 {
				blocks = append(blocks, Block{X: p.X + dx, Y: p.Y + dy, Color: c})
			}
		}
	}
	return blocks
}

// Size returns the width and height of the shape matrix.
func (p Piece) Size() (w, h int) {
	if len(p.Shape) == 0 {
		return 0, 0
	}
	return len(p.Shape[0]), len(p.Shape)
}

func (p Piece) clone() Piece {
	q := p
	q.Shape = cloneShape(p.Shape)
	return q
}

func cloneShape(shape [][]int) [][]int {
	out := make([][]int, len(shape))
	for i, row := range shape {
		out[i] = slices.Clone(row)
	}
	return out
}
