package tetcolor

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapseShiftsStackDown(t *testing.T) {
	var g Grid
	g[0][15] = Field{Color: 1}
	g[0][16] = Field{Color: 2, Marked: true}
	g[0][17] = Field{Color: 3}

	removed := Collapse(&g)

	assert.Equal(t, 1, removed)
	assert.True(t, g[0][15].Empty())
	assert.Equal(t, Field{Color: 1}, g[0][16])
	assert.Equal(t, Field{Color: 3}, g[0][17])
}

func TestCollapseSeveralMarks(t *testing.T) {
	var g Grid
	g[2][13] = Field{Color: 1}
	g[2][14] = Field{Color: 4, Marked: true}
	g[2][15] = Field{Color: 2}
	g[2][16] = Field{Color: 4, Marked: true}
	g[2][17] = Field{Color: 3}

	Collapse(&g)

	var colors []int
	for y := 13; y < Rows; y++ {
		colors = append(colors, g[2][y].Color)
	}
	assert.Equal(t, []int{0, 0, 1, 2, 3}, colors)
}

func TestCollapseLeavesFloatingBlocks(t *testing.T) {
	var g Grid
	g[4][5] = Field{Color: 4}
	g[4][16] = Field{Color: 5, Marked: true}
	g[4][17] = Field{Color: 3}

	Collapse(&g)

	assert.Equal(t, Field{Color: 4}, g[4][5])
	assert.True(t, g[4][16].Empty())
	assert.Equal(t, Field{Color: 3}, g[4][17])
}

func TestCollapseInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for iter := 0; iter < 200; iter++ {
		var g Grid
		for x := range Cols {
			top := rng.Intn(Rows + 1)
			for y := top; y < Rows; y++ {
				g[x][y] = Field{Color: rng.Intn(ColorCount) + 1, Marked: rng.Intn(4) == 0}
			}
		}

		var before [Cols][2]int
		for x := range Cols {
			before[x][0], before[x][1] = g.Count(x)
		}

		Collapse(&g)

		for x := range Cols {
			colored, marked := g.Count(x)
			if marked != 0 {
				t.Fatalf("iter %d column %d: %d marked cells left", iter, x, marked)
			}
			if want := before[x][0] - before[x][1]; colored != want {
				t.Fatalf("iter %d column %d: %d colored cells, want %d", iter, x, colored, want)
			}
		}
	}
}
