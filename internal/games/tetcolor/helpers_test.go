package tetcolor

// scriptRand replays vals cyclically, reduced modulo n.
type scriptRand struct {
	vals []int
	i    int
}

func (r *scriptRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// singles makes every generated piece a single cell of color 1.
func singles() *scriptRand {
	return &scriptRand{vals: []int{3, 0}}
}

// fillNoRuns fills rows [from, Rows) with a pattern in which no two
// neighbouring cells share a color in any direction.
func fillNoRuns(g *Grid, from int) {
	for x := range Cols {
		for y := from; y < Rows; y++ {
			g[x][y] = Field{Color: (x+2*y)%ColorCount + 1}
		}
	}
}
