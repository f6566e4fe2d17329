package tetcolor

// Collapse removes marked cells column by column and returns how many were removed.
func Collapse(g *Grid) int {
	removed := 0
	for x := range Cols {
		_, marked := g.Count(x)
		if marked == 0 {
			continue
		}
		g[x] = collapseColumn(g[x])
		removed += marked
	}
	return removed
}

// collapseColumn removes each marked cell by shifting the cells between the
// most recent empty cell above it and itself down by one, leaving an empty
// cell at the top of that stretch. Blocks resting above an empty gap stay
// where they are.
func collapseColumn(col [Rows]Field) [Rows]Field {
	out := col
	lastEmpty := 0
	for y, f := range col {
		switch {
		case f.Marked:
			copy(out[lastEmpty+1:y+1], out[lastEmpty:y])
			out[lastEmpty] = Field{}
		case f.Empty():
			lastEmpty = y
		}
	}
	return out
}
