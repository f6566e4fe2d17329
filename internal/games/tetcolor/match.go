package tetcolor

import "github.com/kamstrup/intmap"

// Run directions.
const (
	DirectionRows      = 0
	DirectionColumns   = 1
	DirectionDiagonals = 2
)

// MinRun is the shortest run that scores.
const MinRun = 3

// maxScoredLen is the longest run with its own entry in the points table.
// Longer runs (only possible in columns after a cascade) score as this length.
const maxScoredLen = Cols

// pointsTable is indexed by direction and run length.
var pointsTable = [3][maxScoredLen + 1]int{
	DirectionRows:      {3: 40, 4: 120, 5: 440, 6: 1560, 7: 5560},
	DirectionColumns:   {3: 50, 4: 150, 5: 550, 6: 1950, 7: 6950},
	DirectionDiagonals: {3: 75, 4: 225, 5: 825, 6: 2925, 7: 10425},
}

// RunPoints returns the points for a run of n cells in the given direction.
func RunPoints(direction, n int) int {
	if n < MinRun || direction < DirectionRows || direction > DirectionDiagonals {
		return 0
	}
	return pointsTable[direction][min(n, maxScoredLen)]
}

// Run is one maximal sequence of equal non-empty colors.
type Run struct {
	Direction int
	Color     int
	Length    int
}

// MatchResult summarizes one detection pass.
type MatchResult struct {
	// Bonus is 0 when nothing matched, 1 for a single three-cell run and 2
	// for anything larger or more numerous.
	Bonus  int
	Points int
	Runs   []Run
}

// DetectMatches scans every row, column and diagonal of length >= MinRun,
// marks the cells of each maximal run of at least MinRun equal colors and
// returns the points earned. Marking is idempotent, so a cell shared by
// crossing runs counts once per run but is marked once.
func DetectMatches(g *Grid) MatchResult {
	tally := intmap.New[int, int](16)
	var res MatchResult

	scan := func(direction int, line []*Field) {
		start := 0
		for i := 1; i <= len(line); i++ {
			if i < len(line) && line[i].Color == line[start].Color {
				continue
			}
			n := i - start
			if color := line[start].Color; color != 0 && n >= MinRun {
				for _, f := range line[start:i] {
					f.Marked = true
				}
				key := tallyKey(direction, n)
				c, _ := tally.Get(key)
				tally.Put(key, c+1)
				res.Runs = append(res.Runs, Run{Direction: direction, Color: color, Length: n})
			}
			start = i
		}
	}

	for _, line := range rowLines(g) {
		scan(DirectionRows, line)
	}
	for _, line := range columnLines(g) {
		scan(DirectionColumns, line)
	}
	for _, line := range diagonalLines(g) {
		scan(DirectionDiagonals, line)
	}

	if tally.Len() == 0 {
		return res
	}
	for direction := DirectionRows; direction <= DirectionDiagonals; direction++ {
		for n := MinRun; n <= Rows; n++ {
			if c, ok := tally.Get(tallyKey(direction, n)); ok {
				res.Points += c * RunPoints(direction, n)
			}
		}
	}

	res.Bonus = 2
	if len(res.Runs) == 1 && res.Runs[0].Length == MinRun {
		res.Bonus = 1
	}
	return res
}

func tallyKey(direction, n int) int {
	return direction*100 + n
}

func rowLines(g *Grid) [][]*Field {
	lines := make([][]*Field, 0, Rows)
	for y := range Rows {
		line := make([]*Field, Cols)
		for x := range Cols {
			line[x] = &g[x][y]
		}
		lines = append(lines, line)
	}
	return lines
}

func columnLines(g *Grid) [][]*Field {
	lines := make([][]*Field, 0, Cols)
	for x := range Cols {
		line := make([]*Field, Rows)
		for y := range Rows {
			line[y] = &g[x][y]
		}
		lines = append(lines, line)
	}
	return lines
}

// diagonalLines returns both diagonal families, skipping diagonals shorter
// than MinRun.
func diagonalLines(g *Grid) [][]*Field {
	var lines [][]*Field
	// Down-right: y - x constant.
	for d := -(Cols - MinRun); d <= Rows-MinRun; d++ {
		var line []*Field
		for x := range Cols {
			if y := x + d; y >= 0 && y < Rows {
				line = append(line, &g[x][y])
			}
		}
		lines = append(lines, line)
	}
	// Down-left: x + y constant.
	for s := MinRun - 1; s <= Rows+Cols-MinRun-1; s++ {
		var line []*Field
		for x := Cols - 1; x >= 0; x-- {
			if y := s - x; y >= 0 && y < Rows {
				line = append(line, &g[x][y])
			}
		}
		lines = append(lines, line)
	}
	return lines
}
