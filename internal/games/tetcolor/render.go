package tetcolor

import (
	"fmt"

	"github.com/vovakirdan/tetcolor/internal/core"
)

const (
	cellWidth = 2 // terminal columns per grid cell

	boardW = Cols*cellWidth + 2 // with border
	boardH = Rows + 2
	panelW = 14
	gap    = 2

	// MinScreenW and MinScreenH are the smallest screen the layout fits in.
	MinScreenW = boardW + gap + panelW
	MinScreenH = boardH
)

// palette maps color ids to terminal colors.
var palette = [ColorCount + 1]core.Color{
	core.ColorDefault,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorMagenta,
	core.ColorRed,
}

// Render draws the board, the next-piece preview and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	x0 := (dst.Width() - MinScreenW) / 2
	y0 := (dst.Height() - MinScreenH) / 2

	g.renderBoard(dst, x0, y0)
	g.renderPanel(dst, x0+boardW+gap, y0)
	g.renderBanner(dst, x0, y0)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	b := g.board
	dst.DrawBox(core.NewRect(x0, y0, boardW, boardH), core.ColorGray)

	grid := b.Grid()
	glyph := fadeGlyph(b.FadeProgress())
	for x := range Cols {
		for y := range Rows {
			f := grid[x][y]
			if f.Empty() {
				continue
			}
			r := '█'
			if f.Marked {
				r = glyph
			}
			drawCell(dst, x0+1+x*cellWidth, y0+1+y, r, palette[f.Color])
		}
	}

	if !b.Falling() {
		return
	}
	for _, blk := range b.Piece().Blocks() {
		if blk.Y < 0 {
			continue
		}
		drawCell(dst, x0+1+blk.X*cellWidth, y0+1+blk.Y, '█', palette[blk.Color])
	}
}

func (g *Game) renderPanel(dst *core.Screen, x0, y0 int) {
	b := g.board

	dst.DrawTextColored(x0, y0, "TETCOLOR", core.ColorBrightYellow)

	dst.DrawText(x0, y0+2, "NEXT")
	preview := core.NewRect(x0, y0+3, 3*cellWidth+2, 5)
	dst.DrawBox(preview, core.ColorGray)
	next := b.Next()
	w, h := next.Size()
	px := preview.X + 1 + (3-w)*cellWidth/2
	py := preview.Y + 1 + (3-h)/2
	for _, blk := range next.Blocks() {
		drawCell(dst, px+blk.X*cellWidth, py+blk.Y, '█', palette[blk.Color])
	}

	dst.DrawText(x0, y0+9, "LEVEL")
	dst.DrawTextColored(x0, y0+10, fmt.Sprintf("%d", b.Level()+1), core.ColorWhite)
	dst.DrawText(x0, y0+12, "SCORE")
	dst.DrawTextColored(x0, y0+13, fmt.Sprintf("%d", b.Score()), core.ColorWhite)

	if g.flash.visible() {
		dst.DrawTextColored(x0, y0+15, fmt.Sprintf("BONUS +%d", g.flash.amount), core.ColorBrightGreen)
	}

	switch b.Phase() {
	case PhaseNotStarted:
		dst.DrawTextColored(x0, y0+18, "ENTER to start", core.ColorGray)
	case PhaseOver:
		dst.DrawTextColored(x0, y0+18, "ENTER to retry", core.ColorGray)
	default:
		dst.DrawTextColored(x0, y0+18, "P pause", core.ColorGray)
	}
}

func (g *Game) renderBanner(dst *core.Screen, x0, y0 int) {
	var text string
	c := core.ColorBrightYellow
	switch {
	case g.board.Phase() == PhaseOver:
		text = "GAME OVER"
		c = core.ColorBrightRed
	case g.board.Paused():
		text = "PAUSE"
	default:
		return
	}
	x := x0 + (boardW-len(text))/2
	y := y0 + boardH/2
	dst.DrawTextColored(x-1, y, " "+text+" ", c)
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(x+i, y, r, c)
	}
}

// fadeGlyph picks a lighter shade as matched cells fade out.
func fadeGlyph(progress float64) rune {
	switch {
	case progress > 2.0/3:
		return '▓'
	case progress > 1.0/3:
		return '▒'
	default:
		return '░'
	}
}
