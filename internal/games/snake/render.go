package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellW is how many terminal columns one board cell takes, so the board
// looks square in a typical terminal font.
const cellW = 2

// layout remembers where the last frame put things so taps can be mapped
// back to cells and buttons.
type layout struct {
	origin  core.Point // screen position of cell (0,0)
	buttons []core.Rect
}

// cellAt converts a screen position to a board cell. The result may lie
// outside the board.
func (l layout) cellAt(pos core.Point) core.Point {
	return core.Pt(floorDiv(pos.X-l.origin.X, cellW), pos.Y-l.origin.Y)
}

// screenPos returns the screen position of the left column of cell p.
func (l layout) screenPos(p core.Point) core.Point {
	return core.Pt(l.origin.X+p.X*cellW, l.origin.Y+p.Y)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// MinScreenSize returns the smallest screen a size×size board fits on,
// counting the HUD row.
func MinScreenSize(size int) (w, h int) {
	return size*cellW + 2, size + 3
}

// MinScreenSize returns the smallest screen this game's board fits on.
func (g *Game) MinScreenSize() (w, h int) {
	return MinScreenSize(g.size)
}

// CellScreenPos returns the screen position of a board cell in the last frame.
func (g *Game) CellScreenPos(p core.Point) core.Point {
	return g.layout.screenPos(p)
}

// Render draws the HUD, the board and the active menu.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.layout = layout{}

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", minW, minH), core.ColorGray)
		return
	}

	board := core.NewRect((dst.Width()-minW)/2, 1+(dst.Height()-minH)/2, minW, minH-1)
	g.layout.origin = core.Pt(board.X+1, board.Y+1)

	g.renderHUD(dst, board)
	dst.DrawBox(board, core.ColorGray)
	g.renderBoard(dst)

	if g.menu != nil {
		g.renderMenu(dst, board)
	}
}

func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	y := board.Y - 1
	dst.DrawText(board.X, y, fmt.Sprintf("Score: %d", g.sim.Score()), core.ColorBrightWhite)
	label := g.difficulty.Label()
	dst.DrawText(board.Right()-len(label), y, label, core.ColorYellow)
}

func (g *Game) renderBoard(dst *core.Screen) {
	g.drawCell(dst, g.sim.Apple().Pos(), "()", core.ColorRed)

	sn := g.sim.Snake()
	body := sn.Body()
	for i := len(body) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
			if sn.Dying() {
				color = core.ColorYellow
			}
		}
		g.drawCell(dst, body[i], "██", color)
	}
}

func (g *Game) drawCell(dst *core.Screen, p core.Point, glyph string, c core.Color) {
	pos := g.layout.screenPos(p)
	dst.DrawText(pos.X, pos.Y, glyph, c)
}

func (g *Game) menuSubtitle() string {
	switch g.menu.Kind {
	case MenuStart:
		return "choose a difficulty"
	default:
		return fmt.Sprintf("score %d", g.sim.Score())
	}
}

func (g *Game) renderMenu(dst *core.Screen, board core.Rect) {
	m := g.menu
	subtitle := g.menuSubtitle()

	w := max(len(m.Title), len(subtitle))
	for _, it := range m.Items {
		w = max(w, len(it.Label)+4)
	}
	w += 6
	h := len(m.Items) + 6

	box := core.NewRect(board.X+(board.W-w)/2, board.Y+(board.H-h)/2, w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)

	drawCentered(dst, box, box.Y+1, m.Title, core.ColorBrightGreen)
	drawCentered(dst, box, box.Y+2, subtitle, core.ColorGray)

	g.layout.buttons = make([]core.Rect, len(m.Items))
	for i, it := range m.Items {
		y := box.Y + 4 + i
		g.layout.buttons[i] = core.NewRect(box.X+1, y, box.W-2, 1)
		if i == m.Cursor {
			drawCentered(dst, box, y, "> "+it.Label+" <", core.ColorYellow)
		} else {
			drawCentered(dst, box, y, it.Label, core.ColorBrightWhite)
		}
	}
}

func drawCentered(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawText(x, y, text, c)
}

// RenderText draws the board alone as plain text, one row per line, for
// headless output.
func (s *Sim) RenderText() string {
	grid := make([][]byte, s.size)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", s.size))
	}
	if a := s.apple.Pos(); a.In(s.size) {
		grid[a.Y][a.X] = '*'
	}
	for i, p := range s.snake.body {
		if !p.In(s.size) {
			continue
		}
		if i == 0 {
			grid[p.Y][p.X] = '@'
		} else {
			grid[p.Y][p.X] = 'o'
		}
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
