package tui

import (
	"math"
	"strings"

	"github.com/ItsNotGoodName/x-snapwm/internal/geom"
	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r     rune
	style *lipgloss.Style
}

type canvas struct {
	width  int
	height int
	cells  []cell
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style *lipgloss.Style) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

// bounds rounds r to cells. The right and bottom bounds are exclusive.
func bounds(r geom.Rect) (x0, y0, x1, y1 int) {
	x0, y0 = int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 = int(math.Round(r.X+r.Width)), int(math.Round(r.Y+r.Height))
	return
}

func (c *canvas) fill(r geom.Rect, ch rune, style lipgloss.Style) {
	x0, y0, x1, y1 := bounds(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(x, y, ch, &style)
		}
	}
}

func (c *canvas) box(r geom.Rect, style lipgloss.Style) {
	x0, y0, x1, y1 := bounds(r)
	if x1-x0 < 2 || y1-y0 < 2 {
		c.fill(r, '█', style)
		return
	}

	b := lipgloss.RoundedBorder()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			ch := ' '
			switch {
			case y == y0 && x == x0:
				ch = first(b.TopLeft)
			case y == y0 && x == x1-1:
				ch = first(b.TopRight)
			case y == y1-1 && x == x0:
				ch = first(b.BottomLeft)
			case y == y1-1 && x == x1-1:
				ch = first(b.BottomRight)
			case y == y0:
				ch = first(b.Top)
			case y == y1-1:
				ch = first(b.Bottom)
			case x == x0:
				ch = first(b.Left)
			case x == x1-1:
				ch = first(b.Right)
			}
			c.set(x, y, ch, &style)
		}
	}
}

// text writes s on the top border of r, clipped to it.
func (c *canvas) text(r geom.Rect, s string, style lipgloss.Style) {
	x0, y0, x1, _ := bounds(r)
	x := x0 + 2
	for _, ch := range s {
		if x >= x1-2 {
			return
		}
		c.set(x, y0, ch, &style)
		x++
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}

		row := c.cells[y*c.width : (y+1)*c.width]
		for i := 0; i < len(row); {
			j := i
			var run strings.Builder
			for j < len(row) && row[j].style == row[i].style {
				run.WriteRune(row[j].r)
				j++
			}
			if row[i].style == nil {
				b.WriteString(run.String())
			} else {
				b.WriteString(row[i].style.Render(run.String()))
			}
			i = j
		}
	}
	return b.String()
}

func first(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
