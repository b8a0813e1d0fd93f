package hangman

import (
	"math"

	"github.com/bloops-games/hangman/internal/bytespool"
	"github.com/bloops-games/hangman/internal/hangman/drawing"
)

const (
	cellInk   = "##"
	cellBlank = "  "
)

var _ drawing.Canvas = (*TextCanvas)(nil)

// TextCanvas rasterizes drawing primitives onto a grid of terminal cells.
func NewTextCanvas(width, height int) *TextCanvas {
	c := &TextCanvas{width: width, height: height, pen: 1}
	c.Clear()
	return c
}

type TextCanvas struct {
	width, height int
	cells         [][]bool
	// stroke width in cells, at least one
	pen int
}

// Stroke sets the pen width from the style line width. The terminal has a
// single ink, the color is not used.
func (c *TextCanvas) Stroke(style drawing.Style) {
	c.pen = int(math.Round(style.LineWidth))
	if c.pen < 1 {
		c.pen = 1
	}
}

func (c *TextCanvas) Clear() {
	c.cells = make([][]bool, c.height)
	for i := range c.cells {
		c.cells[i] = make([]bool, c.width)
	}
}

func (c *TextCanvas) Line(from, to drawing.Point) {
	dx, dy := to.X-from.X, to.Y-from.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(from.X+dx*t, from.Y+dy*t)
	}
}

func (c *TextCanvas) Arc(center drawing.Point, radius, start, end float64) {
	steps := int(math.Ceil((end-start)*radius*2)) + 1
	for i := 0; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		c.plot(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
	}
}

func (c *TextCanvas) FillRect(origin, size drawing.Point) {
	x0, y0 := int(math.Floor(origin.X)), int(math.Floor(origin.Y))
	x1, y1 := int(math.Ceil(origin.X+size.X)), int(math.Ceil(origin.Y+size.Y))
	for y := y0; y < y1 || y == y0; y++ {
		for x := x0; x < x1 || x == x0; x++ {
			c.set(x, y)
		}
	}
}

func (c *TextCanvas) Inked(x, y int) bool {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return false
	}
	return c.cells[y][x]
}

func (c *TextCanvas) plot(x, y float64) {
	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	off := (c.pen - 1) / 2
	for dy := 0; dy < c.pen; dy++ {
		for dx := 0; dx < c.pen; dx++ {
			c.set(cx-off+dx, cy-off+dy)
		}
	}
}

func (c *TextCanvas) set(x, y int) {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return
	}
	c.cells[y][x] = true
}

// String prints the grid, blank trailing cells and rows are dropped.
func (c *TextCanvas) String() string {
	buf := bytespool.Get()
	defer func() {
		buf.Reset()
		bytespool.Put(buf)
	}()

	last := -1
	for y, row := range c.cells {
		for _, ink := range row {
			if ink {
				last = y
				break
			}
		}
	}

	for y := 0; y <= last; y++ {
		width := 0
		for x, ink := range c.cells[y] {
			if ink {
				width = x + 1
			}
		}

		for x := 0; x < width; x++ {
			if c.cells[y][x] {
				buf.WriteString(cellInk)
			} else {
				buf.WriteString(cellBlank)
			}
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}
