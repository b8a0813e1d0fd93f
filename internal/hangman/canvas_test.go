package hangman

import (
	"math"
	"strings"
	"testing"

	"github.com/bloops-games/hangman/internal/hangman/drawing"
)

func TestTextCanvasLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		from, to drawing.Point
		inked    [][2]int
		blank    [][2]int
	}{
		{
			name:  "horizontal",
			from:  drawing.Point{X: 0, Y: 1},
			to:    drawing.Point{X: 4, Y: 1},
			inked: [][2]int{{0, 1}, {2, 1}, {4, 1}},
			blank: [][2]int{{0, 0}, {2, 2}},
		},
		{
			name:  "vertical",
			from:  drawing.Point{X: 2, Y: 0},
			to:    drawing.Point{X: 2, Y: 4},
			inked: [][2]int{{2, 0}, {2, 2}, {2, 4}},
			blank: [][2]int{{1, 2}, {3, 2}},
		},
		{
			name:  "diagonal",
			from:  drawing.Point{X: 0, Y: 0},
			to:    drawing.Point{X: 4, Y: 4},
			inked: [][2]int{{0, 0}, {1, 1}, {3, 3}, {4, 4}},
			blank: [][2]int{{4, 0}, {0, 4}},
		},
		{
			name:  "clipped",
			from:  drawing.Point{X: -10, Y: 2},
			to:    drawing.Point{X: 10, Y: 2},
			inked: [][2]int{{0, 2}, {4, 2}},
			blank: [][2]int{{0, 1}},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := NewTextCanvas(5, 5)
			c.Line(tc.from, tc.to)
			for _, p := range tc.inked {
				if !c.Inked(p[0], p[1]) {
					t.Errorf("cell %v not inked", p)
				}
			}
			for _, p := range tc.blank {
				if c.Inked(p[0], p[1]) {
					t.Errorf("cell %v inked", p)
				}
			}
		})
	}
}

func TestTextCanvasStroke(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		width float64
		inked []int
		blank []int
	}{
		{name: "thin", width: 0.3, inked: []int{5}, blank: []int{4, 6}},
		{name: "default", width: drawing.DefaultStyle.LineWidth, inked: []int{4, 5, 6}, blank: []int{3, 7}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := NewTextCanvas(10, 10)
			c.Stroke(drawing.Style{LineWidth: tc.width})
			c.Line(drawing.Point{X: 5, Y: 0}, drawing.Point{X: 5, Y: 9})
			for _, x := range tc.inked {
				if !c.Inked(x, 5) {
					t.Errorf("cell (%d, 5) not inked", x)
				}
			}
			for _, x := range tc.blank {
				if c.Inked(x, 5) {
					t.Errorf("cell (%d, 5) inked", x)
				}
			}
		})
	}
}

func TestTextCanvasFillRect(t *testing.T) {
	t.Parallel()

	c := NewTextCanvas(6, 6)
	c.FillRect(drawing.Point{X: 1, Y: 1}, drawing.Point{X: 2, Y: 2})
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := x >= 1 && x < 3 && y >= 1 && y < 3
			if got := c.Inked(x, y); got != want {
				t.Errorf("cell (%d, %d) inked %v, want %v", x, y, got, want)
			}
		}
	}

	c.Clear()
	c.FillRect(drawing.Point{X: 4.2, Y: 4.2}, drawing.Point{X: 0.1, Y: 0.1})
	if !c.Inked(4, 4) {
		t.Errorf("tiny rect must ink one cell")
	}
}

func TestTextCanvasArc(t *testing.T) {
	t.Parallel()

	c := NewTextCanvas(21, 21)
	c.Arc(drawing.Point{X: 10.5, Y: 10.5}, 8, 0, 2*math.Pi)
	for _, p := range [][2]int{{18, 10}, {10, 18}, {2, 10}, {10, 2}} {
		if !c.Inked(p[0], p[1]) {
			t.Errorf("cell %v not inked", p)
		}
	}
	if c.Inked(10, 10) {
		t.Errorf("center inked")
	}
}

func TestTextCanvasString(t *testing.T) {
	t.Parallel()

	c := NewTextCanvas(4, 4)
	if got := c.String(); got != "" {
		t.Errorf("empty canvas printed %q", got)
	}

	c.FillRect(drawing.Point{X: 1, Y: 0}, drawing.Point{X: 1, Y: 1})
	c.FillRect(drawing.Point{X: 0, Y: 1}, drawing.Point{X: 1, Y: 1})
	want := "  ##\n##\n"
	if got := c.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTextCanvasIllustration(t *testing.T) {
	t.Parallel()

	renderer := drawing.NewRenderer(nil)
	empty := NewTextCanvas(20, 25)
	if err := renderer.Draw(empty, 0, 20, 25); err != nil {
		t.Fatalf("draw: %v", err)
	}

	full := NewTextCanvas(20, 25)
	if err := renderer.Draw(full, drawing.MaxWrong, 20, 25); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if strings.Count(full.String(), cellInk) <= strings.Count(empty.String(), cellInk) {
		t.Errorf("full figure must ink more cells than the bare gallows")
	}
}
