package drawing

import (
	"math"
	"reflect"
	"testing"

	"github.com/bloops-games/hangman/internal/cache"
)

type recorder struct {
	ops   []Kind
	style Style
}

func (r *recorder) Stroke(s Style) { r.style = s }
func (r *recorder) Clear() { r.ops = append(r.ops, KindClear) }
func (r *recorder) Line(_, _ Point) { r.ops = append(r.ops, KindLine) }
func (r *recorder) Arc(_ Point, _, _, _ float64) { r.ops = append(r.ops, KindArc) }
func (r *recorder) FillRect(_, _ Point) { r.ops = append(r.ops, KindFillRect) }

func count(prims []Primitive, kind Kind) int {
	var n int
	for _, p := range prims {
		if p.Kind == kind {
			n++
		}
	}
	return n
}

func TestRender(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		wrong                   int
		lines, arcs, rects, all int
	}{
		{wrong: 0, lines: 4, all: 5},
		{wrong: 1, lines: 4, arcs: 1, all: 6},
		{wrong: 2, lines: 4, arcs: 2, rects: 2, all: 9},
		{wrong: 3, lines: 5, arcs: 2, rects: 2, all: 10},
		{wrong: 4, lines: 6, arcs: 2, rects: 2, all: 11},
		{wrong: 5, lines: 7, arcs: 2, rects: 2, all: 12},
		{wrong: 6, lines: 9, arcs: 2, rects: 2, all: 14},
	}

	for _, tc := range testCases {
		prims := Render(tc.wrong)

		if prims[0].Kind != KindClear || count(prims, KindClear) != 1 {
			t.Errorf("wrong=%d: expected a single leading clear", tc.wrong)
		}

		if len(prims) != tc.all {
			t.Errorf("wrong=%d: expected %d primitives got %d", tc.wrong, tc.all, len(prims))
		}

		if got := count(prims, KindLine); got != tc.lines {
			t.Errorf("wrong=%d: expected %d lines got %d", tc.wrong, tc.lines, got)
		}

		if got := count(prims, KindArc); got != tc.arcs {
			t.Errorf("wrong=%d: expected %d arcs got %d", tc.wrong, tc.arcs, got)
		}

		if got := count(prims, KindFillRect); got != tc.rects {
			t.Errorf("wrong=%d: expected %d rects got %d", tc.wrong, tc.rects, got)
		}
	}
}

func TestRenderCumulative(t *testing.T) {
	t.Parallel()

	for wrong := 1; wrong <= MaxWrong; wrong++ {
		prev, curr := Render(wrong-1), Render(wrong)
		if !reflect.DeepEqual(curr[:len(prev)], prev) {
			t.Errorf("wrong=%d does not extend wrong=%d", wrong, wrong-1)
		}
	}

	if !reflect.DeepEqual(Render(-1), Render(0)) || !reflect.DeepEqual(Render(9), Render(MaxWrong)) {
		t.Error("expected out of range counts to be clamped")
	}
}

func TestFit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		width, height, want float64
	}{
		{width: 200, height: 250, want: 1},
		{width: 100, height: 250, want: 0.5},
		{width: 400, height: 125, want: 0.5},
		{width: 40, height: 25, want: 0.1},
		{width: 0, height: 250, want: 0},
	}

	for _, tc := range testCases {
		if got := Fit(tc.width, tc.height); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Fit(%v, %v) expected %v got %v", tc.width, tc.height, tc.want, got)
		}
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	scaled := Scale(Render(1), 0.5)
	head := scaled[len(scaled)-1]
	if head.Kind != KindArc || head.Center != (Point{X: 65, Y: 35}) || head.Radius != 10 {
		t.Errorf("unexpected scaled head %+v", head)
	}

	if head.Start != 0 || head.End != 2*math.Pi {
		t.Errorf("angles must not be scaled, got %v..%v", head.Start, head.End)
	}
}

func TestRenderer(t *testing.T) {
	t.Parallel()

	c, err := cache.NewLRU(8)
	if err != nil {
		t.Fatalf("new lru: %v", err)
	}

	r := NewRenderer(c)
	rec := &recorder{}
	if err := r.Draw(rec, 6, 100, 125); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if len(rec.ops) != 14 || rec.ops[0] != KindClear {
		t.Errorf("unexpected operations %v", rec.ops)
	}

	if rec.style.LineWidth != DefaultStyle.LineWidth/2 || rec.style.Color != DefaultStyle.Color {
		t.Errorf("expected the stroke scaled by 0.5, got %+v", rec.style)
	}

	if n := len(c.Keys()); n != 1 {
		t.Errorf("expected the drawing to be cached, got %d items", n)
	}

	// redraw after a resize request with the same state is identical
	again := &recorder{}
	if err := r.Draw(again, 6, 100, 125); err != nil {
		t.Fatalf("draw: %v", err)
	}

	if !reflect.DeepEqual(rec.ops, again.ops) || len(c.Keys()) != 1 {
		t.Errorf("expected an idempotent redraw from cache")
	}

	if err := r.Draw(rec, 7, 100, 125); err == nil {
		t.Error("expected error for wrong count 7")
	}

	if err := r.Draw(rec, 1, 0, 0); err == nil {
		t.Error("expected error for empty area")
	}

	if got := NewRenderer(nil).Render(2, 200, 250); !reflect.DeepEqual(got, Render(2)) {
		t.Error("expected uncached renderer at scale 1 to match Render")
	}
}
