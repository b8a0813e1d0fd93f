package drawing

import (
	"fmt"
	"math"

	"github.com/bloops-games/hangman/internal/cache"
)

const MaxWrong = 6

var (
	gallows = []Primitive{
		line(20, 230, 80, 230), // base
		line(50, 230, 50, 20),  // pole
		line(50, 20, 130, 20),  // beam
		line(130, 20, 130, 50), // rope
	}

	// stages[i] is added once the wrong count reaches i+1
	stages = [MaxWrong][]Primitive{
		{circle(130, 70, 20)},
		{rect(125, 65, 3, 3), rect(135, 65, 3, 3), arc(130, 77, 5, 0.2*math.Pi, 0.8*math.Pi)},
		{line(130, 90, 130, 170)},
		{line(130, 110, 100, 140)},
		{line(130, 110, 160, 140)},
		{line(130, 170, 100, 200), line(130, 170, 160, 200)},
	}
)

// Render returns the illustration for wrong incorrect guesses in the logical
// 200x250 space. The first primitive always clears the surface.
func Render(wrong int) []Primitive {
	if wrong < 0 {
		wrong = 0
	}
	if wrong > MaxWrong {
		wrong = MaxWrong
	}

	prims := make([]Primitive, 0, 1+len(gallows)+2*wrong)
	prims = append(prims, clearAll())
	prims = append(prims, gallows...)
	for i := 0; i < wrong; i++ {
		prims = append(prims, stages[i]...)
	}

	return prims
}

// Fit is the uniform factor that fits the logical space into width x height.
func Fit(width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	return math.Min(width/Width, height/Height)
}

func Scale(prims []Primitive, factor float64) []Primitive {
	scaled := make([]Primitive, len(prims))
	for i, p := range prims {
		scaled[i] = p.Scale(factor)
	}
	return scaled
}

func Replay(c Canvas, prims []Primitive) {
	for _, p := range prims {
		switch p.Kind {
		case KindClear:
			c.Clear()
		case KindLine:
			c.Line(p.From, p.To)
		case KindArc:
			c.Arc(p.Center, p.Radius, p.Start, p.End)
		case KindFillRect:
			c.FillRect(p.Origin, p.Size)
		}
	}
}

type key struct {
	wrong         int
	width, height float64
}

func NewRenderer(c cache.Cache) *Renderer {
	return &Renderer{cache: c}
}

// Renderer memoizes scaled illustrations, redraws for the same wrong count
// and size are served from the cache.
type Renderer struct {
	cache cache.Cache
}

func (r *Renderer) Render(wrong int, width, height float64) []Primitive {
	k := key{wrong: wrong, width: width, height: height}
	if r.cache != nil {
		if v, ok := r.cache.Get(k); ok {
			return v.([]Primitive)
		}
	}

	prims := Scale(Render(wrong), Fit(width, height))
	if r.cache != nil {
		r.cache.Add(k, prims)
	}

	return prims
}

// Draw sets the scaled stroke, clears c and draws the illustration scaled
// to width x height.
func (r *Renderer) Draw(c Canvas, wrong int, width, height float64) error {
	if wrong < 0 || wrong > MaxWrong {
		return fmt.Errorf("wrong count %d out of range 0..%d", wrong, MaxWrong)
	}

	factor := Fit(width, height)
	if factor == 0 {
		return fmt.Errorf("drawing area %vx%v is empty", width, height)
	}

	c.Stroke(DefaultStyle.Scale(factor))
	Replay(c, r.Render(wrong, width, height))

	return nil
}
