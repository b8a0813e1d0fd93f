package drawing

import "math"

const (
	// logical drawing space, every primitive is authored in it
	Width  = 200.0
	Height = 250.0
)

type Kind uint8

const (
	KindClear Kind = iota + 1
	KindLine
	KindArc
	KindFillRect
)

type Point struct {
	X, Y float64
}

func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Primitive is one drawing instruction. Line uses From and To, Arc uses
// Center, Radius, Start and End (radians), FillRect uses Origin and Size.
type Primitive struct {
	Kind Kind

	From, To Point

	Center     Point
	Radius     float64
	Start, End float64

	Origin, Size Point
}

func (p Primitive) Scale(f float64) Primitive {
	p.From, p.To = p.From.Scale(f), p.To.Scale(f)
	p.Center = p.Center.Scale(f)
	p.Radius *= f
	p.Origin, p.Size = p.Origin.Scale(f), p.Size.Scale(f)
	return p
}

// Style is applied to every stroke of the illustration.
type Style struct {
	Color     string
	LineWidth float64
	RoundCap  bool
}

var DefaultStyle = Style{Color: "#ffffff", LineWidth: 3, RoundCap: true}

// Scale returns the style with the line width scaled by f.
func (s Style) Scale(f float64) Style {
	s.LineWidth *= f
	return s
}

// Canvas is the surface the illustration is replayed on.
type Canvas interface {
	Stroke(style Style)
	Clear()
	Line(from, to Point)
	Arc(center Point, radius, start, end float64)
	FillRect(origin, size Point)
}

func clearAll() Primitive {
	return Primitive{Kind: KindClear}
}

func line(x1, y1, x2, y2 float64) Primitive {
	return Primitive{Kind: KindLine, From: Point{X: x1, Y: y1}, To: Point{X: x2, Y: y2}}
}

func arc(x, y, r, start, end float64) Primitive {
	return Primitive{Kind: KindArc, Center: Point{X: x, Y: y}, Radius: r, Start: start, End: end}
}

func circle(x, y, r float64) Primitive {
	return arc(x, y, r, 0, 2*math.Pi)
}

func rect(x, y, w, h float64) Primitive {
	return Primitive{Kind: KindFillRect, Origin: Point{X: x, Y: y}, Size: Point{X: w, Y: h}}
}
