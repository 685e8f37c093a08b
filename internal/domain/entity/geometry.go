package entity

// All coordinates use a top-left origin with y growing downwards.
// Input sources convert to this convention before samples reach the domain.

// Point is a position in screen points.
type Point struct {
	X, Y float64
}

// Add translates the point by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Vector is a translation in screen points.
type Vector struct {
	DX, DY float64
}

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is a half-open rectangle: Min is inside, Max is outside.
type Rect struct {
	Min, Max Point
}

// RectFromCenter builds the rectangle of size s centered on c.
func RectFromCenter(c Point, s Size) Rect {
	return Rect{
		Min: Point{X: c.X - s.W/2, Y: c.Y - s.H/2},
		Max: Point{X: c.X + s.W/2, Y: c.Y + s.H/2},
	}
}

// RectFromSize builds a rectangle at the origin.
func RectFromSize(s Size) Rect {
	return Rect{Max: Point{X: s.W, Y: s.H}}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{W: r.Width(), H: r.Height()} }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Translate moves the rectangle by v.
func (r Rect) Translate(v Vector) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Screen describes the container the panel lives in.
type Screen struct {
	// Frame is the full display area.
	Frame Rect
	// Usable excludes the menu bar and system dock. Nil when unknown.
	Usable *Rect
}

// NewScreen returns a screen with only a frame of the given size.
func NewScreen(w, h float64) Screen {
	return Screen{Frame: RectFromSize(Size{W: w, H: h})}
}

// CenteringFrame returns the usable area if known, else the frame.
func (s Screen) CenteringFrame() Rect {
	if s.Usable != nil && !s.Usable.Empty() {
		return *s.Usable
	}
	return s.Frame
}

// PanelGeometry is the derived placement of the panel.
type PanelGeometry struct {
	Edge         Edge
	Anchor       Point
	Size         Size
	Rect         Rect
	HiddenOffset Vector
}

// HiddenRect returns the panel rectangle after the hidden translation.
func (g PanelGeometry) HiddenRect() Rect {
	return g.Rect.Translate(g.HiddenOffset)
}
