// Package geom holds the box model primitives shared by the style, layout
// and render packages.
package geom

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Size represents dimensions (width and height)
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// IsEmpty reports whether either extent is non-positive. Painting an empty
// size is a no-op.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// OptionalSize is a size requested by style. A nil axis means "use the
// natural size".
type OptionalSize struct {
	Width  *float64
	Height *float64
}

// Float returns a pointer to v, for building OptionalSize literals.
func Float(v float64) *float64 {
	return &v
}

// Rect represents a rectangular region
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect builds a Rect from a position and a size.
func NewRect(p Position, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Position returns the top-left corner.
func (r Rect) Position() Position {
	return Position{X: r.X, Y: r.Y}
}

// Size returns the extents.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// EffectiveSize resolves the size used for layout: per axis, the requested
// value when present, otherwise the natural value.
func EffectiveSize(natural Size, requested OptionalSize) Size {
	effective := natural
	if requested.Width != nil {
		effective.Width = *requested.Width
	}
	if requested.Height != nil {
		effective.Height = *requested.Height
	}
	return effective
}
