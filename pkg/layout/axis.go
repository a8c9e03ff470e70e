package layout

import (
	"trellis/pkg/geom"
	"trellis/pkg/style"
)

// Axis names a layout direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// flow maps the main/cross vocabulary of the allocator onto x/y. The row
// and column allocators are the same code run with a different flow.
type flow struct {
	main Axis
}

var (
	rowFlow    = flow{main: Horizontal}
	columnFlow = flow{main: Vertical}
)

func flowFor(s *style.Styles) flow {
	if s.GetFlexDirection() == style.FlexDirectionColumn {
		return columnFlow
	}
	return rowFlow
}

func (f flow) row() bool { return f.main == Horizontal }

func (f flow) mainOf(s geom.Size) float64 {
	if f.row() {
		return s.Width
	}
	return s.Height
}

func (f flow) crossOf(s geom.Size) float64 {
	if f.row() {
		return s.Height
	}
	return s.Width
}

func (f flow) mainPos(p geom.Position) float64 {
	if f.row() {
		return p.X
	}
	return p.Y
}

func (f flow) crossPos(p geom.Position) float64 {
	if f.row() {
		return p.Y
	}
	return p.X
}

func (f flow) size(main, cross float64) geom.Size {
	if f.row() {
		return geom.Size{Width: main, Height: cross}
	}
	return geom.Size{Width: cross, Height: main}
}

func (f flow) pos(main, cross float64) geom.Position {
	if f.row() {
		return geom.Position{X: main, Y: cross}
	}
	return geom.Position{X: cross, Y: main}
}

// mainLead and mainTrail are the edges before and after a box on the main
// axis; crossLead and crossTrail likewise on the cross axis.
func (f flow) mainLead(e style.Edges) float64 {
	if f.row() {
		return e.Left.Pixels()
	}
	return e.Top.Pixels()
}

func (f flow) mainTrail(e style.Edges) float64 {
	if f.row() {
		return e.Right.Pixels()
	}
	return e.Bottom.Pixels()
}

func (f flow) crossLead(e style.Edges) float64 {
	if f.row() {
		return e.Top.Pixels()
	}
	return e.Left.Pixels()
}

func (f flow) crossTrail(e style.Edges) float64 {
	if f.row() {
		return e.Bottom.Pixels()
	}
	return e.Right.Pixels()
}

func (f flow) mainSum(e style.Edges) float64 {
	return f.mainLead(e) + f.mainTrail(e)
}

func (f flow) crossSum(e style.Edges) float64 {
	return f.crossLead(e) + f.crossTrail(e)
}

func (f flow) gap(s style.Spacing) float64 {
	if f.row() {
		return s.X.Pixels()
	}
	return s.Y.Pixels()
}
