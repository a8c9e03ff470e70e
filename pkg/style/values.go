package style

import (
	"fmt"
	"strconv"
	"strings"
)

// BaseFontSize is the pixel size of 1em.
const BaseFontSize = 16.0

// Unit tags a Dimension value.
type Unit int

const (
	UnitPx Unit = iota
	UnitEm
)

func (u Unit) String() string {
	switch u {
	case UnitEm:
		return "em"
	default:
		return "px"
	}
}

// Dimension is a numeric value with a unit.
type Dimension struct {
	Value float64
	Unit  Unit
}

// Px builds a pixel Dimension.
func Px(v float64) Dimension {
	return Dimension{Value: v, Unit: UnitPx}
}

// Pixels resolves the dimension to absolute pixels.
func (d Dimension) Pixels() float64 {
	if d.Unit == UnitEm {
		return d.Value * BaseFontSize
	}
	return d.Value
}

func (d Dimension) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + d.Unit.String()
}

// ParseDimension parses a length value (e.g., "100px", "1.5em" or "100")
func ParseDimension(val string) (Dimension, error) {
	val = strings.TrimSpace(val)
	unit := UnitPx
	switch {
	case strings.HasSuffix(val, "px"):
		val = strings.TrimSuffix(val, "px")
	case strings.HasSuffix(val, "em"):
		val = strings.TrimSuffix(val, "em")
		unit = UnitEm
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return Dimension{}, fmt.Errorf("invalid dimension %q", val)
	}
	return Dimension{Value: num, Unit: unit}, nil
}

// Edges represents the four sides of a box (top, right, bottom, left)
type Edges struct {
	Top    Dimension
	Right  Dimension
	Bottom Dimension
	Left   Dimension
}

// Margin and Padding are four-sided Dimension sets.
type (
	Margin  = Edges
	Padding = Edges
)

// EdgeAll creates Edges with the same pixel value on all sides.
func EdgeAll(v float64) Edges {
	return Edges{Top: Px(v), Right: Px(v), Bottom: Px(v), Left: Px(v)}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left.Pixels() + e.Right.Pixels()
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top.Pixels() + e.Bottom.Pixels()
}

// ParseEdges expands margin/padding shorthand.
// Supports: "10px" (all), "10px 20px" (vertical horizontal),
// "10px 20px 30px" (top h bottom), "10px 20px 30px 40px" (t r b l)
func ParseEdges(value string) (Edges, error) {
	parts := strings.Fields(value)
	dims := make([]Dimension, len(parts))
	for i, p := range parts {
		d, err := ParseDimension(p)
		if err != nil {
			return Edges{}, err
		}
		dims[i] = d
	}

	switch len(dims) {
	case 1:
		return Edges{Top: dims[0], Right: dims[0], Bottom: dims[0], Left: dims[0]}, nil
	case 2:
		return Edges{Top: dims[0], Right: dims[1], Bottom: dims[0], Left: dims[1]}, nil
	case 3:
		return Edges{Top: dims[0], Right: dims[1], Bottom: dims[2], Left: dims[1]}, nil
	case 4:
		return Edges{Top: dims[0], Right: dims[1], Bottom: dims[2], Left: dims[3]}, nil
	}
	return Edges{}, fmt.Errorf("expected 1 to 4 values, got %d", len(dims))
}

// Spacing is the gap inserted between siblings.
type Spacing struct {
	X Dimension
	Y Dimension
}

// ParseSpacing parses "10px" (both axes) or "10px 4px" (x y).
func ParseSpacing(value string) (Spacing, error) {
	parts := strings.Fields(value)
	if len(parts) == 0 || len(parts) > 2 {
		return Spacing{}, fmt.Errorf("expected 1 or 2 values, got %d", len(parts))
	}
	x, err := ParseDimension(parts[0])
	if err != nil {
		return Spacing{}, err
	}
	y := x
	if len(parts) == 2 {
		if y, err = ParseDimension(parts[1]); err != nil {
			return Spacing{}, err
		}
	}
	return Spacing{X: x, Y: y}, nil
}

func parseFloat(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return f, nil
}
