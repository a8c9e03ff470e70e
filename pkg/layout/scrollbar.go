package layout

import "trellis/pkg/geom"

const (
	// ScrollbarThickness is the cross-axis extent of a scrollbar track.
	ScrollbarThickness = 8.0
	// thumbFill is the fraction of the track thickness covered by the thumb.
	thumbFill = 0.8
)

// Scrollbar is the paint geometry of one scrollbar.
type Scrollbar struct {
	Axis  Axis      `json:"axis"`
	Track geom.Rect `json:"track"`
	Thumb geom.Rect `json:"thumb"`
}

// ScrollbarFor derives a scrollbar from a container's bounds and the two
// stored scalars. The track runs along the bottom edge for the horizontal
// axis and along the right edge for the vertical axis.
func ScrollbarFor(bounds geom.Rect, axis Axis, position, ratio float64) Scrollbar {
	sb := Scrollbar{Axis: axis}

	if axis == Horizontal {
		sb.Track = geom.Rect{
			X:      bounds.X,
			Y:      bounds.Y + bounds.Height - ScrollbarThickness,
			Width:  bounds.Width,
			Height: ScrollbarThickness,
		}
		thumb := sb.Track.Width * ratio
		minX := sb.Track.X
		maxX := sb.Track.X + sb.Track.Width - thumb
		sb.Thumb = geom.Rect{
			X:      minX + position*(maxX-minX),
			Y:      sb.Track.Y,
			Width:  thumb,
			Height: ScrollbarThickness * thumbFill,
		}
		return sb
	}

	sb.Track = geom.Rect{
		X:      bounds.X + bounds.Width - ScrollbarThickness,
		Y:      bounds.Y,
		Width:  ScrollbarThickness,
		Height: bounds.Height,
	}
	thumb := sb.Track.Height * ratio
	minY := sb.Track.Y
	maxY := sb.Track.Y + sb.Track.Height - thumb
	sb.Thumb = geom.Rect{
		X:      sb.Track.X,
		Y:      minY + position*(maxY-minY),
		Width:  ScrollbarThickness * thumbFill,
		Height: thumb,
	}
	return sb
}

// Scrollbars returns the scrollbars to paint for a container, one per
// overflowing axis.
func Scrollbars(bounds geom.Rect, s *ScrollState) []Scrollbar {
	var bars []Scrollbar
	for _, a := range []Axis{Horizontal, Vertical} {
		if s.Overflowing.Get(a) {
			bars = append(bars, ScrollbarFor(bounds, a, s.Position(a), s.ThumbRatio))
		}
	}
	return bars
}
