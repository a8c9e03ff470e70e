package layout

// Directions holds one flag per axis.
type Directions struct {
	Horizontal bool
	Vertical   bool
}

// Get returns the flag for a.
func (d Directions) Get(a Axis) bool {
	if a == Vertical {
		return d.Vertical
	}
	return d.Horizontal
}

func (d *Directions) set(a Axis, v bool) {
	if a == Vertical {
		d.Vertical = v
	} else {
		d.Horizontal = v
	}
}

// ScrollState is the transient scroll state of a container.
//
// Position is driven by input handling between frames; Overflowing and
// ThumbRatio are written by the allocation pass. Nothing else is cached:
// scrollbar geometry is derived from these values on every frame.
type ScrollState struct {
	// Position is the scroll position per axis, each in [0,1].
	PositionX float64
	PositionY float64

	Overflowing Directions

	// ThumbRatio is the visible fraction of the content on the
	// overflowing axis: thumb length over track length.
	ThumbRatio float64
}

// Position returns the scroll position on axis a.
func (s *ScrollState) Position(a Axis) float64 {
	if a == Vertical {
		return s.PositionY
	}
	return s.PositionX
}

// ScrollTo sets the position on axis a, clamped to [0,1].
func (s *ScrollState) ScrollTo(a Axis, position float64) {
	position = clamp(position, 0, 1)
	if a == Vertical {
		s.PositionY = position
	} else {
		s.PositionX = position
	}
}

// ScrollBy moves the position on axis a by delta, clamped to [0,1].
func (s *ScrollState) ScrollBy(a Axis, delta float64) {
	s.ScrollTo(a, s.Position(a)+delta)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
