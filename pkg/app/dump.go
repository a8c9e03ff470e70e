package app

import (
	"trellis/pkg/element"
	"trellis/pkg/geom"
	"trellis/pkg/layout"
)

// NodeInfo is the geometry of one element after layout.
type NodeInfo struct {
	ID        string        `json:"id"`
	Kind      element.Kind  `json:"kind"`
	Tag       string        `json:"tag"`
	Position  geom.Position `json:"position"`
	Size      geom.Size     `json:"size"`
	Natural   geom.Size     `json:"natural"`
	Requested Requested     `json:"requested"`
	Scroll    *ScrollInfo   `json:"scroll,omitempty"`
}

// Requested is a requested size with unset axes left null.
type Requested struct {
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// ScrollInfo is the scroll state of an overflowing container together with
// its scrollbars.
type ScrollInfo struct {
	PositionX  float64            `json:"position_x"`
	PositionY  float64            `json:"position_y"`
	Horizontal bool               `json:"horizontal"`
	Vertical   bool               `json:"vertical"`
	ThumbRatio float64            `json:"thumb_ratio"`
	Scrollbars []layout.Scrollbar `json:"scrollbars"`
}

// Dump lists every element in pre-order with its current geometry.
func (a *Application) Dump() []NodeInfo {
	var nodes []NodeInfo
	element.Walk(a.root, func(e element.Element) bool {
		req := e.RequestedSize()
		info := NodeInfo{
			ID:        e.ID().String(),
			Kind:      e.Kind(),
			Tag:       e.Tag(),
			Position:  e.Position(),
			Size:      e.Size(),
			Natural:   e.NaturalSize(),
			Requested: Requested{Width: req.Width, Height: req.Height},
		}
		if p, ok := e.(layout.Parent); ok {
			s := p.Scroll()
			if s.Overflowing.Horizontal || s.Overflowing.Vertical {
				info.Scroll = &ScrollInfo{
					PositionX:  s.PositionX,
					PositionY:  s.PositionY,
					Horizontal: s.Overflowing.Horizontal,
					Vertical:   s.Overflowing.Vertical,
					ThumbRatio: s.ThumbRatio,
					Scrollbars: layout.Scrollbars(e.Bounds(), s),
				}
			}
		}
		nodes = append(nodes, info)
		return true
	})
	return nodes
}
