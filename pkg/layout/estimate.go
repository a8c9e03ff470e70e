package layout

import (
	"math"

	"trellis/pkg/geom"
	"trellis/pkg/style"
)

// RequestedSize resolves the style-requested size. Explicit width and
// height are clamped by their min/max counterparts; unset axes stay unset.
func RequestedSize(s *style.Styles) geom.OptionalSize {
	var req geom.OptionalSize
	if w := s.Sizing.Width; w != nil {
		req.Width = geom.Float(clampOptional(w.Pixels(), s.Sizing.MinWidth, s.Sizing.MaxWidth))
	}
	if h := s.Sizing.Height; h != nil {
		req.Height = geom.Float(clampOptional(h.Pixels(), s.Sizing.MinHeight, s.Sizing.MaxHeight))
	}
	return req
}

func clampOptional(v float64, lo, hi *style.Dimension) float64 {
	if hi != nil {
		v = math.Min(v, hi.Pixels())
	}
	if lo != nil {
		v = math.Max(v, lo.Pixels())
	}
	return v
}

// EstimateLeaf sets the sizes of a node without children. intrinsic is the
// content size (measured text, or zero for an empty container); padding is
// added around it.
func EstimateLeaf(n Node, intrinsic geom.Size) {
	padding := n.Styles().GetPadding()
	n.SetNaturalSize(geom.Size{
		Width:  intrinsic.Width + padding.Horizontal(),
		Height: intrinsic.Height + padding.Vertical(),
	})
	n.SetRequestedSize(RequestedSize(n.Styles()))
}

// EstimateParent sets the sizes of p from its already-estimated children:
// summed along the main axis, maxed along the cross axis, plus padding.
func EstimateParent(p Parent) {
	f := flowFor(p.Styles())
	p.SetNaturalSize(f.size(mainContentSize(p, f), crossContentSize(p, f)))
	p.SetRequestedSize(RequestedSize(p.Styles()))
}

// mainContentSize is the main-axis extent the children ask for: their
// effective sizes and margins, the spacing between siblings, and the
// parent's own padding.
func mainContentSize(p Parent, f flow) float64 {
	styles := p.Styles()
	gap := f.gap(styles.GetSpacing())

	total := 0.0
	count := 0
	for i := 0; i < p.ChildCount(); i++ {
		child := p.Child(i)
		if IsHidden(child) {
			continue
		}
		if count > 0 {
			total += gap
		}
		total += f.mainSum(child.Styles().GetMargin()) + f.mainOf(EffectiveSize(child))
		count++
	}
	return total + f.mainSum(styles.GetPadding())
}

func crossContentSize(p Parent, f flow) float64 {
	maxCross := 0.0
	for i := 0; i < p.ChildCount(); i++ {
		child := p.Child(i)
		if IsHidden(child) {
			continue
		}
		cross := f.crossOf(EffectiveSize(child)) + f.crossSum(child.Styles().GetMargin())
		maxCross = math.Max(maxCross, cross)
	}
	return maxCross + f.crossSum(p.Styles().GetPadding())
}
