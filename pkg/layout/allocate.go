package layout

import (
	"trellis/pkg/geom"
	"trellis/pkg/style"
)

// crossReference is the child with the largest effective cross size.
// align-items positions every child against it rather than against the
// container's allocated cross size.
type crossReference struct {
	size   float64
	margin style.Margin
}

// line returns the cross extent of the reference child including margins.
func (r crossReference) line(f flow) float64 {
	return r.size + f.crossSum(r.margin)
}

func findCrossReference(p Parent, f flow) crossReference {
	var ref crossReference
	found := false
	for i := 0; i < p.ChildCount(); i++ {
		child := p.Child(i)
		if IsHidden(child) {
			continue
		}
		size := f.crossOf(EffectiveSize(child))
		if !found || size > ref.size {
			ref = crossReference{size: size, margin: child.Styles().GetMargin()}
			found = true
		}
	}
	return ref
}

// Allocate distributes the space allocated to p among its children along
// the main axis given by flex-direction. p's own position and size must
// already be set by the caller.
func Allocate(p Parent, position geom.Position, size geom.Size) {
	allocateFlex(p, flowFor(p.Styles()), position, size)
}

func allocateFlex(p Parent, f flow, position geom.Position, size geom.Size) {
	styles := p.Styles()
	padding := styles.GetPadding()
	gap := f.gap(styles.GetSpacing())
	alignItems := styles.GetAlignItems()
	overflow := styles.GetOverflow()
	scroll := p.Scroll()

	ref := findCrossReference(p, f)

	allocatedMain := f.mainOf(size)
	effectiveMainSpace := allocatedMain - f.mainSum(padding)
	requestedMain := mainContentSize(p, f)

	overflowing := overflow.Scrolls() && requestedMain > allocatedMain
	scroll.Overflowing.set(f.main, overflowing)
	if overflowing {
		scroll.ThumbRatio = effectiveMainSpace / requestedMain
	}

	cursor := f.mainPos(position) + f.mainLead(padding)
	crossStart := f.crossPos(position) + f.crossLead(padding)

	// The shift follows the scroll position even once the content fits,
	// which moves children toward the trailing edge.
	if overflow.Scrolls() {
		cursor -= (requestedMain - allocatedMain) * scroll.Position(f.main)
	}

	lead, extraGap := justify(styles.GetJustifyContent(), allocatedMain-requestedMain, visibleCount(p))
	if !overflowing {
		cursor += lead
		gap += extraGap
	}

	for i := 0; i < p.ChildCount(); i++ {
		child := p.Child(i)
		if IsHidden(child) {
			child.AllocateSpace(f.pos(cursor, crossStart), geom.Size{})
			continue
		}

		effective := EffectiveSize(child)
		margin := child.Styles().GetMargin()

		cursor += f.mainLead(margin)
		crossOffset, crossSize := alignCross(alignItems, ref.line(f), f.crossOf(effective), margin, f)

		childPos := f.pos(cursor, crossStart+crossOffset)
		// TODO: break children into flex lines when flex-wrap is set; wrapped
		// children currently get their effective size like unwrapped ones.
		childSize := f.size(f.mainOf(effective), crossSize)
		child.AllocateSpace(childPos, childSize)

		cursor += f.mainOf(childSize) + f.mainTrail(margin) + gap
	}
}

// alignCross returns the child's offset from the content cross start and
// its allocated cross size.
func alignCross(align style.AlignItems, line, childCross float64, margin style.Margin, f flow) (offset, size float64) {
	switch align {
	case style.AlignItemsCenter:
		return (line-childCross-f.crossSum(margin))/2 + f.crossLead(margin), childCross
	case style.AlignItemsFlexEnd:
		return line - childCross - f.crossTrail(margin), childCross
	case style.AlignItemsStretch:
		return f.crossLead(margin), line - f.crossSum(margin)
	default:
		return f.crossLead(margin), childCross
	}
}

// justify distributes free main-axis space. It returns the offset of the
// first child and the space added to every gap.
func justify(j style.JustifyContent, free float64, count int) (lead, extraGap float64) {
	if free <= 0 || count == 0 {
		return 0, 0
	}
	switch j {
	case style.JustifyFlexEnd:
		return free, 0
	case style.JustifyCenter:
		return free / 2, 0
	case style.JustifySpaceBetween:
		if count == 1 {
			return 0, 0
		}
		return 0, free / float64(count-1)
	case style.JustifySpaceAround:
		g := free / float64(count)
		return g / 2, g
	case style.JustifySpaceEvenly:
		g := free / float64(count+1)
		return g, g
	}
	return 0, 0
}

func visibleCount(p Parent) int {
	n := 0
	for i := 0; i < p.ChildCount(); i++ {
		if !IsHidden(p.Child(i)) {
			n++
		}
	}
	return n
}
