// Package layout implements the two layout passes over an element tree.
//
// Size estimation runs post-order: every node computes its natural size
// from its children (or its content, for leaves) and resolves a requested
// size from its style. Space allocation then runs pre-order: each parent
// assigns a final position and size to its children along its main axis.
// Estimation must finish for a whole subtree before allocation starts on
// it.
package layout

import (
	"trellis/pkg/geom"
	"trellis/pkg/style"
)

// Node is anything that takes part in layout.
type Node interface {
	// Styles returns the node's resolved style. Never nil.
	Styles() *style.Styles

	NaturalSize() geom.Size
	SetNaturalSize(geom.Size)
	RequestedSize() geom.OptionalSize
	SetRequestedSize(geom.OptionalSize)

	// EstimateSizes runs the estimation pass on the node's subtree.
	EstimateSizes()
	// AllocateSpace assigns the final geometry to the node and its subtree.
	AllocateSpace(position geom.Position, size geom.Size)
}

// Parent is a Node that distributes space among children.
type Parent interface {
	Node

	ChildCount() int
	Child(i int) Node

	// Scroll returns the parent's scroll state. Allocation writes the
	// overflow flags and thumb ratio; the scroll position is only read.
	Scroll() *ScrollState
}

// EffectiveSize returns the size n occupies in its parent's layout.
func EffectiveSize(n Node) geom.Size {
	return geom.EffectiveSize(n.NaturalSize(), n.RequestedSize())
}

// IsHidden reports whether n is removed from layout by display: none.
func IsHidden(n Node) bool {
	return n.Styles().GetDisplay() == style.DisplayNone
}
