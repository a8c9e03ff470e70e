// Package element implements the retained element tree: containers, text
// leaves and stateful components, all laid out by package layout.
package element

import (
	"strings"

	"trellis/pkg/geom"
	"trellis/pkg/ident"
	"trellis/pkg/layout"
	"trellis/pkg/render"
	"trellis/pkg/style"
)

// Kind names an element variant.
type Kind string

const (
	KindContainer Kind = "container"
	KindText      Kind = "text"
	KindComponent Kind = "component"
)

// Element is a node of the element tree.
type Element interface {
	layout.Node

	ID() ident.ID
	Kind() Kind
	Tag() string
	Attributes() map[string]string
	SetStyles(style.Styles)

	Position() geom.Position
	SetPosition(geom.Position)
	Size() geom.Size
	SetSize(geom.Size)
	Bounds() geom.Rect

	Children() []Element

	// Render paints the element and its subtree.
	Render(c *render.Canvas)
	// Update applies queued commands and rebinds state-derived content.
	// It runs between frames, never during layout.
	Update()
	// HandleEvent routes an input event into the subtree and returns the
	// commands that bubble out of it.
	HandleEvent(ev *Event) []Command
}

// base holds the fields shared by every variant.
type base struct {
	id         ident.ID
	tag        string
	attributes map[string]string
	styles     style.Styles
	actions    map[EventType]string

	position  geom.Position
	size      geom.Size
	natural   geom.Size
	requested geom.OptionalSize
}

func newBase(tag string, attributes map[string]string, styles style.Styles) base {
	if attributes == nil {
		attributes = map[string]string{}
	}
	return base{
		id:         ident.Next(),
		tag:        tag,
		attributes: attributes,
		styles:     styles,
		actions:    parseActions(attributes),
	}
}

// parseActions collects on-<event>="command" attributes.
func parseActions(attributes map[string]string) map[EventType]string {
	var actions map[EventType]string
	for key, value := range attributes {
		name, ok := strings.CutPrefix(key, "on-")
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		t, ok := ParseEventType(name)
		if !ok {
			continue
		}
		if actions == nil {
			actions = make(map[EventType]string)
		}
		actions[t] = strings.TrimSpace(value)
	}
	return actions
}

func (b *base) ID() ident.ID { return b.id }
func (b *base) Tag() string { return b.tag }
func (b *base) Attributes() map[string]string { return b.attributes }
func (b *base) Styles() *style.Styles { return &b.styles }
func (b *base) SetStyles(s style.Styles) { b.styles = s }
func (b *base) Position() geom.Position { return b.position }
func (b *base) SetPosition(p geom.Position) { b.position = p }
func (b *base) Size() geom.Size { return b.size }
func (b *base) SetSize(s geom.Size) { b.size = s }
func (b *base) Bounds() geom.Rect { return geom.NewRect(b.position, b.size) }
func (b *base) NaturalSize() geom.Size { return b.natural }
func (b *base) SetNaturalSize(s geom.Size) { b.natural = s }
func (b *base) RequestedSize() geom.OptionalSize { return b.requested }
func (b *base) SetRequestedSize(s geom.OptionalSize) { b.requested = s }

// hit reports whether ev lands on a visible part of the element.
func (b *base) hit(ev *Event) bool {
	if b.styles.GetDisplay() == style.DisplayNone {
		return false
	}
	return b.Bounds().Contains(ev.Position)
}

// action returns the command bound to ev on this element, if any.
func (b *base) action(ev *Event) (Command, bool) {
	name, ok := b.actions[ev.Type]
	if !ok {
		return Command{}, false
	}
	return Command{Name: name, Source: b.id}, true
}

// Layout runs size estimation over the whole tree and then allocates
// size at position to root.
func Layout(root Element, position geom.Position, size geom.Size) {
	root.EstimateSizes()
	root.AllocateSpace(position, size)
}

// Walk visits root and its descendants in pre-order. Returning false from
// fn skips the element's children.
func Walk(root Element, fn func(Element) bool) {
	if !fn(root) {
		return
	}
	for _, child := range root.Children() {
		Walk(child, fn)
	}
}

// Find returns the element with the given id, or nil.
func Find(root Element, id ident.ID) Element {
	var found Element
	Walk(root, func(e Element) bool {
		if found != nil {
			return false
		}
		if e.ID() == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// FindComponent returns the first component named name, or nil.
func FindComponent(root Element, name string) Dispatcher {
	var found Dispatcher
	Walk(root, func(e Element) bool {
		if found != nil {
			return false
		}
		if d, ok := e.(Dispatcher); ok && d.Name() == name {
			found = d
			return false
		}
		return true
	})
	return found
}
