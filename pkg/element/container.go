package element

import (
	"trellis/pkg/geom"
	"trellis/pkg/layout"
	"trellis/pkg/render"
	"trellis/pkg/style"
)

// Container owns an ordered list of children. Insertion order is both
// layout order and paint order.
type Container struct {
	base
	children []Element
	scroll   layout.ScrollState
}

// NewContainer creates an empty container.
func NewContainer(tag string, attributes map[string]string, styles style.Styles) *Container {
	return &Container{base: newBase(tag, attributes, styles)}
}

func (c *Container) Kind() Kind { return KindContainer }

// AddChild appends e. e must not already belong to another parent.
func (c *Container) AddChild(e Element) {
	c.children = append(c.children, e)
}

func (c *Container) Children() []Element { return c.children }

func (c *Container) ChildCount() int { return len(c.children) }

func (c *Container) Child(i int) layout.Node { return c.children[i] }

func (c *Container) Scroll() *layout.ScrollState { return &c.scroll }

func (c *Container) EstimateSizes() {
	for _, child := range c.children {
		child.EstimateSizes()
	}
	layout.EstimateParent(c)
}

func (c *Container) AllocateSpace(position geom.Position, size geom.Size) {
	c.position = position
	c.size = size
	layout.Allocate(c, position, size)
}

func (c *Container) Render(canvas *render.Canvas) {
	if layout.IsHidden(c) {
		return
	}
	canvas.RenderElement(c.position, c.size, &c.styles)

	clip := c.styles.GetOverflow().Clips() && !c.size.IsEmpty()
	if clip {
		canvas.PushClip(c.Bounds())
	}
	for _, child := range c.children {
		child.Render(canvas)
	}
	if clip {
		canvas.PopClip()
	}

	for _, sb := range layout.Scrollbars(c.Bounds(), &c.scroll) {
		canvas.RenderScrollbar(sb)
	}
}

func (c *Container) Update() {
	for _, child := range c.children {
		child.Update()
	}
}

// HandleEvent delivers ev to the topmost child under the cursor, then
// applies wheel scrolling and this container's own on-<event> command.
func (c *Container) HandleEvent(ev *Event) []Command {
	if !c.hit(ev) {
		return nil
	}

	var commands []Command
	for i := len(c.children) - 1; i >= 0; i-- {
		child := c.children[i]
		if child.Bounds().Contains(ev.Position) && !layout.IsHidden(child) {
			commands = child.HandleEvent(ev)
			break
		}
	}

	if ev.Type == Wheel && !ev.Consumed {
		ev.Consumed = c.applyWheel(ev)
	}
	if cmd, ok := c.action(ev); ok {
		commands = append(commands, cmd)
	}
	return commands
}

// applyWheel scrolls the overflowing axes by the event deltas. A vertical
// wheel also drives horizontal scrolling when only that axis overflows.
func (c *Container) applyWheel(ev *Event) bool {
	if !c.styles.GetOverflow().Scrolls() {
		return false
	}
	over := c.scroll.Overflowing
	applied := false
	if over.Horizontal {
		delta := ev.DeltaX
		if delta == 0 && !over.Vertical {
			delta = ev.DeltaY
		}
		if delta != 0 {
			c.scroll.ScrollBy(layout.Horizontal, delta)
			applied = true
		}
	}
	if over.Vertical && ev.DeltaY != 0 {
		c.scroll.ScrollBy(layout.Vertical, ev.DeltaY)
		applied = true
	}
	return applied
}

var _ layout.Parent = (*Container)(nil)
