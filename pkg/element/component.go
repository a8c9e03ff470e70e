package element

import (
	"go.uber.org/zap"

	"trellis/pkg/geom"
	"trellis/pkg/layout"
	"trellis/pkg/render"
	"trellis/pkg/style"
)

// Reducer applies cmd to state. It reports whether the command was
// recognized.
type Reducer[S any] func(state *S, cmd Command) bool

// Dispatcher is the untyped face of a Component.
type Dispatcher interface {
	Element
	Name() string
	// Dispatch queues cmd for the next Update.
	Dispatch(cmd Command)
	// Pending returns the number of queued commands.
	Pending() int
}

// ComponentConfig describes a component instance.
type ComponentConfig[S any] struct {
	Name       string
	Attributes map[string]string
	// Styles size and place the component inside its parent. They are
	// independent of the content root's styles.
	Styles  style.Styles
	Content *Container
	State   S
	Reducer Reducer[S]
	// Props projects state into the values bound to {{ key }}
	// placeholders in the content.
	Props  func(state *S) map[string]string
	Logger *zap.Logger
}

// Component owns a typed state value and a content subtree built from a
// template. Commands produced inside the content are queued and reduced
// on Update; text placeholders are then rebound from Props.
type Component[S any] struct {
	base
	name    string
	content *Container
	state   S
	reducer Reducer[S]
	props   func(*S) map[string]string
	pending []Command
	logger  *zap.Logger
}

// NewComponent creates a component and binds its initial state.
func NewComponent[S any](cfg ComponentConfig[S]) *Component[S] {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	content := cfg.Content
	if content == nil {
		content = NewContainer(cfg.Name, nil, style.Styles{})
	}
	c := &Component[S]{
		base:    newBase(cfg.Name, cfg.Attributes, cfg.Styles),
		name:    cfg.Name,
		content: content,
		state:   cfg.State,
		reducer: cfg.Reducer,
		props:   cfg.Props,
		logger:  logger,
	}
	c.bind()
	return c
}

func (c *Component[S]) Kind() Kind { return KindComponent }

func (c *Component[S]) Name() string { return c.name }

// State returns the current state.
func (c *Component[S]) State() S { return c.state }

// Content returns the content root.
func (c *Component[S]) Content() *Container { return c.content }

func (c *Component[S]) Children() []Element { return []Element{c.content} }

func (c *Component[S]) Dispatch(cmd Command) {
	c.pending = append(c.pending, cmd)
}

func (c *Component[S]) Pending() int { return len(c.pending) }

// EstimateSizes sizes the content, then takes the content's natural size
// as this component's natural size. A size requested by the content root
// is not carried over; the requested size comes from the component's own
// styles.
func (c *Component[S]) EstimateSizes() {
	c.content.EstimateSizes()
	c.natural = c.content.NaturalSize()
	c.requested = layout.RequestedSize(&c.styles)
}

func (c *Component[S]) AllocateSpace(position geom.Position, size geom.Size) {
	c.position = position
	c.size = size
	c.content.AllocateSpace(position, size)
}

func (c *Component[S]) Render(canvas *render.Canvas) {
	if layout.IsHidden(c) {
		return
	}
	c.content.Render(canvas)
}

// Update reduces the queued commands in arrival order, rebinds text and
// updates nested components.
func (c *Component[S]) Update() {
	pending := c.pending
	c.pending = nil
	for _, cmd := range pending {
		if c.reducer == nil || !c.reducer(&c.state, cmd) {
			c.logger.Debug("unhandled command",
				zap.String("component", c.name),
				zap.String("command", cmd.Name))
		}
	}
	if len(pending) > 0 {
		c.bind()
	}
	c.content.Update()
}

// HandleEvent queues commands raised inside the content and returns only
// the command bound on the component element itself, which belongs to
// the enclosing component.
func (c *Component[S]) HandleEvent(ev *Event) []Command {
	if !c.hit(ev) {
		return nil
	}
	for _, cmd := range c.content.HandleEvent(ev) {
		c.Dispatch(cmd)
	}
	if cmd, ok := c.action(ev); ok {
		return []Command{cmd}
	}
	return nil
}

// bind fills placeholders in text owned by this component. Nested
// components bind their own text.
func (c *Component[S]) bind() {
	if c.props == nil {
		return
	}
	props := c.props(&c.state)
	Walk(c.content, func(e Element) bool {
		switch n := e.(type) {
		case *Text:
			n.Bind(props)
		case Dispatcher:
			return false
		}
		return true
	})
}
