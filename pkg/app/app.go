// Package app drives frames over an element tree: it applies queued
// commands, runs both layout passes against the viewport and paints the
// result, and routes input events between frames.
package app

import (
	"fmt"
	"image"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"trellis/internal/config"
	"trellis/pkg/element"
	"trellis/pkg/geom"
	"trellis/pkg/layout"
	"trellis/pkg/render"
	"trellis/pkg/script"
	"trellis/pkg/style"
	"trellis/pkg/template"
	"trellis/pkg/text"
)

// Options configures an Application.
type Options struct {
	Viewport geom.Size
	// ScrollStep is the scroll position change per wheel notch.
	ScrollStep float64
	// Faces renders text with real fonts. Nil uses gg's built-in face.
	Faces  *text.Faces
	Logger *zap.Logger
}

// Application owns one element tree and the state between its frames.
type Application struct {
	root       element.Element
	viewport   geom.Size
	scrollStep float64
	faces      *text.Faces
	logger     *zap.Logger
	engine     *script.Engine
	laidOut    bool
}

// New wraps root.
func New(root element.Element, opts Options) *Application {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = 0.05
	}
	return &Application{
		root:       root,
		viewport:   opts.Viewport,
		scrollStep: opts.ScrollStep,
		faces:      opts.Faces,
		logger:     opts.Logger,
	}
}

// Load builds the project described by cfg from fs: the project
// stylesheet if present, the index document and its components. Document
// scripts run once the tree is built.
func Load(cfg *config.Config, fs afero.Fs, logger *zap.Logger) (*Application, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	loader := template.NewLoader(fs, cfg.Project.Root)

	var faces *text.Faces
	var measurer text.Measurer = text.Approx{}
	if cfg.Fonts.Dir != "" {
		faces = text.NewFaces(text.FontConfigFromDir(cfg.Fonts.Dir))
		measurer = text.NewFaceMeasurer(faces)
	}

	builder := template.NewBuilder(loader, template.NewRegistry(), logger)
	builder.SetMeasurer(measurer)
	builder.SetComponentsDir(cfg.Project.Components)

	if cfg.Project.Stylesheet != "" && loader.Exists(cfg.Project.Stylesheet) {
		css, err := loader.Read(cfg.Project.Stylesheet)
		if err != nil {
			return nil, err
		}
		if err := builder.AddStylesheet(css); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", cfg.Project.Stylesheet, err)
		}
	}

	doc, err := loader.LoadDocument(cfg.Project.Index)
	if err != nil {
		logger.Error("loading project failed", zap.String("index", cfg.Project.Index), zap.Error(err))
		return nil, err
	}
	root, err := builder.Build(doc)
	if err != nil {
		logger.Error("building element tree failed", zap.Error(err))
		return nil, fmt.Errorf("building %s: %w", cfg.Project.Index, err)
	}

	a := New(root, Options{
		Viewport:   geom.Size{Width: float64(cfg.Viewport.Width), Height: float64(cfg.Viewport.Height)},
		ScrollStep: cfg.Scroll.Step,
		Faces:      faces,
		Logger:     logger,
	})

	a.engine = script.New(logger)
	a.engine.Mount(root)
	if err := a.engine.Execute(doc.Scripts); err != nil {
		return nil, err
	}
	return a, nil
}

// Root returns the root element.
func (a *Application) Root() element.Element { return a.root }

// Viewport returns the size allocated to the root.
func (a *Application) Viewport() geom.Size { return a.viewport }

// Resize changes the viewport. The next frame lays out against it.
func (a *Application) Resize(size geom.Size) {
	a.viewport = size
	a.laidOut = false
}

// Layout applies queued commands and runs both layout passes.
func (a *Application) Layout() {
	a.root.Update()
	element.Layout(a.root, geom.Position{}, a.viewport)
	a.laidOut = true
}

// Frame lays out the tree and paints it onto canvas.
func (a *Application) Frame(canvas *render.Canvas) {
	a.Layout()
	canvas.Clear(style.White)
	a.root.Render(canvas)
}

// RenderImage paints a frame into a new image the size of the viewport.
func (a *Application) RenderImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(a.viewport.Width), int(a.viewport.Height)))
	a.Frame(render.NewCanvasForImage(img, a.faces))
	return img
}

// HandleEvent routes ev into the tree. Commands that reach the root
// without meeting a component are logged and dropped.
func (a *Application) HandleEvent(ev *element.Event) {
	if !a.laidOut {
		a.Layout()
	}
	for _, cmd := range a.root.HandleEvent(ev) {
		a.logger.Debug("unhandled command",
			zap.String("command", cmd.Name),
			zap.Stringer("source", cmd.Source))
	}
}

// Click sends a click at pos.
func (a *Application) Click(pos geom.Position) {
	a.HandleEvent(&element.Event{Type: element.Click, Position: pos})
}

// Scroll sends a wheel event at pos. dx and dy are in wheel notches;
// positive values scroll right and down. It reports whether a container
// scrolled.
func (a *Application) Scroll(pos geom.Position, dx, dy float64) bool {
	ev := &element.Event{
		Type:     element.Wheel,
		Position: pos,
		DeltaX:   dx * a.scrollStep,
		DeltaY:   dy * a.scrollStep,
	}
	a.HandleEvent(ev)
	return ev.Consumed
}

// ScrollAll moves every scrollable container to position on axis.
func (a *Application) ScrollAll(axis layout.Axis, position float64) {
	element.Walk(a.root, func(e element.Element) bool {
		if c, ok := e.(*element.Container); ok && c.Styles().GetOverflow().Scrolls() {
			c.Scroll().ScrollTo(axis, position)
		}
		return true
	})
}

// Dispatch queues cmd on the named component.
func (a *Application) Dispatch(component string, cmd element.Command) error {
	target := element.FindComponent(a.root, component)
	if target == nil {
		return fmt.Errorf("%w: %q", script.ErrNoSuchComponent, component)
	}
	target.Dispatch(cmd)
	return nil
}
