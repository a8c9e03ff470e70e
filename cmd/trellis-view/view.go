package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"trellis/pkg/app"
	"trellis/pkg/geom"
)

// wheelNotch is the scroll delta fyne reports for one wheel notch.
const wheelNotch = 10

// frameView shows the current frame of an application and forwards
// pointer input to it.
type frameView struct {
	widget.BaseWidget

	app     *app.Application
	logger  *zap.Logger
	image   *canvas.Image
	onEvent func(string)
}

var (
	_ fyne.Tappable   = (*frameView)(nil)
	_ fyne.Scrollable = (*frameView)(nil)
)

func newFrameView(a *app.Application, logger *zap.Logger) *frameView {
	v := &frameView{app: a, logger: logger}
	v.image = canvas.NewImageFromImage(a.RenderImage())
	v.image.FillMode = canvas.ImageFillOriginal
	v.image.ScaleMode = canvas.ImageScalePixels
	v.ExtendBaseWidget(v)
	return v
}

func (v *frameView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.image)
}

func (v *frameView) Resize(size fyne.Size) {
	v.BaseWidget.Resize(size)
	if size.Width < 1 || size.Height < 1 {
		return
	}
	v.app.Resize(geom.Size{Width: float64(size.Width), Height: float64(size.Height)})
	v.redraw()
}

func (v *frameView) Tapped(ev *fyne.PointEvent) {
	pos := geom.Position{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
	v.app.Click(pos)
	v.redraw()
	v.report(fmt.Sprintf("click at %.0f,%.0f", pos.X, pos.Y))
}

func (v *frameView) Scrolled(ev *fyne.ScrollEvent) {
	pos := geom.Position{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
	// fyne reports positive deltas for scrolling up and left.
	dx := -float64(ev.Scrolled.DX) / wheelNotch
	dy := -float64(ev.Scrolled.DY) / wheelNotch
	if !v.app.Scroll(pos, dx, dy) {
		return
	}
	v.redraw()
	v.report(fmt.Sprintf("scroll %.1f,%.1f", dx, dy))
}

func (v *frameView) redraw() {
	v.image.Image = v.app.RenderImage()
	v.image.Refresh()
}

func (v *frameView) report(what string) {
	v.logger.Debug("frame updated", zap.String("event", what))
	if v.onEvent != nil {
		v.onEvent(what)
	}
}
