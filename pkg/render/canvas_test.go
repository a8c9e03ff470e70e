package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"trellis/pkg/geom"
	"trellis/pkg/layout"
	"trellis/pkg/style"
)

func colorAt(c *Canvas, x, y int) color.RGBA {
	r, g, b, a := c.Image().At(x, y).RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func inline(s string) *style.Styles {
	st := style.NewResolver(nil).ParseInline(s)
	return &st
}

func TestRenderElement_FillsBackground(t *testing.T) {
	c := NewCanvas(50, 50, nil)
	c.Clear(style.White)
	c.RenderElement(geom.Position{X: 10, Y: 10}, geom.Size{Width: 20, Height: 20}, inline("background-color: red"))

	if got := colorAt(c, 20, 20); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("expected red inside the box, got %v", got)
	}
	if got := colorAt(c, 5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected white outside the box, got %v", got)
	}
}

func TestRenderElement_EmptySizeIsNoop(t *testing.T) {
	c := NewCanvas(20, 20, nil)
	c.Clear(style.White)
	c.RenderElement(geom.Position{}, geom.Size{Width: -5, Height: 20}, inline("background-color: red"))

	if got := colorAt(c, 1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("negative width must not paint, got %v", got)
	}
}

func TestPushClip(t *testing.T) {
	c := NewCanvas(40, 40, nil)
	c.Clear(style.White)
	c.PushClip(geom.Rect{X: 0, Y: 0, Width: 10, Height: 40})
	c.RenderElement(geom.Position{}, geom.Size{Width: 40, Height: 40}, inline("background-color: blue"))
	c.PopClip()

	if got := colorAt(c, 5, 5); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("expected blue inside the clip, got %v", got)
	}
	if got := colorAt(c, 30, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected white outside the clip, got %v", got)
	}
}

func TestRenderScrollbar(t *testing.T) {
	c := NewCanvas(100, 20, nil)
	c.Clear(style.White)
	sb := layout.ScrollbarFor(geom.Rect{Width: 100, Height: 20}, layout.Horizontal, 0, 0.5)
	c.RenderScrollbar(sb)

	if got := colorAt(c, 10, 13); got != (color.RGBA{100, 100, 100, 255}) {
		t.Errorf("expected thumb color at the start of the track, got %v", got)
	}
	if got := colorAt(c, 90, 13); got != (color.RGBA{200, 200, 200, 255}) {
		t.Errorf("expected track color past the thumb, got %v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	c := NewCanvas(4, 3, nil)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("unexpected bounds %v", b)
	}
}
