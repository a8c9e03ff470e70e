// Package render paints resolved element geometry onto a gg canvas.
package render

import (
	"image"
	"io"
	"strings"

	"github.com/fogleman/gg"

	"trellis/pkg/geom"
	"trellis/pkg/layout"
	"trellis/pkg/style"
	"trellis/pkg/text"
)

var (
	scrollbarTrackColor = style.Color{R: 200, G: 200, B: 200, A: 255}
	scrollbarThumbColor = style.Color{R: 100, G: 100, B: 100, A: 255}
)

// Canvas is the paint surface handed to Element.Render.
type Canvas struct {
	context *gg.Context
	faces   *text.Faces
}

// NewCanvas allocates a width x height canvas. faces may be nil, in which
// case text uses gg's built-in face.
func NewCanvas(width, height int, faces *text.Faces) *Canvas {
	return &Canvas{context: gg.NewContext(width, height), faces: faces}
}

// NewCanvasForImage paints directly into img.
func NewCanvasForImage(img *image.RGBA, faces *text.Faces) *Canvas {
	return &Canvas{context: gg.NewContextForRGBA(img), faces: faces}
}

func (c *Canvas) setColor(col style.Color) {
	c.context.SetRGBA(col.Floats())
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.context.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.context.Height() }

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col style.Color) {
	c.setColor(col)
	c.context.Clear()
}

// RenderElement paints the background and border of a box. Boxes with a
// non-positive extent are skipped.
func (c *Canvas) RenderElement(position geom.Position, size geom.Size, styles *style.Styles) {
	if size.IsEmpty() {
		return
	}

	radius := styles.GetBorderRadius()
	path := func() {
		if radius > 0 {
			c.context.DrawRoundedRectangle(position.X, position.Y, size.Width, size.Height, radius)
		} else {
			c.context.DrawRectangle(position.X, position.Y, size.Width, size.Height)
		}
	}

	if bg := styles.GetBackgroundColor(); bg.A > 0 {
		c.setColor(bg)
		path()
		c.context.Fill()
	}

	if width := styles.GetBorderWidth(); width > 0 {
		c.setColor(styles.GetBorderColor())
		c.context.SetLineWidth(width)
		path()
		c.context.Stroke()
	}
}

// RenderScrollbar paints a scrollbar track and thumb.
func (c *Canvas) RenderScrollbar(sb layout.Scrollbar) {
	c.setColor(scrollbarTrackColor)
	c.context.DrawRectangle(sb.Track.X, sb.Track.Y, sb.Track.Width, sb.Track.Height)
	c.context.Fill()

	c.setColor(scrollbarThumbColor)
	c.context.DrawRectangle(sb.Thumb.X, sb.Thumb.Y, sb.Thumb.Width, sb.Thumb.Height)
	c.context.Fill()
}

// RenderText paints s inside the content box of (position, size), aligned
// by text-align. Lines are separated by '\n'.
func (c *Canvas) RenderText(position geom.Position, size geom.Size, s string, styles *style.Styles) {
	if size.IsEmpty() || strings.TrimSpace(s) == "" {
		return
	}

	font := text.FontFromStyles(styles)
	if c.faces != nil {
		if face, err := c.faces.Face(font); err == nil {
			c.context.SetFontFace(face)
		}
	}

	padding := styles.GetPadding()
	left := position.X + padding.Left.Pixels()
	top := position.Y + padding.Top.Pixels()
	contentWidth := size.Width - padding.Horizontal()
	lineHeight := font.Size * text.LineSpacing

	c.setColor(styles.GetColor())
	for i, line := range strings.Split(s, "\n") {
		x := left
		if align := styles.GetTextAlign(); align != style.TextAlignLeft {
			w, _ := c.context.MeasureString(line)
			switch align {
			case style.TextAlignCenter:
				x += (contentWidth - w) / 2
			case style.TextAlignRight:
				x += contentWidth - w
			}
		}
		c.context.DrawStringAnchored(line, x, top+float64(i)*lineHeight, 0, 1)
	}
}

// PushClip restricts painting to r until the matching PopClip.
func (c *Canvas) PushClip(r geom.Rect) {
	c.context.Push()
	c.context.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.context.Clip()
}

// PopClip restores the clip in effect before the last PushClip.
func (c *Canvas) PopClip() {
	c.context.Pop()
}

// Image returns the painted image.
func (c *Canvas) Image() image.Image {
	return c.context.Image()
}

// SavePNG writes the canvas to path.
func (c *Canvas) SavePNG(path string) error {
	return c.context.SavePNG(path)
}

// EncodePNG writes the canvas to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.context.EncodePNG(w)
}
