package text

import (
	"strings"

	"github.com/fogleman/gg"

	"trellis/pkg/geom"
)

// LineSpacing is the line height as a multiple of the font size.
const LineSpacing = 1.2

// Measurer measures the intrinsic size of a run of text.
type Measurer interface {
	Measure(s string, f Font) geom.Size
}

// Approx estimates text size without font files: every glyph is 0.6em wide
// and a line is LineSpacing em high.
type Approx struct{}

func (Approx) Measure(s string, f Font) geom.Size {
	lines := strings.Split(s, "\n")
	widest := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > widest {
			widest = n
		}
	}
	return geom.Size{
		Width:  float64(widest) * f.Size * 0.6,
		Height: float64(len(lines)) * f.Size * LineSpacing,
	}
}

// FaceMeasurer measures with real font faces, falling back to Approx when
// a face cannot be loaded.
type FaceMeasurer struct {
	faces    *Faces
	fallback Approx
}

// NewFaceMeasurer returns a measurer backed by faces.
func NewFaceMeasurer(faces *Faces) *FaceMeasurer {
	return &FaceMeasurer{faces: faces}
}

func (m *FaceMeasurer) Measure(s string, f Font) geom.Size {
	face, err := m.faces.Face(f)
	if err != nil {
		return m.fallback.Measure(s, f)
	}

	// Use a temporary context for measurement
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)

	if strings.Contains(s, "\n") {
		w, h := dc.MeasureMultilineString(s, LineSpacing)
		return geom.Size{Width: w, Height: h}
	}
	w, h := dc.MeasureString(s)
	return geom.Size{Width: w, Height: h}
}
