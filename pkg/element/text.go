package element

import (
	"regexp"
	"strings"

	"trellis/pkg/geom"
	"trellis/pkg/layout"
	"trellis/pkg/render"
	"trellis/pkg/style"
	"trellis/pkg/text"
)

var placeholder = regexp.MustCompile(`\{\{\s*([\w.-]+)\s*\}\}`)

// Text is a leaf holding a run of text. Its source may contain {{ key }}
// placeholders that the enclosing component fills from its props.
type Text struct {
	base
	source   string
	content  string
	measurer text.Measurer
}

// NewText creates a text leaf styled by the enclosing element's resolved
// styles. A nil measurer falls back to text.Approx.
func NewText(source string, parent *style.Styles, measurer text.Measurer) *Text {
	if measurer == nil {
		measurer = text.Approx{}
	}
	return &Text{
		base:     newBase("#text", nil, style.TextRun(parent)),
		source:   source,
		content:  source,
		measurer: measurer,
	}
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Children() []Element { return nil }

// Source returns the unbound text.
func (t *Text) Source() string { return t.source }

// Content returns the bound text with white-space applied.
func (t *Text) Content() string {
	if t.styles.GetWhiteSpace() == style.WhiteSpacePre {
		return t.content
	}
	return strings.Join(strings.Fields(t.content), " ")
}

// Bind substitutes placeholders from props. Placeholders without a
// matching key are left as written.
func (t *Text) Bind(props map[string]string) {
	if !strings.Contains(t.source, "{{") {
		return
	}
	t.content = placeholder.ReplaceAllStringFunc(t.source, func(m string) string {
		key := placeholder.FindStringSubmatch(m)[1]
		if v, ok := props[key]; ok {
			return v
		}
		return m
	})
}

func (t *Text) EstimateSizes() {
	layout.EstimateLeaf(t, t.measurer.Measure(t.Content(), text.FontFromStyles(&t.styles)))
}

func (t *Text) AllocateSpace(position geom.Position, size geom.Size) {
	t.position = position
	t.size = size
}

func (t *Text) Render(canvas *render.Canvas) {
	if layout.IsHidden(t) {
		return
	}
	canvas.RenderText(t.position, t.size, t.Content(), &t.styles)
}

func (t *Text) Update() {}

func (t *Text) HandleEvent(*Event) []Command { return nil }

var _ Element = (*Text)(nil)
