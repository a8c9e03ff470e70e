package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func mustSheet(t *testing.T, css string) *Stylesheet {
	t.Helper()
	sheet, err := ParseStylesheet(css)
	if err != nil {
		t.Fatalf("ParseStylesheet: %v", err)
	}
	return sheet
}

func TestResolve_ClassStyles(t *testing.T) {
	sheet := mustSheet(t, `.box { width: 100px; background-color: red; }`)
	r := NewResolver(nil)

	s := r.Resolve(map[string]string{"class": "box"}, nil, sheet)

	if s.Sizing.Width == nil || s.Sizing.Width.Pixels() != 100 {
		t.Errorf("expected width 100, got %v", s.Sizing.Width)
	}
	if s.BackgroundColor == nil || *s.BackgroundColor != (Color{255, 0, 0, 255}) {
		t.Errorf("expected red background, got %v", s.BackgroundColor)
	}
}

func TestResolve_LaterClassOverridesEarlier(t *testing.T) {
	sheet := mustSheet(t, `
		.a { width: 10px; height: 5px; }
		.b { width: 20px; }
	`)
	s := NewResolver(nil).Resolve(map[string]string{"class": "a b"}, nil, sheet)

	if got := s.Sizing.Width.Pixels(); got != 20 {
		t.Errorf("expected later class to win width=20, got %v", got)
	}
	if got := s.Sizing.Height.Pixels(); got != 5 {
		t.Errorf("expected height from first class, got %v", got)
	}
}

func TestResolve_DuplicateClassFirstInSourceWins(t *testing.T) {
	sheet := mustSheet(t, `
		.dup { width: 1px; }
		.dup { width: 2px; }
	`)
	s := NewResolver(nil).Resolve(map[string]string{"class": "dup"}, nil, sheet)
	if got := s.Sizing.Width.Pixels(); got != 1 {
		t.Errorf("expected first .dup rule, got width %v", got)
	}
}

func TestResolve_InlineOverridesClass(t *testing.T) {
	sheet := mustSheet(t, `.box { width: 100px; }`)
	attrs := map[string]string{"class": "box", "style": "width: 40px"}

	s := NewResolver(nil).Resolve(attrs, nil, sheet)

	if got := s.Sizing.Width.Pixels(); got != 40 {
		t.Errorf("expected inline width 40, got %v", got)
	}
}

// The inline pass discards every class-derived value, not only the keys it
// redeclares.
func TestResolve_InlineDiscardsClassStyles(t *testing.T) {
	sheet := mustSheet(t, `.box { width: 100px; background-color: blue; padding: 4px; }`)
	attrs := map[string]string{"class": "box", "style": "width: 40px"}

	s := NewResolver(nil).Resolve(attrs, nil, sheet)

	if s.BackgroundColor != nil {
		t.Errorf("expected class background to be discarded, got %v", *s.BackgroundColor)
	}
	if s.Padding != nil {
		t.Errorf("expected class padding to be discarded, got %v", *s.Padding)
	}
}

func TestResolve_MissingStylesheetOrClass(t *testing.T) {
	r := NewResolver(nil)
	want := Styles{}

	if diff := cmp.Diff(want, r.Resolve(map[string]string{"class": "box"}, nil, nil)); diff != "" {
		t.Errorf("nil stylesheet should resolve empty (-want +got):\n%s", diff)
	}

	sheet := mustSheet(t, `.other { width: 1px; }`)
	if diff := cmp.Diff(want, r.Resolve(map[string]string{"class": "box"}, nil, sheet)); diff != "" {
		t.Errorf("unmatched class should resolve empty (-want +got):\n%s", diff)
	}
}

func TestResolve_InheritsOnlyTextCategory(t *testing.T) {
	r := NewResolver(nil)
	parent := r.ParseInline("font-size: 20px; font-family: serif; text-align: center; " +
		"color: red; background-color: blue; padding: 3px; width: 50px; overflow: auto")

	child := r.Resolve(map[string]string{"style": "font-family: monospace"}, &parent, nil)

	if got := child.GetFontSize(); got != 20 {
		t.Errorf("expected inherited font-size 20, got %v", got)
	}
	if got := child.GetTextAlign(); got != TextAlignCenter {
		t.Errorf("expected inherited text-align center, got %v", got)
	}
	if got := child.GetFontFamily(); got != "monospace" {
		t.Errorf("child's own font-family must not be overwritten, got %v", got)
	}
	if child.Color != nil || child.BackgroundColor != nil {
		t.Error("appearance properties must not be inherited")
	}
	if child.Padding != nil || child.Overflow != nil {
		t.Error("layout properties must not be inherited")
	}
	if child.Sizing.Width != nil {
		t.Error("dimension properties must not be inherited")
	}
}

func TestResolve_UnknownKeyIsDroppedAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewResolver(zap.New(core))

	s := r.Resolve(map[string]string{"style": "width: 10px; bogus-key: 1; height: 20px"}, nil, nil)

	if s.Sizing.Width == nil || s.Sizing.Width.Pixels() != 10 {
		t.Errorf("expected width 10, got %v", s.Sizing.Width)
	}
	if s.Sizing.Height == nil || s.Sizing.Height.Pixels() != 20 {
		t.Errorf("expected height 20, got %v", s.Sizing.Height)
	}
	entries := logs.FilterMessage("unknown style key").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 unknown key diagnostic, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["key"]; got != "bogus-key" {
		t.Errorf("expected key=bogus-key, got %v", got)
	}
}

func TestParseInline_MalformedEntriesSkipped(t *testing.T) {
	r := NewResolver(nil)
	s := r.ParseInline("width 10px; : 5px; height: 7px;;  ")

	if s.Sizing.Width != nil {
		t.Error("entry without colon must be skipped")
	}
	if s.Sizing.Height == nil || s.Sizing.Height.Pixels() != 7 {
		t.Errorf("expected height 7 after malformed entries, got %v", s.Sizing.Height)
	}
}

func TestParseInline_InvalidValueKeepsOthers(t *testing.T) {
	s := NewResolver(nil).ParseInline("overflow: sideways; align-items: center")
	if s.Overflow != nil {
		t.Errorf("invalid overflow must stay unset, got %v", *s.Overflow)
	}
	if s.GetAlignItems() != AlignItemsCenter {
		t.Errorf("expected align-items center, got %v", s.GetAlignItems())
	}
}

func TestEveryKeyHasExactlyOneCategory(t *testing.T) {
	seen := map[string]int{}
	for _, table := range [][]string{layoutProperties, dimensionProperties, appearanceProperties, textProperties} {
		for _, k := range table {
			seen[k]++
		}
	}
	if len(seen) != 28 {
		t.Errorf("expected 28 distinct keys, got %d", len(seen))
	}
	for k, n := range seen {
		if n != 1 {
			t.Errorf("key %q appears in %d tables", k, n)
		}
		if !IsKnownProperty(k) {
			t.Errorf("key %q missing from dispatch", k)
		}
	}
}
