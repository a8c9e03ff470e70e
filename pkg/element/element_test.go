package element

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"trellis/pkg/geom"
	"trellis/pkg/ident"
	"trellis/pkg/layout"
	"trellis/pkg/style"
	"trellis/pkg/text"
)

func styled(inline string) style.Styles {
	return style.NewResolver(nil).ParseInline(inline)
}

func box(inline string, children ...Element) *Container {
	c := NewContainer("div", nil, styled(inline))
	for _, child := range children {
		c.AddChild(child)
	}
	return c
}

type counterState struct {
	Count int
}

func counterReducer(s *counterState, cmd Command) bool {
	switch cmd.Name {
	case "increment":
		s.Count++
	case "reset":
		s.Count = 0
	default:
		return false
	}
	return true
}

func newCounter(attrs map[string]string, logger *zap.Logger) (*Component[counterState], *Text) {
	button := NewContainer("button", map[string]string{"on-click": "increment"}, styled("width: 100; height: 30"))
	label := NewText("Count: {{ count }}", button.Styles(), nil)
	button.AddChild(label)

	content := NewContainer("counter", nil, style.Styles{})
	content.AddChild(button)

	c := NewComponent(ComponentConfig[counterState]{
		Name:       "counter",
		Attributes: attrs,
		Content:    content,
		Reducer:    counterReducer,
		Props: func(s *counterState) map[string]string {
			return map[string]string{"count": strconv.Itoa(s.Count)}
		},
		Logger: logger,
	})
	return c, label
}

func TestLayout_RowAggregation(t *testing.T) {
	root := box("spacing: 10; padding: 5",
		box("width: 50; height: 20"),
		box("width: 60; height: 30"),
	)
	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})

	if got, want := root.NaturalSize(), (geom.Size{Width: 130, Height: 40}); got != want {
		t.Errorf("natural size = %+v, want %+v", got, want)
	}
	second := root.Children()[1]
	if got, want := second.Position(), (geom.Position{X: 65, Y: 5}); got != want {
		t.Errorf("second child position = %+v, want %+v", got, want)
	}
}

func TestLayout_OverflowAndScroll(t *testing.T) {
	scroller := box("width: 100; overflow: auto; spacing: 10; padding: 5",
		box("width: 50; height: 20"),
		box("width: 60; height: 30"),
	)
	root := box("", scroller)

	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})
	if !scroller.Scroll().Overflowing.Horizontal {
		t.Fatal("expected horizontal overflow")
	}
	if got, want := scroller.Scroll().ThumbRatio, 90.0/130.0; got != want {
		t.Errorf("thumb ratio = %v, want %v", got, want)
	}

	first := scroller.Children()[0]
	if got := first.Position().X; got != 5 {
		t.Errorf("unscrolled first child x = %v, want 5", got)
	}

	scroller.Scroll().ScrollTo(layout.Horizontal, 1)
	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})
	if got := first.Position().X; got != -25 {
		t.Errorf("fully scrolled first child x = %v, want -25", got)
	}
}

func TestLayout_Idempotent(t *testing.T) {
	root := box("padding: 4; align-items: center",
		box("width: 50; height: 20; margin: 3"),
		box("overflow: auto; width: 40", box("width: 90; height: 10")),
	)
	snapshot := func() []geom.Rect {
		var rects []geom.Rect
		Walk(root, func(e Element) bool {
			rects = append(rects, e.Bounds())
			return true
		})
		return rects
	}

	Layout(root, geom.Position{X: 10, Y: 10}, geom.Size{Width: 200, Height: 100})
	first := snapshot()
	Layout(root, geom.Position{X: 10, Y: 10}, geom.Size{Width: 200, Height: 100})
	if diff := cmp.Diff(first, snapshot()); diff != "" {
		t.Errorf("second layout drifted (-first +second):\n%s", diff)
	}
}

func TestLayout_HiddenChild(t *testing.T) {
	hidden := box("display: none; width: 80; height: 80")
	root := box("spacing: 10", box("width: 20; height: 20"), hidden, box("width: 20; height: 20"))
	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})

	if got := root.NaturalSize().Width; got != 50 {
		t.Errorf("natural width = %v, want 50", got)
	}
	if !hidden.Size().IsEmpty() {
		t.Errorf("hidden child size = %+v, want empty", hidden.Size())
	}
	if got := root.Children()[2].Position().X; got != 30 {
		t.Errorf("third child x = %v, want 30", got)
	}
}

func TestComponent_ClickIncrements(t *testing.T) {
	counter, label := newCounter(nil, nil)
	root := box("", counter)

	if got := label.Content(); got != "Count: 0" {
		t.Fatalf("initial text = %q, want %q", got, "Count: 0")
	}

	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})
	if got, want := counter.Size(), (geom.Size{Width: 100, Height: 30}); got != want {
		t.Errorf("component size = %+v, want %+v", got, want)
	}

	cmds := root.HandleEvent(&Event{Type: Click, Position: geom.Position{X: 10, Y: 10}})
	if len(cmds) != 0 {
		t.Errorf("commands escaped the component: %v", cmds)
	}
	if counter.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", counter.Pending())
	}

	root.Update()
	if got := counter.State().Count; got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
	if got := label.Content(); got != "Count: 1" {
		t.Errorf("text = %q, want %q", got, "Count: 1")
	}
	if counter.Pending() != 0 {
		t.Errorf("queue not drained: %d", counter.Pending())
	}
}

func TestComponent_ClickOutsideIgnored(t *testing.T) {
	counter, _ := newCounter(nil, nil)
	root := box("", counter)
	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})

	root.HandleEvent(&Event{Type: Click, Position: geom.Position{X: 300, Y: 200}})
	if counter.Pending() != 0 {
		t.Errorf("pending = %d, want 0", counter.Pending())
	}
}

func TestComponent_OwnActionBubbles(t *testing.T) {
	counter, _ := newCounter(map[string]string{"on-click": "selected"}, nil)
	root := box("", counter)
	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})

	cmds := root.HandleEvent(&Event{Type: Click, Position: geom.Position{X: 10, Y: 10}})
	if len(cmds) != 1 || cmds[0].Name != "selected" {
		t.Fatalf("commands = %v, want [selected]", cmds)
	}
	if cmds[0].Source != counter.ID() {
		t.Errorf("source = %v, want %v", cmds[0].Source, counter.ID())
	}
}

func TestComponent_UnhandledCommandLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	counter, _ := newCounter(nil, zap.New(core))

	counter.Dispatch(Command{Name: "bogus"})
	counter.Dispatch(Command{Name: "increment"})
	counter.Update()

	if got := counter.State().Count; got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
	entries := logs.FilterMessage("unhandled command").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d unhandled commands, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["command"]; got != "bogus" {
		t.Errorf("logged command = %v, want bogus", got)
	}
}

func TestComponent_OwnSizeOverridesContent(t *testing.T) {
	counter, _ := newCounter(nil, nil)
	counter.SetStyles(styled("width: 200; height: 50"))
	root := box("", counter)
	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})

	want := geom.Size{Width: 200, Height: 50}
	if got := counter.Size(); got != want {
		t.Errorf("component size = %+v, want %+v", got, want)
	}
	if got := counter.Content().Size(); got != want {
		t.Errorf("content size = %+v, want %+v", got, want)
	}
	if got := counter.NaturalSize(); got != (geom.Size{Width: 100, Height: 30}) {
		t.Errorf("component natural size = %+v", got)
	}
}

func TestComponent_NaturalSizeIgnoresContentRequest(t *testing.T) {
	content := box("width: 300", box("width: 50; height: 20"))
	c := NewComponent(ComponentConfig[counterState]{Name: "panel", Content: content})
	c.EstimateSizes()

	if got := content.NaturalSize(); got != (geom.Size{Width: 50, Height: 20}) {
		t.Fatalf("content natural size = %+v", got)
	}
	if got := c.NaturalSize(); got != (geom.Size{Width: 50, Height: 20}) {
		t.Errorf("component natural size = %+v, want content natural {50 20}", got)
	}
	if got := c.RequestedSize(); got.Width != nil || got.Height != nil {
		t.Errorf("component without own sizing must not request a size, got %+v", got)
	}
}

func TestContainer_WheelScrollsOverflowingAxis(t *testing.T) {
	scroller := box("width: 100; overflow: auto; spacing: 10; padding: 5",
		box("width: 50; height: 20"),
		box("width: 60; height: 30"),
	)
	root := box("", scroller)
	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})

	ev := &Event{Type: Wheel, Position: geom.Position{X: 20, Y: 20}, DeltaY: 0.5}
	root.HandleEvent(ev)
	if !ev.Consumed {
		t.Fatal("wheel event not consumed")
	}
	if got := scroller.Scroll().PositionX; got != 0.5 {
		t.Errorf("scroll position = %v, want 0.5", got)
	}

	root.HandleEvent(&Event{Type: Wheel, Position: geom.Position{X: 20, Y: 20}, DeltaY: 5})
	if got := scroller.Scroll().PositionX; got != 1 {
		t.Errorf("scroll position = %v, want clamped 1", got)
	}

	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})
	if got := scroller.Children()[0].Position().X; got != -25 {
		t.Errorf("first child x = %v, want -25", got)
	}
}

func TestContainer_WheelIgnoredWithoutOverflow(t *testing.T) {
	plain := box("width: 300; overflow: auto", box("width: 50; height: 20"))
	root := box("", plain)
	Layout(root, geom.Position{}, geom.Size{Width: 400, Height: 300})

	ev := &Event{Type: Wheel, Position: geom.Position{X: 10, Y: 10}, DeltaY: 0.5}
	root.HandleEvent(ev)
	if ev.Consumed {
		t.Error("wheel consumed by a container that does not overflow")
	}
	if plain.Scroll().PositionX != 0 {
		t.Errorf("scroll position moved to %v", plain.Scroll().PositionX)
	}
}

func TestText_BindAndWhiteSpace(t *testing.T) {
	parent := styled("font-size: 10; color: red; padding: 7")
	txt := NewText("  Hello,\n  {{ name }}  {{missing}} ", &parent, nil)

	txt.Bind(map[string]string{"name": "world"})
	if got, want := txt.Content(), "Hello, world {{missing}}"; got != want {
		t.Errorf("content = %q, want %q", got, want)
	}

	if txt.Styles().GetColor() != (style.Color{R: 255, A: 255}) {
		t.Errorf("text did not take the enclosing color")
	}
	if txt.Styles().GetPadding() != (style.Padding{}) {
		t.Errorf("text took the enclosing padding")
	}

	txt.EstimateSizes()
	want := geom.Size{Width: 24 * 10 * 0.6, Height: 10 * text.LineSpacing}
	if diff := cmp.Diff(want, txt.NaturalSize(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("natural size mismatch (-want +got):\n%s", diff)
	}
}

func TestText_PreKeepsLines(t *testing.T) {
	parent := styled("white-space: pre")
	txt := NewText("a\n  b", &parent, nil)
	if got := txt.Content(); got != "a\n  b" {
		t.Errorf("content = %q", got)
	}
}

func TestWalkAndFind(t *testing.T) {
	counter, label := newCounter(nil, nil)
	leaf := box("width: 1")
	root := box("", leaf, counter)

	var kinds []Kind
	Walk(root, func(e Element) bool {
		kinds = append(kinds, e.Kind())
		return true
	})
	want := []Kind{KindContainer, KindContainer, KindComponent, KindContainer, KindContainer, KindText}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}

	if got := Find(root, label.ID()); got != Element(label) {
		t.Errorf("Find returned %v", got)
	}
	if got := Find(root, ident.Zero); got != nil {
		t.Errorf("Find(zero) = %v, want nil", got)
	}
	if got := FindComponent(root, "counter"); got != Dispatcher(counter) {
		t.Errorf("FindComponent returned %v", got)
	}
	if got := FindComponent(root, "nope"); got != nil {
		t.Errorf("FindComponent(nope) = %v, want nil", got)
	}
}

func TestParseEventType(t *testing.T) {
	for _, name := range []string{"click", "press", "release", "move", "wheel"} {
		ev, ok := ParseEventType(name)
		if !ok || ev.String() != name {
			t.Errorf("ParseEventType(%q) = %v, %v", name, ev, ok)
		}
	}
	if _, ok := ParseEventType("hover"); ok {
		t.Error("hover should not parse")
	}
}
