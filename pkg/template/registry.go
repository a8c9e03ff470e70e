package template

import (
	"errors"
	"fmt"
	"sort"

	"trellis/pkg/element"
	"trellis/pkg/html"
	"trellis/pkg/style"
)

// ErrUnknownComponent is returned when a tag names no registered or
// discoverable component.
var ErrUnknownComponent = errors.New("unknown component")

// Factory instantiates a component for a tag occurrence. styles are the
// resolved styles of the tag itself.
type Factory func(b *Builder, node *html.Node, styles style.Styles) (element.Element, error)

// Registry maps tag names to component factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// RegisterFactory binds tag to f, replacing any earlier binding.
func (r *Registry) RegisterFactory(tag string, f Factory) {
	r.factories[tag] = f
}

// Lookup returns the factory bound to tag.
func (r *Registry) Lookup(tag string) (Factory, bool) {
	f, ok := r.factories[tag]
	return f, ok
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Definition describes a component implemented in Go.
type Definition[S any] struct {
	// Markup is the component's template. <style> blocks are added to the
	// builder's stylesheet the first time the component is used.
	Markup string
	// Init returns the initial state for a tag occurrence. Nil means the
	// zero value.
	Init    func(attributes map[string]string) S
	Reducer element.Reducer[S]
	Props   func(state *S) map[string]string
}

// Register parses def's markup and binds tag to a factory creating
// Component[S] instances.
func Register[S any](r *Registry, tag string, def Definition[S]) error {
	doc, err := html.Parse(def.Markup)
	if err != nil {
		return fmt.Errorf("component %s: %w", tag, err)
	}

	r.RegisterFactory(tag, func(b *Builder, node *html.Node, styles style.Styles) (element.Element, error) {
		if err := b.useStyles(tag, doc); err != nil {
			return nil, err
		}
		content, err := b.buildContent(tag, doc, node, &styles)
		if err != nil {
			return nil, err
		}
		var state S
		if def.Init != nil {
			state = def.Init(node.Attributes)
		}
		return element.NewComponent(element.ComponentConfig[S]{
			Name:       tag,
			Attributes: node.Attributes,
			Styles:     styles,
			Content:    content,
			State:      state,
			Reducer:    def.Reducer,
			Props:      def.Props,
			Logger:     b.logger,
		}), nil
	})
	return nil
}
