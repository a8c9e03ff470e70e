package template

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"trellis/pkg/element"
	"trellis/pkg/html"
	"trellis/pkg/script"
	"trellis/pkg/style"
	"trellis/pkg/text"
)

// DefaultComponentsDir is where component templates are discovered.
const DefaultComponentsDir = "components"

// Builder turns parsed markup into an element tree. All documents and
// components built by one Builder share a single stylesheet.
type Builder struct {
	loader        *Loader
	registry      *Registry
	resolver      *style.Resolver
	measurer      text.Measurer
	logger        *zap.Logger
	componentsDir string

	sheet *style.Stylesheet
	// styled records components whose <style> blocks were already added.
	styled map[string]bool
	// absent caches tags with no component file.
	absent map[string]bool
	// building holds the components currently being instantiated.
	building map[string]bool
}

// NewBuilder creates a Builder. loader may be nil when every component is
// registered in Go; a nil registry is treated as empty.
func NewBuilder(loader *Loader, registry *Registry, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = NewRegistry()
	}
	return &Builder{
		loader:        loader,
		registry:      registry,
		resolver:      style.NewResolver(logger),
		measurer:      text.Approx{},
		logger:        logger,
		componentsDir: DefaultComponentsDir,
		sheet:         &style.Stylesheet{},
		styled:        make(map[string]bool),
		absent:        make(map[string]bool),
		building:      make(map[string]bool),
	}
}

// SetMeasurer sets the measurer used by text leaves.
func (b *Builder) SetMeasurer(m text.Measurer) {
	if m != nil {
		b.measurer = m
	}
}

// SetComponentsDir sets the project-relative directory searched for
// component templates.
func (b *Builder) SetComponentsDir(dir string) {
	b.componentsDir = dir
}

// Stylesheet returns the shared stylesheet.
func (b *Builder) Stylesheet() *style.Stylesheet {
	return b.sheet
}

// AddStylesheet parses css and appends its classes. Classes already
// present keep precedence.
func (b *Builder) AddStylesheet(css string) error {
	sheet, err := style.ParseStylesheet(css)
	if err != nil {
		return err
	}
	for _, skipped := range sheet.Skipped {
		b.logger.Debug("selector skipped", zap.String("selector", skipped))
	}
	b.sheet.Append(sheet)
	return nil
}

// Build creates the element tree for doc. A document with a single root
// element yields that element; otherwise its top-level nodes are wrapped
// in a "document" container.
func (b *Builder) Build(doc *html.Document) (element.Element, error) {
	for i, css := range doc.Stylesheets {
		if err := b.AddStylesheet(css); err != nil {
			return nil, fmt.Errorf("style block %d: %w", i, err)
		}
	}

	if root := singleElement(doc.Root); root != nil {
		return b.buildNode(root, nil)
	}
	container := element.NewContainer("document", nil, style.Styles{})
	if err := b.appendChildren(container, doc.Root.Children); err != nil {
		return nil, err
	}
	return container, nil
}

// singleElement returns n's only child when it is an element.
func singleElement(n *html.Node) *html.Node {
	if len(n.Children) == 1 && n.Children[0].Type == html.ElementNode {
		return n.Children[0]
	}
	return nil
}

func (b *Builder) buildNode(n *html.Node, parent *style.Styles) (element.Element, error) {
	styles := b.resolver.Resolve(n.Attributes, parent, b.sheet)

	factory, err := b.componentFactory(n.TagName)
	switch {
	case err == nil:
		if b.building[n.TagName] {
			return nil, fmt.Errorf("component %s contains itself", n.TagName)
		}
		b.building[n.TagName] = true
		e, err := factory(b, n, styles)
		delete(b.building, n.TagName)
		if err != nil {
			return nil, fmt.Errorf("<%s> at line %d: %w", n.TagName, n.Line, err)
		}
		return e, nil
	case !errors.Is(err, ErrUnknownComponent):
		return nil, err
	}

	c := element.NewContainer(n.TagName, n.Attributes, styles)
	if err := b.appendChildren(c, n.Children); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *Builder) appendChildren(c *element.Container, children []*html.Node) error {
	for _, child := range children {
		if child.Type == html.TextNode {
			c.AddChild(element.NewText(child.Text, c.Styles(), b.measurer))
			continue
		}
		e, err := b.buildNode(child, c.Styles())
		if err != nil {
			return err
		}
		c.AddChild(e)
	}
	return nil
}

// componentFactory finds the factory for tag, discovering script
// components from the components directory on first use.
func (b *Builder) componentFactory(tag string) (Factory, error) {
	if f, ok := b.registry.Lookup(tag); ok {
		return f, nil
	}
	if b.loader == nil || b.absent[tag] {
		return nil, ErrUnknownComponent
	}
	p := ComponentPath(b.componentsDir, tag)
	if !b.loader.Exists(p) {
		b.absent[tag] = true
		return nil, ErrUnknownComponent
	}

	doc, err := b.loader.LoadDocument(p)
	if err != nil {
		return nil, err
	}
	module, err := script.LoadModule(tag, strings.Join(doc.Scripts, "\n"), b.logger)
	if err != nil {
		return nil, err
	}
	f := scriptFactory(tag, doc, module)
	b.registry.RegisterFactory(tag, f)
	b.logger.Debug("component discovered", zap.String("tag", tag), zap.String("path", p))
	return f, nil
}

func scriptFactory(tag string, doc *html.Document, module *script.Module) Factory {
	return func(b *Builder, node *html.Node, styles style.Styles) (element.Element, error) {
		if err := b.useStyles(tag, doc); err != nil {
			return nil, err
		}
		content, err := b.buildContent(tag, doc, node, &styles)
		if err != nil {
			return nil, err
		}
		state, err := module.InitialState(node.Attributes)
		if err != nil {
			return nil, err
		}
		return element.NewComponent(element.ComponentConfig[script.State]{
			Name:       tag,
			Attributes: node.Attributes,
			Styles:     styles,
			Content:    content,
			State:      *state,
			Reducer:    module.Reduce,
			Props:      module.Props,
			Logger:     b.logger,
		}), nil
	}
}

// useStyles adds a component template's <style> blocks once.
func (b *Builder) useStyles(tag string, doc *html.Document) error {
	if b.styled[tag] {
		return nil
	}
	b.styled[tag] = true
	for _, css := range doc.Stylesheets {
		if err := b.AddStylesheet(css); err != nil {
			return fmt.Errorf("component %s: %w", tag, err)
		}
	}
	return nil
}

// buildContent builds a component's content from its template. A template
// with a single root container uses it as the content root; otherwise the
// template's nodes are wrapped in a container named after the component.
// Children written inside the component's tag are appended to the
// content root.
func (b *Builder) buildContent(tag string, doc *html.Document, node *html.Node, styles *style.Styles) (*element.Container, error) {
	var content *element.Container
	if root := singleElement(doc.Root); root != nil {
		if _, err := b.componentFactory(root.TagName); errors.Is(err, ErrUnknownComponent) {
			built, err := b.buildNode(root.CloneNode(true), styles)
			if err != nil {
				return nil, err
			}
			content = built.(*element.Container)
		}
	}
	if content == nil {
		content = element.NewContainer(tag, nil, style.TextRun(styles))
		if err := b.appendChildren(content, cloneAll(doc.Root.Children)); err != nil {
			return nil, err
		}
	}

	if err := b.appendChildren(content, node.Children); err != nil {
		return nil, err
	}
	return content, nil
}

func cloneAll(nodes []*html.Node) []*html.Node {
	out := make([]*html.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.CloneNode(true)
	}
	return out
}
