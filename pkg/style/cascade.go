package style

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Resolver computes the effective Styles of an element. Diagnostics for
// unknown keys and invalid values go to Logger; they never abort the
// cascade.
type Resolver struct {
	Logger *zap.Logger
}

// NewResolver returns a Resolver logging to logger (nil = discard).
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{Logger: logger}
}

// Resolve runs the cascade for one element:
//
//  1. every class in the "class" attribute, in order, from sheet;
//  2. the "style" attribute, which replaces the class result entirely;
//  3. text-category inheritance from parent.
func (r *Resolver) Resolve(attributes map[string]string, parent *Styles, sheet *Stylesheet) Styles {
	var styles Styles

	if classNames, ok := attributes["class"]; ok {
		styles = r.resolveClasses(classNames, sheet)
	}

	// Inline declarations start from an empty record; class-derived values
	// are discarded, not overlaid.
	if inline, ok := attributes["style"]; ok {
		styles = r.ParseInline(inline)
	}

	Inherit(parent, &styles)
	return styles
}

func (r *Resolver) resolveClasses(classNames string, sheet *Stylesheet) Styles {
	var styles Styles
	if sheet == nil {
		return styles
	}

	for _, name := range strings.Fields(classNames) {
		class, ok := sheet.Lookup(name)
		if !ok {
			r.Logger.Debug("class not found", zap.String("class", name))
			continue
		}
		for _, prop := range class.Properties {
			r.apply(&styles, prop)
		}
	}
	return styles
}

// ParseInline resolves an inline "key: value; ..." declaration string.
func (r *Resolver) ParseInline(styleAttr string) Styles {
	var styles Styles
	for _, prop := range ParseDeclarations(styleAttr) {
		r.apply(&styles, prop)
	}
	return styles
}

func (r *Resolver) apply(styles *Styles, prop Property) {
	err := apply(styles, prop.Name, prop.Value)
	if err == nil {
		return
	}

	var unknown errUnknownKey
	if errors.As(err, &unknown) {
		r.Logger.Warn("unknown style key", zap.String("key", prop.Name))
		return
	}
	r.Logger.Debug("invalid style value",
		zap.String("key", prop.Name),
		zap.String("value", prop.Value),
		zap.Error(err))
}
