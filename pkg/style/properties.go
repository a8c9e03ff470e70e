package style

import "fmt"

type category int

const (
	categoryLayout category = iota
	categoryDimension
	categoryAppearance
	categoryText
)

func (c category) String() string {
	return [...]string{"layout", "dimension", "appearance", "text"}[c]
}

// Property keys per category. Each key belongs to exactly one table.
var (
	layoutProperties = []string{
		"display", "flex-direction", "flex-wrap", "justify-content", "align-items",
		"flex-grow", "flex-shrink", "margin", "padding", "spacing", "overflow",
	}
	dimensionProperties = []string{
		"width", "height", "min-width", "max-width", "min-height", "max-height",
	}
	appearanceProperties = []string{
		"background-color", "color", "border-width", "border-color", "border-radius",
	}
	textProperties = []string{
		"white-space", "font-size", "font-weight", "font-family", "font-style", "text-align",
	}
)

var propertyCategory = buildPropertyCategory()

var categoryUpdaters = map[category]func(s *Styles, key, value string) error{
	categoryLayout:     updateLayoutStyle,
	categoryDimension:  updateDimensionStyle,
	categoryAppearance: updateAppearanceStyle,
	categoryText:       updateTextStyle,
}

func buildPropertyCategory() map[string]category {
	m := make(map[string]category)
	for cat, keys := range map[category][]string{
		categoryLayout:     layoutProperties,
		categoryDimension:  dimensionProperties,
		categoryAppearance: appearanceProperties,
		categoryText:       textProperties,
	} {
		for _, k := range keys {
			m[k] = cat
		}
	}
	return m
}

// IsKnownProperty reports whether key is in one of the dispatch tables.
func IsKnownProperty(key string) bool {
	_, ok := propertyCategory[key]
	return ok
}

// errUnknownKey is returned by apply for keys outside every table.
type errUnknownKey string

func (e errUnknownKey) Error() string {
	return fmt.Sprintf("unknown style key %q", string(e))
}

// apply dispatches one declaration to its category updater.
func apply(s *Styles, key, value string) error {
	cat, ok := propertyCategory[key]
	if !ok {
		return errUnknownKey(key)
	}
	return categoryUpdaters[cat](s, key, value)
}

// set parses value with parse and stores the result in *dst on success.
func set[T any](dst **T, value string, parse func(string) (T, error)) error {
	v, err := parse(value)
	if err != nil {
		return err
	}
	*dst = ptr(v)
	return nil
}

func updateLayoutStyle(s *Styles, key, value string) error {
	switch key {
	case "display":
		return set(&s.Display, value, parseDisplay)
	case "flex-direction":
		return set(&s.FlexDirection, value, parseFlexDirection)
	case "flex-wrap":
		return set(&s.FlexWrap, value, parseFlexWrap)
	case "justify-content":
		return set(&s.JustifyContent, value, parseJustifyContent)
	case "align-items":
		return set(&s.AlignItems, value, parseAlignItems)
	case "flex-grow":
		return set(&s.FlexGrow, value, parseFloat)
	case "flex-shrink":
		return set(&s.FlexShrink, value, parseFloat)
	case "margin":
		return set(&s.Margin, value, ParseEdges)
	case "padding":
		return set(&s.Padding, value, ParseEdges)
	case "spacing":
		return set(&s.Spacing, value, ParseSpacing)
	case "overflow":
		return set(&s.Overflow, value, parseOverflow)
	}
	return errUnknownKey(key)
}

func updateDimensionStyle(s *Styles, key, value string) error {
	switch key {
	case "width":
		return set(&s.Sizing.Width, value, ParseDimension)
	case "height":
		return set(&s.Sizing.Height, value, ParseDimension)
	case "min-width":
		return set(&s.Sizing.MinWidth, value, ParseDimension)
	case "max-width":
		return set(&s.Sizing.MaxWidth, value, ParseDimension)
	case "min-height":
		return set(&s.Sizing.MinHeight, value, ParseDimension)
	case "max-height":
		return set(&s.Sizing.MaxHeight, value, ParseDimension)
	}
	return errUnknownKey(key)
}

func updateAppearanceStyle(s *Styles, key, value string) error {
	switch key {
	case "background-color":
		return set(&s.BackgroundColor, value, ParseColor)
	case "color":
		return set(&s.Color, value, ParseColor)
	case "border-width":
		return set(&s.BorderWidth, value, ParseDimension)
	case "border-color":
		return set(&s.BorderColor, value, ParseColor)
	case "border-radius":
		return set(&s.BorderRadius, value, ParseDimension)
	}
	return errUnknownKey(key)
}

func updateTextStyle(s *Styles, key, value string) error {
	switch key {
	case "white-space":
		return set(&s.WhiteSpace, value, parseWhiteSpace)
	case "font-size":
		return set(&s.FontSize, value, ParseDimension)
	case "font-weight":
		return set(&s.FontWeight, value, parseFontWeight)
	case "font-family":
		return set(&s.FontFamily, value, parseFontFamily)
	case "font-style":
		return set(&s.FontStyle, value, parseFontStyle)
	case "text-align":
		return set(&s.TextAlign, value, parseTextAlign)
	}
	return errUnknownKey(key)
}

// Inherit fills every unset text-category property of child from parent.
// Layout, dimension and appearance properties are never inherited, and a
// property already set on child is never overwritten.
func Inherit(parent *Styles, child *Styles) {
	if parent == nil {
		return
	}
	if child.WhiteSpace == nil {
		child.WhiteSpace = parent.WhiteSpace
	}
	if child.FontSize == nil {
		child.FontSize = parent.FontSize
	}
	if child.FontWeight == nil {
		child.FontWeight = parent.FontWeight
	}
	if child.FontFamily == nil {
		child.FontFamily = parent.FontFamily
	}
	if child.FontStyle == nil {
		child.FontStyle = parent.FontStyle
	}
	if child.TextAlign == nil {
		child.TextAlign = parent.TextAlign
	}
}

// TextRun returns the styles a text leaf takes from its enclosing element:
// the text category plus the foreground color. Box properties stay with
// the enclosing element.
func TextRun(parent *Styles) Styles {
	var s Styles
	Inherit(parent, &s)
	if parent != nil {
		s.Color = parent.Color
	}
	return s
}
