package style

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayType represents the display property value
type DisplayType string

const (
	DisplayFlex  DisplayType = "flex"
	DisplayBlock DisplayType = "block"
	DisplayNone  DisplayType = "none"
)

// FlexDirection represents the flex-direction property value
type FlexDirection string

const (
	FlexDirectionRow    FlexDirection = "row"
	FlexDirectionColumn FlexDirection = "column"
)

// FlexWrap represents the flex-wrap property value
type FlexWrap string

const (
	FlexWrapNowrap      FlexWrap = "nowrap"
	FlexWrapWrap        FlexWrap = "wrap"
	FlexWrapWrapReverse FlexWrap = "wrap-reverse"
)

// JustifyContent represents the justify-content property value
type JustifyContent string

const (
	JustifyFlexStart    JustifyContent = "flex-start"
	JustifyFlexEnd      JustifyContent = "flex-end"
	JustifyCenter       JustifyContent = "center"
	JustifySpaceBetween JustifyContent = "space-between"
	JustifySpaceAround  JustifyContent = "space-around"
	JustifySpaceEvenly  JustifyContent = "space-evenly"
)

// AlignItems represents the align-items property value
type AlignItems string

const (
	AlignItemsFlexStart AlignItems = "flex-start"
	AlignItemsCenter    AlignItems = "center"
	AlignItemsFlexEnd   AlignItems = "flex-end"
	AlignItemsStretch   AlignItems = "stretch"
)

// Overflow represents the overflow property value
type Overflow string

const (
	OverflowVisible Overflow = "visible"
	OverflowHidden  Overflow = "hidden"
	OverflowScroll  Overflow = "scroll"
	OverflowAuto    Overflow = "auto"
)

// Scrolls reports whether content exceeding the box is scrolled rather
// than clipped or left visible.
func (o Overflow) Scrolls() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// Clips reports whether children are clipped to the box when painted.
func (o Overflow) Clips() bool {
	return o != OverflowVisible
}

// WhiteSpace represents the white-space property value
type WhiteSpace string

const (
	WhiteSpaceNormal WhiteSpace = "normal"
	WhiteSpaceNowrap WhiteSpace = "nowrap"
	WhiteSpacePre    WhiteSpace = "pre"
)

// FontWeight is the numeric CSS weight (100-900).
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// IsBold reports whether the weight should use a bold face.
func (w FontWeight) IsBold() bool {
	return w >= 600
}

// FontStyle represents the font-style property value
type FontStyle string

const (
	FontStyleNormal  FontStyle = "normal"
	FontStyleItalic  FontStyle = "italic"
	FontStyleOblique FontStyle = "oblique"
)

// TextAlign represents the text-align property value
type TextAlign string

const (
	TextAlignLeft   TextAlign = "left"
	TextAlignCenter TextAlign = "center"
	TextAlignRight  TextAlign = "right"
)

// parseKeyword matches value against the allowed keywords. Aliases map
// alternative spellings onto a canonical keyword.
func parseKeyword[T ~string](value string, allowed []T, aliases map[string]T) (T, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if string(a) == value {
			return a, nil
		}
	}
	if a, ok := aliases[value]; ok {
		return a, nil
	}
	var zero T
	return zero, fmt.Errorf("unsupported keyword %q", value)
}

func parseDisplay(v string) (DisplayType, error) {
	return parseKeyword(v, []DisplayType{DisplayFlex, DisplayBlock, DisplayNone}, nil)
}

func parseFlexDirection(v string) (FlexDirection, error) {
	return parseKeyword(v, []FlexDirection{FlexDirectionRow, FlexDirectionColumn}, nil)
}

func parseFlexWrap(v string) (FlexWrap, error) {
	return parseKeyword(v, []FlexWrap{FlexWrapNowrap, FlexWrapWrap, FlexWrapWrapReverse}, nil)
}

func parseJustifyContent(v string) (JustifyContent, error) {
	return parseKeyword(v, []JustifyContent{
		JustifyFlexStart, JustifyFlexEnd, JustifyCenter,
		JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly,
	}, map[string]JustifyContent{"start": JustifyFlexStart, "end": JustifyFlexEnd})
}

func parseAlignItems(v string) (AlignItems, error) {
	return parseKeyword(v, []AlignItems{
		AlignItemsFlexStart, AlignItemsCenter, AlignItemsFlexEnd, AlignItemsStretch,
	}, map[string]AlignItems{"start": AlignItemsFlexStart, "end": AlignItemsFlexEnd})
}

func parseOverflow(v string) (Overflow, error) {
	return parseKeyword(v, []Overflow{OverflowVisible, OverflowHidden, OverflowScroll, OverflowAuto}, nil)
}

func parseWhiteSpace(v string) (WhiteSpace, error) {
	return parseKeyword(v, []WhiteSpace{WhiteSpaceNormal, WhiteSpaceNowrap, WhiteSpacePre}, nil)
}

func parseFontStyle(v string) (FontStyle, error) {
	return parseKeyword(v, []FontStyle{FontStyleNormal, FontStyleItalic, FontStyleOblique}, nil)
}

func parseTextAlign(v string) (TextAlign, error) {
	return parseKeyword(v, []TextAlign{TextAlignLeft, TextAlignCenter, TextAlignRight}, nil)
}

func parseFontWeight(v string) (FontWeight, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "normal":
		return FontWeightNormal, nil
	case "bold":
		return FontWeightBold, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 100 || n > 900 || n%100 != 0 {
		return 0, fmt.Errorf("invalid font-weight %q", v)
	}
	return FontWeight(n), nil
}

func parseFontFamily(v string) (string, error) {
	// Only the first family of a fallback list is used.
	first, _, _ := strings.Cut(v, ",")
	first = strings.Trim(strings.TrimSpace(first), `"'`)
	if first == "" {
		return "", fmt.Errorf("empty font-family")
	}
	return first, nil
}
