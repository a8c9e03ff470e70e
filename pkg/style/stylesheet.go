package style

import (
	"fmt"
	"strings"
)

// Property is a single raw declaration.
type Property struct {
	Name  string
	Value string
}

// Class is a named rule with its declarations in source order.
type Class struct {
	Name       string
	Properties []Property
}

// Stylesheet holds the class rules of one or more parsed sources.
type Stylesheet struct {
	Classes []Class
	// Skipped lists selectors that were not simple class selectors.
	Skipped []string
}

// Lookup returns the first class named name. Duplicate class names are
// resolved first-in-source.
func (s *Stylesheet) Lookup(name string) (Class, bool) {
	if s == nil {
		return Class{}, false
	}
	for _, c := range s.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return Class{}, false
}

// Append adds the rules of other after the rules of s.
func (s *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	s.Classes = append(s.Classes, other.Classes...)
	s.Skipped = append(s.Skipped, other.Skipped...)
}

// ParseStylesheet parses CSS stylesheet content into class rules.
// A selector list ".a, .b { ... }" yields one Class per name.
func ParseStylesheet(css string) (*Stylesheet, error) {
	sheet := &Stylesheet{}

	css, err := stripComments(css)
	if err != nil {
		return nil, err
	}

	rules, err := splitRules(css)
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		bracePos := strings.Index(rule, "{")
		selectors := strings.TrimSpace(rule[:bracePos])
		props := ParseDeclarations(rule[bracePos+1 : len(rule)-1])

		for _, sel := range strings.Split(selectors, ",") {
			sel = strings.TrimSpace(sel)
			name, ok := strings.CutPrefix(sel, ".")
			if !ok || name == "" || strings.ContainsAny(name, " .#:>[") {
				sheet.Skipped = append(sheet.Skipped, sel)
				continue
			}
			sheet.Classes = append(sheet.Classes, Class{Name: name, Properties: props})
		}
	}

	return sheet, nil
}

// splitRules splits CSS into individual "selector { ... }" rules
func splitRules(css string) ([]string, error) {
	rules := make([]string, 0)
	depth := 0
	start := 0

	for i, ch := range css {
		switch ch {
		case '{':
			depth++
			if depth > 1 {
				return nil, fmt.Errorf("nested block at offset %d", i)
			}
		case '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced '}' at offset %d", i)
			}
			if depth == 0 {
				rules = append(rules, css[start:i+1])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unterminated block")
	}
	return rules, nil
}

func stripComments(css string) (string, error) {
	var b strings.Builder
	for {
		open := strings.Index(css, "/*")
		if open == -1 {
			b.WriteString(css)
			return b.String(), nil
		}
		b.WriteString(css[:open])
		end := strings.Index(css[open+2:], "*/")
		if end == -1 {
			return "", fmt.Errorf("unterminated comment")
		}
		css = css[open+2+end+2:]
	}
}

// ParseDeclarations parses "key: value; key: value" into ordered pairs.
// Whitespace around key and value is trimmed. Entries without exactly one
// colon or with an empty key are dropped.
func ParseDeclarations(declStr string) []Property {
	props := make([]Property, 0)
	for _, part := range strings.Split(declStr, ";") {
		if strings.Count(part, ":") != 1 {
			continue
		}
		key, value, _ := strings.Cut(part, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		props = append(props, Property{Name: key, Value: strings.TrimSpace(value)})
	}
	return props
}
