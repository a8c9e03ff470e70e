// Package text resolves fonts and measures text for leaf elements.
package text

import (
	"os"
	"path/filepath"
	"strings"

	"trellis/pkg/style"
)

// FontConfig holds paths to font files used for text measurement and rendering.
type FontConfig struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
	Monospace  string
	MonoBold   string
}

// FontConfigFromDir looks for the usual file names in dir. Missing files
// leave their field empty.
func FontConfigFromDir(dir string) FontConfig {
	find := func(names ...string) string {
		for _, n := range names {
			p := filepath.Join(dir, n)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p
			}
		}
		return ""
	}
	return FontConfig{
		Regular:    find("Regular.ttf", "regular.ttf", "DejaVuSans.ttf"),
		Bold:       find("Bold.ttf", "bold.ttf", "DejaVuSans-Bold.ttf"),
		Italic:     find("Italic.ttf", "italic.ttf", "DejaVuSans-Oblique.ttf"),
		BoldItalic: find("BoldItalic.ttf", "bolditalic.ttf", "DejaVuSans-BoldOblique.ttf"),
		Monospace:  find("Mono.ttf", "mono.ttf", "DejaVuSansMono.ttf"),
		MonoBold:   find("MonoBold.ttf", "monobold.ttf", "DejaVuSansMono-Bold.ttf"),
	}
}

// FontPath returns the font path for the given style combination, or ""
// when nothing suitable is configured.
func (fc FontConfig) FontPath(f Font) string {
	if f.Mono() {
		if f.Bold && fc.MonoBold != "" {
			return fc.MonoBold
		}
		if fc.Monospace != "" {
			return fc.Monospace
		}
		// fall through to proportional if no mono font configured
	}
	if f.Bold && f.Italic && fc.BoldItalic != "" {
		return fc.BoldItalic
	}
	if f.Bold && fc.Bold != "" {
		return fc.Bold
	}
	if f.Italic && fc.Italic != "" {
		return fc.Italic
	}
	return fc.Regular
}

// Font describes the face a run of text is set in.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// Mono reports whether the family asks for a fixed-pitch face.
func (f Font) Mono() bool {
	family := strings.ToLower(f.Family)
	return family == "monospace" || strings.Contains(family, "mono")
}

// FontFromStyles reads the text category of s.
func FontFromStyles(s *style.Styles) Font {
	return Font{
		Family: s.GetFontFamily(),
		Size:   s.GetFontSize(),
		Bold:   s.GetFontWeight().IsBold(),
		Italic: s.GetFontStyle() != style.FontStyleNormal,
	}
}
