// Package template turns project files into element trees: it loads
// markup and stylesheets from a project directory, resolves component
// tags and builds Containers, Text leaves and Components.
package template

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"trellis/pkg/html"
	"trellis/pkg/style"
)

// ErrTemplateNotFound is returned when a project file does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// Loader reads project files relative to a root directory.
type Loader struct {
	fs   afero.Fs
	root string
}

// NewLoader creates a Loader over fs. Relative names passed to Read are
// resolved against root.
func NewLoader(fs afero.Fs, root string) *Loader {
	if root == "" {
		root = "."
	}
	return &Loader{fs: fs, root: root}
}

// OSLoader reads from the operating system's filesystem.
func OSLoader(root string) *Loader {
	return NewLoader(afero.NewOsFs(), root)
}

func (l *Loader) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.root, filepath.FromSlash(name))
}

// Exists reports whether name is a regular file.
func (l *Loader) Exists(name string) bool {
	info, err := l.fs.Stat(l.resolve(name))
	return err == nil && !info.IsDir()
}

// Read returns the contents of name.
func (l *Loader) Read(name string) (string, error) {
	p := l.resolve(name)
	data, err := afero.ReadFile(l.fs, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, p)
		}
		return "", fmt.Errorf("reading %s: %w", p, err)
	}
	return string(data), nil
}

// LoadDocument reads and parses a markup file.
func (l *Loader) LoadDocument(name string) (*html.Document, error) {
	markup, err := l.Read(name)
	if err != nil {
		return nil, err
	}
	doc, err := html.Parse(markup)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return doc, nil
}

// LoadStylesheet reads and parses a stylesheet file.
func (l *Loader) LoadStylesheet(name string) (*style.Stylesheet, error) {
	css, err := l.Read(name)
	if err != nil {
		return nil, err
	}
	sheet, err := style.ParseStylesheet(css)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return sheet, nil
}

// ComponentPath is the file a component tag is discovered from.
func ComponentPath(dir, tag string) string {
	return path.Join(dir, tag+".html")
}
