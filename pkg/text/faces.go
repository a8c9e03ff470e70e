package text

import (
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

type faceKey struct {
	path string
	size float64
}

// Faces loads and caches font faces by file and size. It is shared by the
// measurer and the renderer so both see the same metrics.
type Faces struct {
	config FontConfig

	mu    sync.Mutex
	cache map[faceKey]font.Face
}

// NewFaces returns a face cache over config.
func NewFaces(config FontConfig) *Faces {
	return &Faces{config: config, cache: make(map[faceKey]font.Face)}
}

// Face returns the face for f. It fails when no font file is configured for
// f or the file cannot be loaded.
func (fs *Faces) Face(f Font) (font.Face, error) {
	path := fs.config.FontPath(f)
	if path == "" {
		return nil, fmt.Errorf("no font configured for %q", f.Family)
	}

	key := faceKey{path: path, size: f.Size}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if face, ok := fs.cache[key]; ok {
		return face, nil
	}
	face, err := gg.LoadFontFace(path, f.Size)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %w", path, err)
	}
	fs.cache[key] = face
	return face, nil
}
