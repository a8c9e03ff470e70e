// Package snapshot compares rendered frames against stored reference
// images.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrSizeMismatch is returned when the two frames differ in size.
var ErrSizeMismatch = errors.New("frame sizes differ")

// Result is the outcome of a comparison.
type Result struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // largest 8-bit channel difference seen
	// Diff marks differing pixels in red over a grayscale copy of the
	// actual frame. It is only set when Options.Diff is true.
	Diff *image.RGBA
}

// Options configures Compare.
type Options struct {
	// Tolerance is the largest 8-bit channel difference still counted as
	// equal.
	Tolerance int

	// FuzzyRadius lets a pixel match any expected pixel within this
	// distance. Zero requires exact positions.
	FuzzyRadius int

	// MaxDifferentPercent accepts a frame whose share of differing pixels
	// is at most this percentage.
	MaxDifferentPercent float64

	Diff bool
}

// DefaultOptions allows small anti-aliasing differences.
func DefaultOptions() Options {
	return Options{Tolerance: 2}
}

// Compare checks actual against expected pixel by pixel.
func Compare(actual, expected image.Image, opts Options) (*Result, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &Result{}, fmt.Errorf("%w: actual=%v, expected=%v", ErrSizeMismatch, bounds, expected.Bounds())
	}

	result := &Result{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}
	if opts.Diff {
		result.Diff = image.NewRGBA(bounds)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := rgba8(actual.At(x, y))
			diff := distance(a, rgba8(expected.At(x, y)))
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}

			same := diff <= opts.Tolerance
			if !same && opts.FuzzyRadius > 0 {
				same = fuzzyMatch(a, expected, x, y, opts.FuzzyRadius, opts.Tolerance)
			}
			if !same {
				result.Match = false
				result.DifferentPixels++
			}

			if result.Diff != nil {
				if same {
					result.Diff.Set(x, y, color.RGBA{a.R, a.R, a.R, 255})
				} else {
					result.Diff.Set(x, y, color.RGBA{255, 0, 0, 255})
				}
			}
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 && result.TotalPixels > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		if pct <= opts.MaxDifferentPercent {
			result.Match = true
		}
	}
	return result, nil
}

func fuzzyMatch(a color.RGBA, expected image.Image, x, y, radius, tolerance int) bool {
	bounds := expected.Bounds()
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			p := image.Pt(x+dx, y+dy)
			if !p.In(bounds) {
				continue
			}
			if distance(a, rgba8(expected.At(p.X, p.Y))) <= tolerance {
				return true
			}
		}
	}
	return false
}

func rgba8(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func distance(a, b color.RGBA) int {
	return max(
		absInt(int(a.R)-int(b.R)),
		absInt(int(a.G)-int(b.G)),
		absInt(int(a.B)-int(b.B)),
		absInt(int(a.A)-int(b.A)),
	)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// LoadPNG reads a PNG image from fs. A missing file is reported with an
// error wrapping os.ErrNotExist.
func LoadPNG(fs afero.Fs, path string) (image.Image, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// SavePNG writes img to path on fs, creating parent directories.
func SavePNG(fs afero.Fs, path string, img image.Image) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// IsMissing reports whether err means the reference image does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
