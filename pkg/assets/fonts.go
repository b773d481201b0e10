// fonts.go - Font resolution with custom TTF support and an embedded fallback.
// A custom path is tried first, then well-known system fonts, then the
// fallback: the embedded Go fonts by default, or the fixed-size bitmap face.
package assets

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight selects between the title and body font.
type Weight int

const (
	Regular Weight = iota
	Bold
)

// Fallback modes used when neither a custom nor a system font loads.
const (
	FallbackEmbedded = "embedded"
	FallbackBitmap   = "bitmap"
)

// DefaultFontCandidates are system fonts probed in order.
var DefaultFontCandidates = []string{
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// FontOptions controls font resolution.
type FontOptions struct {
	Path       string   // custom TTF/OTF, used for both weights
	Candidates []string // system fonts probed when Path is empty or unusable
	Fallback   string   // FallbackEmbedded (default) or FallbackBitmap
}

// FontManager hands out faces for the resolved fonts. It keeps parsed fonts
// only; each Face call builds a fresh face, so callers on different goroutines
// never share one.
type FontManager struct {
	fonts  map[Weight]*opentype.Font
	source string
}

// NewFontManager resolves fonts once. Unusable custom or system fonts are
// skipped; the only error is a broken embedded font.
func NewFontManager(opts FontOptions) (*FontManager, error) {
	if opts.Path != "" {
		f, err := loadFont(opts.Path)
		if err == nil {
			return &FontManager{fonts: map[Weight]*opentype.Font{Regular: f, Bold: f}, source: opts.Path}, nil
		}
		slog.Warn("could not load custom font, using fallback", "path", opts.Path, "error", err)
	}

	for _, path := range opts.Candidates {
		f, err := loadFont(path)
		if err != nil {
			continue
		}
		return &FontManager{fonts: map[Weight]*opentype.Font{Regular: f, Bold: f}, source: path}, nil
	}

	if opts.Fallback == FallbackBitmap {
		return &FontManager{source: FallbackBitmap}, nil
	}

	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontManager{
		fonts:  map[Weight]*opentype.Font{Regular: regular, Bold: bold},
		source: FallbackEmbedded,
	}, nil
}

// Source names where the fonts came from: a file path, "embedded" or "bitmap".
func (fm *FontManager) Source() string {
	return fm.source
}

// Face returns a face at the given pixel size. The bitmap fallback ignores size.
func (fm *FontManager) Face(size float64, w Weight) (font.Face, error) {
	f, ok := fm.fonts[w]
	if !ok {
		return basicfont.Face7x13, nil
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

func loadFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}
