// resources.go — Resolve optional render inputs once, up front.
package assets

import (
	"errors"
	"image"
	"log/slog"
	"os"

	"github.com/codzuregroup/storeart/pkg/generator"
)

// Resources is the resolved render configuration shared by every operation.
// Optional inputs that are missing or unreadable are nil; drawing code checks
// these fields instead of probing the filesystem.
type Resources struct {
	Fonts      *FontManager
	Icon       image.Image // nil: no icon is drawn
	Background image.Image // nil: mock screens use a flat shaded primary
}

// ResourceOptions says where optional inputs live.
type ResourceOptions struct {
	IconPath       string
	BackgroundPath string
	Font           FontOptions
}

// LoadResources resolves fonts, icon and background. Only a font failure is
// fatal; icon and background degrade to nil.
func LoadResources(opts ResourceOptions) (*Resources, error) {
	fonts, err := NewFontManager(opts.Font)
	if err != nil {
		return nil, err
	}
	slog.Debug("resolved font", "source", fonts.Source())

	return &Resources{
		Fonts:      fonts,
		Icon:       loadOptionalImage("icon", opts.IconPath),
		Background: loadOptionalImage("background", opts.BackgroundPath),
	}, nil
}

func loadOptionalImage(kind, path string) image.Image {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("optional image not found, skipping", "kind", kind, "path", path)
		return nil
	}

	img, err := generator.Open(path)
	if err != nil {
		slog.Warn("could not decode optional image, skipping", "kind", kind, "path", path, "error", err)
		return nil
	}
	return img
}
