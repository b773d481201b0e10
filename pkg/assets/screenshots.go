// screenshots.go — Fit raw phone screenshots to 1080×1920 and caption them.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/codzuregroup/storeart/pkg/generator"
)

const (
	captionBarHeight = 220
	captionBarAlpha  = 180
	captionPadding   = 36
	captionSize      = 64
)

// Screenshot is a raw input file picked up for processing.
type Screenshot struct {
	Path string
	Stem string // base filename without extension
}

// FindScreenshots lists files in dir with a recognized image extension,
// sorted by name. Subdirectories and extension-only dotfiles are ignored.
// Files sharing a stem map to the same output, so only the last one in name
// order is kept.
func FindScreenshots(dir string) ([]Screenshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list screenshots: %w", err)
	}

	var shots []Screenshot
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !slices.Contains(ScreenshotExtensions, strings.ToLower(ext)) {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), ext)
		if stem == "" {
			// A bare ".png" is a dotfile, not a screenshot.
			continue
		}
		shot := Screenshot{
			Path: filepath.Join(dir, e.Name()),
			Stem: stem,
		}
		if i := slices.IndexFunc(shots, func(s Screenshot) bool { return s.Stem == shot.Stem }); i >= 0 {
			shots = slices.Delete(shots, i, i+1)
		}
		shots = append(shots, shot)
	}
	slices.SortFunc(shots, func(a, b Screenshot) int { return strings.Compare(a.Path, b.Path) })
	return shots, nil
}

// RenderScreenshot letterboxes src into the phone canvas and, when caption is
// non-empty, lays a translucent primary bar with the caption over the top.
func (g *Generator) RenderScreenshot(src image.Image, caption string, p Palette) (*image.NRGBA, error) {
	img := generator.Letterbox(src, ScreenWidth, ScreenHeight, letterboxBG)
	if caption == "" {
		return img, nil
	}

	bar := image.Rect(0, 0, ScreenWidth, captionBarHeight)
	img = generator.FillRect(img, bar, generator.WithAlpha(p.Primary, captionBarAlpha))

	if _, err := g.renderer.DrawText(img, caption, image.Pt(captionPadding, captionPadding), TextStyle{
		Size:     captionSize,
		Weight:   Bold,
		Color:    textLight,
		MaxWidth: ScreenWidth - 2*captionPadding,
	}); err != nil {
		return nil, fmt.Errorf("draw caption: %w", err)
	}
	return img, nil
}

// ProcessScreenshots fits every raw screenshot in the input directory and
// writes phone_<stem>.png for each. A missing input directory is not an
// error: it is reported and nothing is written.
func (g *Generator) ProcessScreenshots(ctx context.Context, p Palette) ([]string, error) {
	if _, err := os.Stat(g.paths.InputDir); errors.Is(err, os.ErrNotExist) {
		slog.InfoContext(ctx, "no input directory, place raw screenshots there", "dir", g.paths.InputDir)
		return nil, nil
	}

	captions, err := LoadCaptions(g.paths.Captions)
	if err != nil {
		return nil, err
	}

	shots, err := FindScreenshots(g.paths.InputDir)
	if err != nil {
		return nil, err
	}

	stems := make([]string, len(shots))
	for i, s := range shots {
		stems[i] = s.Stem
	}
	for _, w := range ValidateCaptions(captions, stems) {
		slog.WarnContext(ctx, w)
	}

	written := make([]string, len(shots))
	err = g.forEach(ctx, len(shots), func(ctx context.Context, i int) error {
		shot := shots[i]
		src, err := generator.Open(shot.Path)
		if err != nil {
			return err
		}

		img, err := g.RenderScreenshot(src, captions[shot.Stem], p)
		if err != nil {
			return fmt.Errorf("render %s: %w", shot.Path, err)
		}

		path := g.paths.Screenshot(shot.Stem)
		if err := generator.WritePNG(path, img); err != nil {
			return err
		}
		logWrote(ctx, path)
		written[i] = path
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
