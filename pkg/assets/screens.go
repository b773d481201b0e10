// screens.go — Synthetic phone screenshots, one per screen descriptor.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/codzuregroup/storeart/pkg/generator"
)

const (
	topBarHeight = 280
	topBarAlpha  = 170
	shadeAlpha   = 80 // black overlay darkening the flat fallback background
	barIconSize  = 140
	barIconInset = 48
	screenTextX  = 220
	screenTextY  = 64
)

// screenBackground returns a fresh full-size background: the configured
// background image stretched to the canvas, or the primary color flattened
// under a translucent black overlay.
func (g *Generator) screenBackground(p Palette) *image.NRGBA {
	if g.res.Background != nil {
		bg := generator.Resize(g.res.Background, ScreenWidth, ScreenHeight)
		return generator.Overlay(generator.NewSolidImage(ScreenWidth, ScreenHeight, color.Black), bg, image.Point{})
	}
	return generator.NewSolidImage(ScreenWidth, ScreenHeight, generator.Shade(p.Primary, shadeAlpha))
}

// RenderMockScreen composes one synthetic screenshot: background, translucent
// top bar, app icon pinned to the bar, and the descriptor's title and subtitle.
func (g *Generator) RenderMockScreen(d ScreenDescriptor, p Palette) (*image.NRGBA, error) {
	img := g.screenBackground(p)
	img = generator.FillRect(img, image.Rect(0, 0, ScreenWidth, topBarHeight), generator.WithAlpha(p.Primary, topBarAlpha))

	if g.res.Icon != nil {
		icon := generator.ScaleToHeight(g.res.Icon, barIconSize)
		img = generator.Overlay(img, icon, image.Pt(barIconInset, barIconInset))
	}

	if _, err := g.renderer.DrawText(img, d.Title, image.Pt(screenTextX, screenTextY), TextStyle{
		Size: 72, Weight: Bold, Color: textLight,
	}); err != nil {
		return nil, fmt.Errorf("draw title: %w", err)
	}
	if _, err := g.renderer.DrawText(img, d.Subtitle, image.Pt(screenTextX, screenTextY+96), TextStyle{
		Size: 36, Weight: Regular, Color: textSubtle,
	}); err != nil {
		return nil, fmt.Errorf("draw subtitle: %w", err)
	}
	return img, nil
}

// MockScreens writes phone_<id>.png for every entry in Screens and returns
// the paths in descriptor order.
func (g *Generator) MockScreens(ctx context.Context, p Palette) ([]string, error) {
	written := make([]string, len(Screens))
	err := g.forEach(ctx, len(Screens), func(ctx context.Context, i int) error {
		d := Screens[i]
		img, err := g.RenderMockScreen(d, p)
		if err != nil {
			return fmt.Errorf("render screen %s: %w", d.ID, err)
		}

		path := g.paths.Screenshot(d.ID)
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
