// feature.go — The 1024×500 feature graphic.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/codzuregroup/storeart/pkg/generator"
)

const (
	bandCount  = 6
	bandRadius = 48
	iconRadius = 48
	iconShadow = 6 // shadow offset in pixels, both axes
)

// RenderFeatureGraphic composes the feature graphic: a primary fill crossed by
// translucent accent bands, the app icon with a drop shadow, and the app name
// with its tagline.
func (g *Generator) RenderFeatureGraphic(p Palette) (*image.NRGBA, error) {
	img := generator.NewSolidImage(FeatureWidth, FeatureHeight, p.Primary)
	w, h := float64(FeatureWidth), float64(FeatureHeight)

	// Bands get more opaque and steeper from left to right.
	bandW, bandH := int(w*1.2), int(h*0.5)
	for i := 0; i < bandCount; i++ {
		fill := generator.WithAlpha(p.Accent, uint8(32+i*16))
		band := generator.RoundedRect(bandW, bandH, bandRadius, fill)
		band = generator.Rotate(band, float64(15+i*5))
		img = generator.Overlay(img, band, image.Pt(int(-0.1*w+float64(i*120)), 40+i*40))
	}

	if g.res.Icon != nil {
		icon := generator.ScaleToHeight(g.res.Icon, int(h*0.5))
		pos := image.Pt(int(w*0.08), int(h*0.25))

		shadow := generator.RoundedRect(icon.Bounds().Dx(), icon.Bounds().Dy(), iconRadius, color.NRGBA{A: 64})
		img = generator.Overlay(img, shadow, pos.Add(image.Pt(iconShadow, iconShadow)))
		img = generator.Overlay(img, icon, pos)
	}

	textX, textY := int(w*0.45), int(h*0.28)
	if _, err := g.renderer.DrawText(img, g.brand.AppName, image.Pt(textX, textY), TextStyle{
		Size: 64, Weight: Bold, Color: textLight,
	}); err != nil {
		return nil, fmt.Errorf("draw title: %w", err)
	}
	if _, err := g.renderer.DrawText(img, g.brand.Tagline, image.Pt(textX, textY+80), TextStyle{
		Size: 30, Weight: Regular, Color: textSubtle,
	}); err != nil {
		return nil, fmt.Errorf("draw tagline: %w", err)
	}

	return img, nil
}

// FeatureGraphic renders the feature graphic and writes it to the output
// directory. It returns the path written.
func (g *Generator) FeatureGraphic(ctx context.Context, p Palette) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, err := g.RenderFeatureGraphic(p)
	if err != nil {
		return "", fmt.Errorf("render feature graphic: %w", err)
	}

	path := g.paths.FeatureGraphic()
	if err := generator.WritePNG(path, img); err != nil {
		return "", err
	}
	logWrote(ctx, path)
	return path, nil
}
