package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codzuregroup/storeart/pkg/generator"
)

type fixture struct {
	icon       bool
	background bool
	jobs       int
	brand      *Brand
}

// newTestGenerator lays out a fresh work dir and returns a generator over it.
// Fonts always come from the embedded fallback so output does not depend on
// the fonts installed on the machine.
func newTestGenerator(t *testing.T, fx fixture) *Generator {
	t.Helper()

	dir := t.TempDir()
	paths := PathsWithRes(dir, filepath.Join(dir, "res"))

	if fx.icon {
		writeTestPNG(t, paths.Icon, checker(512, 512, color.NRGBA{R: 250, G: 200, B: 20, A: 255}))
	}
	if fx.background {
		writeTestPNG(t, paths.Background, checker(540, 960, color.NRGBA{R: 20, G: 160, B: 90, A: 255}))
	}

	res, err := LoadResources(ResourceOptions{
		IconPath:       paths.Icon,
		BackgroundPath: paths.Background,
		Font:           FontOptions{Fallback: FallbackEmbedded},
	})
	require.NoError(t, err)

	brand := DefaultBrand()
	if fx.brand != nil {
		brand = *fx.brand
	}
	return New(Options{Paths: paths, Brand: brand, Resources: res, Jobs: fx.jobs})
}

// checker returns a w×h image alternating c and white in 16px squares.
func checker(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/16+y/16)%2 == 0 {
				img.SetNRGBA(x, y, c)
			} else {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	return img
}

func writeTestPNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	require.NoError(t, generator.WritePNG(path, img))
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}
