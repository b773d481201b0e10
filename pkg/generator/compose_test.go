package generator

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	red = color.NRGBA{R: 255, A: 255}
	bg  = color.NRGBA{R: 10, G: 10, B: 20, A: 255}
)

func TestFitRect(t *testing.T) {
	target := image.Pt(1080, 1920)
	tests := []struct {
		name string
		src  image.Point
		want image.Rectangle
	}{
		{"same size", image.Pt(1080, 1920), image.Rect(0, 0, 1080, 1920)},
		{"half size upscales", image.Pt(540, 960), image.Rect(0, 0, 1080, 1920)},
		{"tall pillarbox", image.Pt(100, 400), image.Rect(300, 0, 780, 1920)},
		{"wide letterbox", image.Pt(1920, 1080), image.Rect(0, 656, 1080, 1263)},
		{"square", image.Pt(500, 500), image.Rect(0, 420, 1080, 1500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitRect(tt.src, target)
			require.Equal(t, tt.want, got)
			require.True(t, got.In(image.Rect(0, 0, target.X, target.Y)))
		})
	}
}

func TestFitRectPreservesAspect(t *testing.T) {
	for _, src := range []image.Point{{1, 1}, {3, 7}, {1440, 3120}, {720, 1280}, {4000, 30}} {
		got := FitRect(src, image.Pt(1080, 1920))
		srcAspect := float64(src.X) / float64(src.Y)
		gotAspect := float64(got.Dx()) / float64(got.Dy())
		// Truncation to whole pixels costs at most one pixel per side.
		require.InDelta(t, srcAspect, gotAspect, srcAspect*(1/float64(got.Dx())+1/float64(got.Dy())))
	}
}

func TestLetterbox(t *testing.T) {
	src := NewSolidImage(100, 400, red)
	out := Letterbox(src, 1080, 1920, bg)

	require.Equal(t, image.Rect(0, 0, 1080, 1920), out.Bounds())
	require.Equal(t, bg, out.NRGBAAt(10, 960))
	require.Equal(t, bg, out.NRGBAAt(290, 960))
	require.Equal(t, red, out.NRGBAAt(540, 960))
	require.Equal(t, red, out.NRGBAAt(310, 10))
	require.Equal(t, bg, out.NRGBAAt(1070, 960))
}

func TestFillRect(t *testing.T) {
	canvas := NewSolidImage(10, 10, color.NRGBA{A: 255})
	out := FillRect(canvas, image.Rect(0, 0, 10, 2), color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	top := out.NRGBAAt(5, 1)
	require.InDelta(t, 128, int(top.R), 1)
	require.Equal(t, uint8(255), top.A)
	require.Equal(t, color.NRGBA{A: 255}, out.NRGBAAt(5, 5))
}

func TestScaleToHeight(t *testing.T) {
	out := ScaleToHeight(NewSolidImage(512, 256, red), 140)
	require.Equal(t, 280, out.Bounds().Dx())
	require.Equal(t, 140, out.Bounds().Dy())
}

func TestRotateExpands(t *testing.T) {
	out := Rotate(NewSolidImage(100, 20, red), 90)
	require.Equal(t, 20, out.Bounds().Dx())
	require.Equal(t, 100, out.Bounds().Dy())
}

func TestLinearGradient(t *testing.T) {
	from := color.NRGBA{A: 255}
	to := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	v := LinearGradient(4, 256, from, to, Vertical)
	require.Equal(t, from, v.NRGBAAt(2, 0))
	require.Equal(t, to, v.NRGBAAt(2, 255))
	require.Equal(t, v.NRGBAAt(0, 100), v.NRGBAAt(3, 100))
	require.Less(t, v.NRGBAAt(0, 100).R, v.NRGBAAt(0, 200).R)

	h := LinearGradient(256, 4, from, to, Horizontal)
	require.Equal(t, from, h.NRGBAAt(0, 2))
	require.Equal(t, to, h.NRGBAAt(255, 2))
	require.Equal(t, h.NRGBAAt(128, 0), h.NRGBAAt(128, 3))
}

func TestGradientMaskSingleRow(t *testing.T) {
	m := GradientMask(3, 1, Vertical)
	require.Equal(t, []uint8{0, 0, 0}, m.Pix)
}

func TestRoundedRectMask(t *testing.T) {
	m := RoundedRectMask(100, 60, 20)
	require.Equal(t, uint8(0), m.AlphaAt(0, 0).A, "corner must be cut")
	require.Equal(t, uint8(0xff), m.AlphaAt(50, 30).A)
	require.Equal(t, uint8(0xff), m.AlphaAt(50, 1).A, "straight edges stay filled")
	require.InDelta(t, int(m.AlphaAt(3, 3).A), int(m.AlphaAt(96, 56).A), 4, "corners are symmetric")
}

func TestRoundedRectKeepsAlpha(t *testing.T) {
	layer := RoundedRect(40, 40, 8, color.NRGBA{R: 34, G: 211, B: 238, A: 64})
	center := layer.NRGBAAt(20, 20)
	require.Equal(t, uint8(64), center.A)
	require.InDelta(t, 34, int(center.R), 1)
	require.InDelta(t, 211, int(center.G), 1)
	require.InDelta(t, 238, int(center.B), 1)
	require.Equal(t, uint8(0), layer.NRGBAAt(0, 0).A)
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.png")
	img := LinearGradient(64, 32, red, bg, Horizontal)

	require.NoError(t, WritePNG(path, img))
	require.NoError(t, WritePNG(path, img), "rerun overwrites")

	decoded, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())

	var a, b bytes.Buffer
	require.NoError(t, EncodePNG(&a, img))
	require.NoError(t, EncodePNG(&b, img))
	require.Equal(t, a.Bytes(), b.Bytes())

	r, g, bl, al := decoded.At(10, 10).RGBA()
	er, eg, eb, ea := img.At(10, 10).RGBA()
	require.Equal(t, []uint32{er, eg, eb, ea}, []uint32{r, g, bl, al})
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}
