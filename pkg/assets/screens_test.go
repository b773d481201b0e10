package assets

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codzuregroup/storeart/pkg/generator"
)

func TestScreenDescriptors(t *testing.T) {
	require.Len(t, Screens, 11)

	seen := map[string]bool{}
	for _, d := range Screens {
		require.NotEmpty(t, d.ID)
		require.NotEmpty(t, d.Title)
		require.NotEmpty(t, d.Subtitle)
		require.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
	require.Equal(t, "01_home", Screens[0].ID)
	require.Equal(t, "11_splash", Screens[10].ID)
}

func TestMockScreens(t *testing.T) {
	g := newTestGenerator(t, fixture{icon: true, jobs: 4})

	written, err := g.MockScreens(context.Background(), DefaultPalette())
	require.NoError(t, err)
	require.Len(t, written, len(Screens))

	for i, d := range Screens {
		require.Equal(t, g.Paths().Screenshot(d.ID), written[i])
		img := decodePNG(t, written[i])
		require.Equal(t, image.Rect(0, 0, ScreenWidth, ScreenHeight), img.Bounds())
	}

	entries, err := os.ReadDir(g.Paths().ScreenshotsDir())
	require.NoError(t, err)
	require.Len(t, entries, len(Screens))
	require.Equal(t, "phone_01_home.png", entries[0].Name())
}

func TestMockScreenFlatBackground(t *testing.T) {
	g := newTestGenerator(t, fixture{})
	p := DefaultPalette()

	img, err := g.RenderMockScreen(Screens[0], p)
	require.NoError(t, err)

	// Below the top bar every pixel is the same shaded primary.
	want := color.NRGBA{R: 54, G: 48, B: 157, A: 255}
	require.Equal(t, want, generator.Shade(p.Primary, shadeAlpha))
	for _, y := range []int{topBarHeight, 300, ScreenHeight / 2, ScreenHeight - 1} {
		require.Equal(t, want, img.NRGBAAt(1070, y), "row %d", y)
	}
	require.Equal(t, want, img.NRGBAAt(0, ScreenHeight-1))
}

func TestMockScreenBackgroundImage(t *testing.T) {
	p := DefaultPalette()
	plain, err := newTestGenerator(t, fixture{}).RenderMockScreen(Screens[1], p)
	require.NoError(t, err)
	withBG, err := newTestGenerator(t, fixture{background: true}).RenderMockScreen(Screens[1], p)
	require.NoError(t, err)

	require.NotEqual(t, plain.NRGBAAt(540, 1500), withBG.NRGBAAt(540, 1500))
	require.Equal(t, uint8(255), withBG.NRGBAAt(540, 1500).A)
}

func TestMockScreensIdempotentAcrossJobs(t *testing.T) {
	ctx := context.Background()
	serial := newTestGenerator(t, fixture{icon: true, jobs: 1})
	parallel := newTestGenerator(t, fixture{icon: true, jobs: 4})

	a, err := serial.MockScreens(ctx, DefaultPalette())
	require.NoError(t, err)
	b, err := parallel.MockScreens(ctx, DefaultPalette())
	require.NoError(t, err)
	require.Len(t, b, len(a))

	for i := range a {
		want, err := os.ReadFile(a[i])
		require.NoError(t, err)
		got, err := os.ReadFile(b[i])
		require.NoError(t, err)
		require.Equal(t, want, got, filepath.Base(a[i]))
	}
}

func TestMockScreensCanceled(t *testing.T) {
	g := newTestGenerator(t, fixture{jobs: 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.MockScreens(ctx, DefaultPalette())
	require.ErrorIs(t, err, context.Canceled)
}
