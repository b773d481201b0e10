package generator

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.NRGBA
	}{
		{"indigo", "#4F46E5", color.NRGBA{0x4f, 0x46, 0xe5, 0xff}},
		{"cyan lowercase", "#22d3ee", color.NRGBA{0x22, 0xd3, 0xee, 0xff}},
		{"no hash", "0a0a14", color.NRGBA{0x0a, 0x0a, 0x14, 0xff}},
		{"short form", "#fa0", color.NRGBA{0xff, 0xaa, 0x00, 0xff}},
		{"surrounding space", "  #000000 ", color.NRGBA{0, 0, 0, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, input := range []string{"", "#12", "#12345", "#1234567", "#gggggg", "indigo", "#+12345"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseColor(input)
			require.Error(t, err)
		})
	}
}

func TestShade(t *testing.T) {
	c := color.NRGBA{R: 255, G: 100, B: 0, A: 255}
	require.Equal(t, c, Shade(c, 0))
	require.Equal(t, color.NRGBA{A: 255}, Shade(c, 255))

	half := Shade(c, 80)
	require.Equal(t, uint8(175), half.R)
	require.Equal(t, uint8(69), half.G)
	require.Equal(t, uint8(0), half.B)
}

func TestHex(t *testing.T) {
	require.Equal(t, "#4F46E5", Hex(MustParseColor("#4f46e5")))
}
