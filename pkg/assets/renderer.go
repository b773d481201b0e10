// renderer.go - Text drawing on top of composited canvases.
// Positions are the top-left corner of the text block; baselines are derived
// from the face ascent. Long text wraps on word boundaries when a maximum
// width is set.
package assets

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// lineSpacing is the gap in pixels added between wrapped lines.
const lineSpacing = 4

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size     float64
	Weight   Weight
	Color    color.Color
	MaxWidth int // 0 disables wrapping
}

// Renderer draws text with faces from a FontManager.
type Renderer struct {
	fonts *FontManager
}

// NewRenderer creates a renderer over fonts.
func NewRenderer(fonts *FontManager) *Renderer {
	return &Renderer{fonts: fonts}
}

// DrawText draws text with its top-left corner at pt and returns the height
// of the drawn block.
func (r *Renderer) DrawText(dst draw.Image, text string, pt image.Point, style TextStyle) (int, error) {
	face, err := r.fonts.Face(style.Size, style.Weight)
	if err != nil {
		return 0, err
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil() + lineSpacing

	lines := []string{text}
	if style.MaxWidth > 0 {
		lines = wrapText(text, style.MaxWidth, face)
	}

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(style.Color),
		Face: face,
	}
	y := pt.Y + ascent
	for _, line := range lines {
		drawer.Dot = fixed.P(pt.X, y)
		drawer.DrawString(line)
		y += lineHeight
	}

	return len(lines) * lineHeight, nil
}

// wrapText breaks text into lines that each fit within maxWidth pixels. A
// single word wider than maxWidth gets a line of its own.
func wrapText(text string, maxWidth int, face font.Face) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	currentLine := words[0]
	for _, word := range words[1:] {
		testLine := currentLine + " " + word
		if font.MeasureString(face, testLine).Ceil() > maxWidth {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}
	return append(lines, currentLine)
}
