// gradient.go — Two-color linear gradients built from a single-channel mask.
package generator

import (
	"image"
	"image/color"
	"image/draw"
)

// Axis selects the direction a gradient runs along.
type Axis int

const (
	// Vertical runs from the top edge (from) to the bottom edge (to).
	Vertical Axis = iota
	// Horizontal runs from the left edge (from) to the right edge (to).
	Horizontal
)

// GradientMask returns a w×h alpha mask that ramps linearly from 0 to 255
// along axis.
func GradientMask(w, h int, axis Axis) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))

	steps := h
	if axis == Horizontal {
		steps = w
	}
	ramp := make([]uint8, steps)
	for i := range ramp {
		if steps > 1 {
			ramp[i] = uint8((i*255 + (steps-1)/2) / (steps - 1))
		}
	}

	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		if axis == Vertical {
			for x := range row {
				row[x] = ramp[y]
			}
			continue
		}
		copy(row, ramp)
	}
	return mask
}

// LinearGradient blends a solid "to" image over a solid "from" image through
// a linear mask, giving a directional transition between the two colors.
func LinearGradient(w, h int, from, to color.Color, axis Axis) *image.NRGBA {
	img := NewSolidImage(w, h, from)
	mask := GradientMask(w, h, axis)
	draw.DrawMask(img, img.Bounds(), image.NewUniform(to), image.Point{}, mask, image.Point{}, draw.Over)
	return img
}
