// compose.go — Alpha compositing, scaling and letterbox fitting.
//
// All layering uses the "over" operator onto the destination canvas; there is
// no separate paste path for opaque layers.
package generator

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// epsilon absorbs float error before truncating scaled sizes to whole pixels.
const epsilon = 1e-9

// Overlay composites src over dst with its top-left corner at pos and returns
// the combined canvas. Parts of src outside dst are clipped.
func Overlay(dst *image.NRGBA, src image.Image, pos image.Point) *image.NRGBA {
	return imaging.Overlay(dst, src, pos, 1.0)
}

// FillRect composites a rectangle of color c (alpha included) over dst.
func FillRect(dst *image.NRGBA, r image.Rectangle, c color.NRGBA) *image.NRGBA {
	if r.Empty() {
		return dst
	}
	return Overlay(dst, NewSolidImage(r.Dx(), r.Dy(), c), r.Min)
}

// Rotate rotates img clockwise by degrees, expanding the bounds to fit the
// whole result. Uncovered areas are transparent.
func Rotate(img image.Image, degrees float64) *image.NRGBA {
	return imaging.Rotate(img, -degrees, color.Transparent)
}

// ScaleToHeight resizes img to height h, preserving the aspect ratio.
func ScaleToHeight(img image.Image, h int) *image.NRGBA {
	b := img.Bounds()
	ratio := float64(h) / float64(b.Dy())
	w := max(int(float64(b.Dx())*ratio+epsilon), 1)
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Resize stretches img to exactly w×h.
func Resize(img image.Image, w, h int) *image.NRGBA {
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// FitRect returns where a src-sized image lands when letterboxed into a
// target-sized canvas: scaled by min(tw/sw, th/sh) and centered.
func FitRect(src, target image.Point) image.Rectangle {
	ratio := min(float64(target.X)/float64(src.X), float64(target.Y)/float64(src.Y))
	w := max(int(float64(src.X)*ratio+epsilon), 1)
	h := max(int(float64(src.Y)*ratio+epsilon), 1)

	origin := image.Pt((target.X-w)/2, (target.Y-h)/2)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}

// Letterbox scales img to fit inside a w×h canvas without distortion, centers
// it and fills the remaining space with bg.
func Letterbox(img image.Image, w, h int, bg color.Color) *image.NRGBA {
	b := img.Bounds()
	dst := FitRect(image.Pt(b.Dx(), b.Dy()), image.Pt(w, h))
	resized := imaging.Resize(img, dst.Dx(), dst.Dy(), imaging.Lanczos)
	return Overlay(NewSolidImage(w, h, bg), resized, dst.Min)
}
