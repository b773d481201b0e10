// shape.go — Anti-aliased rounded rectangles rasterized with freetype.
package generator

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

// kappa places cubic control points so each corner approximates a quarter circle.
const kappa = 0.5522847498

// RoundedRectMask returns a w×h coverage mask of a rectangle with corners
// rounded to radius. The radius is clamped to half the shorter side.
func RoundedRectMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}

	fw, fh := float64(w), float64(h)
	r := min(max(radius, 0), fw/2, fh/2)
	k := r * kappa

	rz := raster.NewRasterizer(w, h)
	rz.UseNonZeroWinding = true
	rz.Start(pt(r, 0))
	rz.Add1(pt(fw-r, 0))
	rz.Add3(pt(fw-r+k, 0), pt(fw, r-k), pt(fw, r))
	rz.Add1(pt(fw, fh-r))
	rz.Add3(pt(fw, fh-r+k), pt(fw-r+k, fh), pt(fw-r, fh))
	rz.Add1(pt(r, fh))
	rz.Add3(pt(r-k, fh), pt(0, fh-r+k), pt(0, fh-r))
	rz.Add1(pt(0, r))
	rz.Add3(pt(0, r-k), pt(r-k, 0), pt(r, 0))
	rz.Rasterize(raster.NewAlphaSrcPainter(mask))

	return mask
}

// RoundedRect returns a transparent w×h layer holding a rounded rectangle
// filled with c. The alpha of c is kept, so the layer can be composited as a
// translucent overlay.
func RoundedRect(w, h int, radius float64, c color.NRGBA) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, w, h))
	mask := RoundedRectMask(w, h, radius)
	draw.DrawMask(layer, layer.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Src)
	return layer
}

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
