// Package generator provides the image primitives the asset builders are made of.
//
// Everything works on *image.NRGBA canvases: solid fills, linear gradients,
// rounded rectangles, letterbox fitting and alpha "over" compositing. Decoded
// inputs and encoded PNG outputs go through imaging so that every format the
// tool accepts (PNG, JPEG, WebP) is handled in one place.
package generator

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the WebP decoder with image.Decode
)

// Open decodes the image file at path, applying EXIF orientation when present.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return img, nil
}
