package steg

import (
	_ "embed"
	"image"
	"sync"

	"pngcart/pkg/raster"
)

// The built-in cover image: 256x256, 8-bit RGBA. Both sides of an interchange
// must use the identical carrier, so this asset is part of the wire contract.
//
//go:embed cover.png
var coverPNG []byte

var (
	coverOnce    sync.Once
	coverCarrier *image.NRGBA
	coverErr     error
)

// builtinCarrier decodes the embedded cover once and hands out the shared
// result. The decoded image is never mutated; Encode clones it per call.
func builtinCarrier() (*image.NRGBA, error) {
	coverOnce.Do(func() {
		coverCarrier, coverErr = raster.Decode(coverPNG)
	})
	return coverCarrier, coverErr
}

func cloneCarrier(src *image.NRGBA) *image.NRGBA {
	return &image.NRGBA{
		Pix:    append([]byte(nil), src.Pix...),
		Stride: src.Stride,
		Rect:   src.Rect,
	}
}
