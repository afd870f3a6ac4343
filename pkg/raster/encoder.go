package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// Encode serializes a canonical pixel buffer as a non-interlaced,
// 8-bit-per-channel PNG. The exact compressed byte stream depends on the
// compression level and the encoder implementation; only the decoded pixel
// content is a compatibility contract.
func Encode(img *image.NRGBA, level png.CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(img.Pix) / 4)

	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
