// Package raster decodes arbitrary PNG byte streams into a canonical raw
// pixel buffer and encodes such a buffer back into PNG bytes.
//
// The canonical buffer is an *image.NRGBA: 8 bits per channel, four channels,
// non-premultiplied, row-major from the top-left, with a stride of exactly
// four bytes per pixel. NRGBA is used rather than the premultiplied RGBA type
// because it matches the byte layout PNG stores on the wire, so decoding and
// re-encoding a truecolor-with-alpha image is byte-lossless even for pixel
// values that are not valid premultiplied colors.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

var ErrInvalidSignature = errors.New("input does not start with a PNG signature")

// A transform is one step of the normalization pipeline. Each step returns its
// input unchanged when its precondition is absent, so the pipeline is
// idempotent and any standard decode result converges to *image.NRGBA.
type transform func(image.Image) image.Image

var normalizePipeline = []transform{
	reduceTo8Bit,
	expandPalette,
	grayToColor,
	unmultiplyAlpha,
	flattenToNRGBA,
}

// Decode validates the PNG signature, decodes the image and normalizes it to
// the canonical NRGBA layout. Sub-8-bit grayscale expansion and promotion of
// the tRNS transparency chunk into a real alpha channel are performed by the
// underlying PNG decoder; the pipeline above covers the remaining shapes.
func Decode(imageBytes []byte) (*image.NRGBA, error) {
	if len(imageBytes) < len(pngSignature) || !bytes.Equal(imageBytes[:len(pngSignature)], pngSignature) {
		return nil, ErrInvalidSignature
	}

	img, err := png.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("decoding png: %w", err)
	}

	for _, step := range normalizePipeline {
		img = step(img)
	}
	return img.(*image.NRGBA), nil
}

// reduceTo8Bit drops 16-bit-per-channel samples to their high byte.
func reduceTo8Bit(img image.Image) image.Image {
	switch src := img.(type) {
	case *image.Gray16:
		dst := image.NewGray(zeroRect(src.Rect))
		for i, j := 0, 0; i < len(src.Pix); i, j = i+2, j+1 {
			dst.Pix[j] = src.Pix[i]
		}
		return dst
	case *image.NRGBA64:
		dst := image.NewNRGBA(zeroRect(src.Rect))
		for i, j := 0, 0; i < len(src.Pix); i, j = i+2, j+1 {
			dst.Pix[j] = src.Pix[i]
		}
		return dst
	case *image.RGBA64:
		dst := image.NewRGBA(zeroRect(src.Rect))
		for i, j := 0, 0; i < len(src.Pix); i, j = i+2, j+1 {
			dst.Pix[j] = src.Pix[i]
		}
		return dst
	}
	return img
}

// expandPalette replaces palette indices with the true colors they name,
// keeping any per-entry transparency the palette carries.
func expandPalette(img image.Image) image.Image {
	src, ok := img.(*image.Paletted)
	if !ok {
		return img
	}

	lookup := make([]uint8, 0, len(src.Palette)*4)
	for _, entry := range src.Palette {
		c := color.NRGBAModel.Convert(entry).(color.NRGBA)
		lookup = append(lookup, c.R, c.G, c.B, c.A)
	}

	dst := image.NewNRGBA(zeroRect(src.Rect))
	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		out := dst.Pix[y*dst.Stride:]
		for x, idx := range row {
			copy(out[x*4:x*4+4], lookup[int(idx)*4:int(idx)*4+4])
		}
	}
	return dst
}

// grayToColor replicates grayscale samples across the three color channels and
// synthesizes a fully opaque alpha channel.
func grayToColor(img image.Image) image.Image {
	src, ok := img.(*image.Gray)
	if !ok {
		return img
	}

	dst := image.NewNRGBA(zeroRect(src.Rect))
	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		out := dst.Pix[y*dst.Stride:]
		for x, v := range row {
			out[x*4], out[x*4+1], out[x*4+2], out[x*4+3] = v, v, v, 0xff
		}
	}
	return dst
}

// unmultiplyAlpha rewrites premultiplied RGBA into the canonical
// non-premultiplied form. The PNG decoder only produces *image.RGBA for
// opaque truecolor images, where the conversion is a plain copy with a
// synthesized 0xff alpha already in place.
func unmultiplyAlpha(img image.Image) image.Image {
	src, ok := img.(*image.RGBA)
	if !ok {
		return img
	}

	dst := image.NewNRGBA(zeroRect(src.Rect))
	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			a := row[x+3]
			if a == 0xff || a == 0 {
				copy(out[x:x+4], row[x:x+4])
				continue
			}
			out[x] = uint8(uint32(row[x]) * 0xff / uint32(a))
			out[x+1] = uint8(uint32(row[x+1]) * 0xff / uint32(a))
			out[x+2] = uint8(uint32(row[x+2]) * 0xff / uint32(a))
			out[x+3] = a
		}
	}
	return dst
}

// flattenToNRGBA is the terminal step: it re-lays out NRGBA images whose
// bounds are not anchored at the origin (sub-images) and converts any shape
// the earlier steps did not claim.
func flattenToNRGBA(img image.Image) image.Image {
	if src, ok := img.(*image.NRGBA); ok {
		if src.Rect.Min == (image.Point{}) && src.Stride == src.Rect.Dx()*4 {
			return src
		}
	}

	dst := image.NewNRGBA(zeroRect(img.Bounds()))
	draw.Draw(dst, dst.Rect, img, img.Bounds().Min, draw.Src)
	return dst
}

func zeroRect(r image.Rectangle) image.Rectangle {
	return image.Rect(0, 0, r.Dx(), r.Dy())
}
