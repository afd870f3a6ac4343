package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test fixture: %s", err)
	}
	return buf.Bytes()
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{name: "empty", b: nil},
		{name: "short", b: []byte{0x89, 'P', 'N'}},
		{name: "jpeg magic", b: []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0, 0, 0}},
		{name: "text", b: []byte("definitely not an image")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.b); !errors.Is(err, ErrInvalidSignature) {
				t.Errorf("expected ErrInvalidSignature, got %v", err)
			}
		})
	}
}

func TestDecodeRejectsCorruptBody(t *testing.T) {
	valid := encodePNG(t, image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	corrupt := append([]byte(nil), valid[:20]...)

	if _, err := Decode(corrupt); err == nil {
		t.Error("expected error for truncated PNG body")
	}
}

// Arbitrary NRGBA pixel content, including alpha values that are not valid
// premultiplied colors, must survive an encode/decode cycle untouched.
func TestEncodeDecodeLossless(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	img := image.NewNRGBA(image.Rect(0, 0, 37, 23))
	r.Read(img.Pix)

	encoded, err := Encode(img, png.DefaultCompression)
	if err != nil {
		t.Fatalf("Encode failed: %s", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %s", err)
	}
	if decoded.Rect.Dx() != 37 || decoded.Rect.Dy() != 23 {
		t.Fatalf("decoded dimensions %dx%d, expected 37x23", decoded.Rect.Dx(), decoded.Rect.Dy())
	}
	if !bytes.Equal(decoded.Pix, img.Pix) {
		t.Error("decoded pixel bytes differ from the encoded ones")
	}
}

func TestDecodeNormalizesColorTypes(t *testing.T) {
	const w, h = 8, 6

	grayPix := func(x, y int) uint8 { return uint8(x*31 + y*17) }

	palette := color.Palette{
		color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff},
		color.NRGBA{R: 0xff, G: 0x00, B: 0x7f, A: 0xff},
		color.NRGBA{R: 0x01, G: 0x02, B: 0x03, A: 0xff},
	}

	tests := []struct {
		name  string
		build func() image.Image
		want  func(x, y int) color.NRGBA
	}{
		{
			name: "grayscale",
			build: func() image.Image {
				img := image.NewGray(image.Rect(0, 0, w, h))
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						img.SetGray(x, y, color.Gray{Y: grayPix(x, y)})
					}
				}
				return img
			},
			want: func(x, y int) color.NRGBA {
				v := grayPix(x, y)
				return color.NRGBA{R: v, G: v, B: v, A: 0xff}
			},
		},
		{
			name: "16-bit grayscale",
			build: func() image.Image {
				img := image.NewGray16(image.Rect(0, 0, w, h))
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						v := grayPix(x, y)
						img.SetGray16(x, y, color.Gray16{Y: uint16(v)<<8 | uint16(v)})
					}
				}
				return img
			},
			want: func(x, y int) color.NRGBA {
				v := grayPix(x, y)
				return color.NRGBA{R: v, G: v, B: v, A: 0xff}
			},
		},
		{
			name: "paletted",
			build: func() image.Image {
				img := image.NewPaletted(image.Rect(0, 0, w, h), palette)
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						img.SetColorIndex(x, y, uint8((x+y)%len(palette)))
					}
				}
				return img
			},
			want: func(x, y int) color.NRGBA {
				return palette[(x+y)%len(palette)].(color.NRGBA)
			},
		},
		{
			name: "opaque truecolor",
			build: func() image.Image {
				img := image.NewRGBA(image.Rect(0, 0, w, h))
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						img.SetRGBA(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: uint8(x ^ y), A: 0xff})
					}
				}
				return img
			},
			want: func(x, y int) color.NRGBA {
				return color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: uint8(x ^ y), A: 0xff}
			},
		},
		{
			name: "16-bit truecolor with alpha",
			build: func() image.Image {
				img := image.NewNRGBA64(image.Rect(0, 0, w, h))
				for y := 0; y < h; y++ {
					for x := 0; x < w; x++ {
						img.SetNRGBA64(x, y, color.NRGBA64{
							R: uint16(x*30) << 8, G: uint16(y*40) << 8, B: 0xffff, A: uint16(128+x) << 8,
						})
					}
				}
				return img
			},
			want: func(x, y int) color.NRGBA {
				return color.NRGBA{R: uint8(x * 30), G: uint8(y * 40), B: 0xff, A: uint8(128 + x)}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := Decode(encodePNG(t, tt.build()))
			if err != nil {
				t.Fatalf("Decode failed: %s", err)
			}
			if got, want := len(decoded.Pix), w*h*4; got != want {
				t.Fatalf("canonical buffer holds %d bytes, expected %d", got, want)
			}

			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if got, want := decoded.NRGBAAt(x, y), tt.want(x, y); got != want {
						t.Fatalf("pixel (%d,%d) is %v, expected %v", x, y, got, want)
					}
				}
			}
		})
	}
}

// Running an already canonical image through the pipeline again must be a
// no-op.
func TestNormalizePipelineIdempotent(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	r.Read(img.Pix)

	var out image.Image = img
	for _, step := range normalizePipeline {
		out = step(out)
	}
	if out.(*image.NRGBA) != img {
		t.Error("pipeline rebuilt an image that was already canonical")
	}
}
