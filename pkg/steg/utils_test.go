package steg

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"testing"

	"pngcart/pkg/config"
)

type densityTestFunc func(t *testing.T, density byte)

func runTestsWithAllDensities(t *testing.T, testFunc densityTestFunc) {
	for density := byte(MinBitDensity); density <= MaxBitDensity; density++ {
		densityCopy := density
		t.Run(fmt.Sprintf("density-%d", density), func(t *testing.T) {
			t.Parallel()
			testFunc(t, densityCopy)
		})
	}
}

func newTestPacker(t *testing.T) *Packer {
	t.Helper()
	p, err := NewPacker(config.PackConfig{})
	if err != nil {
		t.Fatalf("Error creating packer: %s", err)
	}
	return p
}

func generateRandomBytes(r *rand.Rand, numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	r.Read(generatedBytes)
	return generatedBytes
}

// generateCarrierPNG builds a small substitute carrier with deterministic,
// fully opaque pixel content.
func generateCarrierPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = uint8(i * 7)
		img.Pix[i+1] = uint8(i * 13)
		img.Pix[i+2] = uint8(i * 29)
		img.Pix[i+3] = 0xff
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Error encoding test carrier: %s", err)
	}
	return buf.Bytes()
}
