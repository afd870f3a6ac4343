package bits

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestTransferKnownPatterns(t *testing.T) {
	tests := []struct {
		name     string
		dst, src []byte
		dstBit   int
		srcBit   int
		count    int
		want     []byte
	}{
		{
			name: "whole byte aligned",
			dst:  []byte{0x00}, src: []byte{0xa5},
			dstBit: 0, srcBit: 0, count: 8,
			want: []byte{0xa5},
		},
		{
			name: "low nibble only",
			dst:  []byte{0xf0}, src: []byte{0x0f},
			dstBit: 0, srcBit: 0, count: 4,
			want: []byte{0xff},
		},
		{
			name: "clears as well as sets",
			dst:  []byte{0xff}, src: []byte{0x00},
			dstBit: 2, srcBit: 0, count: 3,
			want: []byte{0xe3},
		},
		{
			name: "unaligned source",
			dst:  []byte{0x00}, src: []byte{0b1101_0000},
			dstBit: 0, srcBit: 4, count: 4,
			want: []byte{0x0d},
		},
		{
			name: "crosses destination byte boundary",
			dst:  []byte{0x00, 0x00}, src: []byte{0xff},
			dstBit: 6, srcBit: 0, count: 4,
			want: []byte{0xc0, 0x03},
		},
		{
			name: "crosses source byte boundary",
			dst:  []byte{0x00}, src: []byte{0b1000_0000, 0b0000_0111},
			dstBit: 0, srcBit: 7, count: 4,
			want: []byte{0x0f},
		},
		{
			name: "zero count leaves destination untouched",
			dst:  []byte{0x5a}, src: []byte{0xff},
			dstBit: 3, srcBit: 0, count: 0,
			want: []byte{0x5a},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Transfer(tt.dst, tt.dstBit, tt.src, tt.srcBit, tt.count)
			if !bytes.Equal(tt.dst, tt.want) {
				t.Errorf("destination after transfer was %08b, expected %08b", tt.dst, tt.want)
			}
		})
	}
}

// Bits outside [dstBit, dstBit+count) must never change, regardless of offsets.
func TestTransferLocality(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for iter := 0; iter < 1000; iter++ {
		dst := make([]byte, 16)
		src := make([]byte, 16)
		r.Read(dst)
		r.Read(src)

		before := append([]byte(nil), dst...)

		count := r.Intn(64)
		dstBit := r.Intn(len(dst)*8 - count + 1)
		srcBit := r.Intn(len(src)*8 - count + 1)

		Transfer(dst, dstBit, src, srcBit, count)

		for b := 0; b < len(dst)*8; b++ {
			inRange := b >= dstBit && b < dstBit+count
			bitBefore := before[b>>3] >> (b & 7) & 1
			bitAfter := dst[b>>3] >> (b & 7) & 1

			if inRange {
				srcPos := srcBit + (b - dstBit)
				if want := src[srcPos>>3] >> (srcPos & 7) & 1; bitAfter != want {
					t.Fatalf("iter %d: bit %d should hold source bit %d (%d), got %d", iter, b, srcPos, want, bitAfter)
				}
			} else if bitAfter != bitBefore {
				t.Fatalf("iter %d: bit %d outside transfer range changed from %d to %d", iter, b, bitBefore, bitAfter)
			}
		}
	}
}

func TestTransferRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	src := make([]byte, 32)
	r.Read(src)

	// Scatter the source into a wider buffer and gather it back. Widths that
	// do not divide the bit count evenly leave a final partial group, so the
	// source is zero padded and the group count rounded up, mirroring how the
	// packer embeds its final group.
	for width := 1; width <= 8; width++ {
		groups := (len(src)*8 + width - 1) / width

		padded := append([]byte(nil), src...)
		if need := (groups*width + 7) / 8; need > len(padded) {
			padded = append(padded, make([]byte, need-len(padded))...)
		}

		scattered := make([]byte, groups)
		for i := 0; i < groups; i++ {
			Transfer(scattered, i*8, padded, i*width, width)
		}

		gathered := make([]byte, len(padded))
		for i := 0; i < groups; i++ {
			Transfer(gathered, i*width, scattered, i*8, width)
		}

		if !bytes.Equal(gathered[:len(src)], src) {
			t.Errorf("scatter/gather with width %d did not round-trip", width)
		}
	}
}
