// Package steg embeds framed binary payloads into the low-order bits of a
// fixed cover image's pixel bytes, and extracts them back.
//
// The layout is deliberately simple: with a bit density of n, carrier byte i
// receives bits [i*n, (i+1)*n) of the framed payload stream in its n low bits,
// leaving the 8-n high bits untouched. Fixing the destination stride at one
// carrier byte per group keeps the embedding spatially uniform regardless of
// density; density only controls how many low bits of each byte are disturbed.
//
// The density is not recorded in the output image. Decoding with a different
// density than was used to encode silently yields garbage, or
// ErrPayloadTruncated when the garbage length prefix exceeds capacity.
package steg

import (
	"errors"
	"fmt"
	"image"
	"time"

	"pngcart/internal/bits"
	"pngcart/pkg/config"
	"pngcart/pkg/frame"
	"pngcart/pkg/model"
	"pngcart/pkg/raster"
)

const (
	MinBitDensity = 1
	MaxBitDensity = 8
)

var (
	ErrInvalidBitDensity = errors.New("bit density must be between 1 and 8")
	ErrPayloadTooLarge   = errors.New("framed payload does not fit in the carrier image at the requested bit density")
	ErrPayloadTruncated  = errors.New("recovered length prefix exceeds what the image holds at the given bit density, the image was likely produced with different settings")
)

// Packer embeds payloads into copies of a fixed carrier image and extracts
// them from images produced the same way.
//
// A Packer records per-call stats and is therefore not safe for concurrent
// use; give each goroutine its own. Construction is cheap: the expensive
// built-in carrier decode happens once and the immutable result is shared
// process-wide.
type Packer struct {
	carrier *image.NRGBA
	cfg     config.PackConfig

	carrierDecode time.Duration
	encodeStats   model.EncodeStats
	decodeStats   model.DecodeStats
}

func NewPacker(cfg config.PackConfig) (*Packer, error) {
	cfg.PopulateUnsetConfigVars()

	carrierDecodeStart := time.Now()
	var carrier *image.NRGBA
	var err error
	if cfg.Carrier != nil {
		carrier, err = raster.Decode(cfg.Carrier)
	} else {
		carrier, err = builtinCarrier()
	}
	if err != nil {
		return nil, fmt.Errorf("decoding carrier image: %w", err)
	}

	return &Packer{carrier: carrier, cfg: cfg, carrierDecode: time.Since(carrierDecodeStart)}, nil
}

func (p *Packer) EncodeStats() model.EncodeStats { return p.encodeStats }
func (p *Packer) DecodeStats() model.DecodeStats { return p.decodeStats }

// CarrierBytes reports the number of pixel bytes the carrier provides.
func (p *Packer) CarrierBytes() int {
	return len(p.carrier.Pix)
}

// Capacity reports the maximal raw payload size in bytes for the given bit
// density, net of the framing overhead.
func (p *Packer) Capacity(bitsPerByte byte) (int, error) {
	if bitsPerByte < MinBitDensity || bitsPerByte > MaxBitDensity {
		return 0, ErrInvalidBitDensity
	}
	return len(p.carrier.Pix)*int(bitsPerByte)/8 - frame.PrefixSize, nil
}

// Encode embeds the framed payload into a private copy of the carrier at the
// given bit density and returns the resulting PNG bytes.
func (p *Packer) Encode(bitsPerByte byte, payload []byte) ([]byte, error) {
	p.encodeStats = model.EncodeStats{CarrierDecode: p.carrierDecode}
	if bitsPerByte < MinBitDensity || bitsPerByte > MaxBitDensity {
		return nil, ErrInvalidBitDensity
	}

	embedStart := time.Now()

	framed, err := frame.Frame(payload)
	if err != nil {
		return nil, err
	}

	density := int(bitsPerByte)
	groups := (len(framed)*8 + density - 1) / density
	carrier := cloneCarrier(p.carrier)
	if groups > len(carrier.Pix) {
		return nil, ErrPayloadTooLarge
	}

	// The final group may reach past the framed bytes; zero padding keeps the
	// overread in bounds and the output deterministic. Decode never looks at
	// those bits, the length prefix bounds the payload.
	if sourceBytes := (groups*density + 7) / 8; sourceBytes > len(framed) {
		framed = append(framed, make([]byte, sourceBytes-len(framed))...)
	}

	for i := 0; i < groups; i++ {
		bits.Transfer(carrier.Pix, i*8, framed, i*density, density)
	}
	p.encodeStats.DataEmbedding = time.Since(embedStart)

	imageEncodeStart := time.Now()
	out, err := raster.Encode(carrier, p.cfg.PngCompressionLevel)
	p.encodeStats.OutputImageEncoding = time.Since(imageEncodeStart)
	return out, err
}

// Decode extracts the payload embedded in imageBytes at the given bit density.
// The supplied image itself defines the carrier size, so images produced with
// a substitute carrier decode as long as both sides used the same one.
func (p *Packer) Decode(bitsPerByte byte, imageBytes []byte) ([]byte, error) {
	p.decodeStats = model.DecodeStats{}
	if bitsPerByte < MinBitDensity || bitsPerByte > MaxBitDensity {
		return nil, ErrInvalidBitDensity
	}

	imageDecodeStart := time.Now()
	carrier, err := raster.Decode(imageBytes)
	if err != nil {
		return nil, err
	}
	p.decodeStats.ImageDecode = time.Since(imageDecodeStart)

	extractStart := time.Now()
	defer func() {
		p.decodeStats.DataExtraction = time.Since(extractStart)
	}()

	density := int(bitsPerByte)
	carrierBytes := len(carrier.Pix)
	framed := make([]byte, (carrierBytes*density+7)/8)
	for i := 0; i < carrierBytes; i++ {
		bits.Transfer(framed, i*density, carrier.Pix, i*8, density)
	}

	payload, err := frame.Unframe(framed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPayloadTruncated, err)
	}
	if uint64(len(payload))*8+frame.PrefixSize*8 > uint64(carrierBytes)*uint64(density) {
		return nil, ErrPayloadTruncated
	}

	return payload, nil
}
