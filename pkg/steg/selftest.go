package steg

import (
	"bytes"
	"fmt"
	"math/rand"
)

// SelfTest round-trips a pseudo-random payload at every supported bit density,
// each sized to exactly fill the carrier's capacity for that density. It is
// the codec's correctness oracle: a nil result means encode and decode agree
// bit for bit across the whole density range.
func (p *Packer) SelfTest() error {
	r := rand.New(rand.NewSource(rand.Int63()))

	for density := byte(MinBitDensity); density <= MaxBitDensity; density++ {
		size, err := p.Capacity(density)
		if err != nil {
			return err
		}
		if size < 0 {
			return fmt.Errorf("self test at density %d: carrier cannot hold even the frame prefix", density)
		}

		payload := make([]byte, size)
		r.Read(payload)

		imageBytes, err := p.Encode(density, payload)
		if err != nil {
			return fmt.Errorf("self test encode at density %d: %w", density, err)
		}

		recovered, err := p.Decode(density, imageBytes)
		if err != nil {
			return fmt.Errorf("self test decode at density %d: %w", density, err)
		}

		if !bytes.Equal(recovered, payload) {
			return fmt.Errorf("self test at density %d: recovered %d byte payload does not match original", density, size)
		}
	}

	return nil
}
