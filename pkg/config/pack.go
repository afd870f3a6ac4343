package config

import "image/png"

type PackConfig struct {
	// Carrier optionally replaces the built-in cover image with other PNG
	// bytes. Encoder and decoder of a given interchange must agree on the
	// carrier just as they must agree on the bit density.
	Carrier []byte

	PngCompressionLevel png.CompressionLevel
}

func (c *PackConfig) PopulateUnsetConfigVars() {
	if c.PngCompressionLevel < png.BestCompression || c.PngCompressionLevel > png.DefaultCompression {
		c.PngCompressionLevel = png.DefaultCompression
	}
}
