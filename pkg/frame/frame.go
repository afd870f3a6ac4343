// Package frame wraps arbitrary payloads with a fixed-width length prefix so
// the exact payload boundary can be recovered after a steganographic
// extraction, which otherwise only yields a raw carrier-sized bit stream.
package frame

import (
	"encoding/binary"
	"errors"
	"math"
)

// PrefixSize is the size of the little-endian uint32 length prefix in bytes.
const PrefixSize = 4

var (
	ErrTruncated       = errors.New("framed data holds fewer payload bytes than its length prefix declares")
	ErrPayloadTooLarge = errors.New("payload length does not fit in the length prefix")
)

// Frame returns the length prefix followed by the payload bytes.
func Frame(payload []byte) ([]byte, error) {
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, ErrPayloadTooLarge
	}

	framed := make([]byte, PrefixSize+len(payload))
	binary.LittleEndian.PutUint32(framed, uint32(len(payload)))
	copy(framed[PrefixSize:], payload)
	return framed, nil
}

// Unframe reads the length prefix and returns the payload bytes it bounds.
// The returned slice aliases b.
func Unframe(b []byte) ([]byte, error) {
	if len(b) < PrefixSize {
		return nil, ErrTruncated
	}

	length := binary.LittleEndian.Uint32(b)
	if uint64(length) > uint64(len(b)-PrefixSize) {
		return nil, ErrTruncated
	}
	return b[PrefixSize : PrefixSize+int(length)], nil
}
