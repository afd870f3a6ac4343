package bits

// Transfer copies count bits from src, starting at bit offset srcBit, to dst,
// starting at bit offset dstBit. Bit addressing is little-endian within each
// byte: global bit index b lives in byte b>>3 at position b&7. Bits are copied
// one at a time from the lowest index upwards, and bits of a partially written
// destination byte that fall outside the target range are left untouched.
//
// Behavior is undefined if dst and src alias overlapping ranges.
func Transfer(dst []byte, dstBit int, src []byte, srcBit int, count int) {
	for i := 0; i < count; i, dstBit, srcBit = i+1, dstBit+1, srcBit+1 {
		if src[srcBit>>3]&(1<<(srcBit&7)) != 0 {
			dst[dstBit>>3] |= 1 << (dstBit & 7)
		} else {
			dst[dstBit>>3] &^= 1 << (dstBit & 7)
		}
	}
}
