package wire

import "bytes"

// IndexByte returns the index of the first occurrence of b in buf, or -1
// if it is absent. It is a portable fallback for the "find first
// occurrence of a byte" primitive spec.md §4.1 calls out as an optional
// SIMD acceleration target: correctness here does not depend on SIMD,
// only throughput would.
func IndexByte(buf []byte, b byte) int {
	return bytes.IndexByte(buf, b)
}

// ContainsByte reports whether b occurs anywhere in buf.
func ContainsByte(buf []byte, b byte) bool {
	return IndexByte(buf, b) >= 0
}

// IsASCII reports whether every byte in buf is below 0x80, backing the
// UTF-8 validator's all-ASCII fast path (spec.md §4.2: "if the entire
// string is ASCII, skip the DFA").
func IsASCII(buf []byte) bool {
	for _, b := range buf {
		if b >= 0x80 {
			return false
		}
	}

	return true
}
