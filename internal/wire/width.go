// Package wire provides the byte-level primitives shared by the encoder,
// decoder and position-map scanner: little-endian integer widths,
// ULEB128 / zig-zag LEB128 varints, and portable byte-scan helpers.
//
// This mirrors the teacher's leaf-package convention (endian, format in
// github.com/arloliu/mebo) of keeping wire-level mechanics out of the
// domain packages that use them.
package wire

import "math/bits"

// Native integer widths a BONJSON Uint/Int payload may use, per spec.md §4.1.
const (
	Width1 = 1
	Width2 = 2
	Width4 = 4
	Width8 = 8
)

// UintByteWidth returns the minimal native width (1, 2, 4, or 8) needed to
// hold v as an unsigned payload, per spec.md §4.1's
// "ubytes(v) = max(1, ceil(bits(v)/8))" rounded to the native width set.
//
// bits.Len64 already returns 0 for v == 0, which correctly rounds up to
// the 1-byte native width.
func UintByteWidth(v uint64) int {
	switch n := bits.Len64(v); {
	case n <= 8:
		return Width1
	case n <= 16:
		return Width2
	case n <= 32:
		return Width4
	default:
		return Width8
	}
}

// IntByteWidth returns the minimal native width (1, 2, 4, or 8) needed to
// hold v as a two's-complement signed payload, preserving its sign bit,
// per spec.md §4.1's sbytes(v).
func IntByteWidth(v int64) int {
	switch {
	case v >= -0x80 && v <= 0x7F:
		return Width1
	case v >= -0x8000 && v <= 0x7FFF:
		return Width2
	case v >= -0x80000000 && v <= 0x7FFFFFFF:
		return Width4
	default:
		return Width8
	}
}

// FitsSignedAtWidth reports whether the non-negative value v can be
// represented as a two's-complement signed integer at the given native
// width without its sign bit being set — i.e. whether encoding it as Int
// at that width (rather than Uint) round-trips correctly.
//
// This backs the encoder's §4.3.3 / §3.3 rule: "For a non-negative value
// whose width would set the sign bit, the encoder MUST emit a Uint of
// that width; for a negative value or one whose sign bit is clear, it
// MUST emit Int."
func FitsSignedAtWidth(v uint64, width int) bool {
	if width >= 8 {
		return v <= 1<<63-1
	}

	signedMax := uint64(1)<<(8*width-1) - 1

	return v <= signedMax
}
