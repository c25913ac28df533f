// Package bignum implements the BigNumber value spec.md §4.5.3 defines:
// an arbitrary-precision decimal expressed as sign * magnitude * 10^exponent,
// where magnitude is an unsigned integer stored as little-endian bytes.
//
// There is no dedicated big-integer or arbitrary-precision-decimal
// dependency anywhere in the retrieval pack, so Number stores its
// magnitude the same way the teacher stores fixed-width numeric payloads
// in blob/numeric_encoder.go: a plain []byte, little-endian, normalized
// by trimming trailing zero bytes rather than reaching for math/big.
package bignum

// Number is a BigNumber value: sign * magnitude * 10^exponent.
//
// Sign is -1, 0, or +1. When Sign is 0, Magnitude and Exponent are
// ignored and the value is exactly zero. Magnitude holds the unsigned
// integer magnitude as little-endian bytes, normalized so its last byte
// (the most significant one) is never 0x00, except when the magnitude
// itself is empty (which only happens for a zero value).
type Number struct {
	Sign      int8
	Magnitude []byte
	Exponent  int64
}

// Zero is the BigNumber value 0.
var Zero = Number{Sign: 0}

// NewInt builds a Number representing an integer magnitude * 10^exponent,
// with the given sign.
func NewInt(sign int8, magnitude []byte, exponent int64) Number {
	n := Number{Sign: normalizeSign(sign), Magnitude: normalize(magnitude), Exponent: exponent}
	if len(n.Magnitude) == 0 {
		return Zero
	}
	return n
}

// NewUint64 builds a Number from a uint64 magnitude, sign and exponent.
func NewUint64(sign int8, magnitude uint64, exponent int64) Number {
	if magnitude == 0 {
		return Zero
	}
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = byte(magnitude)
		magnitude >>= 8
	}
	return NewInt(sign, buf, exponent)
}

// IsZero reports whether n represents the value zero.
func (n Number) IsZero() bool {
	return n.Sign == 0 || len(n.Magnitude) == 0
}

// SignedLength returns the wire's signed_length field: the number of
// magnitude bytes, negated when Sign is negative. Zero magnitude length
// with Sign == 0 represents the value zero; spec.md §4.5.3 reserves
// signed_length == 0 for that case.
func (n Number) SignedLength() int64 {
	if n.IsZero() {
		return 0
	}
	length := int64(len(n.Magnitude))
	if n.Sign < 0 {
		return -length
	}
	return length
}

// FromSignedLength reconstructs the sign and expected magnitude byte
// count from a decoded signed_length field.
func FromSignedLength(signedLength int64) (sign int8, magnitudeLen int) {
	if signedLength == 0 {
		return 0, 0
	}
	if signedLength < 0 {
		return -1, int(-signedLength)
	}
	return 1, int(signedLength)
}

// Uint64 returns n's magnitude as a uint64, truncating any bytes beyond
// the first 8. Callers that need exact arbitrary-precision magnitudes
// should read Magnitude directly.
func (n Number) Uint64() uint64 {
	var v uint64
	for i := len(n.Magnitude) - 1; i >= 0; i-- {
		v = v<<8 | uint64(n.Magnitude[i])
	}
	return v
}

func normalizeSign(sign int8) int8 {
	switch {
	case sign < 0:
		return -1
	case sign > 0:
		return 1
	default:
		return 0
	}
}

// normalize trims trailing (most-significant) zero bytes from a
// little-endian magnitude so the wire encoding is minimal.
func normalize(magnitude []byte) []byte {
	end := len(magnitude)
	for end > 0 && magnitude[end-1] == 0 {
		end--
	}
	out := make([]byte, end)
	copy(out, magnitude[:end])
	return out
}
