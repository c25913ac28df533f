package encoder

import (
	"math"

	"github.com/kstenerud/go-bonjson/bignum"
	"github.com/kstenerud/go-bonjson/errs"
	"github.com/kstenerud/go-bonjson/internal/wire"
	"github.com/kstenerud/go-bonjson/typecode"
)

// Null appends a null value.
func (e *Encoder) Null() error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.writeByte(typecode.Null)
	e.afterValue()
	return nil
}

// Bool appends a boolean value.
func (e *Encoder) Bool(v bool) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	if v {
		e.writeByte(typecode.True)
	} else {
		e.writeByte(typecode.False)
	}
	e.afterValue()
	return nil
}

// Int appends a signed integer value, choosing SmallInt or the narrowest
// Int width that holds v, per spec.md §4.3.2. Non-negative values follow
// the same Int/Uint width rule as Uint.
func (e *Encoder) Int(v int64) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.appendInt(v)
	e.afterValue()
	return nil
}

func (e *Encoder) appendInt(v int64) {
	if v >= 0 {
		e.appendUint(uint64(v))
		return
	}

	if code, ok := typecode.EncodeSmallInt(v); ok {
		e.writeByte(code)
		return
	}

	width := wire.IntByteWidth(v)
	e.writeByte(typecode.EncodeInt(width))
	e.appendLittleEndian(uint64(v), width)
}

// Uint appends an unsigned integer value, choosing SmallInt or the
// narrowest Uint/Int width that holds v. Per spec.md §4.3.2, a value
// that fits within a signed width of the same size is encoded as Int so
// the decoder can sign-extend uniformly; only values requiring the sign
// bit's range use Uint.
func (e *Encoder) Uint(v uint64) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	e.appendUint(v)
	e.afterValue()
	return nil
}

func (e *Encoder) appendUint(v uint64) {
	if v <= math.MaxInt64 {
		if code, ok := typecode.EncodeSmallInt(int64(v)); ok {
			e.writeByte(code)
			return
		}
	}

	width := wire.UintByteWidth(v)
	if wire.FitsSignedAtWidth(v, width) {
		e.writeByte(typecode.EncodeInt(width))
	} else {
		e.writeByte(typecode.EncodeUint(width))
	}
	e.appendLittleEndian(v, width)
}

func (e *Encoder) appendLittleEndian(v uint64, width int) {
	var buf [8]byte
	for i := 0; i < width; i++ {
		buf[i] = byte(v)
		v >>= 8
	}
	e.writeBytes(buf[:width])
}

// Float appends a floating-point value. Per spec.md §4.3.3, a value that
// is exactly integer-valued (other than negative zero) is encoded as an
// integer instead; otherwise values that round-trip through float32
// without loss are encoded that way, and all others as float64.
func (e *Encoder) Float(v float64) error {
	if err := e.beforeValue(); err != nil {
		return err
	}

	if (math.IsNaN(v) || math.IsInf(v, 0)) && e.flags.RejectNonFiniteFloat {
		return errs.New(errs.StatusValueOutOfRange, e.Len(), e.Depth())
	}

	e.appendFloat(v)
	e.afterValue()
	return nil
}

// Boundaries for the integer-valued float fast path, chosen to be exact
// float64 values: -2^63, 2^63, and 2^64 respectively.
const (
	minInt64Float       = -9223372036854775808.0
	boundaryInt64Float  = 9223372036854775808.0
	boundaryUint64Float = 18446744073709551616.0
)

func (e *Encoder) appendFloat(v float64) {
	if isIntegerValued(v) {
		switch {
		case v >= minInt64Float && v < boundaryInt64Float:
			e.appendInt(int64(v))
			return
		case v >= 0 && v < boundaryUint64Float:
			e.appendUint(uint64(v))
			return
		}
	}

	if fitsFloat32(v) {
		e.writeByte(typecode.Float32)
		e.appendLittleEndian(uint64(math.Float32bits(float32(v))), 4)
		return
	}

	e.writeByte(typecode.Float64)
	e.appendLittleEndian(math.Float64bits(v), 8)
}

// isIntegerValued reports whether v must be encoded as an integer per
// spec.md §4.3.3: exactly integer-valued and not negative zero. NaN and
// ±Infinity are never integer-valued.
func isIntegerValued(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if v == 0 {
		return !math.Signbit(v)
	}
	return v == math.Trunc(v)
}

// fitsFloat32 reports whether v round-trips exactly through a float32,
// the downcast-without-precision-loss rule spec.md §4.3.3 requires.
// Infinity round-trips exactly and takes this path too; NaN never
// compares equal to itself, so it is always written as float64.
func fitsFloat32(v float64) bool {
	return float64(float32(v)) == v
}

// BigNumber appends an arbitrary-precision decimal value.
func (e *Encoder) BigNumber(n bignum.Number) error {
	if err := e.beforeValue(); err != nil {
		return err
	}

	e.writeByte(typecode.BigNumber)
	e.writeBytes(wire.AppendVarint(nil, n.Exponent))
	e.writeBytes(wire.AppendVarint(nil, n.SignedLength()))
	if !n.IsZero() {
		e.writeBytes(n.Magnitude)
	}

	e.afterValue()
	return nil
}
