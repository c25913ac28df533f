// Package typecode holds the single canonical BONJSON type-code table.
//
// spec.md notes that the upstream C sources interleave three incompatible
// revisions of this table across separate KSBONJSONCommon.h headers; this
// package picks exactly one — the table in spec.md §3.2 — and every other
// package in this module (encoder, decoder, posmap) dispatches through it
// rather than re-deriving ranges locally, the way the teacher corpus
// centralizes its on-wire enums in a single leaf package (format.EncodingType,
// format.CompressionType in github.com/arloliu/mebo/format).
package typecode

// Code is a raw BONJSON type-code byte.
type Code = byte

// Kind classifies a Code into the value kind it introduces.
type Kind uint8

const (
	KindSmallInt Kind = iota
	KindReserved
	KindBigNumber
	KindFloat32
	KindFloat64
	KindNull
	KindFalse
	KindTrue
	KindShortString
	KindUint
	KindInt
	KindArrayStart
	KindObjectStart
	KindContainerEnd
	KindLongStringMarker
)

func (k Kind) String() string {
	switch k {
	case KindSmallInt:
		return "small_int"
	case KindReserved:
		return "reserved"
	case KindBigNumber:
		return "big_number"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindNull:
		return "null"
	case KindFalse:
		return "false"
	case KindTrue:
		return "true"
	case KindShortString:
		return "short_string"
	case KindUint:
		return "uint"
	case KindInt:
		return "int"
	case KindArrayStart:
		return "array_start"
	case KindObjectStart:
		return "object_start"
	case KindContainerEnd:
		return "container_end"
	case KindLongStringMarker:
		return "long_string_marker"
	default:
		return "unknown"
	}
}

// Single-byte codes and range boundaries from spec.md §3.2.
const (
	SmallIntMin Code = 0x00
	SmallIntMax Code = 0xC8
	SmallIntBias int64 = 100

	Reserved0xC9 Code = 0xC9

	BigNumber Code = 0xCA
	Float32   Code = 0xCB
	Float64   Code = 0xCC
	Null      Code = 0xCD
	False     Code = 0xCE
	True      Code = 0xCF

	ShortStringMin  Code = 0xD0
	ShortStringMax  Code = 0xDF
	shortStringMask Code = 0x0F

	UintMin Code = 0xE0
	UintMax Code = 0xE3
	IntMin  Code = 0xE4
	IntMax  Code = 0xE7
	widthMask Code = 0x03

	ArrayStart       Code = 0xFC
	ObjectStart      Code = 0xFD
	ContainerEnd     Code = 0xFE
	LongStringMarker Code = 0xFF
)

// Classify maps a raw type-code byte to the Kind it introduces, per the
// canonical table in spec.md §3.2. Any byte not covered by a named range
// classifies as KindReserved, and decoding MUST fail on it.
func Classify(code Code) Kind {
	switch {
	case code <= SmallIntMax:
		return KindSmallInt
	case code == BigNumber:
		return KindBigNumber
	case code == Float32:
		return KindFloat32
	case code == Float64:
		return KindFloat64
	case code == Null:
		return KindNull
	case code == False:
		return KindFalse
	case code == True:
		return KindTrue
	case code >= ShortStringMin && code <= ShortStringMax:
		return KindShortString
	case code >= UintMin && code <= UintMax:
		return KindUint
	case code >= IntMin && code <= IntMax:
		return KindInt
	case code == ArrayStart:
		return KindArrayStart
	case code == ObjectStart:
		return KindObjectStart
	case code == ContainerEnd:
		return KindContainerEnd
	case code == LongStringMarker:
		return KindLongStringMarker
	default:
		return KindReserved
	}
}

// IsStringCode reports whether code introduces a string value (short or
// long), the only value kind legal at an object-key position.
func IsStringCode(code Code) bool {
	k := Classify(code)
	return k == KindShortString || k == KindLongStringMarker
}

// SmallIntValue decodes a KindSmallInt code to its signed value.
func SmallIntValue(code Code) int64 {
	return int64(code) - SmallIntBias
}

// EncodeSmallInt returns the one-byte code for v and true if v fits the
// SmallInt range (-100..=100); otherwise ok is false.
func EncodeSmallInt(v int64) (code Code, ok bool) {
	if v < -SmallIntBias || v > SmallIntBias {
		return 0, false
	}

	return Code(v + SmallIntBias), true
}

// ShortStringLen returns the inline length (0..15) carried by a
// KindShortString code.
func ShortStringLen(code Code) int {
	return int(code & shortStringMask)
}

// EncodeShortString returns the code for a short string of the given
// length. The caller must ensure length is in 0..15.
func EncodeShortString(length int) Code {
	return ShortStringMin | Code(length)
}

// widthFromIndex maps the 2-bit width index carried in a Uint/Int code's
// low bits to a native byte width: 0->1, 1->2, 2->4, 3->8.
func widthFromIndex(idx Code) int {
	return 1 << idx
}

// indexFromWidth is the inverse of widthFromIndex. width must be one of
// {1, 2, 4, 8}.
func indexFromWidth(width int) Code {
	switch width {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 3
	}
}

// NumWidth returns the payload byte width (1, 2, 4, or 8) encoded in the
// low two bits of a Uint or Int code.
func NumWidth(code Code) int {
	return widthFromIndex(code & widthMask)
}

// EncodeUint returns the code for an unsigned integer payload of the
// given native width.
func EncodeUint(width int) Code {
	return UintMin | indexFromWidth(width)
}

// EncodeInt returns the code for a signed integer payload of the given
// native width.
func EncodeInt(width int) Code {
	return IntMin | indexFromWidth(width)
}
