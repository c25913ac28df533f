// Package decoder implements the single-pass streaming BONJSON decoder
// spec.md §4.4 describes: a recursive-descent walk over the byte stream
// that dispatches each decoded value to a caller-supplied Visitor,
// backed by an explicit container-frame stack that enforces the same
// object name/value state machine the encoder enforces at write time.
//
// The visitor-callback shape mirrors the teacher's decode side
// (github.com/arloliu/mebo/blob/numeric_decoder.go,
// text_decoder.go), which walks a columnar byte blob and invokes a
// caller-supplied func(ts int64, val float64) per data point rather than
// materializing a tree; BONJSON's Visitor generalizes that one callback
// into one method per value kind, since the wire format interleaves many
// kinds instead of one homogeneous column.
package decoder

import "github.com/kstenerud/go-bonjson/bignum"

// Visitor receives callbacks for each value the decoder encounters, in
// document order. A Visitor method may return an error to abort the
// decode; the decoder stops calling further methods and returns that
// error unchanged.
type Visitor interface {
	OnNull() error
	OnBool(v bool) error
	OnUnsignedInt(v uint64) error
	OnSignedInt(v int64) error
	OnFloat(v float64) error
	OnBigNumber(v bignum.Number) error
	OnString(v string) error

	// OnObjectKey is called for each object member's key, immediately
	// before the value callback for that member.
	OnObjectKey(key string) error

	OnBeginObject() error
	OnBeginArray() error
	OnEndContainer() error

	// OnEndData is called once, after the root value has been fully
	// decoded and before Decode checks for trailing bytes, signaling
	// document-order completion per spec.md §4.4.1's on_end_data.
	OnEndData() error
}
