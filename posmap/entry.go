// Package posmap implements the position-map scanner spec.md §4.5
// describes: a single forward pass over a BONJSON document that
// produces a flat, DFS-preorder array of Entry records rather than a
// linked tree, so random-access reads (GetChild, FindKey, array
// decoding) can skip whole subtrees in O(1) using each entry's
// SubtreeSize instead of re-parsing bytes.
//
// The flat-array-plus-subtree-size shape is grounded on the teacher's
// materialized blob view (github.com/arloliu/mebo/blob/
// numeric_blob_material.go, numeric_blob_set_material.go): mebo
// pre-decodes a columnar blob into a flat []DataPoint slice once so
// later random access avoids re-walking the wire format; Entry plays the
// same role here for BONJSON's tree-shaped (rather than columnar) data.
package posmap

// Kind classifies the value an Entry represents.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindBigNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBigNumber:
		return "big_number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Entry is one flat, DFS-preorder record in a Scanner's position map.
//
// SubtreeSize is the number of Entry records this entry spans,
// including itself: 1 for every scalar and string, and
// 1+sum(child subtree sizes) for arrays and objects. Skipping a whole
// subtree is therefore index+SubtreeSize, with no byte re-parsing.
//
// Only the fields relevant to Kind are meaningful; the rest are zero.
type Entry struct {
	Kind        Kind
	SubtreeSize int

	Bool bool
	I64  int64
	U64  uint64
	F64  float64

	// StrOffset/StrLength locate a string's raw bytes in the Scanner's
	// source buffer (Kind == KindString); object keys are represented as
	// their own KindString entry immediately preceding their value.
	StrOffset int
	StrLength int

	// BigSign/BigExponent/BigMag/BigMagLen hold a BigNumber's decoded
	// fields (Kind == KindBigNumber). BigMag is fixed-size per spec.md
	// §4.5.2's guidance to avoid a per-entry heap allocation for the
	// common case of small magnitudes; BigMagLen beyond len(BigMag)
	// cannot occur since the encoder never emits magnitudes that large
	// from a uint64 source, but a conforming decoder of third-party data
	// MUST still handle it — see Scanner.scanBigNumber.
	BigSign     int8
	BigExponent int64
	BigMag      [16]byte
	BigMagLen   int
	bigMagOverflow []byte // only set when BigMagLen > len(BigMag)

	// FirstChild/ChildCount describe a container's direct children
	// (Kind == KindArray or KindObject). For an array, ChildCount is the
	// number of elements. For an object, ChildCount counts keys and
	// values together (spec.md §3.4: 2x the number of pairs), and
	// FirstChild is the index of the first pair's key entry; its value
	// entry immediately follows it. Use ChildCount/2 to get the pair
	// count when walking an object's members (see GetChild, FindKey).
	FirstChild int
	ChildCount int
}

// Magnitude returns the BigNumber's magnitude bytes, regardless of
// whether they fit inline in BigMag or spilled to a heap-allocated
// slice.
func (e *Entry) Magnitude() []byte {
	if e.bigMagOverflow != nil {
		return e.bigMagOverflow
	}
	return e.BigMag[:e.BigMagLen]
}
