package posmap

import (
	"math"

	"github.com/kstenerud/go-bonjson/bignum"
	"github.com/kstenerud/go-bonjson/config"
	"github.com/kstenerud/go-bonjson/errs"
	"github.com/kstenerud/go-bonjson/internal/keyset"
	"github.com/kstenerud/go-bonjson/internal/utf8scan"
	"github.com/kstenerud/go-bonjson/internal/wire"
	"github.com/kstenerud/go-bonjson/typecode"
)

// objectScope tracks duplicate-key detection state for one open object
// during a scan, mirroring the decoder's per-frame tracker.
type objectScope struct {
	expectingKey bool
	tracker      *keyset.Tracker
}

// Scanner builds and holds a position map: a flat, DFS-preorder slice of
// Entry records for one BONJSON document, per spec.md §4.5.
//
// A Scanner owns its entries slice and grows it as needed; callers that
// know an approximate document size up front can reduce reallocation
// with NewWithCapacity.
type Scanner struct {
	flags   config.DecodeFlags
	buf     []byte
	pos     int
	entries []Entry
	scopes  []objectScope
}

// New creates an empty Scanner configured by opts.
func New(opts ...config.DecodeOption) *Scanner {
	return &Scanner{flags: config.NewDecodeFlags(opts...)}
}

// NewWithCapacity creates an empty Scanner whose entries slice is
// preallocated to hold capacityHint entries.
func NewWithCapacity(capacityHint int, opts ...config.DecodeOption) *Scanner {
	s := New(opts...)
	s.entries = make([]Entry, 0, capacityHint)
	return s
}

// Scan parses data into the Scanner's position map, replacing any
// previous scan's results.
func (s *Scanner) Scan(data []byte) error {
	if s.flags.MaxDocumentSize > 0 && len(data) > s.flags.MaxDocumentSize {
		return errs.New(errs.StatusMaxDocumentSizeExceeded, len(data), 0)
	}

	s.buf = data
	s.pos = 0
	s.entries = s.entries[:0]
	s.scopes = s.scopes[:0]

	if err := s.scanValue(false); err != nil {
		return err
	}

	if len(s.scopes) != 0 {
		return s.fail(errs.StatusUnclosedContainers)
	}
	if s.flags.RejectTrailingBytes && s.pos < len(s.buf) {
		return s.fail(errs.StatusTrailingBytes)
	}

	return nil
}

// Root returns the index of the document's root entry, always 0 after a
// successful Scan.
func (s *Scanner) Root() int {
	return 0
}

// Count returns the total number of entries in the position map.
func (s *Scanner) Count() int {
	return len(s.entries)
}

// Get returns the Entry at index.
func (s *Scanner) Get(index int) *Entry {
	return &s.entries[index]
}

// GetString returns the decoded string content of a KindString entry.
func (s *Scanner) GetString(index int) string {
	e := &s.entries[index]
	return string(s.buf[e.StrOffset : e.StrOffset+e.StrLength])
}

func (s *Scanner) depth() int {
	return len(s.scopes)
}

func (s *Scanner) fail(status errs.Status) error {
	return errs.New(status, s.pos, s.depth())
}

func (s *Scanner) remaining() []byte {
	return s.buf[s.pos:]
}

func (s *Scanner) peekByte() (byte, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.pos], true
}

func (s *Scanner) readLittleEndian(width int) (uint64, error) {
	if s.pos+width > len(s.buf) {
		return 0, s.fail(errs.StatusIncomplete)
	}
	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(s.buf[s.pos+i])
	}
	s.pos += width
	return v, nil
}

func signExtend(raw uint64, width int) int64 {
	shift := uint(64 - width*8)
	return int64(raw<<shift) >> shift
}

// scanValue parses one value at the current position and appends it (or
// its whole subtree, for containers) to the entries slice. atKeyPosition
// requires a string.
func (s *Scanner) scanValue(atKeyPosition bool) error {
	code, ok := s.peekByte()
	if !ok {
		return s.fail(errs.StatusIncomplete)
	}

	if atKeyPosition && !typecode.IsStringCode(code) {
		return s.fail(errs.StatusExpectedObjectName)
	}

	switch typecode.Classify(code) {
	case typecode.KindSmallInt:
		s.pos++
		s.appendScalar(Entry{Kind: KindInt, I64: typecode.SmallIntValue(code)})
		return nil

	case typecode.KindUint:
		return s.scanFixedUint(code)

	case typecode.KindInt:
		return s.scanFixedInt(code)

	case typecode.KindBigNumber:
		return s.scanBigNumber()

	case typecode.KindFloat32:
		return s.scanFloat(code, 4)

	case typecode.KindFloat64:
		return s.scanFloat(code, 8)

	case typecode.KindNull:
		s.pos++
		s.appendScalar(Entry{Kind: KindNull})
		return nil

	case typecode.KindFalse:
		s.pos++
		s.appendScalar(Entry{Kind: KindBool, Bool: false})
		return nil

	case typecode.KindTrue:
		s.pos++
		s.appendScalar(Entry{Kind: KindBool, Bool: true})
		return nil

	case typecode.KindShortString:
		return s.scanShortString()

	case typecode.KindLongStringMarker:
		return s.scanLongString()

	case typecode.KindArrayStart:
		return s.scanContainer(false)

	case typecode.KindObjectStart:
		return s.scanContainer(true)

	case typecode.KindContainerEnd:
		return s.fail(errs.StatusUnbalancedContainers)

	default:
		return s.fail(errs.StatusInvalidData)
	}
}

func (s *Scanner) appendScalar(e Entry) {
	e.SubtreeSize = 1
	s.entries = append(s.entries, e)
}

func (s *Scanner) scanFixedUint(code byte) error {
	width := typecode.NumWidth(code)
	s.pos++
	v, err := s.readLittleEndian(width)
	if err != nil {
		return err
	}
	s.appendScalar(Entry{Kind: KindUint, U64: v})
	return nil
}

func (s *Scanner) scanFixedInt(code byte) error {
	width := typecode.NumWidth(code)
	s.pos++
	raw, err := s.readLittleEndian(width)
	if err != nil {
		return err
	}
	s.appendScalar(Entry{Kind: KindInt, I64: signExtend(raw, width)})
	return nil
}

func (s *Scanner) scanFloat(code byte, width int) error {
	s.pos++
	raw, err := s.readLittleEndian(width)
	if err != nil {
		return err
	}

	var v float64
	if width == 4 {
		v = float64(math.Float32frombits(uint32(raw)))
	} else {
		v = math.Float64frombits(raw)
	}
	if s.flags.RejectNonFiniteFloat && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return s.fail(errs.StatusValueOutOfRange)
	}

	s.appendScalar(Entry{Kind: KindFloat, F64: v})
	return nil
}

func (s *Scanner) scanBigNumber() error {
	s.pos++

	exponent, n, err := wire.ReadVarint(s.remaining())
	if err != nil {
		return s.fail(errs.StatusIncomplete)
	}
	s.pos += n

	signedLength, n, err := wire.ReadVarint(s.remaining())
	if err != nil {
		return s.fail(errs.StatusIncomplete)
	}
	s.pos += n

	sign, magLen := bignum.FromSignedLength(signedLength)
	if s.pos+magLen > len(s.buf) {
		return s.fail(errs.StatusIncomplete)
	}

	e := Entry{Kind: KindBigNumber, BigSign: sign, BigExponent: exponent, BigMagLen: magLen}
	if magLen <= len(e.BigMag) {
		copy(e.BigMag[:], s.buf[s.pos:s.pos+magLen])
	} else {
		overflow := make([]byte, magLen)
		copy(overflow, s.buf[s.pos:s.pos+magLen])
		e.bigMagOverflow = overflow
	}
	s.pos += magLen

	s.appendScalar(e)
	return nil
}

func (s *Scanner) scanShortString() error {
	code := s.buf[s.pos]
	length := typecode.ShortStringLen(code)
	s.pos++

	if s.pos+length > len(s.buf) {
		return s.fail(errs.StatusIncomplete)
	}
	offset := s.pos
	s.pos += length

	return s.appendString(offset, length)
}

func (s *Scanner) scanLongString() error {
	s.pos++ // consume opening 0xFF

	end := wire.IndexByte(s.remaining(), typecode.LongStringMarker)
	if end < 0 {
		return s.fail(errs.StatusIncomplete)
	}
	offset := s.pos
	s.pos += end + 1 // consume payload and terminating 0xFF

	return s.appendString(offset, end)
}

func (s *Scanner) appendString(offset, length int) error {
	if s.flags.MaxStringLength > 0 && length > s.flags.MaxStringLength {
		return s.fail(errs.StatusMaxStringLengthExceeded)
	}

	raw := s.buf[offset : offset+length]
	if s.flags.RejectInvalidUTF8 {
		if off, ok := utf8scan.Validate(raw, s.flags.RejectNUL); !ok {
			status := errs.StatusInvalidUTF8
			if s.flags.RejectNUL && off < len(raw) && raw[off] == 0x00 {
				status = errs.StatusNULCharacter
			}
			return s.fail(status)
		}
	} else if s.flags.RejectNUL {
		if wire.IndexByte(raw, 0x00) >= 0 {
			return s.fail(errs.StatusNULCharacter)
		}
	}

	s.appendScalar(Entry{Kind: KindString, StrOffset: offset, StrLength: length})
	return nil
}

func (s *Scanner) scanContainer(isObject bool) error {
	if s.flags.MaxDepth > 0 && len(s.scopes) >= s.flags.MaxDepth {
		return s.fail(errs.StatusMaxDepthExceeded)
	}

	idx := len(s.entries)
	kind := KindArray
	if isObject {
		kind = KindObject
	}
	s.entries = append(s.entries, Entry{Kind: kind, FirstChild: idx + 1})

	s.pos++ // consume start code
	s.scopes = append(s.scopes, objectScope{expectingKey: isObject})

	childCount := 0
	for {
		code, ok := s.peekByte()
		if !ok {
			return s.fail(errs.StatusIncomplete)
		}

		scope := &s.scopes[len(s.scopes)-1]

		if code == typecode.ContainerEnd {
			if isObject && !scope.expectingKey {
				return s.fail(errs.StatusExpectedObjectValue)
			}
			s.pos++
			s.scopes = s.scopes[:len(s.scopes)-1]
			if isObject {
				// spec.md §3.4: ChildCount counts keys and values, 2x
				// the number of pairs, not the pairs themselves.
				s.entries[idx].ChildCount = childCount * 2
			} else {
				s.entries[idx].ChildCount = childCount
			}
			s.entries[idx].SubtreeSize = len(s.entries) - idx
			return nil
		}

		if s.flags.MaxContainerSize > 0 && childCount >= s.flags.MaxContainerSize {
			return s.fail(errs.StatusMaxContainerSizeExceeded)
		}

		if isObject && scope.expectingKey {
			if s.flags.RejectDuplicateKeys {
				if scope.tracker == nil {
					scope.tracker = keyset.NewTracker()
				}
				key, err := s.peekKeyBytes()
				if err != nil {
					return err
				}
				dup, tooMany := scope.tracker.Add(key)
				if dup {
					return s.fail(errs.StatusDuplicateObjectName)
				}
				if tooMany {
					return s.fail(errs.StatusTooManyKeys)
				}
			}
			if err := s.scanValue(true); err != nil {
				return err
			}
			scope.expectingKey = false
		} else {
			if err := s.scanValue(false); err != nil {
				return err
			}
			if isObject {
				childCount++
				scope.expectingKey = true
			} else {
				childCount++
			}
		}
	}
}

func (s *Scanner) peekKeyBytes() ([]byte, error) {
	code, ok := s.peekByte()
	if !ok {
		return nil, s.fail(errs.StatusIncomplete)
	}
	if !typecode.IsStringCode(code) {
		return nil, s.fail(errs.StatusExpectedObjectName)
	}

	if typecode.Classify(code) == typecode.KindShortString {
		length := typecode.ShortStringLen(code)
		if s.pos+1+length > len(s.buf) {
			return nil, s.fail(errs.StatusIncomplete)
		}
		return s.buf[s.pos+1 : s.pos+1+length], nil
	}

	end := wire.IndexByte(s.buf[s.pos+1:], typecode.LongStringMarker)
	if end < 0 {
		return nil, s.fail(errs.StatusIncomplete)
	}
	return s.buf[s.pos+1 : s.pos+1+end], nil
}
