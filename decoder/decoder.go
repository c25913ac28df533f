package decoder

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

// frame tracks the state of one open array or object during decoding.
type frame struct {
	isObject      bool
	expectingName bool
	count         int
	tracker       *keyset.Tracker
}

type decoder struct {
	buf     []byte
	pos     int
	flags   config.DecodeFlags
	stack   []frame
	visitor Visitor
}

// Decode parses exactly one BONJSON document from data, invoking visitor
// for every value in document order, per spec.md §4.4.
func Decode(data []byte, visitor Visitor, opts ...config.DecodeOption) error {
	flags := config.NewDecodeFlags(opts...)

	if flags.MaxDocumentSize > 0 && len(data) > flags.MaxDocumentSize {
		return errs.New(errs.StatusMaxDocumentSizeExceeded, len(data), 0)
	}

	d := &decoder{buf: data, flags: flags, visitor: visitor}

	if err := d.decodeValue(false); err != nil {
		return err
	}

	if len(d.stack) != 0 {
		return errs.New(errs.StatusUnclosedContainers, d.pos, d.depth())
	}

	if err := visitor.OnEndData(); err != nil {
		return err
	}

	if flags.RejectTrailingBytes && d.pos < len(d.buf) {
		return errs.New(errs.StatusTrailingBytes, d.pos, d.depth())
	}

	return nil
}

func (d *decoder) depth() int {
	return len(d.stack)
}

func (d *decoder) fail(status errs.Status) error {
	return errs.New(status, d.pos, d.depth())
}

func (d *decoder) remaining() []byte {
	return d.buf[d.pos:]
}

func (d *decoder) peekByte() (byte, bool) {
	if d.pos >= len(d.buf) {
		return 0, false
	}
	return d.buf[d.pos], true
}

// decodeValue decodes one value (scalar or container) at the current
// position and dispatches it to the visitor. atKeyPosition requires the
// value to be a string, per the object key/value state machine.
func (d *decoder) decodeValue(atKeyPosition bool) error {
	code, ok := d.peekByte()
	if !ok {
		return d.fail(errs.StatusIncomplete)
	}

	if atKeyPosition && !typecode.IsStringCode(code) {
		return d.fail(errs.StatusExpectedObjectName)
	}

	switch typecode.Classify(code) {
	case typecode.KindSmallInt:
		d.pos++
		return d.emitSignedInt(typecode.SmallIntValue(code))

	case typecode.KindUint:
		return d.decodeFixedUint(code)

	case typecode.KindInt:
		return d.decodeFixedInt(code)

	case typecode.KindBigNumber:
		return d.decodeBigNumber()

	case typecode.KindFloat32:
		return d.decodeFloat32()

	case typecode.KindFloat64:
		return d.decodeFloat64()

	case typecode.KindNull:
		d.pos++
		return d.visitor.OnNull()

	case typecode.KindFalse:
		d.pos++
		return d.visitor.OnBool(false)

	case typecode.KindTrue:
		d.pos++
		return d.visitor.OnBool(true)

	case typecode.KindShortString:
		return d.decodeShortString(atKeyPosition)

	case typecode.KindLongStringMarker:
		return d.decodeLongString(atKeyPosition)

	case typecode.KindArrayStart:
		return d.decodeContainer(false)

	case typecode.KindObjectStart:
		return d.decodeContainer(true)

	case typecode.KindContainerEnd:
		return d.fail(errs.StatusUnbalancedContainers)

	default:
		return d.fail(errs.StatusInvalidData)
	}
}

func (d *decoder) emitSignedInt(v int64) error {
	return d.visitor.OnSignedInt(v)
}

func (d *decoder) decodeFixedUint(code byte) error {
	width := typecode.NumWidth(code)
	d.pos++
	v, err := d.readLittleEndian(width)
	if err != nil {
		return err
	}
	return d.visitor.OnUnsignedInt(v)
}

func (d *decoder) decodeFixedInt(code byte) error {
	width := typecode.NumWidth(code)
	d.pos++
	raw, err := d.readLittleEndian(width)
	if err != nil {
		return err
	}
	return d.visitor.OnSignedInt(signExtend(raw, width))
}

func signExtend(raw uint64, width int) int64 {
	shift := uint(64 - width*8)
	return int64(raw<<shift) >> shift
}

func (d *decoder) readLittleEndian(width int) (uint64, error) {
	if d.pos+width > len(d.buf) {
		return 0, d.fail(errs.StatusIncomplete)
	}
	var v uint64
	for i := width - 1; i >= 0; i-- {
		v = v<<8 | uint64(d.buf[d.pos+i])
	}
	d.pos += width
	return v, nil
}

func (d *decoder) decodeFloat32() error {
	d.pos++
	raw, err := d.readLittleEndian(4)
	if err != nil {
		return err
	}
	v := float64(math.Float32frombits(uint32(raw)))
	if err := d.checkFinite(v); err != nil {
		return err
	}
	return d.visitor.OnFloat(v)
}

func (d *decoder) decodeFloat64() error {
	d.pos++
	raw, err := d.readLittleEndian(8)
	if err != nil {
		return err
	}
	v := math.Float64frombits(raw)
	if err := d.checkFinite(v); err != nil {
		return err
	}
	return d.visitor.OnFloat(v)
}

func (d *decoder) checkFinite(v float64) error {
	if d.flags.RejectNonFiniteFloat && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return d.fail(errs.StatusValueOutOfRange)
	}
	return nil
}

func (d *decoder) decodeBigNumber() error {
	d.pos++

	exponent, n, err := wire.ReadVarint(d.remaining())
	if err != nil {
		return d.fail(errs.StatusIncomplete)
	}
	d.pos += n

	signedLength, n, err := wire.ReadVarint(d.remaining())
	if err != nil {
		return d.fail(errs.StatusIncomplete)
	}
	d.pos += n

	sign, magLen := bignum.FromSignedLength(signedLength)
	if d.pos+magLen > len(d.buf) {
		return d.fail(errs.StatusIncomplete)
	}
	magnitude := make([]byte, magLen)
	copy(magnitude, d.buf[d.pos:d.pos+magLen])
	d.pos += magLen

	return d.visitor.OnBigNumber(bignum.NewInt(sign, magnitude, exponent))
}

func (d *decoder) decodeShortString(atKeyPosition bool) error {
	code := d.buf[d.pos]
	length := typecode.ShortStringLen(code)
	d.pos++

	if d.pos+length > len(d.buf) {
		return d.fail(errs.StatusIncomplete)
	}
	raw := d.buf[d.pos : d.pos+length]
	d.pos += length

	return d.emitString(raw, atKeyPosition)
}

func (d *decoder) decodeLongString(atKeyPosition bool) error {
	d.pos++ // consume opening 0xFF

	end := wire.IndexByte(d.remaining(), typecode.LongStringMarker)
	if end < 0 {
		return d.fail(errs.StatusIncomplete)
	}
	raw := d.buf[d.pos : d.pos+end]
	d.pos += end + 1 // consume payload and terminating 0xFF

	return d.emitString(raw, atKeyPosition)
}

func (d *decoder) emitString(raw []byte, atKeyPosition bool) error {
	if d.flags.MaxStringLength > 0 && len(raw) > d.flags.MaxStringLength {
		return d.fail(errs.StatusMaxStringLengthExceeded)
	}

	if d.flags.RejectInvalidUTF8 {
		if offset, ok := utf8scan.Validate(raw, d.flags.RejectNUL); !ok {
			status := errs.StatusInvalidUTF8
			if d.flags.RejectNUL && offset < len(raw) && raw[offset] == 0x00 {
				status = errs.StatusNULCharacter
			}
			return d.fail(status)
		}
	} else if d.flags.RejectNUL {
		if wire.IndexByte(raw, 0x00) >= 0 {
			return d.fail(errs.StatusNULCharacter)
		}
	}

	s := string(raw)
	if atKeyPosition {
		return d.visitor.OnObjectKey(s)
	}
	return d.visitor.OnString(s)
}

func (d *decoder) decodeContainer(isObject bool) error {
	if d.flags.MaxDepth > 0 && len(d.stack) >= d.flags.MaxDepth {
		return d.fail(errs.StatusMaxDepthExceeded)
	}

	d.pos++ // consume start code
	d.stack = append(d.stack, frame{isObject: isObject, expectingName: isObject})

	if isObject {
		if err := d.visitor.OnBeginObject(); err != nil {
			return err
		}
	} else {
		if err := d.visitor.OnBeginArray(); err != nil {
			return err
		}
	}

	for {
		code, ok := d.peekByte()
		if !ok {
			return d.fail(errs.StatusIncomplete)
		}

		top := &d.stack[len(d.stack)-1]

		if code == typecode.ContainerEnd {
			if top.isObject && !top.expectingName {
				return d.fail(errs.StatusExpectedObjectValue)
			}
			d.pos++
			d.stack = d.stack[:len(d.stack)-1]
			return d.visitor.OnEndContainer()
		}

		if d.flags.MaxContainerSize > 0 && top.count >= d.flags.MaxContainerSize {
			return d.fail(errs.StatusMaxContainerSizeExceeded)
		}

		if top.isObject && top.expectingName {
			if d.flags.RejectDuplicateKeys {
				if top.tracker == nil {
					top.tracker = keyset.NewTracker()
				}
				keyStart := d.pos
				key, err := d.peekKey()
				if err != nil {
					return err
				}
				dup, tooMany := top.tracker.Add(key)
				if dup {
					d.pos = keyStart
					return d.fail(errs.StatusDuplicateObjectName)
				}
				if tooMany {
					d.pos = keyStart
					return d.fail(errs.StatusTooManyKeys)
				}
			}
			if err := d.decodeValue(true); err != nil {
				return err
			}
			top.expectingName = false
		} else {
			if err := d.decodeValue(false); err != nil {
				return err
			}
			if top.isObject {
				top.count++
				top.expectingName = true
			} else {
				top.count++
			}
		}
	}
}

// peekKey decodes the string at the current position without advancing
// past it permanently beyond what decodeValue(true) would do on its own;
// it is used only to pre-check for duplicates before the visitor sees
// the key, since decodeValue both validates and emits in one step.
func (d *decoder) peekKey() ([]byte, error) {
	code, ok := d.peekByte()
	if !ok {
		return nil, d.fail(errs.StatusIncomplete)
	}
	if !typecode.IsStringCode(code) {
		return nil, d.fail(errs.StatusExpectedObjectName)
	}

	if typecode.Classify(code) == typecode.KindShortString {
		length := typecode.ShortStringLen(code)
		if d.pos+1+length > len(d.buf) {
			return nil, d.fail(errs.StatusIncomplete)
		}
		return d.buf[d.pos+1 : d.pos+1+length], nil
	}

	end := wire.IndexByte(d.buf[d.pos+1:], typecode.LongStringMarker)
	if end < 0 {
		return nil, d.fail(errs.StatusIncomplete)
	}
	return d.buf[d.pos+1 : d.pos+1+end], nil
}
