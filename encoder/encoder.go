// Package encoder implements the buffer-backed BONJSON encoder spec.md
// §4.3 describes: a single growable output buffer plus an explicit
// container-frame stack that enforces the array/object state machine
// (name-then-value alternation inside objects, depth and size limits) as
// values are appended.
//
// Its shape follows the teacher's NumericEncoder/TextEncoder pair
// (github.com/arloliu/mebo/blob/numeric_encoder.go,
// text_encoder.go): a struct holding encoder state plus an embedded
// options/config value, constructed through New with functional options,
// writing into an internally-owned byte buffer rather than an io.Writer.
// Where the teacher tracks per-metric encoderState (offset/length) to
// drive its columnar layout, the encoder here tracks one containerFrame
// per open array/object to drive BONJSON's single linear stream instead.
package encoder

import (
	"github.com/kstenerud/go-bonjson/config"
	"github.com/kstenerud/go-bonjson/errs"
	"github.com/kstenerud/go-bonjson/internal/keyset"
	"github.com/kstenerud/go-bonjson/internal/pool"
	"github.com/kstenerud/go-bonjson/typecode"
)

// containerFrame tracks the state of one open array or object.
type containerFrame struct {
	isObject      bool
	count         int
	expectingName bool // true only inside an object, before a key is written
	tracker       *keyset.Tracker
}

// Encoder appends BONJSON-encoded values to an internally-owned buffer.
//
// An Encoder is not safe for concurrent use. Values are appended in
// document order; BeginObject/BeginArray open a container that must be
// closed with EndContainer (or all at once with EndAllContainers) before
// Bytes returns a well-formed document.
type Encoder struct {
	flags    config.EncodeFlags
	buf      []byte
	stack    []containerFrame
	rootDone bool // true once the single root value has been fully written
	pooled   *pool.ByteBuffer // non-nil only when created by Acquire
}

// New creates an Encoder configured by opts, starting from
// config.DefaultEncodeFlags.
func New(opts ...config.EncodeOption) *Encoder {
	return &Encoder{
		flags: config.NewEncodeFlags(opts...),
	}
}

// Bytes returns the encoded document built so far. The returned slice
// aliases the Encoder's internal buffer and is only valid until the next
// write.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset discards all buffered output and container state so the Encoder
// can be reused for a new document.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.stack = e.stack[:0]
	e.rootDone = false
}

// Depth returns the current container nesting depth (0 at the top level).
func (e *Encoder) Depth() int {
	return len(e.stack)
}

func (e *Encoder) writeByte(b byte) {
	e.buf = append(e.buf, b)
}

func (e *Encoder) writeBytes(b []byte) {
	e.buf = append(e.buf, b...)
}

// beforeValue enforces the container state machine prior to writing any
// value (including container-start codes): document size, the single
// root value rule, depth/size limits, and the object name/value
// alternation.
func (e *Encoder) beforeValue() error {
	if e.flags.MaxDocumentSize > 0 && e.Len() >= e.flags.MaxDocumentSize {
		return errs.New(errs.StatusMaxDocumentSizeExceeded, e.Len(), e.Depth())
	}

	if len(e.stack) == 0 {
		// Per spec.md §4.3.2, any value is accepted at the root, but only
		// once: after the root value completes, further calls fail.
		if e.rootDone {
			return errs.New(errs.StatusTrailingBytes, e.Len(), e.Depth())
		}
		return nil
	}

	top := &e.stack[len(e.stack)-1]
	if top.isObject && top.expectingName {
		return errs.New(errs.StatusExpectedObjectName, e.Len(), e.Depth())
	}
	if e.flags.MaxContainerSize > 0 && top.count >= e.flags.MaxContainerSize {
		return errs.New(errs.StatusMaxContainerSizeExceeded, e.Len(), e.Depth())
	}

	return nil
}

// afterValue updates the current container's state once a value has been
// fully written. For objects, it toggles expectingName between key and
// value positions and advances count only after a complete pair.
func (e *Encoder) afterValue() {
	if len(e.stack) == 0 {
		e.rootDone = true
		return
	}

	top := &e.stack[len(e.stack)-1]
	if top.isObject {
		if top.expectingName {
			// A key was just written; next comes its value.
			top.expectingName = false
		} else {
			// A value just completed a key/value pair.
			top.count++
			top.expectingName = true
		}
	} else {
		top.count++
	}
}

// beginContainer opens a new array or object frame after validating
// depth and the enclosing container's state machine.
func (e *Encoder) beginContainer(isObject bool, code byte) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	if e.flags.MaxDepth > 0 && len(e.stack) >= e.flags.MaxDepth {
		return errs.New(errs.StatusMaxDepthExceeded, e.Len(), e.Depth())
	}

	e.writeByte(code)
	e.stack = append(e.stack, containerFrame{isObject: isObject, expectingName: isObject})
	return nil
}

// BeginArray opens a new array container.
func (e *Encoder) BeginArray() error {
	return e.beginContainer(false, typecode.ArrayStart)
}

// BeginObject opens a new object container.
func (e *Encoder) BeginObject() error {
	return e.beginContainer(true, typecode.ObjectStart)
}

// EndContainer closes the innermost open array or object.
//
// For objects, it is an error to call EndContainer while a key has been
// written but its value has not, since that leaves the object
// malformed.
func (e *Encoder) EndContainer() error {
	if len(e.stack) == 0 {
		return errs.New(errs.StatusUnbalancedContainers, e.Len(), e.Depth())
	}

	top := e.stack[len(e.stack)-1]
	if top.isObject && !top.expectingName {
		return errs.New(errs.StatusExpectedObjectValue, e.Len(), e.Depth())
	}

	e.writeByte(typecode.ContainerEnd)
	e.stack = e.stack[:len(e.stack)-1]
	e.afterValue()
	return nil
}

// EndAllContainers closes every currently open array/object, innermost
// first, equivalent to calling EndContainer until Depth returns 0.
func (e *Encoder) EndAllContainers() error {
	for len(e.stack) > 0 {
		if err := e.EndContainer(); err != nil {
			return err
		}
	}
	return nil
}

// ObjectKey writes s as the key of the current object's next member. It
// must be called only while Depth's innermost container is an object
// expecting a key; calling it elsewhere (inside an array, or when a
// value is expected) reports an error.
func (e *Encoder) ObjectKey(s string) error {
	if len(e.stack) == 0 {
		return errs.New(errs.StatusExpectedObjectName, e.Len(), e.Depth())
	}

	top := &e.stack[len(e.stack)-1]
	if !top.isObject || !top.expectingName {
		return errs.New(errs.StatusExpectedObjectName, e.Len(), e.Depth())
	}

	if e.flags.RejectDuplicateKeys {
		if top.tracker == nil {
			top.tracker = keyset.NewTracker()
		}
		dup, tooMany := top.tracker.Add([]byte(s))
		if dup {
			return errs.New(errs.StatusDuplicateObjectName, e.Len(), e.Depth())
		}
		if tooMany {
			return errs.New(errs.StatusTooManyKeys, e.Len(), e.Depth())
		}
	}

	if err := e.appendString(s); err != nil {
		return err
	}
	e.afterValue()
	return nil
}
