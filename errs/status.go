// Package errs defines the stable status taxonomy shared by the encoder,
// decoder and position-map scanner, along with the concrete error type that
// carries a Status plus the byte offset and container depth the codec had
// reached when it failed.
//
// The package follows the teacher corpus's sentinel-error convention
// (github.com/arloliu/mebo/errs.ErrInvalidTimestampPayloadOffset and
// friends) and its enum-with-String() idiom (format.EncodingType): Status
// is a small uint8 enum with a String() method, and one package-level
// sentinel *Error exists per Status so callers can match failures with
// errors.Is(err, errs.ErrIncomplete) without caring about the offset/depth
// a particular failure carried.
package errs

import "fmt"

// Status is the stable error taxonomy returned by every public codec
// operation (encode, decode, scan).
type Status uint8

const (
	// StatusOK indicates success. No *Error is ever constructed with it;
	// it exists so Status has a well-defined zero value.
	StatusOK Status = iota

	// Structural
	StatusIncomplete
	StatusUnclosedContainers
	StatusUnbalancedContainers
	StatusContainerDepthExceeded
	StatusExpectedObjectName
	StatusExpectedObjectValue

	// Content
	StatusInvalidData
	StatusDuplicateObjectName
	StatusValueOutOfRange
	StatusNULCharacter
	StatusInvalidUTF8
	StatusTooManyKeys
	StatusTrailingBytes

	// Resource
	StatusMaxDepthExceeded
	StatusMaxStringLengthExceeded
	StatusMaxContainerSizeExceeded
	StatusMaxDocumentSizeExceeded
	StatusBufferTooSmall

	// Callback-propagated
	StatusCouldNotProcessData

	// Encoder-only
	StatusNullPointer
	StatusClosedTooManyContainers
	StatusContainersStillOpen
)

// String returns the wire-stable lower_snake_case name used throughout
// spec prose and test vectors (e.g. "max_depth_exceeded").
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusIncomplete:
		return "incomplete"
	case StatusUnclosedContainers:
		return "unclosed_containers"
	case StatusUnbalancedContainers:
		return "unbalanced_containers"
	case StatusContainerDepthExceeded:
		return "container_depth_exceeded"
	case StatusExpectedObjectName:
		return "expected_object_name"
	case StatusExpectedObjectValue:
		return "expected_object_value"
	case StatusInvalidData:
		return "invalid_data"
	case StatusDuplicateObjectName:
		return "duplicate_object_name"
	case StatusValueOutOfRange:
		return "value_out_of_range"
	case StatusNULCharacter:
		return "nul_character"
	case StatusInvalidUTF8:
		return "invalid_utf8"
	case StatusTooManyKeys:
		return "too_many_keys"
	case StatusTrailingBytes:
		return "trailing_bytes"
	case StatusMaxDepthExceeded:
		return "max_depth_exceeded"
	case StatusMaxStringLengthExceeded:
		return "max_string_length_exceeded"
	case StatusMaxContainerSizeExceeded:
		return "max_container_size_exceeded"
	case StatusMaxDocumentSizeExceeded:
		return "max_document_size_exceeded"
	case StatusBufferTooSmall:
		return "buffer_too_small"
	case StatusCouldNotProcessData:
		return "could_not_process_data"
	case StatusNullPointer:
		return "null_pointer"
	case StatusClosedTooManyContainers:
		return "closed_too_many_containers"
	case StatusContainersStillOpen:
		return "containers_still_open"
	default:
		return "unknown_status"
	}
}

// Error is the concrete error type returned by this module's codecs. It
// carries the failing Status plus enough context (Offset, Depth) for a
// caller to diagnose where in the document the failure happened, per
// spec.md §7: "leaves the context consistent enough to report depth and
// byte-offset".
type Error struct {
	Status Status
	Offset int
	Depth  int
}

// New constructs an *Error for the given status at the given byte offset
// and container depth.
func New(status Status, offset, depth int) *Error {
	return &Error{Status: status, Offset: offset, Depth: depth}
}

func (e *Error) Error() string {
	return fmt.Sprintf("bonjson: %s (offset=%d, depth=%d)", e.Status, e.Offset, e.Depth)
}

// Is reports equality by Status alone so the package-level sentinels below
// can be used with errors.Is regardless of the offset/depth a particular
// failure carries.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Status == t.Status
}

// Sentinels for errors.Is(err, errs.ErrXxx) matching, mirroring the
// teacher's errs.ErrInvalidTimestampPayloadOffset / errs.ErrHashCollision
// package-level var convention.
var (
	ErrIncomplete               = &Error{Status: StatusIncomplete}
	ErrUnclosedContainers       = &Error{Status: StatusUnclosedContainers}
	ErrUnbalancedContainers     = &Error{Status: StatusUnbalancedContainers}
	ErrContainerDepthExceeded   = &Error{Status: StatusContainerDepthExceeded}
	ErrExpectedObjectName       = &Error{Status: StatusExpectedObjectName}
	ErrExpectedObjectValue      = &Error{Status: StatusExpectedObjectValue}
	ErrInvalidData              = &Error{Status: StatusInvalidData}
	ErrDuplicateObjectName      = &Error{Status: StatusDuplicateObjectName}
	ErrValueOutOfRange          = &Error{Status: StatusValueOutOfRange}
	ErrNULCharacter             = &Error{Status: StatusNULCharacter}
	ErrInvalidUTF8              = &Error{Status: StatusInvalidUTF8}
	ErrTooManyKeys              = &Error{Status: StatusTooManyKeys}
	ErrTrailingBytes            = &Error{Status: StatusTrailingBytes}
	ErrMaxDepthExceeded         = &Error{Status: StatusMaxDepthExceeded}
	ErrMaxStringLengthExceeded  = &Error{Status: StatusMaxStringLengthExceeded}
	ErrMaxContainerSizeExceeded = &Error{Status: StatusMaxContainerSizeExceeded}
	ErrMaxDocumentSizeExceeded  = &Error{Status: StatusMaxDocumentSizeExceeded}
	ErrBufferTooSmall           = &Error{Status: StatusBufferTooSmall}
	ErrCouldNotProcessData      = &Error{Status: StatusCouldNotProcessData}
	ErrNullPointer              = &Error{Status: StatusNullPointer}
	ErrClosedTooManyContainers  = &Error{Status: StatusClosedTooManyContainers}
	ErrContainersStillOpen      = &Error{Status: StatusContainersStillOpen}
)
