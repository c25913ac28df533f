// Package config holds the DecodeFlags / EncodeFlags configuration
// structs spec.md §6.3 specifies, constructed through functional options
// in the teacher's naming convention (blob.WithTagsEnabled,
// blob.WithValueEncoding, ... -> here config.WithRejectNUL,
// config.WithMaxDepth, ...), built on the generic internal/optfn.Option[T]
// adapted from the teacher's internal/options package.
package config

// Security and conformance limits shared by both flag structs, with the
// spec.md §6.3 defaults.
const (
	DefaultMaxDepth         = 512
	DefaultMaxStringLength  = 10_000_000
	DefaultMaxContainerSize = 1_000_000
	DefaultMaxDocumentSize  = 2_000_000_000
)

// DecodeFlags configures the streaming decoder and the position-map
// scanner, which share every field per spec.md §6.3.
type DecodeFlags struct {
	RejectNUL            bool
	RejectInvalidUTF8    bool
	RejectDuplicateKeys  bool
	RejectTrailingBytes  bool
	RejectNonFiniteFloat bool
	MaxDepth             int
	MaxStringLength      int
	MaxContainerSize     int
	MaxDocumentSize      int
}

// DefaultDecodeFlags returns the spec.md §6.3 defaults: every rejection
// flag on, and the documented security limits.
func DefaultDecodeFlags() DecodeFlags {
	return DecodeFlags{
		RejectNUL:            true,
		RejectInvalidUTF8:    true,
		RejectDuplicateKeys:  true,
		RejectTrailingBytes:  true,
		RejectNonFiniteFloat: true,
		MaxDepth:             DefaultMaxDepth,
		MaxStringLength:      DefaultMaxStringLength,
		MaxContainerSize:     DefaultMaxContainerSize,
		MaxDocumentSize:      DefaultMaxDocumentSize,
	}
}

// EncodeFlags configures the buffer-backed encoder. It carries the same
// content/resource limits as DecodeFlags, minus RejectTrailingBytes,
// which only makes sense once there is a byte stream to trail off the end
// of — an encoder never produces trailing bytes by construction.
type EncodeFlags struct {
	RejectNUL            bool
	RejectInvalidUTF8    bool
	RejectDuplicateKeys  bool
	RejectNonFiniteFloat bool
	MaxDepth             int
	MaxStringLength      int
	MaxContainerSize     int
	MaxDocumentSize      int
}

// DefaultEncodeFlags returns the spec.md §6.3 defaults.
func DefaultEncodeFlags() EncodeFlags {
	return EncodeFlags{
		RejectNUL:            true,
		RejectInvalidUTF8:    true,
		RejectDuplicateKeys:  true,
		RejectNonFiniteFloat: true,
		MaxDepth:             DefaultMaxDepth,
		MaxStringLength:      DefaultMaxStringLength,
		MaxContainerSize:     DefaultMaxContainerSize,
		MaxDocumentSize:      DefaultMaxDocumentSize,
	}
}
