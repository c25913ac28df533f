package config

import "github.com/kstenerud/go-bonjson/internal/optfn"

// DecodeOption configures a DecodeFlags value.
type DecodeOption = optfn.Option[*DecodeFlags]

// EncodeOption configures an EncodeFlags value.
type EncodeOption = optfn.Option[*EncodeFlags]

// NewDecodeFlags builds a DecodeFlags starting from the spec.md §6.3
// defaults and applies opts in order.
func NewDecodeFlags(opts ...DecodeOption) DecodeFlags {
	flags := DefaultDecodeFlags()
	optfn.Apply(&flags, opts...)
	return flags
}

// NewEncodeFlags builds an EncodeFlags starting from the spec.md §6.3
// defaults and applies opts in order.
func NewEncodeFlags(opts ...EncodeOption) EncodeFlags {
	flags := DefaultEncodeFlags()
	optfn.Apply(&flags, opts...)
	return flags
}

// WithRejectNUL toggles rejection of embedded NUL bytes in strings.
func WithRejectNUL(reject bool) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.RejectNUL = reject })
}

// WithRejectInvalidUTF8 toggles rejection of malformed UTF-8 in strings.
func WithRejectInvalidUTF8(reject bool) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.RejectInvalidUTF8 = reject })
}

// WithRejectDuplicateKeys toggles rejection of duplicate object keys.
func WithRejectDuplicateKeys(reject bool) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.RejectDuplicateKeys = reject })
}

// WithRejectTrailingBytes toggles rejection of bytes remaining after the
// top-level value has been fully decoded.
func WithRejectTrailingBytes(reject bool) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.RejectTrailingBytes = reject })
}

// WithRejectNonFiniteFloat toggles rejection of NaN and Infinity floats.
func WithRejectNonFiniteFloat(reject bool) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.RejectNonFiniteFloat = reject })
}

// WithMaxDepth overrides the maximum container nesting depth.
func WithMaxDepth(n int) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.MaxDepth = n })
}

// WithMaxStringLength overrides the maximum string length in bytes.
func WithMaxStringLength(n int) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.MaxStringLength = n })
}

// WithMaxContainerSize overrides the maximum number of elements in a
// single array or object.
func WithMaxContainerSize(n int) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.MaxContainerSize = n })
}

// WithMaxDocumentSize overrides the maximum total document size in bytes.
func WithMaxDocumentSize(n int) DecodeOption {
	return optfn.New(func(f *DecodeFlags) { f.MaxDocumentSize = n })
}

// WithEncodeRejectNUL toggles rejection of embedded NUL bytes in strings
// being encoded.
func WithEncodeRejectNUL(reject bool) EncodeOption {
	return optfn.New(func(f *EncodeFlags) { f.RejectNUL = reject })
}

// WithEncodeRejectInvalidUTF8 toggles rejection of malformed UTF-8 in
// strings being encoded.
func WithEncodeRejectInvalidUTF8(reject bool) EncodeOption {
	return optfn.New(func(f *EncodeFlags) { f.RejectInvalidUTF8 = reject })
}

// WithEncodeRejectDuplicateKeys toggles rejection of duplicate object
// keys at encode time.
func WithEncodeRejectDuplicateKeys(reject bool) EncodeOption {
	return optfn.New(func(f *EncodeFlags) { f.RejectDuplicateKeys = reject })
}

// WithEncodeRejectNonFiniteFloat toggles rejection of NaN and Infinity
// floats at encode time.
func WithEncodeRejectNonFiniteFloat(reject bool) EncodeOption {
	return optfn.New(func(f *EncodeFlags) { f.RejectNonFiniteFloat = reject })
}

// WithEncodeMaxDepth overrides the maximum container nesting depth.
func WithEncodeMaxDepth(n int) EncodeOption {
	return optfn.New(func(f *EncodeFlags) { f.MaxDepth = n })
}

// WithEncodeMaxStringLength overrides the maximum string length in bytes.
func WithEncodeMaxStringLength(n int) EncodeOption {
	return optfn.New(func(f *EncodeFlags) { f.MaxStringLength = n })
}

// WithEncodeMaxContainerSize overrides the maximum number of elements in
// a single array or object.
func WithEncodeMaxContainerSize(n int) EncodeOption {
	return optfn.New(func(f *EncodeFlags) { f.MaxContainerSize = n })
}

// WithEncodeMaxDocumentSize overrides the maximum total document size in
// bytes.
func WithEncodeMaxDocumentSize(n int) EncodeOption {
	return optfn.New(func(f *EncodeFlags) { f.MaxDocumentSize = n })
}
