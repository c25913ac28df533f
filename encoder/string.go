package encoder

import (
	"github.com/kstenerud/go-bonjson/errs"
	"github.com/kstenerud/go-bonjson/internal/utf8scan"
	"github.com/kstenerud/go-bonjson/internal/wire"
	"github.com/kstenerud/go-bonjson/typecode"
)

// String appends s as a string value at the current position.
func (e *Encoder) String(s string) error {
	if err := e.beforeValue(); err != nil {
		return err
	}
	if err := e.appendString(s); err != nil {
		return err
	}
	e.afterValue()
	return nil
}

// appendString validates and writes s's wire representation: a short
// string (length encoded in the type code, up to 15 bytes) or a long
// string (0xFF-delimited), per spec.md §4.4.
func (e *Encoder) appendString(s string) error {
	if e.flags.MaxStringLength > 0 && len(s) > e.flags.MaxStringLength {
		return errs.New(errs.StatusMaxStringLengthExceeded, e.Len(), e.Depth())
	}

	if e.flags.RejectInvalidUTF8 {
		if offset, ok := utf8scan.Validate([]byte(s), e.flags.RejectNUL); !ok {
			status := errs.StatusInvalidUTF8
			if e.flags.RejectNUL && offset < len(s) && s[offset] == 0x00 {
				status = errs.StatusNULCharacter
			}
			return errs.New(status, e.Len(), e.Depth())
		}
	} else if e.flags.RejectNUL {
		if offset := wire.IndexByte([]byte(s), 0x00); offset >= 0 {
			return errs.New(errs.StatusNULCharacter, e.Len(), e.Depth())
		}
	}

	if len(s) <= 15 {
		e.writeByte(typecode.EncodeShortString(len(s)))
		e.writeBytes([]byte(s))
		return nil
	}

	e.writeByte(typecode.LongStringMarker)
	e.writeBytes([]byte(s))
	e.writeByte(typecode.LongStringMarker)
	return nil
}
