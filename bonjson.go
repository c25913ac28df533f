// Package bonjson provides an encoder, decoder, and random-access
// position-map scanner for BONJSON, a binary format that is isomorphic
// to JSON's data model (null, bool, number, string, array, object) but
// encodes every value as a type-tagged byte sequence instead of text.
//
// # Basic Usage
//
// Encoding a document:
//
//	enc := bonjson.NewEncoder()
//	enc.BeginObject()
//	enc.ObjectKey("name")
//	enc.String("gopher")
//	enc.ObjectKey("count")
//	enc.Int(42)
//	enc.EndContainer()
//	data := enc.Bytes()
//
// Decoding a document by streaming callbacks:
//
//	err := bonjson.Decode(data, myVisitor)
//
// Or building a random-access position map:
//
//	scanner := bonjson.NewScanner()
//	if err := scanner.Scan(data); err != nil {
//	    log.Fatal(err)
//	}
//	root := scanner.Get(scanner.Root())
//
// # Package Structure
//
// This package wraps encoder, decoder, and posmap for the common case.
// For advanced configuration, use those packages directly.
package bonjson

import (
	"github.com/kstenerud/go-bonjson/config"
	"github.com/kstenerud/go-bonjson/decoder"
	"github.com/kstenerud/go-bonjson/encoder"
	"github.com/kstenerud/go-bonjson/posmap"
)

// Encoder appends BONJSON-encoded values to an internally-owned buffer.
type Encoder = encoder.Encoder

// Visitor receives callbacks for each value a streaming decode
// encounters, in document order.
type Visitor = decoder.Visitor

// Scanner builds and holds a position map for random-access reads over
// a decoded BONJSON document.
type Scanner = posmap.Scanner

// Entry is one record of a Scanner's position map.
type Entry = posmap.Entry

// EncodeOption configures an Encoder.
type EncodeOption = config.EncodeOption

// DecodeOption configures Decode or a Scanner.
type DecodeOption = config.DecodeOption

// NewEncoder creates an Encoder configured by opts.
func NewEncoder(opts ...EncodeOption) *Encoder {
	return encoder.New(opts...)
}

// NewScanner creates an empty Scanner configured by opts.
func NewScanner(opts ...DecodeOption) *Scanner {
	return posmap.New(opts...)
}

// Decode parses exactly one BONJSON document from data, invoking
// visitor for every value encountered, in document order.
func Decode(data []byte, visitor Visitor, opts ...DecodeOption) error {
	return decoder.Decode(data, visitor, opts...)
}

// Scan parses data into a fresh Scanner's position map.
func Scan(data []byte, opts ...DecodeOption) (*Scanner, error) {
	s := NewScanner(opts...)
	if err := s.Scan(data); err != nil {
		return nil, err
	}
	return s, nil
}
