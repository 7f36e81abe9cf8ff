// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package jsonwriter is a minimal streaming JSON token writer for the
// decode package's account-to-JSON facade operation. It deliberately
// diverges from encoding/json in two ways the source format requires:
// quoted strings are written without escaping (matching write_quoted in
// the source this is grounded on), and NaN floats are emitted as the
// bare, non-standard token NaN rather than failing to encode.
package jsonwriter

import (
	"io"
	"strconv"
	"strings"
)

// Writer streams JSON tokens to an underlying io.Writer. It has no
// notion of nesting depth or comma bookkeeping beyond what callers
// explicitly drive with BeginObject/BeginArray/Comma/End*, mirroring the
// source's hand-rolled, container-by-container serialization over a
// generic Write sink.
//
// The first write error encountered is sticky: once set, every
// subsequent method call is a no-op, so a caller only needs to check
// Err once after a decode completes rather than after every token.
type Writer struct {
	w   io.Writer
	err error
}

// New returns a Writer that accumulates into an in-memory buffer,
// retrievable via String/Bytes - the convenience form callers that just
// want a JSON string use.
func New() *Writer { return &Writer{w: &strings.Builder{}} }

// NewSink returns a Writer that streams directly into w, i.e. a socket
// or a file, without buffering the whole document in memory - the sink
// form the source's deserialize_account_to_json<W: Write> uses.
func NewSink(w io.Writer) *Writer { return &Writer{w: w} }

// Err returns the first error encountered while writing to the
// underlying sink, if any.
func (w *Writer) Err() error { return w.err }

// String returns the accumulated JSON text. Only meaningful for a
// Writer created with New; a sink-backed Writer returns "".
func (w *Writer) String() string {
	if sb, ok := w.w.(*strings.Builder); ok {
		return sb.String()
	}
	return ""
}

// Bytes returns the accumulated JSON text as a byte slice. Only
// meaningful for a Writer created with New.
func (w *Writer) Bytes() []byte {
	if sb, ok := w.w.(*strings.Builder); ok {
		return []byte(sb.String())
	}
	return nil
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *Writer) writeByte(b byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write([]byte{b})
}

// Raw writes s verbatim, unquoted.
func (w *Writer) Raw(s string) { w.writeString(s) }

// Quoted writes s wrapped in literal double quotes, with NO escaping of
// its contents - matching the source's write_quoted, which never
// escapes embedded quotes or control characters.
func (w *Writer) Quoted(s string) {
	w.writeByte('"')
	w.writeString(s)
	w.writeByte('"')
}

// Null writes the JSON null literal.
func (w *Writer) Null() { w.writeString("null") }

// Bool writes a bare true/false token.
func (w *Writer) Bool(b bool) {
	if b {
		w.writeString("true")
	} else {
		w.writeString("false")
	}
}

// Uint writes a bare unsigned integer token.
func (w *Writer) Uint(v uint64) { w.writeString(strconv.FormatUint(v, 10)) }

// Int writes a bare signed integer token.
func (w *Writer) Int(v int64) { w.writeString(strconv.FormatInt(v, 10)) }

// QuotedUint writes an unsigned integer as a quoted string, for the
// n64_as_string policy.
func (w *Writer) QuotedUint(v uint64) { w.Quoted(strconv.FormatUint(v, 10)) }

// QuotedString writes an arbitrary decimal string (e.g. a u128 value too
// wide for uint64) wrapped in quotes.
func (w *Writer) QuotedString(s string) { w.Quoted(s) }

// RawString writes an arbitrary decimal string (e.g. a u128 value) bare.
func (w *Writer) RawString(s string) { w.writeString(s) }

// Float writes a float64 token. NaN is emitted as the bare, non-standard
// token NaN rather than attempting (and failing) a standards-conformant
// encoding - this mirrors how the source renders the NaN-tolerant floats
// this module's wire package can decode.
func (w *Writer) Float(v float64) {
	if v != v { // NaN
		w.writeString("NaN")
		return
	}
	w.writeString(strconv.FormatFloat(v, 'g', -1, 64))
}

// BeginObject writes '{'.
func (w *Writer) BeginObject() { w.writeByte('{') }

// EndObject writes '}'.
func (w *Writer) EndObject() { w.writeByte('}') }

// BeginArray writes '['.
func (w *Writer) BeginArray() { w.writeByte('[') }

// EndArray writes ']'.
func (w *Writer) EndArray() { w.writeByte(']') }

// Comma writes ','.
func (w *Writer) Comma() { w.writeByte(',') }

// Key writes a quoted key followed by ':' (no escaping, per Quoted).
func (w *Writer) Key(name string) {
	w.Quoted(name)
	w.writeByte(':')
}
