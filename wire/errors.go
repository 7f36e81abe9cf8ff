// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package wire

import "errors"

// Sentinel wire-level errors. Composite decoders wrap these with context
// (kind, offset, cause) via fmt.Errorf("%w: ...", ...) chains rather than
// defining a bespoke error-kind enum, matching core.StdErr's wrapping style.
var (
	ErrShortRead              = errors.New("wire: not enough bytes remaining")
	ErrInvalidBool            = errors.New("wire: invalid bool byte")
	ErrInvalidUTF8            = errors.New("wire: string is not valid utf-8")
	ErrInvalidOptionTag       = errors.New("wire: invalid option tag")
	ErrInvalidCOptionTag      = errors.New("wire: invalid coption tag")
	ErrCannotSizeCOption      = errors.New("wire: cannot determine coption inner size")
	ErrUnsupportedByConvention = errors.New("wire: type not supported by this binary convention")
)

// TypeReadError reports a primitive-decode failure, carrying the raw bytes
// that were being read so callers can inspect what went wrong.
type TypeReadError struct {
	Kind  string
	Bytes []byte
	Err   error
}

func (e *TypeReadError) Error() string {
	return "wire: read " + e.Kind + " failed: " + e.Err.Error()
}

func (e *TypeReadError) Unwrap() error { return e.Err }

// NewTypeReadError wraps err as a TypeReadError for the given primitive kind.
func NewTypeReadError(kind string, raw []byte, err error) error {
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return &TypeReadError{Kind: kind, Bytes: cp, Err: err}
}
