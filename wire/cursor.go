// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package wire implements the primitive binary codec: a byte cursor, the
// per-kind readers (including NaN-tolerant floats and 128-bit integers),
// and the pluggable binary Convention that distinguishes the standard
// length-prefixed option encoding from the constant-size COption encoding.
package wire

import "fmt"

// Cursor is a pointer+length view over caller-owned bytes. Every read
// advances the cursor by exactly the value's encoded width, or returns an
// error and leaves the cursor wherever it stopped - partial advance on
// failure is allowed, there is no rollback.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps b for reading. b is not copied; the caller retains
// ownership and must not mutate it while decoding is in progress.
func NewCursor(b []byte) *Cursor {
	return &Cursor{buf: b}
}

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// Pos returns the current read offset.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the unread tail without advancing the cursor.
func (c *Cursor) Remaining() []byte { return c.buf[c.pos:] }

// Next returns the next n bytes and advances the cursor, or fails with
// ErrShortRead if fewer than n bytes remain.
func (c *Cursor) Next(n int) ([]byte, error) {
	if c.Len() < n {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrShortRead, n, c.Len())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	_, err := c.Next(n)
	return err
}
