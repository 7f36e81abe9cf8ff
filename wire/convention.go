// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package wire

import "fmt"

// SizeOf reports the static byte width of a type, or false when the type's
// width depends on its payload. Implemented by idl.SizeOf; a function value
// is threaded through here instead of an interface to keep this package
// independent of the idl schema.
type SizeOf func() (size int, ok bool)

// Convention is the binary convention's contract for the two constructs
// whose wire shape differs across IDL providers: Option and COption. Every
// other primitive reads identically regardless of convention (see the
// Cursor.Read* methods), mirroring the source's ChainparserDeserialize
// trait, whose Borsh and Spl implementations share every method except
// option/coption.
type Convention interface {
	// Name identifies the convention for diagnostics ("standard", "spl").
	Name() string

	// ReadOption reads the 1-byte standard option tag. Conventions that
	// don't support Option fail with ErrUnsupportedByConvention.
	ReadOption(c *Cursor) (present bool, err error)

	// ReadCOption reads the 4-byte constant-size option tag. When absent,
	// it additionally skips sizeOf() bytes of zero padding; when present,
	// it advances only past the tag and the caller reads the inner value,
	// so either way the whole COption spans 4+sizeOf(inner) bytes.
	// Conventions that don't support COption fail with
	// ErrUnsupportedByConvention.
	ReadCOption(c *Cursor, sizeOf SizeOf) (present bool, err error)
}

// Standard is the length-prefixed convention: one-byte Option tag, no
// COption support.
type Standard struct{}

func (Standard) Name() string { return "standard" }

func (Standard) ReadOption(c *Cursor) (bool, error) {
	b, err := c.ReadU8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (Standard) ReadCOption(c *Cursor, _ SizeOf) (bool, error) {
	return false, fmt.Errorf("%w: standard convention does not support coption", ErrUnsupportedByConvention)
}

// ConstSizeOption is the COption-aware convention: no Option support, a
// 4-byte constant-size Option tag for COption.
type ConstSizeOption struct{}

func (ConstSizeOption) Name() string { return "spl" }

func (ConstSizeOption) ReadOption(c *Cursor) (bool, error) {
	return false, fmt.Errorf("%w: spl convention does not support option", ErrUnsupportedByConvention)
}

func (ConstSizeOption) ReadCOption(c *Cursor, sizeOf SizeOf) (bool, error) {
	tag, err := c.Next(4)
	if err != nil {
		return false, NewTypeReadError("coption", tag, err)
	}
	switch {
	case tag[0] == 0 && tag[1] == 0 && tag[2] == 0 && tag[3] == 0:
		size, ok := sizeOf()
		if !ok {
			return false, ErrCannotSizeCOption
		}
		if err := c.Skip(size); err != nil {
			return false, fmt.Errorf("coption padding: %w", err)
		}
		return false, nil
	case tag[0] == 1 && tag[1] == 0 && tag[2] == 0 && tag[3] == 0:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidCOptionTag, tag)
	}
}
