// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package decode

import "github.com/cielu/go-solana-idl/wire"

// Options configures a decode pass: which binary convention governs
// Option/COption, the registry of named types a Defined(name) resolves
// against, and the JSON rendering policy for wide integers and pubkeys.
// The zero value is not valid; use NewOptions.
type Options struct {
	Convention wire.Convention
	Registry   Registry

	// PubkeyAsBase58, when true (the default), renders PublicKey fields as
	// a base58 string rather than a raw byte array.
	PubkeyAsBase58 bool

	// N64AsString renders u64/i64 as a quoted decimal string instead of a
	// bare JSON number, for JSON consumers that can't represent a full
	// 64-bit integer losslessly.
	N64AsString bool

	// N128AsString renders u128/i128 as a quoted decimal string. u128/i128
	// have no bare-number JSON representation at all in most parsers, so
	// most callers want this on even when N64AsString is off.
	N128AsString bool
}

// NewOptions returns an Options with the defaults the container format
// assumes: pubkeys as base58, wide integers as bare numbers.
func NewOptions(conv wire.Convention, reg Registry) Options {
	return Options{
		Convention:     conv,
		Registry:       reg,
		PubkeyAsBase58: true,
	}
}
