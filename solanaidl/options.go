// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package solanaidl is the facade a caller drives: register IDLs (either
// supplied directly or discovered on-chain), then classify and decode
// raw account bytes into JSON. It composes the idl, wire, decode,
// discriminator, and jsonwriter packages behind the single entry point
// described by the external-interfaces operations this module exposes.
package solanaidl

import "github.com/cielu/go-solana-idl/discriminator"

// Options configures every IDL registered through a Facade.
type Options struct {
	// NamePolicy names an instruction-tag casing policy (see
	// discriminator.NamePolicy). Defaults to NamePolicyVerbatim. No Facade
	// operation reads it: the Facade derives no instruction tags.
	NamePolicy discriminator.NamePolicy

	// PubkeyAsBase58 renders PublicKey fields as base58 strings rather
	// than raw byte arrays. Defaults to true.
	PubkeyAsBase58 bool

	// N64AsString renders u64/i64 as quoted decimal strings.
	N64AsString bool

	// N128AsString renders u128/i128 as quoted decimal strings.
	N128AsString bool
}

// DefaultOptions returns the policy defaults: verbatim instruction
// names, pubkeys as base58, wide integers as bare numbers.
func DefaultOptions() Options {
	return Options{PubkeyAsBase58: true}
}
