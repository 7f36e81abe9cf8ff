// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package idl

import "fmt"

// Provider identifies which tool generated an on-chain IDL (the two
// differ in their account seed and, upstream in the decode/discriminator
// packages, in their discrimination strategy).
type Provider int

const (
	ProviderAnchor Provider = iota
	ProviderShank
)

// Providers lists every known provider, in the order idl addresses are
// probed when the caller doesn't specify one.
var Providers = []Provider{ProviderAnchor, ProviderShank}

// Seed returns the string used as the create-with-seed input when deriving
// this provider's on-chain IDL account address.
func (p Provider) Seed() string {
	switch p {
	case ProviderAnchor:
		return "anchor:idl"
	case ProviderShank:
		return "shank:idl"
	default:
		return ""
	}
}

func (p Provider) String() string {
	switch p {
	case ProviderAnchor:
		return "anchor"
	case ProviderShank:
		return "shank"
	default:
		return fmt.Sprintf("Provider(%d)", int(p))
	}
}

// ParseProvider maps a lowercase provider name back to a Provider.
func ParseProvider(s string) (Provider, error) {
	for _, p := range Providers {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("idl: unknown provider %q", s)
}
