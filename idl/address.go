// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package idl

import (
	"github.com/cielu/go-solana-idl/base"
	"github.com/cielu/go-solana-idl/common"
)

// TryAddress derives the on-chain address of program's IDL account for
// the given provider. It mirrors Pubkey::create_with_seed(base, seed,
// program), where base is the canonical program-derived address found by
// seeding FindProgramAddress with no seeds at all, and seed is the
// provider's fixed seed string ("anchor:idl" / "shank:idl"). This is
// distinct from a program-derived address: the result is never checked
// against the curve, since create_with_seed is a plain hash, not a PDA.
func TryAddress(program common.Address, provider Provider) (common.Address, error) {
	base_, _, err := base.FindProgramAddress(nil, program)
	if err != nil {
		return common.Address{}, err
	}
	return base.CreateAddressWithSeed(base_, provider.Seed(), program)
}

// GetIDLAddresses derives the candidate IDL address for every known
// provider, in Providers order.
func GetIDLAddresses(program common.Address) ([]common.Address, error) {
	addrs := make([]common.Address, 0, len(Providers))
	for _, p := range Providers {
		addr, err := TryAddress(program, p)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// IsIDLAddress reports whether candidate is program's derived IDL address
// for some known provider, and if so, which one.
func IsIDLAddress(candidate, program common.Address) (Provider, bool) {
	for _, p := range Providers {
		addr, err := TryAddress(program, p)
		if err == nil && addr == candidate {
			return p, true
		}
	}
	return 0, false
}
