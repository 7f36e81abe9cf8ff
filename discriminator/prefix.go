// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package discriminator

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cielu/go-solana-idl/idl"
)

// ErrBlobTooShortForTag means the blob is shorter than the 8-byte prefix tag.
var ErrBlobTooShortForTag = errors.New("discriminator: blob too short for tag")

// ErrUnknownDiscriminatedAccount means the blob's leading 8 bytes don't
// match any account in the table.
var ErrUnknownDiscriminatedAccount = errors.New("discriminator: unknown discriminated account")

// PrefixTable maps an account's 8-byte tag to its type definition, for
// the Anchor-style ("prefix") discrimination strategy.
type PrefixTable struct {
	byTag map[[8]byte]idl.TypeDef
}

// BuildPrefixTable computes AccountTag for every account in accounts and
// indexes them by tag.
func BuildPrefixTable(accounts []idl.Account) PrefixTable {
	t := PrefixTable{byTag: make(map[[8]byte]idl.TypeDef, len(accounts))}
	for _, a := range accounts {
		t.byTag[AccountTag(a.Name)] = a.Type
	}
	return t
}

// Classify reads blob's leading 8-byte tag and looks up the matching
// account type. The caller is responsible for feeding blob[8:] (not
// blob) to the type-definition decoder on success.
func (t PrefixTable) Classify(blob []byte) (idl.TypeDef, error) {
	if len(blob) < 8 {
		return idl.TypeDef{}, ErrBlobTooShortForTag
	}
	var tag [8]byte
	copy(tag[:], blob[:8])
	def, ok := t.byTag[tag]
	if !ok {
		return idl.TypeDef{}, fmt.Errorf("%w: %s", ErrUnknownDiscriminatedAccount, hex.EncodeToString(tag[:]))
	}
	return def, nil
}
