// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package discriminator computes and matches the tags that identify which
// IDL-defined type a raw account or instruction's bytes represent: the
// Anchor-style 8-byte SHA-256 prefix, and the Shank-style structural
// fingerprint match used when no prefix tag is present.
package discriminator

import (
	"crypto/sha256"
	"strings"

	"github.com/cielu/go-solana-idl/idl"
)

// NamePolicy controls how an instruction's name is normalized before
// hashing, when the IDL supplies no explicit discriminant. Anchor's
// convention is to use the name verbatim; some IDL generators instead
// emit snake_case names, so this is left configurable rather than fixed.
type NamePolicy int

const (
	// NamePolicyVerbatim hashes the instruction name exactly as written
	// in the IDL. This is the default, matching Anchor's own behavior.
	NamePolicyVerbatim NamePolicy = iota
	// NamePolicySnakeCase lowercases the name and inserts an underscore
	// before each interior uppercase letter before hashing.
	NamePolicySnakeCase
)

// AccountTag computes the 8-byte account discriminator: the first 8
// bytes of sha256("account:" + name).
func AccountTag(name string) [8]byte {
	return prefixTag("account:" + name)
}

// InstructionTag computes an instruction's 8-byte (or shorter, for an
// explicit single-byte discriminant) discriminator. The precedence is:
// an explicit byte sequence, then an explicit single-value discriminant,
// then the derived sha256("global:" + normalizedName)[:8].
func InstructionTag(name string, explicit *idl.Discriminant, policy NamePolicy) []byte {
	if explicit != nil {
		if len(explicit.Bytes) > 0 {
			return explicit.Bytes
		}
		if explicit.Value != nil {
			return []byte{byte(*explicit.Value)}
		}
	}
	tag := prefixTag("global:" + normalize(name, policy))
	return tag[:]
}

func prefixTag(preimage string) [8]byte {
	sum := sha256.Sum256([]byte(preimage))
	var out [8]byte
	copy(out[:], sum[:8])
	return out
}

func normalize(name string, policy NamePolicy) string {
	if policy == NamePolicyVerbatim {
		return name
	}
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
