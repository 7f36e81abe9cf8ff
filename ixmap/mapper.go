// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package ixmap

import (
	"errors"

	"github.com/cielu/go-solana-idl/common"
	"github.com/cielu/go-solana-idl/discriminator"
	"github.com/cielu/go-solana-idl/idl"
)

// ErrNoMatchingInstruction means no instruction in the IDL scored a
// match against the observed data.
var ErrNoMatchingInstruction = errors.New("ixmap: no matching instruction")

// MatchInstruction selects the IDL instruction whose tag (§4.8) is the
// longest matching prefix of data - comparing byte by byte and breaking
// at the first mismatch - with ties broken by declaration order.
func MatchInstruction(instrs []idl.Instruction, data []byte, policy discriminator.NamePolicy) (idl.Instruction, error) {
	if len(instrs) == 0 {
		return idl.Instruction{}, ErrNoMatchingInstruction
	}

	bestIdx := -1
	bestScore := -1
	for i, ix := range instrs {
		tag := discriminator.InstructionTag(ix.Name, ix.Discriminant, policy)
		score := prefixScore(tag, data)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 || bestScore == 0 {
		return idl.Instruction{}, ErrNoMatchingInstruction
	}
	return instrs[bestIdx], nil
}

func prefixScore(tag, data []byte) int {
	n := len(tag)
	if len(data) < n {
		n = len(data)
	}
	i := 0
	for i < n && tag[i] == data[i] {
		i++
	}
	return i
}

// AccountRole labels one account pubkey supplied alongside an
// instruction invocation.
type AccountRole struct {
	Pubkey common.Address
	Label  string
}

// LabelAccounts labels each of pubkeys per §4.7's precedence: the
// built-in-programs table first, then the invoking program's own id
// (labeled with programName), then the IDL instruction's positional
// account name. A pubkey past the end of the instruction's declared
// accounts list (e.g. a remaining-accounts tail) is labeled "unknown".
func LabelAccounts(ix idl.Instruction, programID common.Address, programName string, pubkeys []common.Address) []AccountRole {
	roles := make([]AccountRole, len(pubkeys))
	for i, pk := range pubkeys {
		switch {
		case sameBuiltin(pk):
			name, _ := LookupBuiltin(pk)
			roles[i] = AccountRole{Pubkey: pk, Label: name}
		case pk == programID:
			roles[i] = AccountRole{Pubkey: pk, Label: programName}
		case i < len(ix.Accounts):
			roles[i] = AccountRole{Pubkey: pk, Label: ix.Accounts[i].Name}
		default:
			roles[i] = AccountRole{Pubkey: pk, Label: "unknown"}
		}
	}
	return roles
}

func sameBuiltin(pk common.Address) bool {
	_, ok := LookupBuiltin(pk)
	return ok
}
