package ixmap

import (
	"testing"

	"github.com/cielu/go-solana-idl/base"
	"github.com/cielu/go-solana-idl/common"
	"github.com/cielu/go-solana-idl/discriminator"
	"github.com/cielu/go-solana-idl/idl"
)

func TestMatchInstructionPrefersExactTag(t *testing.T) {
	instrs := []idl.Instruction{
		{Name: "increment"},
		{Name: "delegate"},
	}
	tag := discriminator.InstructionTag("delegate", nil, discriminator.NamePolicyVerbatim)
	data := append(append([]byte{}, tag...), 1, 2, 3)

	got, err := MatchInstruction(instrs, data, discriminator.NamePolicyVerbatim)
	if err != nil {
		t.Fatalf("MatchInstruction: %v", err)
	}
	if got.Name != "delegate" {
		t.Fatalf("got %s, want delegate", got.Name)
	}
}

func TestMatchInstructionTieBreaksFirstDeclared(t *testing.T) {
	instrs := []idl.Instruction{
		{Name: "a", Discriminant: &idl.Discriminant{Bytes: []byte{9, 9}}},
		{Name: "b", Discriminant: &idl.Discriminant{Bytes: []byte{9, 9}}},
	}
	got, err := MatchInstruction(instrs, []byte{9, 9, 0}, discriminator.NamePolicyVerbatim)
	if err != nil {
		t.Fatalf("MatchInstruction: %v", err)
	}
	if got.Name != "a" {
		t.Fatalf("got %s, want a (first declared)", got.Name)
	}
}

func TestLabelAccountsPrecedence(t *testing.T) {
	// A program id that is not in the builtin table, so the program-id tier applies.
	program := common.StrToAddress("Ed25519SigVerify111111111111111111111111111")
	ix := idl.Instruction{
		Name: "withdraw",
		Accounts: []idl.AccountMeta{
			{Name: "vault"},
			{Name: "destination"},
			{Name: "tokenProgram"},
		},
	}
	vault := common.StrToAddress("So11111111111111111111111111111111111111112")
	pubkeys := []common.Address{vault, program, base.TokenProgramID}

	roles := LabelAccounts(ix, program, "My Program", pubkeys)
	if roles[0].Label != "vault" {
		t.Fatalf("roles[0] = %+v, want vault (positional)", roles[0])
	}
	if roles[1].Label != "My Program" {
		t.Fatalf("roles[1] = %+v, want My Program (program id match)", roles[1])
	}
	if roles[2].Label != "Token Program" {
		t.Fatalf("roles[2] = %+v, want Token Program (builtin override)", roles[2])
	}
}
