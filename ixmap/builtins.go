// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package ixmap selects the IDL instruction matching an observed
// instruction's data (§4.7's strict-prefix tag scoring) and labels its
// account list against the built-in-programs table, the instruction's
// own program id, and the IDL's positional account names.
package ixmap

import (
	"github.com/cielu/go-solana-idl/base"
	"github.com/cielu/go-solana-idl/common"
)

// builtinPrograms maps well-known program ids to a human label, so an
// account slot referencing e.g. the System Program is labeled by name
// rather than by the IDL's (often generic) positional account name.
var builtinPrograms = map[common.Address]string{
	base.SystemProgramID:                      "System Program",
	base.ConfigProgramID:                       "Config Program",
	base.StakeProgramID:                        "Stake Program",
	base.VoteProgramID:                         "Vote Program",
	base.BPFLoaderDeprecatedProgramID:          "BPF Loader Deprecated",
	base.BPFLoaderProgramID:                    "BPF Loader",
	base.BPFLoaderUpgradeableProgramID:         "BPF Loader Upgradeable",
	base.Secp256k1ProgramID:                    "Secp256k1 Program",
	base.FeatureProgramID:                      "Feature Program",
	base.ComputeBudget:                         "Compute Budget Program",
	base.TokenProgramID:                        "Token Program",
	base.Token2022ProgramID:                    "Token-2022 Program",
	base.TokenSwapProgramID:                    "Token Swap Program",
	base.TokenLendingProgramID:                 "Token Lending Program",
	base.SPLAssociatedTokenAccountProgramID:    "Associated Token Account Program",
	base.MemoProgramID:                         "Memo Program",
	base.TokenMetadataProgramID:                "Token Metadata Program",
	base.SysVarClockPubkey:                     "Clock Sysvar",
	base.SysVarEpochSchedulePubkey:             "Epoch Schedule Sysvar",
	base.SysVarFeesPubkey:                      "Fees Sysvar",
	base.SysVarInstructionsPubkey:              "Instructions Sysvar",
	base.SysVarRecentBlockHashesPubkey:         "Recent Blockhashes Sysvar",
	base.SysVarRentPubkey:                      "Rent Sysvar",
	base.SysVarRewardsPubkey:                   "Rewards Sysvar",
	base.SysVarSlotHashesPubkey:                "Slot Hashes Sysvar",
	base.SysVarSlotHistoryPubkey:                "Slot History Sysvar",
	base.SysVarStakeHistoryPubkey:               "Stake History Sysvar",
	base.MetaplexCandyMachineV2ProgramID:       "Candy Machine V2 Program",
	base.MetaplexTokenMetadataProgramID:        "Token Metadata Program",
}

// LookupBuiltin returns the builtin label for addr, if any.
func LookupBuiltin(addr common.Address) (string, bool) {
	name, ok := builtinPrograms[addr]
	return name, ok
}
