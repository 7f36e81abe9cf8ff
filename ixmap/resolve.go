// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package ixmap

import (
	"context"
	"fmt"

	"github.com/cielu/go-solana-idl/common"
	"github.com/cielu/go-solana-idl/discriminator"
	"github.com/cielu/go-solana-idl/idl"
	"github.com/cielu/go-solana-idl/solanaidl"
)

// MapInstructionAccountLabels labels every account pubkey an invoked
// instruction touches, resolving the IDL to label against the way
// map_instruction_account_labels does in the original: when idlDoc is
// nil, it derives the on-chain IDL address for programID under each
// known provider seed, fetches the first one found via fetcher, and
// labels against that; if no IDL can be found for the program it
// returns an empty map rather than an error, mirroring the original's
// Ok(HashMap::new()) fallback.
func MapInstructionAccountLabels(
	ctx context.Context,
	fetcher solanaidl.AccountFetcher,
	programID common.Address,
	programName string,
	data []byte,
	pubkeys []common.Address,
	idlDoc *idl.Idl,
	policy discriminator.NamePolicy,
) (map[common.Address]string, error) {
	doc := idlDoc
	if doc == nil {
		resolved, err := resolveIDLForProgram(ctx, fetcher, programID)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			return map[common.Address]string{}, nil
		}
		doc = resolved
	}

	ix, err := MatchInstruction(doc.Instructions, data, policy)
	if err != nil {
		return map[common.Address]string{}, nil
	}

	labels := make(map[common.Address]string, len(pubkeys))
	for _, role := range LabelAccounts(ix, programID, programName, pubkeys) {
		labels[role.Pubkey] = role.Label
	}
	return labels, nil
}

// resolveIDLForProgram derives programID's on-chain IDL address under
// each provider seed in turn and returns the first IDL document found,
// or nil if none of them resolve to an existing account.
func resolveIDLForProgram(ctx context.Context, fetcher solanaidl.AccountFetcher, programID common.Address) (*idl.Idl, error) {
	for _, provider := range idl.Providers {
		addr, err := idl.TryAddress(programID, provider)
		if err != nil {
			continue
		}
		data, _, found, err := fetcher.GetAccount(ctx, addr)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		container, err := idl.UnpackContainer(data)
		if err != nil {
			return nil, fmt.Errorf("ixmap: unpack idl container at %s: %w", addr.Base58(), err)
		}
		doc := container.Idl
		return &doc, nil
	}
	return nil, nil
}
