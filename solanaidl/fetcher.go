// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package solanaidl

import (
	"context"

	"github.com/cielu/go-solana-idl/common"
)

// AccountFetcher is the external collaborator TryAddIDLForProgram uses
// to retrieve the bytes at a derived on-chain IDL address. Implementors
// own their own transport (see the fetch package for a websocket-backed
// one); GetAccount returns found=false rather than an error when the
// account simply doesn't exist.
type AccountFetcher interface {
	GetAccount(ctx context.Context, pubkey common.Address) (data []byte, lamports uint64, found bool, err error)
}
