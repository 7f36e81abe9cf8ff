// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package solanaidl

import "errors"

// ErrUnknownIDL means the caller referenced an id never registered via
// AddIDL/AddIDLJSON/TryAddIDLForProgram.
var ErrUnknownIDL = errors.New("solanaidl: unknown idl id")

// ErrIDLAlreadyRegistered means AddIDL/AddIDLJSON was called with an id
// already in use.
var ErrIDLAlreadyRegistered = errors.New("solanaidl: idl id already registered")

// ErrAccountNotFound means try_add_idl_for_program's fetcher reported no
// account at the derived IDL address for either provider seed.
var ErrAccountNotFound = errors.New("solanaidl: account not found")

// ErrUnknownAccountType means DeserializeAccountToJSONByName was asked
// for a name not present in the IDL's accounts list.
var ErrUnknownAccountType = errors.New("solanaidl: unknown account type")
