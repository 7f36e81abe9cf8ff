// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package solanaidl

import "github.com/davecgh/go-spew/spew"

// DumpIDL pretty-prints a registered IDL's parsed schema for debugging -
// a thin wrapper around spew so callers inspecting a misbehaving decode
// don't have to hand-write a struct dumper for the idl package's types.
func (f *Facade) DumpIDL(id string) (string, error) {
	e, err := f.lookup(id)
	if err != nil {
		return "", err
	}
	return spew.Sdump(e.doc), nil
}
