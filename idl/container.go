// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package idl

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cielu/go-solana-idl/common"
)

// containerDiscriminator is the fixed 8-byte tag every on-chain IDL
// account begins with, regardless of provider.
var containerDiscriminator = [8]byte{0x18, 0x46, 0x62, 0xbf, 0x3a, 0x90, 0x7b, 0x9e}

// HeaderSize is the fixed prefix before the zlib-compressed payload:
// 8-byte discriminator + 32-byte authority pubkey + 4-byte LE length.
const HeaderSize = 8 + 32 + 4

var (
	// ErrContainerTooShort means the account data is shorter than HeaderSize.
	ErrContainerTooShort = errors.New("idl: container shorter than header")
	// ErrBadDiscriminator means the leading 8 bytes don't match containerDiscriminator.
	ErrBadDiscriminator = errors.New("idl: bad container discriminator")
	// ErrContainerTruncated means the declared payload length exceeds what's available.
	ErrContainerTruncated = errors.New("idl: container payload shorter than declared length")
)

// Container is the decoded shape of an on-chain IDL account: its
// authority and the parsed schema.
type Container struct {
	Authority common.Address
	Idl       Idl
}

// UnpackContainer parses the 44-byte header and zlib-inflates the JSON
// payload that follows it.
func UnpackContainer(data []byte) (*Container, error) {
	if len(data) < HeaderSize {
		return nil, ErrContainerTooShort
	}
	if !bytes.Equal(data[:8], containerDiscriminator[:]) {
		return nil, ErrBadDiscriminator
	}
	var authority common.Address
	copy(authority[:], data[8:40])
	length := binary.LittleEndian.Uint32(data[40:44])

	payload := data[HeaderSize:]
	if uint32(len(payload)) < length {
		return nil, ErrContainerTruncated
	}
	payload = payload[:length]

	r, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("idl: zlib: %w", err)
	}
	defer r.Close()
	jsonBytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("idl: zlib: %w", err)
	}

	var doc Idl
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return nil, fmt.Errorf("idl: json: %w", err)
	}
	return &Container{Authority: authority, Idl: doc}, nil
}

// PackContainer is the encode-side mirror of UnpackContainer, used by
// tests and by tooling that needs to reproduce on-chain IDL account
// bytes.
func PackContainer(authority common.Address, doc Idl) ([]byte, error) {
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("idl: json: %w", err)
	}

	var compressed bytes.Buffer
	w := zlib.NewWriter(&compressed)
	if _, err := w.Write(jsonBytes); err != nil {
		return nil, fmt.Errorf("idl: zlib: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("idl: zlib: %w", err)
	}

	out := make([]byte, 0, HeaderSize+compressed.Len())
	out = append(out, containerDiscriminator[:]...)
	out = append(out, authority[:]...)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(compressed.Len()))
	out = append(out, lenBuf[:]...)
	out = append(out, compressed.Bytes()...)
	return out, nil
}
