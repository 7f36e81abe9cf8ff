// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// lower7BitsMask/upper4BitsMask are the NaN-detection masks: observed
// on-chain float payloads that standard IEEE-754 decode rejects as NaN,
// deliberately over-approximated (they also reject a sliver of legitimate
// values near +/-Inf, which the source data never approaches).
const (
	lower7BitsMask = 0b0111_1111
	upper4BitsMask = 0b1111_0000
)

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.Next(1)
	if err != nil {
		return 0, NewTypeReadError("u8", b, err)
	}
	return b[0], nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.Next(2)
	if err != nil {
		return 0, NewTypeReadError("u16", b, err)
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.Next(4)
	if err != nil {
		return 0, NewTypeReadError("u32", b, err)
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.Next(8)
	if err != nil {
		return 0, NewTypeReadError("u64", b, err)
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI8 reads a two's-complement int8.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadI16 reads a little-endian two's-complement int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadI32 reads a little-endian two's-complement int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadI64 reads a little-endian two's-complement int64.
func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

// ReadU128 reads a little-endian uint128 as its Lo/Hi halves.
func (c *Cursor) ReadU128() (Uint128, error) {
	lo, err := c.ReadU64()
	if err != nil {
		return Uint128{}, NewTypeReadError("u128", nil, err)
	}
	hi, err := c.ReadU64()
	if err != nil {
		return Uint128{}, NewTypeReadError("u128", nil, err)
	}
	return Uint128{Lo: lo, Hi: hi}, nil
}

// ReadI128 reads a little-endian two's-complement int128.
func (c *Cursor) ReadI128() (Int128, error) {
	u, err := c.ReadU128()
	if err != nil {
		return Int128{}, err
	}
	return Int128(u), nil
}

// ReadBool reads a single byte: 0 -> false, 1 -> true, anything else fails.
func (c *Cursor) ReadBool() (bool, error) {
	b, err := c.Next(1)
	if err != nil {
		return false, NewTypeReadError("bool", b, err)
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, NewTypeReadError("bool", b, ErrInvalidBool)
	}
}

// ReadF32 decodes a float32, checking the NaN bit-pattern heuristic before
// delegating to the standard IEEE-754 little-endian decode.
func (c *Cursor) ReadF32() (float32, error) {
	b, err := c.Next(4)
	if err != nil {
		return 0, NewTypeReadError("f32", b, err)
	}
	if b[3]&lower7BitsMask == lower7BitsMask {
		return float32(math.NaN()), nil
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// ReadF64 decodes a float64, checking the NaN bit-pattern heuristic before
// delegating to the standard IEEE-754 little-endian decode.
func (c *Cursor) ReadF64() (float64, error) {
	b, err := c.Next(8)
	if err != nil {
		return 0, NewTypeReadError("f64", b, err)
	}
	if b[6]&upper4BitsMask == upper4BitsMask && b[7]&lower7BitsMask == lower7BitsMask {
		return math.NaN(), nil
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// ReadString reads a u32-length-prefixed UTF-8 string.
func (c *Cursor) ReadString() (string, error) {
	b, err := c.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", NewTypeReadError("string", b, ErrInvalidUTF8)
	}
	return string(b), nil
}

// ReadBytes reads a u32-length-prefixed byte vector.
func (c *Cursor) ReadBytes() ([]byte, error) {
	n, err := c.ReadU32()
	if err != nil {
		return nil, NewTypeReadError("bytes", nil, err)
	}
	b, err := c.Next(int(n))
	if err != nil {
		return nil, NewTypeReadError("bytes", nil, fmt.Errorf("length %d: %w", n, err))
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, nil
}

// ReadPubkey reads 32 raw bytes.
func (c *Cursor) ReadPubkey() ([32]byte, error) {
	var out [32]byte
	b, err := c.Next(32)
	if err != nil {
		return out, NewTypeReadError("pubkey", b, err)
	}
	copy(out[:], b)
	return out, nil
}
