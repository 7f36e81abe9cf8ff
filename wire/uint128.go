// Copyright 2021 github.com/gagliardetto
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wire

import (
	"encoding/binary"
	"math/big"
)

// Uint128 holds a 128-bit unsigned integer as two little-endian-ordered
// 64-bit halves, the representation read directly off the wire by
// ReadU128 - no big.Int allocation on the hot decode path.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is the two's-complement signed counterpart of Uint128.
type Int128 Uint128

func reverseBytes(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Bytes returns the little-endian byte encoding (16 bytes).
func (u Uint128) Bytes() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[:8], u.Lo)
	binary.LittleEndian.PutUint64(buf[8:], u.Hi)
	return buf
}

// BigInt converts to an unsigned math/big.Int.
func (u Uint128) BigInt() *big.Int {
	buf := u.Bytes()
	reverseBytes(buf)
	return new(big.Int).SetBytes(buf)
}

// String renders the decimal form, matching DecimalString.
func (u Uint128) String() string { return u.DecimalString() }

// DecimalString renders the unsigned decimal form.
func (u Uint128) DecimalString() string { return u.BigInt().String() }

// SetBigInt stores b into the receiver, failing on negative or >128-bit values.
func (u *Uint128) SetBigInt(b *big.Int) error {
	if b.Sign() < 0 {
		return &RangeError{"cannot assign negative integer to Uint128"}
	}
	if b.BitLen() > 128 {
		return &RangeError{"value overflows Uint128"}
	}
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	u.Lo = lo.Uint64()
	u.Hi = hi.Uint64()
	return nil
}

func twosComplement(v []byte) []byte {
	buf := make([]byte, len(v))
	for i, b := range v {
		buf[i] = b ^ 0xff
	}
	one := big.NewInt(1)
	value := new(big.Int).SetBytes(buf)
	return value.Add(value, one).Bytes()
}

// BigInt converts to a signed math/big.Int, interpreting the top bit of the
// big-endian encoding as the sign per two's complement.
func (i Int128) BigInt() *big.Int {
	buf := Uint128(i).Bytes()
	reverseBytes(buf)
	if buf[0]&0x80 == 0x80 {
		value := new(big.Int).SetBytes(twosComplement(buf))
		return value.Neg(value)
	}
	return new(big.Int).SetBytes(buf)
}

// String renders the signed decimal form.
func (i Int128) String() string { return i.DecimalString() }

// DecimalString renders the signed decimal form.
func (i Int128) DecimalString() string { return i.BigInt().String() }

// RangeError reports an out-of-range 128-bit integer assignment.
type RangeError struct{ msg string }

func (e *RangeError) Error() string { return e.msg }
