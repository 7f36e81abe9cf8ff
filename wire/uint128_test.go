package wire

import (
	"math/big"
	"testing"
)

func TestUint128DecimalString(t *testing.T) {
	u := Uint128{Lo: 1, Hi: 0}
	if u.DecimalString() != "1" {
		t.Fatalf("got %s, want 1", u.DecimalString())
	}
}

func TestUint128SetBigIntRoundTrip(t *testing.T) {
	want := new(big.Int)
	want.SetString("340282366920938463463374607431768211455", 10) // 2^128 - 1
	var u Uint128
	if err := u.SetBigInt(want); err != nil {
		t.Fatalf("SetBigInt: %v", err)
	}
	if got := u.BigInt(); got.Cmp(want) != 0 {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestUint128SetBigIntOverflow(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 129)
	var u Uint128
	if err := u.SetBigInt(huge); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestInt128Negative(t *testing.T) {
	u, err := NewCursor([]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}).ReadI128()
	if err != nil {
		t.Fatalf("ReadI128: %v", err)
	}
	if u.BigInt().String() != "-1" {
		t.Fatalf("got %s, want -1", u.BigInt())
	}
}
