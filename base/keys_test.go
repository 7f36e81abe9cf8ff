package base

import (
	"testing"

	"github.com/cielu/go-solana-idl/common"
)

func TestCreateAddressWithSeedMatchesIdlAddressFixture(t *testing.T) {
	program := common.StrToAddress("cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ")
	baseAddr, _, err := FindProgramAddress(nil, program)
	if err != nil {
		t.Fatalf("FindProgramAddress: %v", err)
	}

	anchorAddr, err := CreateAddressWithSeed(baseAddr, "anchor:idl", program)
	if err != nil {
		t.Fatalf("CreateAddressWithSeed: %v", err)
	}
	if got, want := anchorAddr.Base58(), "CggtNXgCye2qk7fLohonNftqaKT35GkuZJwHrRghEvSF"; got != want {
		t.Fatalf("anchor idl address = %s, want %s", got, want)
	}

	shankAddr, err := CreateAddressWithSeed(baseAddr, "shank:idl", program)
	if err != nil {
		t.Fatalf("CreateAddressWithSeed: %v", err)
	}
	if got, want := shankAddr.Base58(), "AEUhdmwzSea7oYDWhAiSBArqq6tBLFNNZZ448wfbaV3Z"; got != want {
		t.Fatalf("shank idl address = %s, want %s", got, want)
	}
}

func TestCreateAddressWithSeedRejectsOversizedSeed(t *testing.T) {
	var zero common.Address
	seed := make([]byte, MaxSeedStringLength+1)
	for i := range seed {
		seed[i] = 'a'
	}
	if _, err := CreateAddressWithSeed(zero, string(seed), zero); err == nil {
		t.Fatalf("expected error for oversized seed")
	}
}

func TestIsOnCurveAcceptsAllZeroInput(t *testing.T) {
	// y = 0 gives x^2 = -1, which has a root mod 2^255-19, so the all-zero
	// encoding is a valid (low-order) curve point.
	if !IsOnCurve(make([]byte, 32)) {
		t.Fatalf("all-zero bytes should decode to a curve point")
	}
}

func TestFindProgramAddressIsDeterministic(t *testing.T) {
	program := common.StrToAddress("cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ")
	addr1, bump1, err := FindProgramAddress([][]byte{[]byte("test-seed")}, program)
	if err != nil {
		t.Fatalf("FindProgramAddress: %v", err)
	}
	addr2, bump2, err := FindProgramAddress([][]byte{[]byte("test-seed")}, program)
	if err != nil {
		t.Fatalf("FindProgramAddress: %v", err)
	}
	if addr1 != addr2 || bump1 != bump2 {
		t.Fatalf("FindProgramAddress not deterministic: (%s,%d) vs (%s,%d)", addr1.Base58(), bump1, addr2.Base58(), bump2)
	}
}
