package common

import (
	"encoding/json"
	"testing"
)

func TestAddressBase58RoundTrip(t *testing.T) {
	want := "11111111111111111111111111111111"
	addr := Base58ToAddress(want)
	if got := addr.String(); got != want {
		t.Fatalf("Base58() = %q, want %q", got, want)
	}
}

func TestAddressMarshalText(t *testing.T) {
	addr := Base58ToAddress("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
	out, err := json.Marshal(addr)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"`
	if string(out) != want {
		t.Fatalf("Marshal = %s, want %s", out, want)
	}

	var back Address
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != addr {
		t.Fatalf("round trip mismatch: %s != %s", back, addr)
	}
}

func TestAddressUnmarshalPairForm(t *testing.T) {
	addr := Base58ToAddress("So11111111111111111111111111111111111111112")
	input := `["` + addr.Base58() + `", "base58"]`

	var back Address
	if err := json.Unmarshal([]byte(input), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != addr {
		t.Fatalf("round trip mismatch: %s != %s", back, addr)
	}
}

func TestAddressIsZero(t *testing.T) {
	var addr Address
	if !addr.IsZero() {
		t.Fatalf("zero-value Address.IsZero() = false")
	}
	addr[0] = 1
	if addr.IsZero() {
		t.Fatalf("non-zero Address.IsZero() = true")
	}
}
