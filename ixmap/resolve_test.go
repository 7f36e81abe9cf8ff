package ixmap

import (
	"context"
	"testing"

	"github.com/cielu/go-solana-idl/common"
	"github.com/cielu/go-solana-idl/discriminator"
	"github.com/cielu/go-solana-idl/idl"
)

type stubFetcher struct {
	data  map[common.Address][]byte
	calls int
}

func (s *stubFetcher) GetAccount(ctx context.Context, pubkey common.Address) ([]byte, uint64, bool, error) {
	s.calls++
	data, ok := s.data[pubkey]
	return data, 0, ok, nil
}

func TestMapInstructionAccountLabelsWithSuppliedIDL(t *testing.T) {
	program := common.StrToAddress("cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ")
	doc := &idl.Idl{
		Instructions: []idl.Instruction{
			{Name: "withdraw", Accounts: []idl.AccountMeta{{Name: "vault"}, {Name: "destination"}}},
		},
	}
	tag := discriminator.InstructionTag("withdraw", nil, discriminator.NamePolicyVerbatim)
	data := append(append([]byte{}, tag...), 7)

	vault := common.StrToAddress("So11111111111111111111111111111111111111112")
	dest := common.StrToAddress("11111111111111111111111111111111111111112")
	pubkeys := []common.Address{vault, dest}

	fetcher := &stubFetcher{}
	labels, err := MapInstructionAccountLabels(context.Background(), fetcher, program, "My Program", data, pubkeys, doc, discriminator.NamePolicyVerbatim)
	if err != nil {
		t.Fatalf("MapInstructionAccountLabels: %v", err)
	}
	if labels[vault] != "vault" {
		t.Fatalf("labels[vault] = %s, want vault", labels[vault])
	}
	if labels[dest] != "destination" {
		t.Fatalf("labels[dest] = %s, want destination", labels[dest])
	}
	if fetcher.calls != 0 {
		t.Fatalf("fetcher should not be consulted when idlDoc is supplied, got %d calls", fetcher.calls)
	}
}

func TestMapInstructionAccountLabelsResolvesViaFetcherWhenIDLMissing(t *testing.T) {
	program := common.StrToAddress("cndy3Z4yapfJBmL3ShUp5exZKqR3z33thTzeNMm2gRZ")
	fetcher := &stubFetcher{data: map[common.Address][]byte{}}

	labels, err := MapInstructionAccountLabels(context.Background(), fetcher, program, "My Program", []byte{1, 2, 3}, nil, nil, discriminator.NamePolicyVerbatim)
	if err != nil {
		t.Fatalf("MapInstructionAccountLabels: %v", err)
	}
	if len(labels) != 0 {
		t.Fatalf("expected empty map when no IDL can be resolved, got %+v", labels)
	}
	if fetcher.calls == 0 {
		t.Fatalf("expected fetcher to be consulted for both provider seeds")
	}
}
