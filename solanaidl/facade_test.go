package solanaidl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cielu/go-solana-idl/discriminator"
	"github.com/cielu/go-solana-idl/idl"
)

func TestFacadeAnchorAccountRoundTrip(t *testing.T) {
	doc := idl.Idl{
		Version: "0.1.0",
		Name:    "example",
		Accounts: []idl.Account{
			{Name: "VaultInfo", Type: idl.TypeDef{Name: "VaultInfo", Kind: idl.TypeDefStruct, Fields: []idl.Field{
				{Name: "amount", Type: idl.Type{Kind: idl.KindU64}},
			}}},
		},
	}

	f := New(DefaultOptions())
	if err := f.AddIDL("prog", doc, idl.ProviderAnchor); err != nil {
		t.Fatalf("AddIDL: %v", err)
	}
	if !f.HasIDL("prog") {
		t.Fatalf("HasIDL false after AddIDL")
	}
	if !f.AddedIDLs().Contains("prog") {
		t.Fatalf("AddedIDLs missing prog")
	}

	tag := discriminator.AccountTag("VaultInfo")
	blob := append(append([]byte{}, tag[:]...), 42, 0, 0, 0, 0, 0, 0, 0)

	name, err := f.AccountName("prog", blob)
	if err != nil {
		t.Fatalf("AccountName: %v", err)
	}
	if name != "VaultInfo" {
		t.Fatalf("got %s, want VaultInfo", name)
	}

	got, err := f.DeserializeAccountToJSON("prog", blob)
	if err != nil {
		t.Fatalf("DeserializeAccountToJSON: %v", err)
	}
	if got != `{"amount":42}` {
		t.Fatalf("got %s, want {\"amount\":42}", got)
	}

	var buf bytes.Buffer
	if err := f.DeserializeAccountToJSONWriter("prog", blob, &buf); err != nil {
		t.Fatalf("DeserializeAccountToJSONWriter: %v", err)
	}
	if buf.String() != `{"amount":42}` {
		t.Fatalf("got %s, want {\"amount\":42}", buf.String())
	}

	var buf2 bytes.Buffer
	if err := f.DeserializeAccountToJSONByNameWriter("prog", "VaultInfo", blob, &buf2); err != nil {
		t.Fatalf("DeserializeAccountToJSONByNameWriter: %v", err)
	}
	if buf2.String() != `{"amount":42}` {
		t.Fatalf("got %s, want {\"amount\":42}", buf2.String())
	}
}

func TestFacadeUnknownIDL(t *testing.T) {
	f := New(DefaultOptions())
	if _, err := f.AccountName("missing", nil); err == nil {
		t.Fatalf("expected ErrUnknownIDL")
	}
}

func TestFacadeDuplicateRegistration(t *testing.T) {
	f := New(DefaultOptions())
	doc := idl.Idl{Name: "x"}
	if err := f.AddIDL("x", doc, idl.ProviderAnchor); err != nil {
		t.Fatalf("AddIDL: %v", err)
	}
	if err := f.AddIDL("x", doc, idl.ProviderAnchor); err == nil {
		t.Fatalf("expected ErrIDLAlreadyRegistered")
	}
}

func TestFacadeCloseClearsRegistry(t *testing.T) {
	f := New(DefaultOptions())
	doc := idl.Idl{Name: "x", Types: []idl.TypeDef{{Name: "T", Kind: idl.TypeDefStruct}}}
	if err := f.AddIDL("x", doc, idl.ProviderAnchor); err != nil {
		t.Fatalf("AddIDL: %v", err)
	}
	f.Close()
	if f.HasIDL("x") {
		t.Fatalf("expected no idls after Close")
	}
}

func TestFacadeDumpIDLContainsName(t *testing.T) {
	f := New(DefaultOptions())
	doc := idl.Idl{Name: "example-program"}
	if err := f.AddIDL("x", doc, idl.ProviderAnchor); err != nil {
		t.Fatalf("AddIDL: %v", err)
	}
	dump, err := f.DumpIDL("x")
	if err != nil {
		t.Fatalf("DumpIDL: %v", err)
	}
	if !strings.Contains(dump, "example-program") {
		t.Fatalf("dump missing idl name: %s", dump)
	}
}
