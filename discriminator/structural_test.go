package discriminator

import (
	"testing"

	"github.com/cielu/go-solana-idl/idl"
)

func accountsAB() []idl.Account {
	return []idl.Account{
		{Name: "A", Type: idl.TypeDef{Name: "A", Kind: idl.TypeDefStruct, Fields: []idl.Field{
			{Name: "a", Type: idl.Type{Kind: idl.KindBool}},
			{Name: "b", Type: idl.Type{Kind: idl.KindBool}},
		}}},
		{Name: "B", Type: idl.TypeDef{Name: "B", Kind: idl.TypeDefStruct, Fields: []idl.Field{
			{Name: "a", Type: idl.Type{Kind: idl.KindBool}},
			{Name: "b", Type: idl.Type{Kind: idl.KindU32}},
		}}},
	}
}

func TestStructuralTableCandidateShapes(t *testing.T) {
	table := BuildStructuralTable(accountsAB(), nil)
	if len(table.candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(table.candidates))
	}
	// sorted ascending by MinTotalSize: A(2) before B(5)
	if table.candidates[0].Name != "A" || table.candidates[0].MinTotalSize != 2 {
		t.Fatalf("candidate 0 = %+v", table.candidates[0])
	}
	if len(table.candidates[0].Matchers) != 2 {
		t.Fatalf("A matchers = %d, want 2", len(table.candidates[0].Matchers))
	}
	if table.candidates[1].Name != "B" || table.candidates[1].MinTotalSize != 5 {
		t.Fatalf("candidate 1 = %+v", table.candidates[1])
	}
	if len(table.candidates[1].Matchers) != 1 {
		t.Fatalf("B matchers = %d, want 1", len(table.candidates[1].Matchers))
	}
}

func TestStructuralClassifyTwoByteBlobSelectsA(t *testing.T) {
	table := BuildStructuralTable(accountsAB(), nil)
	def, err := table.Classify([]byte{1, 0})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if def.Name != "A" {
		t.Fatalf("got %s, want A", def.Name)
	}
}

func TestStructuralClassifyFiveByteBlobSelectsB(t *testing.T) {
	table := BuildStructuralTable(accountsAB(), nil)
	def, err := table.Classify([]byte{1, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if def.Name != "B" {
		t.Fatalf("got %s, want B", def.Name)
	}
}

func TestStructuralClassifyTooShort(t *testing.T) {
	table := BuildStructuralTable(accountsAB(), nil)
	if _, err := table.Classify([]byte{1}); err != ErrCannotFindDecoderForAccount {
		t.Fatalf("got %v, want ErrCannotFindDecoderForAccount", err)
	}
}

func TestPrefixTableClassify(t *testing.T) {
	accounts := []idl.Account{
		{Name: "VaultInfo", Type: idl.TypeDef{Name: "VaultInfo", Kind: idl.TypeDefStruct, Fields: []idl.Field{
			{Name: "amount", Type: idl.Type{Kind: idl.KindU64}},
		}}},
	}
	table := BuildPrefixTable(accounts)
	tag := AccountTag("VaultInfo")
	blob := append(tag[:], 1, 2, 3, 4, 5, 6, 7, 8)
	def, err := table.Classify(blob)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if def.Name != "VaultInfo" {
		t.Fatalf("got %s, want VaultInfo", def.Name)
	}
}

func TestPrefixTableClassifyUnknown(t *testing.T) {
	table := BuildPrefixTable(nil)
	if _, err := table.Classify(make([]byte, 8)); err == nil {
		t.Fatalf("expected ErrUnknownDiscriminatedAccount")
	}
}

func TestPrefixTableClassifyTooShort(t *testing.T) {
	table := BuildPrefixTable(nil)
	if _, err := table.Classify([]byte{1, 2}); err != ErrBlobTooShortForTag {
		t.Fatalf("got %v, want ErrBlobTooShortForTag", err)
	}
}
