package idl

import "testing"

func TestSizeOfStruct(t *testing.T) {
	defs := map[string]TypeDef{
		"B": {Name: "B", Kind: TypeDefStruct, Fields: []Field{
			{Name: "a", Type: Type{Kind: KindBool}},
			{Name: "b", Type: Type{Kind: KindU32}},
		}},
	}
	n, ok := SizeOf(Type{Kind: KindDefined, Defined: "B"}, defs)
	if !ok || n != 5 {
		t.Fatalf("SizeOf(B) = (%d, %v), want (5, true)", n, ok)
	}
}

func TestSizeOfFieldlessEnum(t *testing.T) {
	defs := map[string]TypeDef{
		"Color": {Name: "Color", Kind: TypeDefEnum, Variants: []EnumVariant{
			{Name: "Red"}, {Name: "Green"}, {Name: "Blue"},
		}},
	}
	n, ok := SizeOf(Type{Kind: KindDefined, Defined: "Color"}, defs)
	if !ok || n != 1 {
		t.Fatalf("SizeOf(Color) = (%d, %v), want (1, true)", n, ok)
	}
}

func TestSizeOfMixedEnumIsUnsized(t *testing.T) {
	defs := map[string]TypeDef{
		"Shape": {Name: "Shape", Kind: TypeDefEnum, Variants: []EnumVariant{
			{Name: "Point"},
			{Name: "Circle", FieldsKind: EnumFieldsTuple, Tuple: []Type{{Kind: KindU32}}},
		}},
	}
	if _, ok := SizeOf(Type{Kind: KindDefined, Defined: "Shape"}, defs); ok {
		t.Fatalf("expected mixed enum to be unsized")
	}
}

func TestSizeOfSelfReferencingStructIsUnsized(t *testing.T) {
	// A struct referencing itself (directly or transitively, e.g. through
	// an Option in a full decoder) has no static width; the cycle guard
	// must report unsized rather than recursing forever.
	defs := map[string]TypeDef{
		"Node": {Name: "Node", Kind: TypeDefStruct, Fields: []Field{
			{Name: "value", Type: Type{Kind: KindU8}},
			{Name: "next", Type: Type{Kind: KindDefined, Defined: "Node"}},
		}},
	}
	if _, ok := SizeOf(Type{Kind: KindDefined, Defined: "Node"}, defs); ok {
		t.Fatalf("expected self-referencing struct to be unsized")
	}
}

func TestSizeOfArrayAndCOption(t *testing.T) {
	n, ok := SizeOf(Type{Kind: KindArray, Inner: &Type{Kind: KindU8}, ArrayLen: 4}, nil)
	if !ok || n != 4 {
		t.Fatalf("SizeOf(array u8*4) = (%d, %v), want (4, true)", n, ok)
	}

	n, ok = SizeOf(Type{Kind: KindCOption, Inner: &Type{Kind: KindU64}}, nil)
	if !ok || n != 12 {
		t.Fatalf("SizeOf(coption u64) = (%d, %v), want (12, true)", n, ok)
	}
}

func TestSizeOfVecIsUnsized(t *testing.T) {
	if _, ok := SizeOf(Type{Kind: KindVec, Inner: &Type{Kind: KindU8}}, nil); ok {
		t.Fatalf("expected vec to be unsized")
	}
}
