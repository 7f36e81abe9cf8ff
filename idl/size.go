// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package idl

import mapset "github.com/deckarep/golang-set/v2"

// SizeOf reports a type's static byte width under the given registry of
// named types, or (0, false) if the type's width depends on its payload
// (Vec, String, Bytes, HashMap, HashSet, Option, or any enum with a
// variant carrying a payload). Mirrors idl_type_bytes/idl_def_bytes.
func SizeOf(t Type, defs map[string]TypeDef) (int, bool) {
	return sizeOf(t, defs, mapset.NewThreadUnsafeSet[string]())
}

func sizeOf(t Type, defs map[string]TypeDef, seen mapset.Set[string]) (int, bool) {
	switch t.Kind {
	case KindBool, KindU8, KindI8:
		return 1, true
	case KindU16, KindI16:
		return 2, true
	case KindU32, KindI32, KindF32:
		return 4, true
	case KindU64, KindI64, KindF64:
		return 8, true
	case KindU128, KindI128:
		return 16, true
	case KindPublicKey:
		return 32, true
	case KindArray:
		inner, ok := sizeOf(*t.Inner, defs, seen)
		if !ok {
			return 0, false
		}
		return inner * t.ArrayLen, true
	case KindCOption:
		inner, ok := sizeOf(*t.Inner, defs, seen)
		if !ok {
			return 0, false
		}
		return 4 + inner, true
	case KindTuple:
		total := 0
		for _, elem := range t.Tuple {
			n, ok := sizeOf(elem, defs, seen)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true
	case KindDefined:
		return defSizeOf(t.Defined, defs, seen)
	default:
		// String, Bytes, Vec, HashMap, BTreeMap, HashSet, BTreeSet, Option:
		// payload-dependent width, no static size.
		return 0, false
	}
}

// defSizeOf resolves a named type from the registry. seen guards against
// the cyclic references the registry explicitly allows (a struct field or
// enum variant referencing its own type, directly or transitively) -
// encountering a name already on the current resolution path means the
// type's width can't be pinned down statically, so it's reported as
// unsized rather than recursing forever.
func defSizeOf(name string, defs map[string]TypeDef, seen mapset.Set[string]) (int, bool) {
	if seen.Contains(name) {
		return 0, false
	}
	def, ok := defs[name]
	if !ok {
		return 0, false
	}
	seen.Add(name)
	defer seen.Remove(name)

	switch def.Kind {
	case TypeDefStruct:
		total := 0
		for _, f := range def.Fields {
			n, ok := sizeOf(f.Type, defs, seen)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true
	case TypeDefEnum:
		// A fieldless enum is a bare u8 discriminant; any variant carrying
		// a payload makes the enum's width payload-dependent.
		for _, v := range def.Variants {
			if v.FieldsKind != EnumFieldsNone {
				return 0, false
			}
		}
		return 1, true
	default:
		return 0, false
	}
}
