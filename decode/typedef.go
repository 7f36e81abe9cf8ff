// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package decode

import (
	"github.com/cielu/go-solana-idl/idl"
	"github.com/cielu/go-solana-idl/jsonwriter"
	"github.com/cielu/go-solana-idl/wire"
)

// DecodeTypeDef reads a value of the named composite type def - a
// struct's fields in declaration order, or an enum's u8 discriminant
// followed by its selected variant's payload - and writes its JSON
// rendering to w.
func DecodeTypeDef(c *wire.Cursor, def idl.TypeDef, w *jsonwriter.Writer, opts Options) error {
	switch def.Kind {
	case idl.TypeDefStruct:
		return decodeStruct(c, def, w, opts)
	case idl.TypeDefEnum:
		return decodeEnum(c, def, w, opts)
	default:
		return ErrUnsupportedType
	}
}

func decodeStruct(c *wire.Cursor, def idl.TypeDef, w *jsonwriter.Writer, opts Options) error {
	w.BeginObject()
	for i, f := range def.Fields {
		if i > 0 {
			w.Comma()
		}
		w.Key(f.Name)
		if err := DecodeType(c, f.Type, w, opts); err != nil {
			return structError(def.Name, f.Name, err)
		}
	}
	w.EndObject()
	return nil
}

// decodeEnum reads a flat u8 index into def.Variants. This intentionally
// does not special-case enums whose variants are tagged starting at a
// non-zero or non-contiguous discriminant - neither Anchor nor Shank IDLs
// express that, so the tag is always treated as a direct slice index.
func decodeEnum(c *wire.Cursor, def idl.TypeDef, w *jsonwriter.Writer, opts Options) error {
	tag, err := c.ReadU8()
	if err != nil {
		return enumError(def.Name, err)
	}
	if int(tag) >= len(def.Variants) {
		return enumError(def.Name, ErrInvalidEnumVariantDiscriminant)
	}
	variant := def.Variants[tag]
	if err := decodeVariant(c, variant, w, opts); err != nil {
		return enumError(def.Name, enumVariantError(variant.Name, err))
	}
	return nil
}

// decodeVariant renders one of the three variant JSON shapes: a bare
// quoted name for a unit variant, {"Name": {field: value, ...}} for a
// named-fields variant, {"Name": [value, ...]} for a tuple variant.
func decodeVariant(c *wire.Cursor, v idl.EnumVariant, w *jsonwriter.Writer, opts Options) error {
	switch v.FieldsKind {
	case idl.EnumFieldsNone:
		w.Quoted(v.Name)
		return nil

	case idl.EnumFieldsNamed:
		w.BeginObject()
		w.Key(v.Name)
		w.BeginObject()
		for i, f := range v.Named {
			if i > 0 {
				w.Comma()
			}
			w.Key(f.Name)
			if err := DecodeType(c, f.Type, w, opts); err != nil {
				return structError(v.Name, f.Name, err)
			}
		}
		w.EndObject()
		w.EndObject()
		return nil

	case idl.EnumFieldsTuple:
		w.BeginObject()
		w.Key(v.Name)
		w.BeginArray()
		for i, ty := range v.Tuple {
			if i > 0 {
				w.Comma()
			}
			if err := DecodeType(c, ty, w, opts); err != nil {
				return compositeError("tuple variant", i, err)
			}
		}
		w.EndArray()
		w.EndObject()
		return nil

	default:
		return ErrUnsupportedType
	}
}
