// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Package idl holds the JSON schema for an Interface Description Language
// document: named types, accounts, and instructions, plus the operations
// that work directly against that schema (the type-size oracle, the
// zlib-compressed container codec, and the on-chain IDL address
// derivation). The schema's tagged-union Type mirrors solana_idl::IdlType
// from the source this module is grounded on.
package idl

import (
	"encoding/json"
	"fmt"
)

// Kind identifies a Type's constructor.
type Kind int

const (
	KindBool Kind = iota
	KindU8
	KindI8
	KindU16
	KindI16
	KindU32
	KindI32
	KindU64
	KindI64
	KindU128
	KindI128
	KindF32
	KindF64
	KindString
	KindBytes
	KindPublicKey
	KindArray
	KindVec
	KindHashMap
	KindBTreeMap
	KindHashSet
	KindBTreeSet
	KindOption
	KindCOption
	KindTuple
	KindDefined
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindU8:
		return "u8"
	case KindI8:
		return "i8"
	case KindU16:
		return "u16"
	case KindI16:
		return "i16"
	case KindU32:
		return "u32"
	case KindI32:
		return "i32"
	case KindU64:
		return "u64"
	case KindI64:
		return "i64"
	case KindU128:
		return "u128"
	case KindI128:
		return "i128"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindPublicKey:
		return "publicKey"
	case KindArray:
		return "array"
	case KindVec:
		return "vec"
	case KindHashMap:
		return "hashMap"
	case KindBTreeMap:
		return "bTreeMap"
	case KindHashSet:
		return "hashSet"
	case KindBTreeSet:
		return "bTreeSet"
	case KindOption:
		return "option"
	case KindCOption:
		return "coption"
	case KindTuple:
		return "tuple"
	case KindDefined:
		return "defined"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type is the tagged union of every representable IDL type. Only the
// fields relevant to Kind are populated; e.g. Array uses Inner+ArrayLen,
// HashMap/BTreeMap use Inner (key) + Inner2 (value).
type Type struct {
	Kind     Kind
	Inner    *Type
	Inner2   *Type
	ArrayLen int
	Tuple    []Type
	Defined  string
}

var primitiveKinds = map[string]Kind{
	"bool":      KindBool,
	"u8":        KindU8,
	"i8":        KindI8,
	"u16":       KindU16,
	"i16":       KindI16,
	"u32":       KindU32,
	"i32":       KindI32,
	"u64":       KindU64,
	"i64":       KindI64,
	"u128":      KindU128,
	"i128":      KindI128,
	"f32":       KindF32,
	"f64":       KindF64,
	"string":    KindString,
	"bytes":     KindBytes,
	"publicKey": KindPublicKey,
}

var primitiveNames = func() map[Kind]string {
	m := make(map[Kind]string, len(primitiveKinds))
	for name, kind := range primitiveKinds {
		m[kind] = name
	}
	return m
}()

// UnmarshalJSON accepts the two shapes an IDL type can take: a bare
// primitive-name string, or a single-key object naming a composite
// constructor (defined/array/vec/option/coption/hashMap/bTreeMap/
// hashSet/bTreeSet/tuple).
func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		kind, ok := primitiveKinds[name]
		if !ok {
			return fmt.Errorf("idl: unknown primitive type %q", name)
		}
		*t = Type{Kind: kind}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("idl: invalid type shape: %w", err)
	}

	switch {
	case obj["defined"] != nil:
		var s string
		if err := json.Unmarshal(obj["defined"], &s); err != nil {
			return fmt.Errorf("idl: defined: %w", err)
		}
		*t = Type{Kind: KindDefined, Defined: s}
		return nil

	case obj["array"] != nil:
		var pair [2]json.RawMessage
		if err := json.Unmarshal(obj["array"], &pair); err != nil {
			return fmt.Errorf("idl: array: %w", err)
		}
		var inner Type
		if err := json.Unmarshal(pair[0], &inner); err != nil {
			return err
		}
		var n int
		if err := json.Unmarshal(pair[1], &n); err != nil {
			return fmt.Errorf("idl: array length: %w", err)
		}
		*t = Type{Kind: KindArray, Inner: &inner, ArrayLen: n}
		return nil

	case obj["vec"] != nil:
		inner, err := unmarshalOne(obj["vec"])
		if err != nil {
			return err
		}
		*t = Type{Kind: KindVec, Inner: inner}
		return nil

	case obj["option"] != nil:
		inner, err := unmarshalOne(obj["option"])
		if err != nil {
			return err
		}
		*t = Type{Kind: KindOption, Inner: inner}
		return nil

	case obj["coption"] != nil:
		inner, err := unmarshalOne(obj["coption"])
		if err != nil {
			return err
		}
		*t = Type{Kind: KindCOption, Inner: inner}
		return nil

	case obj["hashMap"] != nil:
		k, v, err := unmarshalPair(obj["hashMap"])
		if err != nil {
			return err
		}
		*t = Type{Kind: KindHashMap, Inner: k, Inner2: v}
		return nil

	case obj["bTreeMap"] != nil:
		k, v, err := unmarshalPair(obj["bTreeMap"])
		if err != nil {
			return err
		}
		*t = Type{Kind: KindBTreeMap, Inner: k, Inner2: v}
		return nil

	case obj["hashSet"] != nil:
		inner, err := unmarshalOne(obj["hashSet"])
		if err != nil {
			return err
		}
		*t = Type{Kind: KindHashSet, Inner: inner}
		return nil

	case obj["bTreeSet"] != nil:
		inner, err := unmarshalOne(obj["bTreeSet"])
		if err != nil {
			return err
		}
		*t = Type{Kind: KindBTreeSet, Inner: inner}
		return nil

	case obj["tuple"] != nil:
		var raws []json.RawMessage
		if err := json.Unmarshal(obj["tuple"], &raws); err != nil {
			return fmt.Errorf("idl: tuple: %w", err)
		}
		elems := make([]Type, len(raws))
		for i, raw := range raws {
			if err := json.Unmarshal(raw, &elems[i]); err != nil {
				return err
			}
		}
		*t = Type{Kind: KindTuple, Tuple: elems}
		return nil
	}

	return fmt.Errorf("idl: unrecognized type object: %s", data)
}

func unmarshalOne(raw json.RawMessage) (*Type, error) {
	var t Type
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func unmarshalPair(raw json.RawMessage) (*Type, *Type, error) {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return nil, nil, fmt.Errorf("idl: expected [key, value] pair: %w", err)
	}
	k, err := unmarshalOne(pair[0])
	if err != nil {
		return nil, nil, err
	}
	v, err := unmarshalOne(pair[1])
	if err != nil {
		return nil, nil, err
	}
	return k, v, nil
}

// MarshalJSON is the mirror of UnmarshalJSON, used by the container codec's
// encode path.
func (t Type) MarshalJSON() ([]byte, error) {
	if name, ok := primitiveNames[t.Kind]; ok {
		return json.Marshal(name)
	}
	switch t.Kind {
	case KindDefined:
		return json.Marshal(map[string]string{"defined": t.Defined})
	case KindArray:
		return json.Marshal(map[string]interface{}{"array": [2]interface{}{t.Inner, t.ArrayLen}})
	case KindVec:
		return json.Marshal(map[string]interface{}{"vec": t.Inner})
	case KindOption:
		return json.Marshal(map[string]interface{}{"option": t.Inner})
	case KindCOption:
		return json.Marshal(map[string]interface{}{"coption": t.Inner})
	case KindHashMap:
		return json.Marshal(map[string]interface{}{"hashMap": [2]interface{}{t.Inner, t.Inner2}})
	case KindBTreeMap:
		return json.Marshal(map[string]interface{}{"bTreeMap": [2]interface{}{t.Inner, t.Inner2}})
	case KindHashSet:
		return json.Marshal(map[string]interface{}{"hashSet": t.Inner})
	case KindBTreeSet:
		return json.Marshal(map[string]interface{}{"bTreeSet": t.Inner})
	case KindTuple:
		return json.Marshal(map[string]interface{}{"tuple": t.Tuple})
	default:
		return nil, fmt.Errorf("idl: cannot marshal type kind %s", t.Kind)
	}
}

// Field is a named, typed struct field (or enum named-variant field, or
// instruction argument).
type Field struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// EnumFieldsKind distinguishes the three enum-variant shapes.
type EnumFieldsKind int

const (
	EnumFieldsNone EnumFieldsKind = iota
	EnumFieldsNamed
	EnumFieldsTuple
)

// EnumVariant is one arm of an Enum type definition.
type EnumVariant struct {
	Name       string
	FieldsKind EnumFieldsKind
	Named      []Field
	Tuple      []Type
}

// UnmarshalJSON handles the three shapes Anchor/Shank emit for a variant:
// {"name": "X"} (unit), {"name":"X","fields":[{"name":...,"type":...}]}
// (named), {"name":"X","fields":[type, type]} (tuple - a bare array of
// types rather than of {name,type} objects).
func (v *EnumVariant) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string          `json:"name"`
		Fields json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Name = raw.Name
	if len(raw.Fields) == 0 || string(raw.Fields) == "null" {
		v.FieldsKind = EnumFieldsNone
		return nil
	}

	var named []Field
	if err := json.Unmarshal(raw.Fields, &named); err == nil && fieldsLookNamed(named, raw.Fields) {
		v.FieldsKind = EnumFieldsNamed
		v.Named = named
		return nil
	}

	var tuple []Type
	if err := json.Unmarshal(raw.Fields, &tuple); err != nil {
		return fmt.Errorf("idl: enum variant %q fields: %w", raw.Name, err)
	}
	v.FieldsKind = EnumFieldsTuple
	v.Tuple = tuple
	return nil
}

// fieldsLookNamed re-checks that every decoded element actually carried a
// "name" key, since unmarshalling a tuple-variant's type array into
// []Field silently succeeds with empty Name fields.
func fieldsLookNamed(fields []Field, raw json.RawMessage) bool {
	var probe []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	if len(probe) != len(fields) {
		return false
	}
	for _, p := range probe {
		if _, ok := p["name"]; !ok {
			return false
		}
	}
	return true
}

// TypeDefKind distinguishes Struct from Enum.
type TypeDefKind int

const (
	TypeDefStruct TypeDefKind = iota
	TypeDefEnum
)

// TypeDef is a named type from the IDL's top-level "types" (or an
// account's layout, which is always a Struct in practice).
type TypeDef struct {
	Name     string
	Kind     TypeDefKind
	Fields   []Field
	Variants []EnumVariant
}

// UnmarshalJSON handles {"name":"Foo","type":{"kind":"struct","fields":[...]}}
// and {"name":"Bar","type":{"kind":"enum","variants":[...]}}.
func (d *TypeDef) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name string `json:"name"`
		Type struct {
			Kind     string        `json:"kind"`
			Fields   []Field       `json:"fields"`
			Variants []EnumVariant `json:"variants"`
		} `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Name = raw.Name
	switch raw.Type.Kind {
	case "struct":
		d.Kind = TypeDefStruct
		d.Fields = raw.Type.Fields
	case "enum":
		d.Kind = TypeDefEnum
		d.Variants = raw.Type.Variants
	default:
		return fmt.Errorf("idl: type %q: unknown type-definition kind %q", raw.Name, raw.Type.Kind)
	}
	return nil
}

// MarshalJSON mirrors UnmarshalJSON.
func (d TypeDef) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case TypeDefStruct:
		return json.Marshal(struct {
			Name string `json:"name"`
			Type struct {
				Kind   string  `json:"kind"`
				Fields []Field `json:"fields"`
			} `json:"type"`
		}{
			Name: d.Name,
			Type: struct {
				Kind   string  `json:"kind"`
				Fields []Field `json:"fields"`
			}{Kind: "struct", Fields: d.Fields},
		})
	case TypeDefEnum:
		return json.Marshal(struct {
			Name string `json:"name"`
			Type struct {
				Kind     string        `json:"kind"`
				Variants []EnumVariant `json:"variants"`
			} `json:"type"`
		}{
			Name: d.Name,
			Type: struct {
				Kind     string        `json:"kind"`
				Variants []EnumVariant `json:"variants"`
			}{Kind: "enum", Variants: d.Variants},
		})
	default:
		return nil, fmt.Errorf("idl: cannot marshal type-definition kind %d", d.Kind)
	}
}

// Discriminant is an instruction's explicit on-wire tag, when the IDL
// supplies one instead of leaving it to be derived (§4.8).
type Discriminant struct {
	Bytes []byte `json:"bytes,omitempty"`
	Value *int   `json:"value,omitempty"`
}

// Account is an entry in the IDL's "accounts" list: a name plus the
// struct layout describing its bytes.
type Account struct {
	Name string  `json:"name"`
	Type TypeDef `json:"type"`
}

// Instruction is an entry in the IDL's "instructions" list.
type Instruction struct {
	Name         string        `json:"name"`
	Args         []Field       `json:"args"`
	Accounts     []AccountMeta `json:"accounts"`
	Discriminant *Discriminant `json:"discriminant,omitempty"`
}

// AccountMeta is one positional account slot of an instruction.
type AccountMeta struct {
	Name     string `json:"name"`
	IsMut    bool   `json:"isMut"`
	IsSigner bool   `json:"isSigner"`
}

// Metadata carries IDL-level provenance, notably which serializer
// convention the program used ("borsh"/"spl"), mirroring
// solana_idl::Idl::metadata.serializer.
type Metadata struct {
	Serializer string `json:"serializer,omitempty"`
}

// Idl is the full parsed schema document.
type Idl struct {
	Version      string        `json:"version"`
	Name         string        `json:"name"`
	Metadata     *Metadata     `json:"metadata,omitempty"`
	Types        []TypeDef     `json:"types,omitempty"`
	Accounts     []Account     `json:"accounts,omitempty"`
	Instructions []Instruction `json:"instructions,omitempty"`
}
