// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package decode

import (
	"strconv"
	"strings"

	"github.com/cielu/go-solana-idl/common"
	"github.com/cielu/go-solana-idl/idl"
	"github.com/cielu/go-solana-idl/jsonwriter"
	"github.com/cielu/go-solana-idl/wire"
)

// DecodeType reads one value of type t from c and writes its JSON
// rendering to w, dispatching on t.Kind. This is the counterpart of the
// source's per-Kind JSON serialization dispatch: every composite case
// recurses into DecodeType for its elements, and error returns are
// wrapped with enough context (index, key, or Defined name) to locate
// the failure in a nested document.
func DecodeType(c *wire.Cursor, t idl.Type, w *jsonwriter.Writer, opts Options) error {
	switch t.Kind {
	case idl.KindBool:
		v, err := c.ReadBool()
		if err != nil {
			return err
		}
		w.Bool(v)
		return nil

	case idl.KindU8:
		v, err := c.ReadU8()
		if err != nil {
			return err
		}
		w.Uint(uint64(v))
		return nil

	case idl.KindI8:
		v, err := c.ReadI8()
		if err != nil {
			return err
		}
		w.Int(int64(v))
		return nil

	case idl.KindU16:
		v, err := c.ReadU16()
		if err != nil {
			return err
		}
		w.Uint(uint64(v))
		return nil

	case idl.KindI16:
		v, err := c.ReadI16()
		if err != nil {
			return err
		}
		w.Int(int64(v))
		return nil

	case idl.KindU32:
		v, err := c.ReadU32()
		if err != nil {
			return err
		}
		w.Uint(uint64(v))
		return nil

	case idl.KindI32:
		v, err := c.ReadI32()
		if err != nil {
			return err
		}
		w.Int(int64(v))
		return nil

	case idl.KindU64:
		v, err := c.ReadU64()
		if err != nil {
			return err
		}
		if opts.N64AsString {
			w.QuotedUint(v)
		} else {
			w.Uint(v)
		}
		return nil

	case idl.KindI64:
		v, err := c.ReadI64()
		if err != nil {
			return err
		}
		if opts.N64AsString {
			w.Quoted(strconv.FormatInt(v, 10))
		} else {
			w.Int(v)
		}
		return nil

	case idl.KindU128:
		v, err := c.ReadU128()
		if err != nil {
			return err
		}
		if opts.N128AsString {
			w.QuotedString(v.DecimalString())
		} else {
			w.RawString(v.DecimalString())
		}
		return nil

	case idl.KindI128:
		v, err := c.ReadI128()
		if err != nil {
			return err
		}
		s := v.BigInt().String()
		if opts.N128AsString {
			w.QuotedString(s)
		} else {
			w.RawString(s)
		}
		return nil

	case idl.KindF32:
		v, err := c.ReadF32()
		if err != nil {
			return err
		}
		w.Float(float64(v))
		return nil

	case idl.KindF64:
		v, err := c.ReadF64()
		if err != nil {
			return err
		}
		w.Float(v)
		return nil

	case idl.KindString:
		v, err := c.ReadString()
		if err != nil {
			return err
		}
		w.Quoted(v)
		return nil

	case idl.KindBytes:
		b, err := c.ReadBytes()
		if err != nil {
			return err
		}
		w.BeginArray()
		for i, x := range b {
			if i > 0 {
				w.Comma()
			}
			w.Uint(uint64(x))
		}
		w.EndArray()
		return nil

	case idl.KindPublicKey:
		pk, err := c.ReadPubkey()
		if err != nil {
			return err
		}
		if opts.PubkeyAsBase58 {
			w.Quoted(common.Address(pk).Base58())
		} else {
			w.BeginArray()
			for i, x := range pk {
				if i > 0 {
					w.Comma()
				}
				w.Uint(uint64(x))
			}
			w.EndArray()
		}
		return nil

	case idl.KindArray:
		w.BeginArray()
		for i := 0; i < t.ArrayLen; i++ {
			if i > 0 {
				w.Comma()
			}
			if err := DecodeType(c, *t.Inner, w, opts); err != nil {
				return compositeError("array", i, err)
			}
		}
		w.EndArray()
		return nil

	case idl.KindVec:
		n, err := c.ReadU32()
		if err != nil {
			return err
		}
		w.BeginArray()
		for i := 0; i < int(n); i++ {
			if i > 0 {
				w.Comma()
			}
			if err := DecodeType(c, *t.Inner, w, opts); err != nil {
				return compositeError("vec", i, err)
			}
		}
		w.EndArray()
		return nil

	case idl.KindHashSet, idl.KindBTreeSet:
		n, err := c.ReadU32()
		if err != nil {
			return err
		}
		w.BeginArray()
		for i := 0; i < int(n); i++ {
			if i > 0 {
				w.Comma()
			}
			if err := DecodeType(c, *t.Inner, w, opts); err != nil {
				return compositeError("set", i, err)
			}
		}
		w.EndArray()
		return nil

	case idl.KindHashMap, idl.KindBTreeMap:
		n, err := c.ReadU32()
		if err != nil {
			return err
		}
		w.BeginObject()
		for i := 0; i < int(n); i++ {
			if i > 0 {
				w.Comma()
			}
			keyBuf := jsonwriter.New()
			if err := DecodeType(c, *t.Inner, keyBuf, opts); err != nil {
				return compositeError("map key", i, err)
			}
			writeAsKey(w, keyBuf.String())
			w.Raw(":")
			if err := DecodeType(c, *t.Inner2, w, opts); err != nil {
				return compositeError("map value", i, err)
			}
		}
		w.EndObject()
		return nil

	case idl.KindOption:
		present, err := opts.Convention.ReadOption(c)
		if err != nil {
			return err
		}
		if !present {
			w.Null()
			return nil
		}
		return DecodeType(c, *t.Inner, w, opts)

	case idl.KindCOption:
		sizeOf := func() (int, bool) { return idl.SizeOf(*t.Inner, opts.Registry.Defs()) }
		present, err := opts.Convention.ReadCOption(c, sizeOf)
		if err != nil {
			return err
		}
		if !present {
			w.Null()
			return nil
		}
		return DecodeType(c, *t.Inner, w, opts)

	case idl.KindTuple:
		w.BeginArray()
		for i, elem := range t.Tuple {
			if i > 0 {
				w.Comma()
			}
			if err := DecodeType(c, elem, w, opts); err != nil {
				return compositeError("tuple", i, err)
			}
		}
		w.EndArray()
		return nil

	case idl.KindDefined:
		def, ok := opts.Registry.Lookup(t.Defined)
		if !ok {
			return definedError(t.Defined, ErrUndefinedType)
		}
		if err := DecodeTypeDef(c, def, w, opts); err != nil {
			return definedError(t.Defined, err)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// writeAsKey renders a decoded scalar as a JSON object key: map keys are
// always a quoted string, even when the key's own type already isn't one
// (e.g. a u32 key), so a bare numeric token gets wrapped in quotes while
// an already-quoted token (string/pubkey keys) is used as-is.
func writeAsKey(w *jsonwriter.Writer, decoded string) {
	if strings.HasPrefix(decoded, `"`) {
		w.Raw(decoded)
		return
	}
	w.Quoted(decoded)
}

