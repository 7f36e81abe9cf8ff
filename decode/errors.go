// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package decode

import (
	"errors"
	"fmt"
)

// ErrUndefinedType means a Defined("Name") type referenced a name not
// present in the active registry.
var ErrUndefinedType = errors.New("decode: undefined type")

// ErrInvalidEnumVariantDiscriminant means an enum's leading u8 tag
// indexed past the end of its variants list.
var ErrInvalidEnumVariantDiscriminant = errors.New("decode: invalid enum variant discriminant")

// ErrUnsupportedType means the decoder was asked to materialize a type
// kind that has no JSON rendering under the active policy (currently:
// none - every Kind the idl package can parse has a JSON shape).
var ErrUnsupportedType = errors.New("decode: unsupported type")

// structError wraps a failure decoding a named struct's field.
func structError(structName, fieldName string, err error) error {
	return fmt.Errorf("decode: struct %q field %q: %w", structName, fieldName, err)
}

// enumError wraps a failure decoding a named enum's discriminant or body.
func enumError(enumName string, err error) error {
	return fmt.Errorf("decode: enum %q: %w", enumName, err)
}

// enumVariantError wraps a failure decoding a specific variant's payload.
func enumVariantError(variantName string, err error) error {
	return fmt.Errorf("decode: variant %q: %w", variantName, err)
}

// definedError wraps a failure resolving or decoding a Defined(name) type.
func definedError(name string, err error) error {
	return fmt.Errorf("decode: defined(%q): %w", name, err)
}

// compositeError wraps a failure decoding an element of a composite type
// (array/vec/map/set/tuple), including the element's index or key for
// diagnostics.
func compositeError(kind string, index int, err error) error {
	return fmt.Errorf("decode: %s[%d]: %w", kind, index, err)
}
