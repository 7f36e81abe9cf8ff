// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package discriminator

import (
	"errors"
	"sort"

	"github.com/cielu/go-solana-idl/idl"
)

// ErrCannotFindDecoderForAccount means no structural candidate's
// matchers were satisfied by the blob.
var ErrCannotFindDecoderForAccount = errors.New("discriminator: cannot find decoder for account")

// MatcherKind distinguishes the two structural fingerprint checks the
// spec defines.
type MatcherKind int

const (
	MatcherBool MatcherKind = iota
	MatcherCOption
)

// Matcher is one fixed-offset fingerprint check built from a field whose
// offset is known ahead of time.
type Matcher struct {
	Kind      MatcherKind
	Offset    int
	InnerSize int // only meaningful for MatcherCOption
}

// Matches reports whether blob satisfies this matcher. A blob too short
// to hold the matched bytes at Offset does not match.
func (m Matcher) Matches(blob []byte) bool {
	switch m.Kind {
	case MatcherBool:
		if m.Offset >= len(blob) {
			return false
		}
		b := blob[m.Offset]
		return b == 0 || b == 1
	case MatcherCOption:
		if m.Offset+4 > len(blob) {
			return false
		}
		tag := blob[m.Offset : m.Offset+4]
		return (tag[0] == 0 && tag[1] == 0 && tag[2] == 0 && tag[3] == 0) ||
			(tag[0] == 1 && tag[1] == 0 && tag[2] == 0 && tag[3] == 0)
	default:
		return false
	}
}

// Candidate is one account's structural fingerprint: its minimum total
// size (computed up to the first field of unknown width) and the
// matchers built from its fixed-offset Bool/COption fields.
type Candidate struct {
	Name         string
	Def          idl.TypeDef
	MinTotalSize int
	Matchers     []Matcher
}

// StructuralTable is the set of structural candidates for an IDL's
// accounts, sorted ascending by MinTotalSize.
type StructuralTable struct {
	candidates []Candidate
}

// BuildStructuralTable computes a Candidate for each account that ends
// up with at least one matcher, per the construction phase: walk each
// account struct's fields in order, accumulating offsets from the size
// oracle and stopping at the first field of unknown width (later fields
// simply don't contribute further matchers or offset growth).
func BuildStructuralTable(accounts []idl.Account, defs map[string]idl.TypeDef) StructuralTable {
	var candidates []Candidate
	for _, acc := range accounts {
		cand := buildCandidate(acc.Name, acc.Type, defs)
		if len(cand.Matchers) > 0 {
			candidates = append(candidates, cand)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MinTotalSize < candidates[j].MinTotalSize
	})
	return StructuralTable{candidates: candidates}
}

func buildCandidate(name string, def idl.TypeDef, defs map[string]idl.TypeDef) Candidate {
	cand := Candidate{Name: name, Def: def}
	if def.Kind != idl.TypeDefStruct {
		return cand
	}
	offset := 0
	for _, f := range def.Fields {
		switch f.Type.Kind {
		case idl.KindBool:
			cand.Matchers = append(cand.Matchers, Matcher{Kind: MatcherBool, Offset: offset})
			offset++
		case idl.KindCOption:
			innerSize, ok := idl.SizeOf(*f.Type.Inner, defs)
			if !ok {
				cand.MinTotalSize = offset
				return cand
			}
			cand.Matchers = append(cand.Matchers, Matcher{Kind: MatcherCOption, Offset: offset, InnerSize: innerSize})
			offset += 4 + innerSize
		default:
			n, ok := idl.SizeOf(f.Type, defs)
			if !ok {
				cand.MinTotalSize = offset
				return cand
			}
			offset += n
		}
	}
	cand.MinTotalSize = offset
	return cand
}

// Classify applies the classification phase: reject blobs shorter than
// the smallest candidate's MinTotalSize, collect every candidate whose
// matchers all match, prefer an exact-size match, and otherwise prefer
// the candidate with the most matchers (ties broken by table order,
// which is ascending MinTotalSize / first-seen).
func (t StructuralTable) Classify(blob []byte) (idl.TypeDef, error) {
	if len(t.candidates) == 0 || len(blob) < t.candidates[0].MinTotalSize {
		return idl.TypeDef{}, ErrCannotFindDecoderForAccount
	}

	var matching []Candidate
	for _, c := range t.candidates {
		if len(blob) < c.MinTotalSize {
			continue
		}
		if allMatch(c.Matchers, blob) {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return idl.TypeDef{}, ErrCannotFindDecoderForAccount
	}

	for _, c := range matching {
		if c.MinTotalSize == len(blob) {
			return c.Def, nil
		}
	}

	best := matching[0]
	for _, c := range matching[1:] {
		if len(c.Matchers) > len(best.Matchers) {
			best = c
		}
	}
	return best.Def, nil
}

func allMatch(matchers []Matcher, blob []byte) bool {
	for _, m := range matchers {
		if !m.Matches(blob) {
			return false
		}
	}
	return true
}
