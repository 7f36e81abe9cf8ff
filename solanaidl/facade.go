// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

package solanaidl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/cielu/go-solana-idl/common"
	"github.com/cielu/go-solana-idl/decode"
	"github.com/cielu/go-solana-idl/discriminator"
	"github.com/cielu/go-solana-idl/idl"
	"github.com/cielu/go-solana-idl/jsonwriter"
	"github.com/cielu/go-solana-idl/wire"
)

// entry is everything the facade precomputes once per registered IDL so
// that every subsequent classify/decode call is allocation-light: the
// parsed schema, its decode registry, the binary convention implied by
// its serializer metadata, and whichever discrimination table its
// provider calls for.
type entry struct {
	doc        idl.Idl
	provider   idl.Provider
	convention wire.Convention
	registry   decode.Registry
	prefix     discriminator.PrefixTable
	structural discriminator.StructuralTable
}

// Facade owns the registry of every IDL a caller has added and is the
// sole entry point for classifying and decoding account bytes. It is
// safe for concurrent use: reads of the IDL map take a read lock, and
// AddIDL/AddIDLJSON/TryAddIDLForProgram/Close take the facade's own write
// lock while they mutate it.
type Facade struct {
	mu      sync.RWMutex
	options Options
	idls    map[string]*entry
}

// New returns an empty Facade configured with options.
func New(options Options) *Facade {
	return &Facade{options: options, idls: make(map[string]*entry)}
}

// AddIDL registers a pre-parsed IDL document under id.
func (f *Facade) AddIDL(id string, doc idl.Idl, provider idl.Provider) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.idls[id]; exists {
		return fmt.Errorf("%w: %s", ErrIDLAlreadyRegistered, id)
	}
	f.idls[id] = buildEntry(doc, provider)
	return nil
}

// AddIDLJSON parses rawJSON as an Idl document and registers it under id.
func (f *Facade) AddIDLJSON(id string, rawJSON []byte, provider idl.Provider) error {
	container, err := idl.UnpackContainer(rawJSON)
	if err == nil {
		return f.AddIDL(id, container.Idl, provider)
	}
	// Not a packed container; try it as bare IDL JSON.
	var doc idl.Idl
	if jsonErr := unmarshalIdl(rawJSON, &doc); jsonErr != nil {
		return fmt.Errorf("solanaidl: parse idl json: %w", jsonErr)
	}
	return f.AddIDL(id, doc, provider)
}

func unmarshalIdl(raw []byte, doc *idl.Idl) error {
	return json.Unmarshal(raw, doc)
}

func buildEntry(doc idl.Idl, provider idl.Provider) *entry {
	reg := decode.NewRegistry(doc.Types)
	conv := conventionFor(doc)
	e := &entry{doc: doc, provider: provider, convention: conv, registry: reg}
	switch provider {
	case idl.ProviderAnchor:
		e.prefix = discriminator.BuildPrefixTable(doc.Accounts)
	case idl.ProviderShank:
		e.structural = discriminator.BuildStructuralTable(doc.Accounts, reg.Defs())
	}
	return e
}

func conventionFor(doc idl.Idl) wire.Convention {
	if doc.Metadata != nil && doc.Metadata.Serializer == "spl" {
		return wire.ConstSizeOption{}
	}
	return wire.Standard{}
}

// HasIDL reports whether id is registered.
func (f *Facade) HasIDL(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.idls[id]
	return ok
}

// AddedIDLs returns the set of every registered id.
func (f *Facade) AddedIDLs() mapset.Set[string] {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ids := mapset.NewThreadUnsafeSet[string]()
	for id := range f.idls {
		ids.Add(id)
	}
	return ids
}

// TryAddIDLForProgram derives the on-chain IDL address for program under
// each known provider seed, fetches via fetcher, and registers the first
// one found under id. It returns the provider that succeeded.
func (f *Facade) TryAddIDLForProgram(ctx context.Context, fetcher AccountFetcher, id string, program common.Address) (idl.Provider, error) {
	for _, provider := range idl.Providers {
		addr, err := idl.TryAddress(program, provider)
		if err != nil {
			continue
		}
		data, _, found, err := fetcher.GetAccount(ctx, addr)
		if err != nil {
			return 0, err
		}
		if !found {
			continue
		}
		container, err := idl.UnpackContainer(data)
		if err != nil {
			return 0, fmt.Errorf("solanaidl: unpack idl container at %s: %w", addr.Base58(), err)
		}
		if err := f.AddIDL(id, container.Idl, provider); err != nil {
			return 0, err
		}
		return provider, nil
	}
	return 0, ErrAccountNotFound
}

// AccountName classifies blob against id's IDL and returns the matched
// account type's name, without decoding its payload.
func (f *Facade) AccountName(id string, blob []byte) (string, error) {
	e, err := f.lookup(id)
	if err != nil {
		return "", err
	}
	def, err := f.classify(e, blob)
	if err != nil {
		return "", err
	}
	return def.Name, nil
}

// DeserializeAccountToJSON classifies blob against id's IDL, then decodes
// it into a JSON document, returned as a string.
//
// This is a convenience wrapper around DeserializeAccountToJSONWriter for
// callers who just want the document in memory. To stream the result to
// a custom sink - a socket connection, a file, anything implementing
// io.Writer - call DeserializeAccountToJSONWriter directly instead.
func (f *Facade) DeserializeAccountToJSON(id string, blob []byte) (string, error) {
	var sb strings.Builder
	if err := f.DeserializeAccountToJSONWriter(id, blob, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DeserializeAccountToJSONWriter classifies blob against id's IDL, then
// streams its decoded JSON rendering directly to sink without buffering
// the whole document in memory.
func (f *Facade) DeserializeAccountToJSONWriter(id string, blob []byte, sink io.Writer) error {
	e, err := f.lookup(id)
	if err != nil {
		return err
	}
	def, err := f.classify(e, blob)
	if err != nil {
		return err
	}
	return f.decodeToSink(e, def, blob, sink)
}

// DeserializeAccountToJSONByName decodes blob as the named account type,
// bypassing classification - useful when the caller already knows the
// account's type (e.g. it was fetched by a known PDA derivation). This is
// a convenience wrapper around DeserializeAccountToJSONByNameWriter; use
// that instead to stream into a custom sink.
func (f *Facade) DeserializeAccountToJSONByName(id, name string, blob []byte) (string, error) {
	var sb strings.Builder
	if err := f.DeserializeAccountToJSONByNameWriter(id, name, blob, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// DeserializeAccountToJSONByNameWriter decodes blob as the named account
// type, bypassing classification, and streams the result directly to
// sink without buffering the whole document in memory.
func (f *Facade) DeserializeAccountToJSONByNameWriter(id, name string, blob []byte, sink io.Writer) error {
	e, err := f.lookup(id)
	if err != nil {
		return err
	}
	for _, acc := range e.doc.Accounts {
		if acc.Name == name {
			return f.decodeToSink(e, acc.Type, blob, sink)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownAccountType, name)
}

func (f *Facade) lookup(id string) (*entry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	e, ok := f.idls[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIDL, id)
	}
	return e, nil
}

func (f *Facade) classify(e *entry, blob []byte) (idl.TypeDef, error) {
	switch e.provider {
	case idl.ProviderAnchor:
		def, err := e.prefix.Classify(blob)
		if err != nil {
			return idl.TypeDef{}, err
		}
		return def, nil
	default:
		return e.structural.Classify(blob)
	}
}

// decodeToSink strips the leading 8-byte tag only for the prefix
// convention - the structural convention hands the classifier the full,
// unstripped blob, per §4.5 - then streams the decoded JSON rendering
// directly into sink.
func (f *Facade) decodeToSink(e *entry, def idl.TypeDef, blob []byte, sink io.Writer) error {
	payload := blob
	if e.provider == idl.ProviderAnchor && len(blob) >= 8 {
		payload = blob[8:]
	}
	opts := decode.Options{
		Convention:     e.convention,
		Registry:       e.registry,
		PubkeyAsBase58: f.options.PubkeyAsBase58,
		N64AsString:    f.options.N64AsString,
		N128AsString:   f.options.N128AsString,
	}
	c := wire.NewCursor(payload)
	w := jsonwriter.NewSink(sink)
	if err := decode.DecodeTypeDef(c, def, w, opts); err != nil {
		return err
	}
	return w.Err()
}

// Close clears every registered IDL's type registry, severing the
// Defined(...) resolution cycles decoders hold a handle to, per the
// teardown contract: clear the name->decoder map before dropping the
// facade.
func (f *Facade) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.idls {
		e.registry.Clear()
	}
	f.idls = make(map[string]*entry)
}
