// Package witnessmap holds the flat key-path to field-element witness sink
// that the rest of the generator appends to. The dotted-path naming is kept
// at the boundary because the downstream circuit's variable schema depends
// on it exactly (see the spec's witness-sink naming note), but callers build
// paths through a Frame tree instead of concatenating strings by hand.
package witnessmap

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Map is an append-only key-path to field-element witness store. Duplicate
// writes overwrite silently; callers are responsible for not colliding paths.
type Map struct {
	values map[string]fr.Element
	order  []string
}

// New returns an empty witness map.
func New() *Map {
	return &Map{values: make(map[string]fr.Element)}
}

// Set writes value at the dotted path key, overwriting any prior value.
func (m *Map) Set(key string, value fr.Element) {
	if _, exists := m.values[key]; !exists {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

// Get returns the value at key and whether it was present.
func (m *Map) Get(key string) (fr.Element, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of distinct keys written so far.
func (m *Map) Len() int {
	return len(m.values)
}

// Keys returns the keys in the order they were first written.
func (m *Map) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// gobEntry is the on-wire representation of one witness-map record.
type gobEntry struct {
	Key   string
	Value []byte
}

// WriteTo gob-encodes the map's entries, in insertion order, to w.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	entries := make([]gobEntry, 0, len(m.order))
	for _, k := range m.order {
		v := m.values[k]
		b := v.Bytes()
		entries = append(entries, gobEntry{Key: k, Value: b[:]})
	}
	if err := enc.Encode(entries); err != nil {
		return 0, fmt.Errorf("encoding witness map: %v", err)
	}
	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// ReadFrom decodes a witness map previously written by WriteTo, replacing
// the receiver's contents.
func (m *Map) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	var entries []gobEntry
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&entries); err != nil {
		return int64(len(data)), fmt.Errorf("decoding witness map: %v", err)
	}
	m.values = make(map[string]fr.Element, len(entries))
	m.order = m.order[:0]
	for _, e := range entries {
		var v fr.Element
		v.SetBytes(e.Value)
		m.Set(e.Key, v)
	}
	return int64(len(data)), nil
}
