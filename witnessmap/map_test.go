package witnessmap

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func elementOf(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestSetGetRoundTrip(t *testing.T) {
	m := New()
	m.Set("a.b.c", elementOf(42))
	got, ok := m.Get("a.b.c")
	if !ok {
		t.Fatalf("expected a.b.c to be present")
	}
	want := elementOf(42)
	if !got.Equal(&want) {
		t.Errorf("got %s, want 42", got.String())
	}
}

func TestSetOverwritesSilentlyWithoutDuplicatingOrder(t *testing.T) {
	m := New()
	m.Set("x", elementOf(1))
	m.Set("x", elementOf(2))
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	keys := m.Keys()
	if len(keys) != 1 || keys[0] != "x" {
		t.Errorf("Keys() = %v, want [x]", keys)
	}
	got, _ := m.Get("x")
	want := elementOf(2)
	if !got.Equal(&want) {
		t.Errorf("got %s, want 2 (the overwritten value)", got.String())
	}
}

func TestKeysPreservesInsertionOrder(t *testing.T) {
	m := New()
	m.Set("third", elementOf(3))
	m.Set("first", elementOf(1))
	m.Set("second", elementOf(2))
	want := []string{"third", "first", "second"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWriteToReadFromRoundTrip(t *testing.T) {
	m := New()
	m.Set("alpha", elementOf(100))
	m.Set("beta", elementOf(200))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	back := New()
	_, err = back.ReadFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, m.Len(), back.Len())

	for _, k := range m.Keys() {
		want, _ := m.Get(k)
		got, ok := back.Get(k)
		require.True(t, ok, "round-tripped map is missing key %s", k)
		require.True(t, got.Equal(&want), "round-tripped %s = %s, want %s", k, got.String(), want.String())
	}
}

func TestFramePushAndIndexBuildDottedPaths(t *testing.T) {
	sink := New()
	root := Root(sink)
	child := root.Push("ecdsa_plain").Push("a")
	if child.Path() != "ecdsa_plain.a" {
		t.Errorf("Path() = %s, want ecdsa_plain.a", child.Path())
	}

	indexed := root.Push("blocks").Index(3)
	if indexed.Path() != "blocks.3" {
		t.Errorf("Path() = %s, want blocks.3", indexed.Path())
	}

	indexed.Set(elementOf(7))
	got, ok := sink.Get("blocks.3")
	want := elementOf(7)
	if !ok || !got.Equal(&want) {
		t.Errorf("Set via Frame did not write to the expected sink key")
	}
}

func TestFrameJoinSkipsEmptyParts(t *testing.T) {
	root := Root(New())
	f := root.Push("a").Push("b")
	joined := f.Join("", "c", "d")
	if joined != "a.b.c.d" {
		t.Errorf("Join = %s, want a.b.c.d", joined)
	}
}
