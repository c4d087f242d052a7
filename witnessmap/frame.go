package witnessmap

import (
	"strconv"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Frame is a typo-proof builder for dotted witness-sink paths. Pushing
// descends into a named or indexed sub-path; the zero Frame is the root.
type Frame struct {
	sink *Map
	path string
}

// Root returns a Frame rooted at sink with an empty path prefix.
func Root(sink *Map) Frame {
	return Frame{sink: sink}
}

// Push returns a child frame whose path is the receiver's path with name
// appended, separated by a dot unless the receiver is the root.
func (f Frame) Push(name string) Frame {
	if f.path == "" {
		return Frame{sink: f.sink, path: name}
	}
	return Frame{sink: f.sink, path: f.path + "." + name}
}

// Index returns a child frame addressed by an integer position, e.g.
// "intermediate_mod" -> "intermediate_mod.2".
func (f Frame) Index(i int) Frame {
	return f.Push(strconv.Itoa(i))
}

// Set writes value into the frame's backing sink at the frame's own path.
func (f Frame) Set(value fr.Element) {
	f.sink.Set(f.path, value)
}

// Path returns the dotted path this frame addresses.
func (f Frame) Path() string {
	return f.path
}

// Join concatenates the frame's path with extra suffix parts.
func (f Frame) Join(parts ...string) string {
	all := append([]string{f.path}, parts...)
	nonEmpty := all[:0]
	for _, p := range all {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ".")
}
