// Package zokemit writes BigNat limbs, EC points, and precomputed base-power
// tables as Zokrates/DSL constant declarations. It is the textual sibling of
// witnessmap: where witnessmap keys a flat field-element map for a proof
// backend to consume directly, zokemit renders the same values as source
// text a Zokrates program can `const`-declare and include.
package zokemit

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/zkwitness/sigwitness/bignat"
	"github.com/zkwitness/sigwitness/bignat/ecp256"
)

// Emitter writes constant declarations to w, refusing to write a line that
// has already appeared in the target (tracked in seen, seeded from any
// pre-existing file content by Load).
type Emitter struct {
	w    io.Writer
	seen map[string]struct{}
}

// New wraps w in an Emitter with no pre-seeded lines.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w, seen: make(map[string]struct{})}
}

// Load opens path for appending and seeds the emitter's seen set from its
// existing content, so re-running a generation pass against the same
// constants file never duplicates a declaration. If path does not exist, it
// is created.
func Load(path string) (*Emitter, error) {
	existing, err := os.Open(path)
	seen := make(map[string]struct{})
	if err == nil {
		scanner := bufio.NewScanner(existing)
		for scanner.Scan() {
			seen[scanner.Text()] = struct{}{}
		}
		existing.Close()
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("zokemit: scanning %s: %v", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("zokemit: opening %s: %v", path, err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("zokemit: opening %s for append: %v", path, err)
	}
	return &Emitter{w: f, seen: seen}, nil
}

func (e *Emitter) writeLine(line string) error {
	if _, ok := e.seen[line]; ok {
		return nil
	}
	if _, err := fmt.Fprintln(e.w, line); err != nil {
		return fmt.Errorf("zokemit: writing line: %v", err)
	}
	e.seen[line] = struct{}{}
	return nil
}

// WriteBigNat declares one field constant per limb, named name_0 .. name_k.
func (e *Emitter) WriteBigNat(name string, n *bignat.BigNat) error {
	for i, limb := range n.Limbs {
		line := fmt.Sprintf("const field %s_%d = %s;", name, i, limb.String())
		if err := e.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

// WriteECPoint declares the x and y coordinates of p as name_x and name_y.
func (e *Emitter) WriteECPoint(name string, p ecp256.Point) error {
	if p.Infinity {
		return fmt.Errorf("zokemit: cannot emit the point at infinity as constants")
	}
	if err := e.writeLine(fmt.Sprintf("const field %s_x = %s;", name, p.X.String())); err != nil {
		return err
	}
	return e.writeLine(fmt.Sprintf("const field %s_y = %s;", name, p.Y.String()))
}

// WriteBasePowers declares the 2^w multiples of base used by a cached-window
// scalar-multiplication table, named name_0 .. name_{2^w-1}, via repeated
// point addition starting from the point at infinity.
func (e *Emitter) WriteBasePowers(name string, base ecp256.Point, w int) error {
	size := 1 << uint(w)
	if err := e.writeInfinityPoint(name, 0); err != nil {
		return err
	}
	acc := base
	if err := e.WriteECPoint(fmt.Sprintf("%s_%d", name, 1), acc); err != nil {
		return err
	}
	for i := 2; i < size; i++ {
		added, err := ecp256.PointAdd(acc, base, 32, 8, 6)
		if err != nil {
			return fmt.Errorf("zokemit: computing base power %d: %v", i, err)
		}
		acc = added.ResPoint
		if err := e.WriteECPoint(fmt.Sprintf("%s_%d", name, i), acc); err != nil {
			return err
		}
	}
	return nil
}

func (e *Emitter) writeInfinityPoint(name string, i int) error {
	zero := big.NewInt(0)
	if err := e.writeLine(fmt.Sprintf("const field %s_%d_x = %s;", name, i, zero.String())); err != nil {
		return err
	}
	return e.writeLine(fmt.Sprintf("const field %s_%d_y = %s;", name, i, zero.String()))
}
