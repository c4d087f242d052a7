package ecp256

import (
	"math/big"

	"github.com/zkwitness/sigwitness/bignat"
)

// Algorithm selects which of the three scalar-multiplication witness
// shapes to synthesize. They all compute the same result but trade off
// differently between doublings, additions, and precomputed-table size.
type Algorithm int

const (
	// BitByBit performs one double and (conditionally) one add per scalar
	// bit, MSB first. Cheapest to precompute, most rows.
	BitByBit Algorithm = iota
	// Windowed groups the scalar into W-bit windows, LSB first, and for
	// each window performs W doublings followed by one addition of the
	// window's precomputed multiple of the base point.
	Windowed
	// CachedWindow precomputes one 2^W-entry table per window position
	// (table_i[v] = v * 2^(i*W) * basePoint) so the online phase needs
	// zero doublings, only additions.
	CachedWindow
)

// Row is one step of a scalar-multiplication witness: the accumulator
// value entering the step, and the add/double identities (if any) used to
// advance it.
type Row struct {
	Acc     Point
	Doubles []*DoubleWitness
	Add     *AddWitness
}

// ScalarMultResult is the full witness for k*basePoint: every intermediate
// row plus the final accumulated point.
type ScalarMultResult struct {
	Rows   []Row
	Result Point
}

// ScalarMultBitByBit witnesses k*base via MSB-first double-and-add over
// nBits bits of k. The accumulator starts at the first set bit to avoid an
// addition with the point at infinity, since PointAdd only handles the
// incomplete case.
func ScalarMultBitByBit(k *big.Int, base Point, nBits, limbWidth, nLimbs, groupSize int) (*ScalarMultResult, error) {
	cp := CurveParams()
	var rows []Row
	acc := Point{Infinity: true}
	started := false

	for i := nBits - 1; i >= 0; i-- {
		bit := k.Bit(i) == 1
		if !started {
			if bit {
				acc = base
				started = true
			}
			continue
		}
		dw, err := PointDouble(acc, limbWidth, nLimbs, groupSize)
		if err != nil {
			return nil, err
		}
		row := Row{Acc: acc, Doubles: []*DoubleWitness{dw}}
		acc = dw.ResPoint
		if bit {
			if acc.Equal(base) || acc.Neg(cp).Equal(base) {
				return nil, bignat.NewIncompleteAddHitError()
			}
			aw, err := PointAdd(acc, base, limbWidth, nLimbs, groupSize)
			if err != nil {
				return nil, err
			}
			row.Add = aw
			acc = aw.ResPoint
		}
		rows = append(rows, row)
	}

	return &ScalarMultResult{Rows: rows, Result: acc}, nil
}

// precomputeTable builds table[v] = v*base for v in [0, 2^w), via repeated
// addition so every entry (beyond 0 and 1) is itself witnessed. table[0],
// the zero-window placeholder, carries base's own coordinates flagged
// Infinity rather than (0,0): PointAddComplete folds it into an add as a
// real operand and relies on those coordinates being on-curve.
func precomputeTable(base Point, w, limbWidth, nLimbs, groupSize int) ([]Point, []*AddWitness, error) {
	size := 1 << uint(w)
	table := make([]Point, size)
	var adds []*AddWitness
	table[0] = Point{X: new(big.Int).Set(base.X), Y: new(big.Int).Set(base.Y), Infinity: true}
	if size > 1 {
		table[1] = base
	}
	for v := 2; v < size; v++ {
		aw, err := PointAdd(table[v-1], base, limbWidth, nLimbs, groupSize)
		if err != nil {
			return nil, nil, err
		}
		table[v] = aw.ResPoint
		adds = append(adds, aw)
	}
	return table, adds, nil
}

// ScalarMultWindow witnesses k*base by splitting k into ceil(nBits/w)
// windows of w bits each, LSB first, and processing windows MSB-first: W
// doublings advance the accumulator's weight, then one addition folds in
// the window's precomputed multiple.
func ScalarMultWindow(k *big.Int, base Point, nBits, w, limbWidth, nLimbs, groupSize int) (*ScalarMultResult, error) {
	table, _, err := precomputeTable(base, w, limbWidth, nLimbs, groupSize)
	if err != nil {
		return nil, err
	}

	numWindows := (nBits + w - 1) / w
	windowValue := func(idx int) int {
		v := 0
		for j := w - 1; j >= 0; j-- {
			bitIdx := idx*w + j
			v <<= 1
			if bitIdx < nBits && k.Bit(bitIdx) == 1 {
				v |= 1
			}
		}
		return v
	}

	var rows []Row
	acc := Point{Infinity: true}
	started := false

	for idx := numWindows - 1; idx >= 0; idx-- {
		v := windowValue(idx)
		if !started {
			if v != 0 {
				acc = table[v]
				started = true
			}
			continue
		}
		var row Row
		row.Acc = acc
		for d := 0; d < w; d++ {
			dw, err := PointDouble(acc, limbWidth, nLimbs, groupSize)
			if err != nil {
				return nil, err
			}
			row.Doubles = append(row.Doubles, dw)
			acc = dw.ResPoint
		}
		if v != 0 {
			aw, err := PointAdd(acc, table[v], limbWidth, nLimbs, groupSize)
			if err != nil {
				return nil, err
			}
			row.Add = aw
			acc = aw.ResPoint
		}
		rows = append(rows, row)
	}

	return &ScalarMultResult{Rows: rows, Result: acc}, nil
}

// precomputePositionTables builds one 2^w-entry table per window position
// i, with table_i[v] = v * 2^(i*w) * base, so the online phase in
// ScalarMultCachedWindow needs no doublings at all.
func precomputePositionTables(base Point, w, numWindows, limbWidth, nLimbs, groupSize int) ([][]Point, error) {
	tables := make([][]Point, numWindows)
	weighted := base
	for i := 0; i < numWindows; i++ {
		table, _, err := precomputeTable(weighted, w, limbWidth, nLimbs, groupSize)
		if err != nil {
			return nil, err
		}
		tables[i] = table
		if i < numWindows-1 {
			for d := 0; d < w; d++ {
				dw, err := PointDouble(weighted, limbWidth, nLimbs, groupSize)
				if err != nil {
					return nil, err
				}
				weighted = dw.ResPoint
			}
		}
	}
	return tables, nil
}

// ScalarMultCachedWindow witnesses k*base MSB-first using one precomputed
// table per window position, so the online phase is pure addition: the
// cost of the doublings is paid once at setup instead of once per scalar.
func ScalarMultCachedWindow(k *big.Int, base Point, nBits, w, limbWidth, nLimbs, groupSize int) (*ScalarMultResult, error) {
	numWindows := (nBits + w - 1) / w
	tables, err := precomputePositionTables(base, w, numWindows, limbWidth, nLimbs, groupSize)
	if err != nil {
		return nil, err
	}

	windowValue := func(idx int) int {
		v := 0
		for j := w - 1; j >= 0; j-- {
			bitIdx := idx*w + j
			v <<= 1
			if bitIdx < nBits && k.Bit(bitIdx) == 1 {
				v |= 1
			}
		}
		return v
	}

	var rows []Row
	acc := Point{Infinity: true}
	started := false

	for idx := numWindows - 1; idx >= 0; idx-- {
		v := windowValue(idx)
		entry := tables[idx][v]
		if !started {
			acc = entry
			started = true
			continue
		}
		// Every window position after the leading one folds in an add,
		// even when its value is zero: the table's index-0 entry is the
		// point-at-infinity placeholder, and PointAddComplete resolves
		// back to acc unchanged without skipping the row.
		aw, err := PointAddComplete(acc, entry, limbWidth, nLimbs, groupSize)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Acc: acc, Add: aw})
		acc = aw.ResPoint
	}

	return &ScalarMultResult{Rows: rows, Result: acc}, nil
}
