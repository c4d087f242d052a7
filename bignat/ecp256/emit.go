package ecp256

import (
	"github.com/zkwitness/sigwitness/bignat"
	"github.com/zkwitness/sigwitness/field"
	"github.com/zkwitness/sigwitness/witnessmap"
)

// Emit writes a point's coordinates as two field elements, x and y.
// Infinity is not itself emitted; callers that can reach the point at
// infinity must special-case it before rendering a row.
func (p Point) Emit(frame witnessmap.Frame) {
	frame.Push("x").Set(field.FromBig(p.X))
	frame.Push("y").Set(field.FromBig(p.Y))
}

// Emit writes every product, remainder, and intermediate modular identity
// that makes up this addition, plus the resulting point.
func (w *AddWitness) Emit(frame witnessmap.Frame) {
	emitIdentities(frame, w.Products, w.Remainders, w.IntermediateMod)
	w.ResPoint.Emit(frame.Push("result"))
}

// Emit writes every product, remainder, and intermediate modular identity
// that makes up this doubling, plus the resulting point.
func (w *DoubleWitness) Emit(frame witnessmap.Frame) {
	emitIdentities(frame, w.Products, w.Remainders, w.IntermediateMod)
	w.ResPoint.Emit(frame.Push("result"))
}

func emitIdentities(frame witnessmap.Frame, products, remainders []*bignat.BigNat, mods []*bignat.ModMultResult) {
	productsFrame := frame.Push("products")
	for i, p := range products {
		p.Emit(productsFrame.Index(i))
	}
	remaindersFrame := frame.Push("remainders")
	for i, r := range remainders {
		r.Emit(remaindersFrame.Index(i))
	}
	modsFrame := frame.Push("intermediate_mod")
	for i, m := range mods {
		m.Emit(modsFrame.Index(i))
	}
}

// Emit writes every row of a scalar-multiplication witness plus its final
// result point.
func (r *ScalarMultResult) Emit(frame witnessmap.Frame) {
	rowsFrame := frame.Push("rows")
	for i, row := range r.Rows {
		rowFrame := rowsFrame.Index(i)
		row.Acc.Emit(rowFrame.Push("acc"))
		doublesFrame := rowFrame.Push("doubles")
		for j, d := range row.Doubles {
			d.Emit(doublesFrame.Index(j))
		}
		if row.Add != nil {
			row.Add.Emit(rowFrame.Push("add"))
		}
	}
	r.Result.Emit(frame.Push("result"))
}
