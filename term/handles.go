package term

import (
	"fmt"

	"github.com/ydewit/sinrt/bitpack"
)

var (
	cellIndexField    = bitpack.NewField32(0, 31)
	cellPolarityField = bitpack.NewField32(31, 1)
)

// CellRef addresses a cell in some Heap's cell arena. Its polarity bit
// always mirrors the referenced cell's symbol's principal polarity — an
// invariant enforced at construction time, so comparing polarities never
// needs a heap dereference on hot paths.
type CellRef uint32

// NewCellRef packs an arena index and polarity into a CellRef.
func NewCellRef(index uint32, polarity Polarity) CellRef {
	v := cellIndexField.Set(0, index)
	v = cellPolarityField.Set(v, uint32(polarity))
	return CellRef(v)
}

func (r CellRef) Index() uint32      { return cellIndexField.Get(uint32(r)) }
func (r CellRef) Polarity() Polarity { return Polarity(cellPolarityField.Get(uint32(r))) }

func (r CellRef) String() string {
	return fmt.Sprintf("c%d%s", r.Index(), r.Polarity())
}

// VarRef addresses a variable in some Heap's var arena. Unlike a CellRef
// it carries no polarity — polarity belongs to a particular wire end
// (see PVarRef), not to the variable slot itself.
type VarRef uint32

// NewVarRef wraps an arena index as a VarRef.
func NewVarRef(index uint32) VarRef { return VarRef(index) }

func (r VarRef) Index() uint32 { return uint32(r) }

func (r VarRef) String() string {
	return fmt.Sprintf("v%d", r.Index())
}

var (
	pvarIndexField    = bitpack.NewField32(0, 31)
	pvarPolarityField = bitpack.NewField32(31, 1)
)

// PVarRef is a VarRef paired with the polarity of one end of its wire.
// Every variable yields exactly two PVarRefs, one per end, of opposite
// polarity.
type PVarRef uint32

// NewPVarRef builds one end of var's wire with the given polarity.
func NewPVarRef(v VarRef, polarity Polarity) PVarRef {
	raw := pvarIndexField.Set(0, v.Index())
	raw = pvarPolarityField.Set(raw, uint32(polarity))
	return PVarRef(raw)
}

// Wire returns the two complementary ends of a fresh variable: the
// negative (writer) end and the positive (reader) end.
func Wire(v VarRef) (neg, pos PVarRef) {
	return NewPVarRef(v, Neg), NewPVarRef(v, Pos)
}

func (p PVarRef) Var() VarRef        { return VarRef(pvarIndexField.Get(uint32(p))) }
func (p PVarRef) Polarity() Polarity { return Polarity(pvarPolarityField.Get(uint32(p))) }
func (p PVarRef) String() string     { return fmt.Sprintf("%s%s", p.Var(), p.Polarity()) }

// Term wraps the variable end as a TermRef, for use as a cell's port or
// equation operand. Polarity is not carried by TermRef — it belongs to a
// particular wire end, not to the underlying variable slot.
func (p PVarRef) Term() TermRef { return VarTerm(p.Var()) }

// TermKind discriminates the two variants of a TermRef.
type TermKind uint8

const (
	KindCell TermKind = 0
	KindVar  TermKind = 1
)

var (
	termKindField    = bitpack.NewField64(63, 1)
	termPayloadField = bitpack.NewField64(0, 32)
)

// TermRef is a tagged union over a CellRef or a VarRef: the term attached
// to one end of a port.
type TermRef uint64

// CellTerm wraps a CellRef as a TermRef.
func CellTerm(c CellRef) TermRef {
	v := termKindField.Set(0, uint64(KindCell))
	v = termPayloadField.Set(v, uint64(c))
	return TermRef(v)
}

// VarTerm wraps a VarRef as a TermRef.
func VarTerm(v VarRef) TermRef {
	raw := termKindField.Set(0, uint64(KindVar))
	raw = termPayloadField.Set(raw, uint64(v))
	return TermRef(raw)
}

func (t TermRef) Kind() TermKind { return TermKind(termKindField.Get(uint64(t))) }

// Cell returns the wrapped CellRef. It panics if t is not a cell term.
func (t TermRef) Cell() CellRef {
	if t.Kind() != KindCell {
		panic("term: TermRef is not a cell")
	}
	return CellRef(termPayloadField.Get(uint64(t)))
}

// Var returns the wrapped VarRef. It panics if t is not a var term.
func (t TermRef) Var() VarRef {
	if t.Kind() != KindVar {
		panic("term: TermRef is not a var")
	}
	return VarRef(termPayloadField.Get(uint64(t)))
}

func (t TermRef) String() string {
	if t.Kind() == KindCell {
		return t.Cell().String()
	}
	return t.Var().String()
}
