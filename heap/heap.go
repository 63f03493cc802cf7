// Package heap implements Heap[Bound, Free]: the pair of coupled arenas
// (cells, vars) parameterized by a variable-family policy that the Net
// and RuleBook types are built from (spec.md §4.3).
package heap

import (
	"github.com/ydewit/sinrt/arena"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

const (
	DefaultCellsCapacity = 1 << 24
	DefaultVarsCapacity  = 1 << 24
)

// Heap couples a cell arena and a var arena under one variable-family
// instantiation. Its free lists are plain values (not pointers): the
// Heap that Worker returns shares the underlying arenas but starts with
// empty free lists of its own, which is exactly the "per-worker
// structure passed explicitly" the design notes call for in a language
// without thread-locals.
type Heap[Bound, Free any] struct {
	Cells *arena.Arena[Cell]
	Vars  *arena.Arena[Var[Bound, Free]]

	cellsFree arena.FreeList
	varsFree  arena.FreeList
}

// New creates a Heap with default capacities.
func New[Bound, Free any]() *Heap[Bound, Free] {
	return WithCapacity[Bound, Free](DefaultCellsCapacity, DefaultVarsCapacity)
}

// WithCapacity creates a Heap with the given fixed cell/var arena capacities.
func WithCapacity[Bound, Free any](cellsCapacity, varsCapacity uint32) *Heap[Bound, Free] {
	return &Heap[Bound, Free]{
		Cells: arena.New[Cell](cellsCapacity),
		Vars:  arena.New[Var[Bound, Free]](varsCapacity),
	}
}

// Worker returns a Heap sharing this Heap's arenas but with its own,
// empty free lists — the unit of work a single goroutine in a worker
// pool should hold and mutate exclusively.
func (h *Heap[Bound, Free]) Worker() *Heap[Bound, Free] {
	return &Heap[Bound, Free]{Cells: h.Cells, Vars: h.Vars}
}

// Cell0 allocates a nullary cell.
func (h *Heap[Bound, Free]) Cell0(sym symbol.Ref) term.CellRef {
	ref := h.Cells.Alloc(&h.cellsFree, newCell0(sym))
	return term.NewCellRef(uint32(ref), sym.Polarity())
}

// Cell1 allocates a unary cell.
func (h *Heap[Bound, Free]) Cell1(sym symbol.Ref, port term.TermRef) term.CellRef {
	ref := h.Cells.Alloc(&h.cellsFree, newCell1(sym, port))
	return term.NewCellRef(uint32(ref), sym.Polarity())
}

// Cell2 allocates a binary cell.
func (h *Heap[Bound, Free]) Cell2(sym symbol.Ref, left, right term.TermRef) term.CellRef {
	ref := h.Cells.Alloc(&h.cellsFree, newCell2(sym, left, right))
	return term.NewCellRef(uint32(ref), sym.Polarity())
}

// ReuseCell0 allocates a nullary cell at an existing handle (see
// arena.AllocAt), letting the rewrite engine recycle the slot of a cell
// it has just consumed instead of growing the arena.
func (h *Heap[Bound, Free]) ReuseCell0(sym symbol.Ref, at term.CellRef) term.CellRef {
	ref := h.Cells.AllocAt(newCell0(sym), arena.Ref(at.Index()))
	return term.NewCellRef(uint32(ref), sym.Polarity())
}

// ReuseCell1 is the arity-1 counterpart of ReuseCell0.
func (h *Heap[Bound, Free]) ReuseCell1(sym symbol.Ref, port term.TermRef, at term.CellRef) term.CellRef {
	ref := h.Cells.AllocAt(newCell1(sym, port), arena.Ref(at.Index()))
	return term.NewCellRef(uint32(ref), sym.Polarity())
}

// ReuseCell2 is the arity-2 counterpart of ReuseCell0.
func (h *Heap[Bound, Free]) ReuseCell2(sym symbol.Ref, left, right term.TermRef, at term.CellRef) term.CellRef {
	ref := h.Cells.AllocAt(newCell2(sym, left, right), arena.Ref(at.Index()))
	return term.NewCellRef(uint32(ref), sym.Polarity())
}

// GetCell dereferences a CellRef.
func (h *Heap[Bound, Free]) GetCell(ref term.CellRef) Cell {
	return h.Cells.Get(arena.Ref(ref.Index()))
}

// FreeCell releases a cell's slot.
func (h *Heap[Bound, Free]) FreeCell(ref term.CellRef) Cell {
	return h.Cells.Free(&h.cellsFree, arena.Ref(ref.Index()))
}

// BVar allocates a bound variable.
func (h *Heap[Bound, Free]) BVar(store Bound) term.VarRef {
	ref := h.Vars.Alloc(&h.varsFree, NewBoundVar[Bound, Free](store))
	return term.NewVarRef(uint32(ref))
}

// FVar allocates a free variable.
func (h *Heap[Bound, Free]) FVar(store Free) term.VarRef {
	ref := h.Vars.Alloc(&h.varsFree, NewFreeVar[Bound, Free](store))
	return term.NewVarRef(uint32(ref))
}

// GetVar dereferences a VarRef.
func (h *Heap[Bound, Free]) GetVar(ref term.VarRef) Var[Bound, Free] {
	return h.Vars.Get(arena.Ref(ref.Index()))
}

// FreeVar releases a variable's slot.
func (h *Heap[Bound, Free]) FreeVar(ref term.VarRef) Var[Bound, Free] {
	return h.Vars.Free(&h.varsFree, arena.Ref(ref.Index()))
}
