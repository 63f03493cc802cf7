// Package rnet implements Net: a Heap instantiated over the live-net
// variable family (both Bound and Free stores are *heap.NetStore), plus
// an EquationList and a Head of boundary variables (spec.md §4.5). The
// package is named rnet, not net, to avoid shadowing the standard
// library's net package.
package rnet

import (
	"fmt"

	"github.com/ydewit/sinrt/equation"
	"github.com/ydewit/sinrt/heap"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// Store is the live-net variable family: every variable, bound or free,
// is backed by the same single-writer atomic cell.
type Store = *heap.NetStore

// Heap is a Heap instantiated over the live-net family.
type Heap = heap.Heap[Store, Store]

// Net is a graph under construction or evaluation: a heap of cells and
// variables, a queue of pending equations, and a head listing the
// net's free (boundary) variables in declaration order.
type Net struct {
	Heap      *Heap
	Equations *equation.List
	Head      []term.VarRef
}

// New creates an empty Net with default arena capacities.
func New() *Net {
	return &Net{
		Heap:      heap.New[Store, Store](),
		Equations: equation.NewList(),
	}
}

// WithCapacity creates an empty Net with explicit arena and equation
// queue capacities.
func WithCapacity(cellsCapacity, varsCapacity, equationsCapacity uint32) *Net {
	return &Net{
		Heap:      heap.WithCapacity[Store, Store](cellsCapacity, varsCapacity),
		Equations: equation.NewListWithCapacity(equationsCapacity),
	}
}

// BVar allocates a fresh internal variable and returns both wire ends.
func (n *Net) BVar() (neg, pos term.PVarRef) {
	store := heap.NewNetStore()
	ref := n.Heap.BVar(store)
	return term.Wire(ref)
}

// Output allocates a fresh free (boundary) variable, appends it to the
// net's Head, and returns both wire ends — the builder's way of
// declaring one of the net's external ports.
func (n *Net) Output() (neg, pos term.PVarRef) {
	store := heap.NewNetStore()
	ref := n.Heap.FVar(store)
	n.Head = append(n.Head, ref)
	neg, pos = term.Wire(ref)
	return neg, pos
}

// Cell0 builds a nullary cell term.
func (n *Net) Cell0(sym symbol.Ref) term.TermRef {
	return term.CellTerm(n.Heap.Cell0(sym))
}

// Cell1 builds a unary cell term from its single port's term.
func (n *Net) Cell1(sym symbol.Ref, port term.TermRef) term.TermRef {
	return term.CellTerm(n.Heap.Cell1(sym, port))
}

// Cell2 builds a binary cell term from its two ports' terms.
func (n *Net) Cell2(sym symbol.Ref, left, right term.TermRef) term.TermRef {
	return term.CellTerm(n.Heap.Cell2(sym, left, right))
}

// Redex enqueues a redex equation between the two cells reachable
// through the given principal-port terms. Both terms must wrap cells.
func (n *Net) Redex(a, b term.TermRef) {
	n.Equations.Push(equation.NewRedex(a.Cell(), b.Cell()))
}

// Bind enqueues an equation unifying a free variable's wire end with a
// term (cell or var).
func (n *Net) Bind(v term.PVarRef, t term.TermRef) {
	n.Equations.Push(equation.NewBind(v.Var(), t))
}

// Connect enqueues an equation unifying two variables' wire ends. a and
// b must be opposite-polarity wire ends, the same as any other wire in
// the net — panics otherwise. Short-circuit!
func (n *Net) Connect(a, b term.PVarRef) {
	if !a.Polarity().Opposite(b.Polarity()) {
		panic(fmt.Sprintf("rnet: Connect requires opposite polarities, got %s and %s", a, b))
	}
	n.Equations.Push(equation.NewConnect(a.Var(), b.Var()))
}

// Arity returns the number of free variables declared in the net's head.
func (n *Net) Arity() int { return len(n.Head) }
