package heap

import (
	"fmt"

	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// Cell is an agent instance: a symbol plus up to two auxiliary port
// terms. Unused port fields for lower-arity symbols are left at their
// zero value and never read.
type Cell struct {
	Symbol symbol.Ref
	Port0  term.TermRef
	Port1  term.TermRef
}

func newCell0(sym symbol.Ref) Cell {
	if sym.Arity() != term.Arity0 {
		panic(fmt.Sprintf("heap: cell0 called with arity-%d symbol", sym.Arity()))
	}
	return Cell{Symbol: sym}
}

func newCell1(sym symbol.Ref, port term.TermRef) Cell {
	if sym.Arity() != term.Arity1 {
		panic(fmt.Sprintf("heap: cell1 called with arity-%d symbol", sym.Arity()))
	}
	return Cell{Symbol: sym, Port0: port}
}

func newCell2(sym symbol.Ref, left, right term.TermRef) Cell {
	if sym.Arity() != term.Arity2 {
		panic(fmt.Sprintf("heap: cell2 called with arity-%d symbol", sym.Arity()))
	}
	return Cell{Symbol: sym, Port0: left, Port1: right}
}

// LeftPort returns the cell's first auxiliary port (arity >= 1 required).
func (c Cell) LeftPort() term.TermRef {
	if c.Symbol.Arity() < term.Arity1 {
		panic("heap: cell has no left port")
	}
	return c.Port0
}

// RightPort returns the cell's second auxiliary port (arity == 2 required).
func (c Cell) RightPort() term.TermRef {
	if c.Symbol.Arity() < term.Arity2 {
		panic("heap: cell has no right port")
	}
	return c.Port1
}
