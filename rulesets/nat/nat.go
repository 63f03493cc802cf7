// Package nat declares the Peano natural number symbols Z and S and the
// net-building helpers for constructing literal naturals, grounded on
// original_source/src/examples/nat.rs. Z and S need no rewrite rules of
// their own — they only ever appear as the constructor side of redexes
// defined by the packages that consume them (arith, dup, fib).
package nat

import (
	"fmt"

	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/rule"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// Symbols holds the handles for the two nat constructors.
type Symbols struct {
	Z symbol.Ref
	S symbol.Ref
}

// Declare registers Z and S in book.
func Declare(book *symbol.Book) Symbols {
	return Symbols{
		Z: book.Ctr0("Z"),
		S: book.Ctr1("S", term.Neg),
	}
}

// Zero builds the Z cell term.
func (s Symbols) Zero(n *rnet.Net) term.TermRef {
	return n.Cell0(s.Z)
}

// Succ wraps a term in one S constructor.
func (s Symbols) Succ(n *rnet.Net, pred term.TermRef) term.TermRef {
	return n.Cell1(s.S, pred)
}

// One builds the literal S(Z).
func (s Symbols) One(n *rnet.Net) term.TermRef {
	return s.Succ(n, s.Zero(n))
}

// Literal builds the church-style unary encoding of a non-negative
// integer as nested S constructors around a Z.
func (s Symbols) Literal(n *rnet.Net, value uint64) term.TermRef {
	t := s.Zero(n)
	for i := uint64(0); i < value; i++ {
		t = s.Succ(n, t)
	}
	return t
}

// ZeroIn and SuccIn are the RuleBuilder-side counterparts, used by other
// rulesets' rule bodies to construct nat literals inside a rule's body
// heap instead of a live net.
func (s Symbols) ZeroIn(b *rule.Builder) term.TermRef {
	return b.Cell0(s.Z)
}

func (s Symbols) SuccIn(b *rule.Builder, pred term.TermRef) term.TermRef {
	return b.Cell1(s.S, pred)
}

func (s Symbols) OneIn(b *rule.Builder) term.TermRef {
	return s.SuccIn(b, s.ZeroIn(b))
}

// Read decodes a normal-form nat cell back into the integer it
// represents, the inverse of Literal. An S cell's port may be a
// variable rather than a cell (as rewriting leaves it); Read follows
// such a variable to the cell written into its store. It panics if ref
// is not a chain of S cells terminated by Z, or if a variable on the
// chain holds no cell — the caller's own malformed net, not a
// recoverable condition.
func (s Symbols) Read(h *rnet.Heap, ref term.CellRef) uint64 {
	var value uint64
	for {
		c := h.GetCell(ref)
		switch c.Symbol {
		case s.Z:
			return value
		case s.S:
			value++
			port := c.Port0
			for port.Kind() == term.KindVar {
				v := h.GetVar(port.Var())
				var store rnet.Store
				if v.IsBound() {
					store = v.Bound()
				} else {
					store = v.Free()
				}
				cell, ok := store.Get()
				if !ok {
					panic(fmt.Sprintf("nat: variable %s on the chain holds no cell", port.Var()))
				}
				port = term.CellTerm(cell)
			}
			ref = port.Cell()
		default:
			panic(fmt.Sprintf("nat: cell %s is not Z or S", c.Symbol))
		}
	}
}
