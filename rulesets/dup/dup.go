// Package dup declares the duplicator agent used to share a subterm
// between two consumers, grounded on
// original_source/src/examples/combinators.rs (named "combinators"
// there; this runtime only ever grows that file into one agent, dup,
// so the package is named for what it does).
package dup

import (
	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/rule"
	"github.com/ydewit/sinrt/rulesets/nat"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// Symbols holds the handle for dup.
type Symbols struct {
	Dup symbol.Ref
}

// Declare registers dup in book. Both of dup's ports are declared
// positive: dup's role is to fan a shared value out to two consumers,
// so both aux ports face outward the same way a constructor's would.
func Declare(book *symbol.Book) Symbols {
	return Symbols{Dup: book.Fun2("dup", term.Pos, term.Pos)}
}

// Duplicator builds a dup cell over the two terms that should receive
// copies.
func (s Symbols) Duplicator(n *rnet.Net, out1, out2 term.TermRef) term.TermRef {
	return n.Cell2(s.Dup, out1, out2)
}

// DuplicatorIn is Duplicator's rule-body counterpart.
func (s Symbols) DuplicatorIn(b *rule.Builder, out1, out2 term.TermRef) term.TermRef {
	return b.Cell2(s.Dup, out1, out2)
}

// Duplicate enqueues the redex between cell and a duplicator of it.
func (s Symbols) Duplicate(n *rnet.Net, cell, out1, out2 term.TermRef) {
	duplicator := s.Duplicator(n, out1, out2)
	n.Redex(cell, duplicator)
}

// DefineRules registers dup's interactions with the two nat
// constructors.
func (s Symbols) DefineRules(book *symbol.Book, rules *rule.Book, n nat.Symbols) {
	// Z >< (dup r0 r1)  ⟶  r0 = Z ; r1 = Z
	b := rules.Define(book, n.Z, s.Dup)
	r0 := b.FunPort0()
	z0 := n.ZeroIn(b)
	b.Bind(r0, z0)

	r1 := b.FunPort1()
	z1 := n.ZeroIn(b)
	b.Bind(r1, z1)
	b.Done()

	// (S l0) >< (dup r0 r1)  ⟶
	//   l0 = (dup x0in x1in) ; r0 = (S x0out) ; r1 = (S x1out)
	b = rules.Define(book, n.S, s.Dup)
	x0neg, x0pos := b.Var()
	x1neg, x1pos := b.Var()

	l0 := b.CtrPort0()
	dupCell := b.Cell2(s.Dup, x0neg.Term(), x1neg.Term())
	b.Bind(l0, dupCell)

	r0 = b.FunPort0()
	s0 := n.SuccIn(b, x0pos.Term())
	b.Bind(r0, s0)

	r1 = b.FunPort1()
	s1 := n.SuccIn(b, x1pos.Term())
	b.Bind(r1, s1)
	b.Done()
}
