// Package arith declares add/sub over Peano naturals, grounded on
// original_source/src/examples/arith.rs. Subtraction needs a helper
// symbol, sub0, that is not part of this package's public surface: it
// exists purely to let (Sub l0 l1) and (Sub₀ l0 l1) alternate roles as
// the borrow propagates down the recursion.
package arith

import (
	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/rule"
	"github.com/ydewit/sinrt/rulesets/nat"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// Symbols holds the handles for add and sub.
type Symbols struct {
	AddSym symbol.Ref
	Sub    symbol.Ref
	sub0   symbol.Ref
}

// Declare registers add and sub in book.
func Declare(book *symbol.Book) Symbols {
	return Symbols{
		AddSym: book.Fun2("add", term.Pos, term.Neg),
		Sub:    book.Fun2("sub", term.Pos, term.Neg),
		sub0:   book.Fun2("sub0", term.Pos, term.Neg),
	}
}

// Adder builds an add cell: port 0 carries the result, port 1 the
// second operand.
func (s Symbols) Adder(n *rnet.Net, result, operand2 term.TermRef) term.TermRef {
	return n.Cell2(s.AddSym, result, operand2)
}

// Add enqueues the redex between operand1 (a nat constructor term) and
// an adder cell.
func (s Symbols) Add(n *rnet.Net, operand1, adder term.TermRef) {
	n.Redex(operand1, adder)
}

// Subtractor builds a sub cell: port 0 carries the result, port 1 the
// subtrahend.
func (s Symbols) Subtractor(n *rnet.Net, result, operand2 term.TermRef) term.TermRef {
	return n.Cell2(s.Sub, result, operand2)
}

// Subtract enqueues the redex between operand1 and a subtractor cell.
func (s Symbols) Subtract(n *rnet.Net, operand1, subtractor term.TermRef) {
	n.Redex(operand1, subtractor)
}

// DefineRules registers add and sub's rewrite rules.
func (s Symbols) DefineRules(book *symbol.Book, rules *rule.Book, n nat.Symbols) {
	s.defineAddRules(book, rules, n)
	s.defineSubRules(book, rules, n)
}

func (s Symbols) defineAddRules(book *symbol.Book, rules *rule.Book, n nat.Symbols) {
	// Z >< (add r a2)  ⟶  r = a2
	b := rules.Define(book, n.Z, s.AddSym)
	r := b.FunPort0()
	a2 := b.FunPort1()
	b.Connect(r, a2)
	b.Done()

	// (S l0) >< (add r a2)  ⟶  r = (S x) ; l0 = (add x a2)
	b = rules.Define(book, n.S, s.AddSym)
	negX, posX := b.Var()
	r = b.FunPort0()
	sx := n.SuccIn(b, posX.Term())
	b.Bind(r, sx)

	a2 = b.FunPort1()
	add := s.AdderIn(b, negX.Term(), a2.Term())
	l0 := b.CtrPort0()
	b.Bind(l0, add)
	b.Done()
}

func (s Symbols) defineSubRules(book *symbol.Book, rules *rule.Book, n nat.Symbols) {
	// Z >< (sub l0 l1)  ⟶  l0 = l1
	b := rules.Define(book, n.Z, s.Sub)
	l0 := b.FunPort0()
	l1 := b.FunPort1()
	b.Connect(l0, l1)
	b.Done()

	// (S r0) >< (sub l0 l1)  ⟶  (sub0 l0 r0) = l1
	b = rules.Define(book, n.S, s.Sub)
	l0 = b.FunPort0()
	l1 = b.FunPort1()
	r0 := b.CtrPort0()
	sub0 := s.sub0In(b, l0.Term(), r0.Term())
	b.Bind(l1, sub0)
	b.Done()

	// Z >< (sub0 l0 l1)  ⟶  l0 = (S l1)
	b = rules.Define(book, n.Z, s.sub0)
	l0 = b.FunPort0()
	l1 = b.FunPort1()
	sl1 := n.SuccIn(b, l1.Term())
	b.Bind(l0, sl1)
	b.Done()

	// (S r0) >< (sub0 l0 l1)  ⟶  (sub l0 r0) = l1
	b = rules.Define(book, n.S, s.sub0)
	l0 = b.FunPort0()
	l1 = b.FunPort1()
	r0 = b.CtrPort0()
	sub := s.subtractorIn(b, l0.Term(), r0.Term())
	b.Bind(l1, sub)
	b.Done()
}

// AdderIn is the rule-body counterpart of Adder.
func (s Symbols) AdderIn(b *rule.Builder, result, operand2 term.TermRef) term.TermRef {
	return b.Cell2(s.AddSym, result, operand2)
}

func (s Symbols) subtractorIn(b *rule.Builder, result, operand2 term.TermRef) term.TermRef {
	return b.Cell2(s.Sub, result, operand2)
}

func (s Symbols) sub0In(b *rule.Builder, result, operand2 term.TermRef) term.TermRef {
	return b.Cell2(s.sub0, result, operand2)
}
