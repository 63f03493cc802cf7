// Package fib declares the Fibonacci agent and its doubly-recursive
// helper fib0, grounded on original_source/src/examples/fib.rs. fib0
// tracks the "previous" value alongside fib's "current" value the way
// a classic two-variable iterative Fibonacci does; dup fans the shared
// intermediate result out to both the addition and the next recursive
// step. Not every bound variable a rule introduces needs an explicit
// Bind: a variable used as two different cells' port arguments, with
// neither occurrence an equation operand, is just the shared wire
// between those two ports — it resolves later, whenever one of those
// cells is itself involved in a future redex.
package fib

import (
	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/rule"
	"github.com/ydewit/sinrt/rulesets/arith"
	"github.com/ydewit/sinrt/rulesets/dup"
	"github.com/ydewit/sinrt/rulesets/nat"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// Symbols holds the handles for fib and its helper fib0.
type Symbols struct {
	FibSym symbol.Ref
	fib0   symbol.Ref
}

// Declare registers fib and fib0 in book.
func Declare(book *symbol.Book) Symbols {
	return Symbols{
		FibSym: book.Fun1("fib", term.Pos),
		fib0:   book.Fun1("fib0", term.Pos),
	}
}

// Fib builds a fib cell whose port carries the result.
func (s Symbols) Fib(n *rnet.Net, result term.TermRef) term.TermRef {
	return n.Cell1(s.FibSym, result)
}

// Fibonacci enqueues the redex that evaluates fib(num) into result: a
// fib cell over result, joined with the nat term num.
func (s Symbols) Fibonacci(n *rnet.Net, num, result term.TermRef) {
	fib := s.Fib(n, result)
	n.Redex(num, fib)
}

// DefineRules registers fib's four rewrite rules.
func (s Symbols) DefineRules(book *symbol.Book, rules *rule.Book, n nat.Symbols, a arith.Symbols, d dup.Symbols) {
	// Z >< (fib r0)  ⟶  r0 = Z
	b := rules.Define(book, n.Z, s.FibSym)
	r0 := b.FunPort0()
	zero := n.ZeroIn(b)
	b.Bind(r0, zero)
	b.Done()

	// (S l0) >< (fib r0)  ⟶  l0 = (fib0 r0)
	b = rules.Define(book, n.S, s.FibSym)
	r0 = b.FunPort0()
	fib0 := s.fib0In(b, r0.Term())
	l0 := b.CtrPort0()
	b.Bind(l0, fib0)
	b.Done()

	// Z >< (fib0 r0)  ⟶  r0 = (S Z)
	b = rules.Define(book, n.Z, s.fib0)
	r0 = b.FunPort0()
	one := n.OneIn(b)
	b.Bind(r0, one)
	b.Done()

	// (S l0) >< (fib0 r0)  ⟶
	//   x0 = (fib0 x2) ; x1 = (fib x3) ; l0 = (dup x0 x1) ; x2 = (add r0 x3)
	//
	// x3 is never a Bind target: its two occurrences are fib's port and
	// adder's second-operand port directly — the shared wire between them, left
	// to resolve whenever one of those two cells next takes part in a
	// redex.
	b = rules.Define(book, n.S, s.fib0)
	x0neg, x0pos := b.Var()
	x1neg, x1pos := b.Var()
	x2neg, x2pos := b.Var()
	x3neg, x3pos := b.Var()

	fib0x2 := s.fib0In(b, x2pos.Term())
	b.Bind(x0neg, fib0x2)

	fibx3 := s.fibIn(b, x3pos.Term())
	b.Bind(x1neg, fibx3)

	l0 = b.CtrPort0()
	dupCell := d.DuplicatorIn(b, x0pos.Term(), x1pos.Term())
	b.Bind(l0, dupCell)

	r0 = b.FunPort0()
	adder := a.AdderIn(b, r0.Term(), x3neg.Term())
	b.Bind(x2neg, adder)
	b.Done()
}

func (s Symbols) fibIn(b *rule.Builder, result term.TermRef) term.TermRef {
	return b.Cell1(s.FibSym, result)
}

func (s Symbols) fib0In(b *rule.Builder, result term.TermRef) term.TermRef {
	return b.Cell1(s.fib0, result)
}
