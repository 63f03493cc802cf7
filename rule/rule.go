// Package rule implements RuleBook, Rule, and RuleBuilder: the
// interaction rule table keyed by an unordered pair of symbols, and the
// read-only rule-body heaps rules are compiled into (spec.md §4.7).
package rule

import (
	"fmt"

	"github.com/ydewit/sinrt/equation"
	"github.com/ydewit/sinrt/heap"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// Bound is the RuleFamily's bound-variable storage: the ordinal of a
// bound variable within its rule, used by the runtime to index a
// per-firing scratch array that maps each ordinal to the one fresh net
// variable allocated for it in that firing.
type Bound = uint8

// Heap is a Heap instantiated over the rule family: bound vars are
// scratch-array ordinals, free vars are redex-port identities.
type Heap = heap.Heap[Bound, Port]

// Rule is one compiled rewrite: the two symbols it fires on, their
// cached arities, and the body — a Heap plus the equations to enqueue
// against the instantiated ports when the rule fires. Rule bodies are
// read-only templates; the runtime never mutates a Rule after it is
// added to a Book.
type Rule struct {
	CtrSymbol symbol.Ref
	FunSymbol symbol.Ref

	Heap      *Heap
	Equations *equation.List

	numBVars uint8
}

// NumBVars is the number of bound variables this rule's body
// introduces — the size the runtime must allocate for its per-firing
// scratch array.
func (r *Rule) NumBVars() uint8 { return r.numBVars }

// key is the unordered pair of symbol indices a Book looks rules up by.
type key struct {
	min, max uint32
}

func keyFor(a, b symbol.Ref) key {
	ai, bi := a.Index(), b.Index()
	if ai <= bi {
		return key{ai, bi}
	}
	return key{bi, ai}
}

// Book is the RuleBook: a lookup table from an unordered symbol pair to
// the Rule that fires when cells of those two symbols meet in a redex.
type Book struct {
	rules map[key]*Rule
}

// NewBook creates an empty RuleBook.
func NewBook() *Book {
	return &Book{rules: make(map[key]*Rule)}
}

// NewBookWithCapacity creates an empty RuleBook whose backing map is
// pre-sized to capacity, avoiding rehashing while the rule set grows
// toward a known size.
func NewBookWithCapacity(capacity uint32) *Book {
	return &Book{rules: make(map[key]*Rule, capacity)}
}

// Define starts building a rule between a constructor symbol and a
// function symbol, looked up in book for their declared port
// polarities. The returned Builder constructs the rule's body; call
// Builder.Done to finish and register it in the book.
func (b *Book) Define(book *symbol.Book, ctr, fun symbol.Ref) *Builder {
	return &Builder{
		book:    b,
		symbols: book,
		rule: &Rule{
			CtrSymbol: ctr,
			FunSymbol: fun,
			Heap:      heap.New[Bound, Port](),
			Equations: equation.NewList(),
		},
	}
}

// Lookup returns the rule registered for the unordered pair (a, b), if
// any, along with whether a matched the Ctr or Fun side of that rule.
func (b *Book) Lookup(a, b2 symbol.Ref) (rule *Rule, aIsCtr bool, ok bool) {
	r, ok := b.rules[keyFor(a, b2)]
	if !ok {
		return nil, false, false
	}
	return r, r.CtrSymbol == a, true
}

// Len returns the number of registered rules.
func (b *Book) Len() int { return len(b.rules) }

// Builder constructs one Rule's body. A Builder must not be reused
// after Done is called.
type Builder struct {
	book    *Book
	symbols *symbol.Book
	rule    *Rule
}

// CtrPort0 returns the wire end of the constructor cell's first
// auxiliary port, as seen from inside the rule body (opposite polarity
// to the port's own declared polarity, since the body connects *into*
// that port from the other side of the wire). Unlike Var, a port
// occurs exactly once per rule body — it is consumed by whichever
// single Bind, Connect, or cell argument references it.
func (rb *Builder) CtrPort0() term.PVarRef { return rb.port(CtrSide, 0) }

// CtrPort1 is the constructor cell's second auxiliary port.
func (rb *Builder) CtrPort1() term.PVarRef { return rb.port(CtrSide, 1) }

// FunPort0 is the function cell's first auxiliary port.
func (rb *Builder) FunPort0() term.PVarRef { return rb.port(FunSide, 0) }

// FunPort1 is the function cell's second auxiliary port.
func (rb *Builder) FunPort1() term.PVarRef { return rb.port(FunSide, 1) }

func (rb *Builder) port(side Side, index uint8) term.PVarRef {
	sym := rb.symbolFor(side)
	declared := rb.symbols.Get(sym).PortPolarity(int(index))
	ref := rb.rule.Heap.FVar(Port{Side: side, Index: index})
	return term.NewPVarRef(ref, declared.Flip())
}

func (rb *Builder) symbolFor(side Side) symbol.Ref {
	if side == CtrSide {
		return rb.rule.CtrSymbol
	}
	return rb.rule.FunSymbol
}

// Var allocates a fresh internal (bound) wire: a variable the rule body
// introduces itself, scoped to a single firing.
func (rb *Builder) Var() (neg, pos term.PVarRef) {
	ordinal := rb.rule.numBVars
	if ordinal == 255 {
		panic("rule: too many bound variables in one rule body")
	}
	rb.rule.numBVars++
	ref := rb.rule.Heap.BVar(ordinal)
	return term.Wire(ref)
}

// Cell0 builds a nullary cell term in the rule body.
func (rb *Builder) Cell0(sym symbol.Ref) term.TermRef {
	return term.CellTerm(rb.rule.Heap.Cell0(sym))
}

// Cell1 builds a unary cell term in the rule body.
func (rb *Builder) Cell1(sym symbol.Ref, port term.TermRef) term.TermRef {
	return term.CellTerm(rb.rule.Heap.Cell1(sym, port))
}

// Cell2 builds a binary cell term in the rule body.
func (rb *Builder) Cell2(sym symbol.Ref, left, right term.TermRef) term.TermRef {
	return term.CellTerm(rb.rule.Heap.Cell2(sym, left, right))
}

// Redex enqueues a redex equation in the rule body.
func (rb *Builder) Redex(a, b term.TermRef) {
	rb.rule.Equations.Push(equation.NewRedex(a.Cell(), b.Cell()))
}

// Bind enqueues a bind equation in the rule body.
func (rb *Builder) Bind(v term.PVarRef, t term.TermRef) {
	rb.rule.Equations.Push(equation.NewBind(v.Var(), t))
}

// Connect enqueues a connect equation in the rule body. a and b must be
// opposite-polarity wire ends — panics otherwise. Short-circuit!
func (rb *Builder) Connect(a, b term.PVarRef) {
	if !a.Polarity().Opposite(b.Polarity()) {
		panic(fmt.Sprintf("rule: Connect requires opposite polarities, got %s and %s", a, b))
	}
	rb.rule.Equations.Push(equation.NewConnect(a.Var(), b.Var()))
}

// Done registers the built rule in its Book. It panics if a rule for
// this symbol pair is already registered.
func (rb *Builder) Done() *Rule {
	k := keyFor(rb.rule.CtrSymbol, rb.rule.FunSymbol)
	if _, exists := rb.book.rules[k]; exists {
		panic(fmt.Sprintf("rule: duplicate rule for symbols %s/%s", rb.rule.CtrSymbol, rb.rule.FunSymbol))
	}
	rb.book.rules[k] = rb.rule
	return rb.rule
}
