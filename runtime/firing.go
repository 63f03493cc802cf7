package runtime

import (
	"fmt"

	"github.com/ydewit/sinrt/equation"
	"github.com/ydewit/sinrt/heap"
	"github.com/ydewit/sinrt/rule"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// firing holds the per-redex state needed to instantiate one rule body
// against one matched pair of cells: the matched cells' original ports
// (for resolveFreeVar), a lazily-populated scratch array translating
// the rule's bound-variable ordinals into freshly allocated net
// variables, and the matched cells' own slots, still occupied, to reuse
// instead of growing the cell arena.
type firing struct {
	engine *Engine
	rule   *rule.Rule

	ctrPorts [2]term.TermRef
	funPorts [2]term.TermRef

	scratch    []term.VarRef
	scratchSet []bool

	reuse []term.CellRef
}

// run replays the rule body's equations — a read-only template, shared
// across every firing of this rule — against this firing's matched
// ports.
func (fr *firing) run() {
	for _, eq := range fr.rule.Equations.All() {
		switch eq.Tag() {
		case equation.RedexTag:
			posBody, negBody := eq.Redex()
			pos := fr.instantiateCell(posBody)
			neg := fr.instantiateCell(negBody)
			fr.engine.pushRedex(pos, neg)
		case equation.BindTag:
			vBody, cellBody := eq.Bind()
			v := fr.instantiateVar(vBody)
			cell := fr.instantiatePort(cellBody)
			fr.unify(v, cell)
		case equation.ConnectTag:
			aBody, bBody := eq.Connect()
			a := fr.instantiateVar(aBody)
			b := fr.instantiateVar(bBody)
			fr.unify(a, b)
		default:
			panic(fmt.Sprintf("runtime: unknown rule-body equation tag %v", eq.Tag()))
		}
	}
}

// unify dispatches two instantiated terms by the same cross-product the
// top-level evalConnect uses: cell-cell forms a redex, cell-var binds,
// var-var connects.
func (fr *firing) unify(x, y term.TermRef) {
	e := fr.engine
	switch {
	case x.Kind() == term.KindCell && y.Kind() == term.KindCell:
		e.pushRedex(x.Cell(), y.Cell())
	case x.Kind() == term.KindVar && y.Kind() == term.KindCell:
		e.pushBind(x.Var(), y)
	case x.Kind() == term.KindCell && y.Kind() == term.KindVar:
		e.pushBind(y.Var(), x)
	default:
		e.pushConnect(x.Var(), y.Var())
	}
}

// instantiatePort substitutes a rule-body term (cell or var) with its
// net-side equivalent.
func (fr *firing) instantiatePort(t term.TermRef) term.TermRef {
	if t.Kind() == term.KindCell {
		return term.CellTerm(fr.instantiateCell(t.Cell()))
	}
	return fr.instantiateVar(t.Var())
}

// instantiateVar substitutes a rule-body variable: a bound variable
// becomes a fresh net variable (memoized per firing via scratch), a
// free variable resolves to whatever the matched redex actually had
// wired to the corresponding port.
func (fr *firing) instantiateVar(ref term.VarRef) term.TermRef {
	v := fr.rule.Heap.GetVar(ref)
	if v.IsBound() {
		return fr.instantiateBound(v.Bound())
	}
	return fr.resolveFreeVar(v.Free())
}

func (fr *firing) instantiateBound(ordinal uint8) term.TermRef {
	if !fr.scratchSet[ordinal] {
		store := heap.NewNetStore()
		fr.scratch[ordinal] = fr.engine.Net.Heap.BVar(store)
		fr.scratchSet[ordinal] = true
	}
	return term.VarTerm(fr.scratch[ordinal])
}

// resolveFreeVar looks up the term that was actually connected to one
// of the matched redex's auxiliary ports before it was freed.
func (fr *firing) resolveFreeVar(p rule.Port) term.TermRef {
	switch p.Side {
	case rule.CtrSide:
		return fr.ctrPorts[p.Index]
	case rule.FunSide:
		return fr.funPorts[p.Index]
	default:
		panic(fmt.Sprintf("runtime: unknown port side %v", p.Side))
	}
}

// instantiateCell allocates a fresh net cell for a rule-body cell,
// recursively instantiating its ports first. It prefers reusing one of
// the firing redex's two cell slots over growing the cell arena.
func (fr *firing) instantiateCell(ref term.CellRef) term.CellRef {
	c := fr.rule.Heap.GetCell(ref)
	switch c.Symbol.Arity() {
	case term.Arity0:
		return fr.allocCell0(c.Symbol)
	case term.Arity1:
		p0 := fr.instantiatePort(c.Port0)
		return fr.allocCell1(c.Symbol, p0)
	default:
		p0 := fr.instantiatePort(c.Port0)
		p1 := fr.instantiatePort(c.Port1)
		return fr.allocCell2(c.Symbol, p0, p1)
	}
}

func (fr *firing) popReuse() (term.CellRef, bool) {
	if len(fr.reuse) == 0 {
		return 0, false
	}
	n := len(fr.reuse) - 1
	ref := fr.reuse[n]
	fr.reuse = fr.reuse[:n]
	return ref, true
}

func (fr *firing) allocCell0(sym symbol.Ref) term.CellRef {
	h := fr.engine.Net.Heap
	if at, ok := fr.popReuse(); ok {
		return h.ReuseCell0(sym, at)
	}
	return h.Cell0(sym)
}

func (fr *firing) allocCell1(sym symbol.Ref, port term.TermRef) term.CellRef {
	h := fr.engine.Net.Heap
	if at, ok := fr.popReuse(); ok {
		return h.ReuseCell1(sym, port, at)
	}
	return h.Cell1(sym, port)
}

func (fr *firing) allocCell2(sym symbol.Ref, left, right term.TermRef) term.CellRef {
	h := fr.engine.Net.Heap
	if at, ok := fr.popReuse(); ok {
		return h.ReuseCell2(sym, left, right, at)
	}
	return h.Cell2(sym, left, right)
}
