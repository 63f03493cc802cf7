// Package runtime implements the sequential and worker-pool rewrite
// engines: draining a Net's equation queue to normal form by firing
// rules on redexes and propagating binds and connects through the
// single-writer variable stores (spec.md §4.8, §5).
package runtime

import (
	"fmt"
	"sync/atomic"

	"github.com/ydewit/sinrt/arena"
	"github.com/ydewit/sinrt/equation"
	"github.com/ydewit/sinrt/heap"
	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/rule"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

// RuleLookup is the interface the engine needs from a rule book. It
// exists so tests can substitute a mock rule source without pulling in
// the full rule package's construction API.
//
//go:generate mockgen -write_package_comment=false -package=runtime -destination=mock_rulelookup_test.go github.com/ydewit/sinrt/runtime RuleLookup
type RuleLookup interface {
	Lookup(a, b symbol.Ref) (r *rule.Rule, aIsCtr bool, ok bool)
}

// Engine sequentially drains one Net's equations to normal form. It is
// the primary, reference evaluator: single-threaded, deterministic
// modulo the order equations were enqueued in.
type Engine struct {
	Net   *rnet.Net
	Rules RuleLookup

	// Progress, if set, is bumped alongside rewrites on every fired
	// redex. Pool shares one counter across all of its workers' engines
	// so a caller can read a live total while a run is still in
	// progress, instead of only after Run returns.
	Progress *atomic.Uint64

	rewrites uint64
}

// New creates an Engine over net using rules for redex lookup.
func New(net *rnet.Net, rules RuleLookup) *Engine {
	return &Engine{Net: net, Rules: rules}
}

// RewritesCount returns the number of redexes fired so far.
func (e *Engine) RewritesCount() uint64 { return e.rewrites }

// Eval drains the net's equation queue until empty, rewriting redexes
// and propagating binds/connects as they arise. It returns once the net
// is in normal form: every remaining variable is either resolved or a
// legitimate residual (unbound) wire.
func (e *Engine) Eval() {
	for e.Step() {
	}
}

// Step pops and dispatches a single pending equation, reporting whether
// it found one to process. A caller that drives the engine one Step at
// a time (sinsched's ticked component, for one) gets the same rewrite
// semantics as Eval, just spread across many discrete ticks.
func (e *Engine) Step() bool {
	eq, ok := e.Net.Equations.Pop()
	if !ok {
		return false
	}
	switch eq.Tag() {
	case equation.RedexTag:
		pos, neg := eq.Redex()
		e.evalRedex(pos, neg)
	case equation.BindTag:
		v, cell := eq.Bind()
		e.evalBind(v, cell)
	case equation.ConnectTag:
		a, b := eq.Connect()
		e.evalConnect(a, b)
	default:
		panic(fmt.Sprintf("runtime: unknown equation tag %v", eq.Tag()))
	}
	return true
}

func netStoreOf(v heap.Var[rnet.Store, rnet.Store]) rnet.Store {
	if v.IsBound() {
		return v.Bound()
	}
	return v.Free()
}

func (e *Engine) pushRedex(a, b term.CellRef) {
	e.Net.Equations.Push(equation.NewRedex(a, b))
}

func (e *Engine) pushBind(v term.VarRef, cell term.TermRef) {
	e.Net.Equations.Push(equation.NewBind(v, cell))
}

func (e *Engine) pushConnect(a, b term.VarRef) {
	e.Net.Equations.Push(equation.NewConnect(a, b))
}

// freeIfBound reclaims v's slot if v is an internal (bound) variable,
// never when it is one of the net's boundary (free) outputs, since
// callers read final results off the boundary variables' stores after
// Eval returns. Callers invoke it only once v is fully consumed (both
// of its ends resolved), so no live cell port still refers to it.
func (e *Engine) freeIfBound(v term.VarRef) {
	vr := e.Net.Heap.GetVar(v)
	if vr.IsBound() {
		e.Net.Heap.FreeVar(v)
	}
}

// evalBind resolves a free variable's store against a cell. If a racing
// write already landed there first, the two cells form a fresh redex —
// this is the single-writer CAS collision the variable store exists to
// detect (spec.md §4.6.5).
func (e *Engine) evalBind(v term.VarRef, cell term.TermRef) {
	vr := e.Net.Heap.GetVar(v)
	store := netStoreOf(vr)
	prior, had := store.TrySet(cell.Cell())
	if had {
		e.pushRedex(cell.Cell(), prior)
		e.freeIfBound(v)
	}
}

// evalConnect unifies two variables. If both already resolved to a
// cell, the two cells form a redex. If exactly one resolved, its cell
// is written into the other's store (falling back to the same collision
// handling as evalBind). If neither resolved, b is aliased onto a's
// store in place so a later write to either is visible through both —
// a pointer-redirection stand-in for union-find, adequate because a
// variable's store is written at most once over its lifetime.
func (e *Engine) evalConnect(a, b term.VarRef) {
	av := e.Net.Heap.GetVar(a)
	bv := e.Net.Heap.GetVar(b)
	aStore := netStoreOf(av)
	bStore := netStoreOf(bv)

	ca, hasA := aStore.Get()
	cb, hasB := bStore.Get()

	switch {
	case hasA && hasB:
		e.pushRedex(ca, cb)
		e.freeIfBound(a)
		e.freeIfBound(b)
	case hasA && !hasB:
		prior, had := bStore.TrySet(ca)
		if had {
			e.pushRedex(ca, prior)
			e.freeIfBound(b)
		}
		e.freeIfBound(a)
	case hasB && !hasA:
		prior, had := aStore.TrySet(cb)
		if had {
			e.pushRedex(cb, prior)
			e.freeIfBound(a)
		}
		e.freeIfBound(b)
	default:
		e.alias(b, av)
	}
}

// alias redirects b's variable slot to share av's underlying store,
// preserving b's own Bound/Free kind.
func (e *Engine) alias(b term.VarRef, av heap.Var[rnet.Store, rnet.Store]) {
	bv := e.Net.Heap.GetVar(b)
	store := netStoreOf(av)
	var replacement heap.Var[rnet.Store, rnet.Store]
	if bv.IsBound() {
		replacement = heap.NewBoundVar[rnet.Store, rnet.Store](store)
	} else {
		replacement = heap.NewFreeVar[rnet.Store, rnet.Store](store)
	}
	e.Net.Heap.Vars.Set(arena.Ref(b.Index()), replacement)
}

// evalRedex looks up the rule for the pair of symbols at pos and neg's
// principal ports and fires it: a fresh bound-variable scratch array is
// prepared, the rule body's equations are instantiated against the
// matched cells' ports (the first cells instantiated overwrite the two
// matched cells' slots in place), and whichever of the two matched
// cells' slots was not reused is freed afterwards.
func (e *Engine) evalRedex(pos, neg term.CellRef) {
	posCell := e.Net.Heap.GetCell(pos)
	negCell := e.Net.Heap.GetCell(neg)

	r, _, ok := e.Rules.Lookup(posCell.Symbol, negCell.Symbol)
	if !ok {
		panic(fmt.Sprintf("runtime: no rule for %s >< %s", posCell.Symbol, negCell.Symbol))
	}

	ctrPorts := portsOf(posCell)
	funPorts := portsOf(negCell)

	reuse := []term.CellRef{pos, neg}

	fr := &firing{
		engine:     e,
		rule:       r,
		ctrPorts:   ctrPorts,
		funPorts:   funPorts,
		scratch:    make([]term.VarRef, r.NumBVars()),
		scratchSet: make([]bool, r.NumBVars()),
		reuse:      reuse,
	}
	fr.run()
	for _, ref := range fr.reuse {
		e.Net.Heap.FreeCell(ref)
	}

	e.rewrites++
	if e.Progress != nil {
		e.Progress.Add(1)
	}
}

func portsOf(c heap.Cell) [2]term.TermRef {
	var ports [2]term.TermRef
	switch c.Symbol.Arity() {
	case term.Arity1:
		ports[0] = c.Port0
	case term.Arity2:
		ports[0] = c.Port0
		ports[1] = c.Port1
	}
	return ports
}
