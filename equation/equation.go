// Package equation implements EquationList and the Equation tagged
// union: Redex, Bind, and Connect (spec.md §4.4). NewRedex checks and
// orders its cells' polarities; NewBind and NewConnect do no polarity
// check of their own (rnet.Net.Connect and rule.Builder.Connect check
// their wire ends before calling NewConnect).
package equation

import (
	"fmt"

	"github.com/ydewit/sinrt/term"
)

// Tag discriminates the three Equation variants.
type Tag uint8

const (
	RedexTag Tag = iota
	BindTag
	ConnectTag
)

func (t Tag) String() string {
	switch t {
	case RedexTag:
		return "Redex"
	case BindTag:
		return "Bind"
	case ConnectTag:
		return "Connect"
	default:
		return "Equation(?)"
	}
}

// Equation is one pending unit of work in an EquationList:
//
//	Redex(pos, neg)    -- an active pair ready for rewriting
//	Bind(v, cell)      -- a free variable being unified with a cell
//	Connect(a, b)      -- two variables being unified with each other
//
// The two Cell fields of a Redex are always stored pos-then-neg; the two
// Var fields of a Connect carry no ordering constraint.
type Equation struct {
	tag Tag

	redexPos term.CellRef
	redexNeg term.CellRef

	bindVar  term.VarRef
	bindCell term.TermRef

	connectA term.VarRef
	connectB term.VarRef
}

// NewRedex builds a Redex equation from two cells of opposite polarity.
// It panics if both cells share the same polarity — a redex is only ever
// a positive agent meeting a negative one at their principal ports.
func NewRedex(a, b term.CellRef) Equation {
	if a.Polarity() == b.Polarity() {
		panic(fmt.Sprintf("equation: redex requires opposite polarities, got %s and %s", a, b))
	}
	pos, neg := a, b
	if pos.Polarity() != term.Pos {
		pos, neg = b, a
	}
	return Equation{tag: RedexTag, redexPos: pos, redexNeg: neg}
}

// NewBind builds a Bind equation unifying a free variable with a cell.
func NewBind(v term.VarRef, cell term.TermRef) Equation {
	return Equation{tag: BindTag, bindVar: v, bindCell: cell}
}

// NewConnect builds a Connect equation unifying two free variables.
func NewConnect(a, b term.VarRef) Equation {
	return Equation{tag: ConnectTag, connectA: a, connectB: b}
}

func (e Equation) Tag() Tag { return e.tag }

// Redex returns the (pos, neg) cell pair. Panics if e is not a Redex.
func (e Equation) Redex() (pos, neg term.CellRef) {
	if e.tag != RedexTag {
		panic("equation: Redex() called on a non-Redex equation")
	}
	return e.redexPos, e.redexNeg
}

// Bind returns the (var, cell) pair. Panics if e is not a Bind.
func (e Equation) Bind() (v term.VarRef, cell term.TermRef) {
	if e.tag != BindTag {
		panic("equation: Bind() called on a non-Bind equation")
	}
	return e.bindVar, e.bindCell
}

// Connect returns the two variables. Panics if e is not a Connect.
func (e Equation) Connect() (a, b term.VarRef) {
	if e.tag != ConnectTag {
		panic("equation: Connect() called on a non-Connect equation")
	}
	return e.connectA, e.connectB
}

func (e Equation) String() string {
	switch e.tag {
	case RedexTag:
		return fmt.Sprintf("%s >< %s", e.redexPos, e.redexNeg)
	case BindTag:
		return fmt.Sprintf("%s = %s", e.bindVar, e.bindCell)
	case ConnectTag:
		return fmt.Sprintf("%s - %s", e.connectA, e.connectB)
	default:
		return "?"
	}
}

// List is a FIFO work queue of pending equations. It is not safe for
// concurrent use by multiple goroutines; a Pool gives each worker its
// own List for the equations it discovers.
type List struct {
	pending []Equation
}

// NewList creates an empty equation list.
func NewList() *List { return &List{} }

// NewListWithCapacity creates an empty equation list whose backing
// slice is pre-sized to capacity, avoiding reallocation while the queue
// grows toward a known working-set size.
func NewListWithCapacity(capacity uint32) *List {
	return &List{pending: make([]Equation, 0, capacity)}
}

// Push enqueues an equation.
func (l *List) Push(eq Equation) { l.pending = append(l.pending, eq) }

// Pop removes and returns the next equation in FIFO order.
func (l *List) Pop() (Equation, bool) {
	if len(l.pending) == 0 {
		return Equation{}, false
	}
	eq := l.pending[0]
	l.pending = l.pending[1:]
	return eq, true
}

// Len reports the number of pending equations.
func (l *List) Len() int { return len(l.pending) }

// Capacity reports the backing slice's current capacity.
func (l *List) Capacity() int { return cap(l.pending) }

// All returns the list's equations without draining them — used to
// replay a read-only template (a rule body) on every firing instead of
// consuming it once.
func (l *List) All() []Equation { return l.pending }

// Empty reports whether the list has no pending equations.
func (l *List) Empty() bool { return len(l.pending) == 0 }
