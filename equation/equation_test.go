package equation

import (
	"testing"

	"github.com/ydewit/sinrt/term"
)

func TestNewRedexOrdersPosNeg(t *testing.T) {
	pos := term.NewCellRef(1, term.Pos)
	neg := term.NewCellRef(2, term.Neg)

	eq := NewRedex(neg, pos)
	gotPos, gotNeg := eq.Redex()
	if gotPos != pos || gotNeg != neg {
		t.Fatalf("Redex() = (%s, %s), want (%s, %s) regardless of argument order", gotPos, gotNeg, pos, neg)
	}
}

func TestNewRedexPanicsOnSamePolarity(t *testing.T) {
	a := term.NewCellRef(1, term.Pos)
	b := term.NewCellRef(2, term.Pos)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for same-polarity redex")
		}
	}()
	NewRedex(a, b)
}

func TestEquationAccessorsPanicOnWrongTag(t *testing.T) {
	eq := NewBind(term.NewVarRef(1), term.VarTerm(term.NewVarRef(2)))

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic calling Redex() on a Bind equation")
		}
	}()
	eq.Redex()
}

func TestListPushPopFIFO(t *testing.T) {
	l := NewList()
	v1 := term.NewVarRef(1)
	v2 := term.NewVarRef(2)

	l.Push(NewConnect(v1, v2))
	l.Push(NewConnect(v2, v1))

	first, ok := l.Pop()
	if !ok {
		t.Fatal("expected a pending equation")
	}
	a, b := first.Connect()
	if a != v1 || b != v2 {
		t.Fatalf("Pop returned out of FIFO order: got (%s, %s)", a, b)
	}

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
}

func TestListPopOnEmpty(t *testing.T) {
	l := NewList()
	if !l.Empty() {
		t.Fatal("a fresh list should be Empty")
	}
	if _, ok := l.Pop(); ok {
		t.Fatal("Pop on an empty list should report false")
	}
}

func TestListAllDoesNotDrain(t *testing.T) {
	l := NewList()
	l.Push(NewConnect(term.NewVarRef(1), term.NewVarRef(2)))
	l.Push(NewConnect(term.NewVarRef(3), term.NewVarRef(4)))

	first := l.All()
	second := l.All()

	if len(first) != 2 || len(second) != 2 {
		t.Fatal("All() must be a non-destructive read, repeatable any number of times")
	}
	if l.Len() != 2 {
		t.Fatalf("Len() after two All() calls = %d, want 2", l.Len())
	}
}
