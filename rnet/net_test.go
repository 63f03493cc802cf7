package rnet

import (
	"testing"

	"github.com/ydewit/sinrt/equation"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

func TestOutputAppendsToHead(t *testing.T) {
	n := New()
	neg, pos := n.Output()

	if len(n.Head) != 1 {
		t.Fatalf("Head has %d entries, want 1", len(n.Head))
	}
	if neg.Var() != pos.Var() {
		t.Fatal("both wire ends of Output must reference the same variable")
	}
	if n.Arity() != 1 {
		t.Fatalf("Arity() = %d, want 1", n.Arity())
	}
}

func TestBVarDoesNotTouchHead(t *testing.T) {
	n := New()
	n.BVar()

	if len(n.Head) != 0 {
		t.Fatal("an internal (bound) variable must not appear in Head")
	}
}

func TestCellBuildersRoundTrip(t *testing.T) {
	book := symbol.NewBook()
	z := book.Ctr0("Z")
	s := book.Ctr1("S", term.Neg)

	n := New()
	zterm := n.Cell0(z)
	sterm := n.Cell1(s, zterm)

	if sterm.Kind() != term.KindCell {
		t.Fatal("Cell1 must produce a cell term")
	}
	cell := n.Heap.GetCell(sterm.Cell())
	if cell.Symbol != s {
		t.Fatalf("cell symbol = %s, want %s", cell.Symbol, s)
	}
	if cell.Port0 != zterm {
		t.Fatal("S cell's port0 should be the Z term it was built with")
	}
}

func TestRedexEnqueuesEquation(t *testing.T) {
	book := symbol.NewBook()
	z := book.Ctr0("Z")
	add := book.Fun2("add", term.Pos, term.Neg)

	n := New()
	zterm := n.Cell0(z)
	_, pos := n.Output()
	addterm := n.Cell2(add, pos.Term(), zterm)

	n.Redex(zterm, addterm)

	if n.Equations.Len() != 1 {
		t.Fatalf("Equations.Len() = %d, want 1", n.Equations.Len())
	}
	eq, _ := n.Equations.Pop()
	if eq.Tag() != equation.RedexTag {
		t.Fatalf("Tag() = %v, want Redex", eq.Tag())
	}
}

func TestBindAndConnectEnqueue(t *testing.T) {
	n := New()
	neg, pos := n.Output()
	other, _ := n.BVar()

	n.Bind(neg, pos.Term())
	n.Connect(pos, other)

	if n.Equations.Len() != 2 {
		t.Fatalf("Equations.Len() = %d, want 2", n.Equations.Len())
	}

	first, _ := n.Equations.Pop()
	if first.Tag() != equation.BindTag {
		t.Fatalf("first equation tag = %v, want Bind", first.Tag())
	}

	second, _ := n.Equations.Pop()
	if second.Tag() != equation.ConnectTag {
		t.Fatalf("second equation tag = %v, want Connect", second.Tag())
	}
}

func TestConnectPanicsOnSamePolarity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Connect must panic when both wire ends share a polarity")
		}
	}()

	n := New()
	_, pos1 := n.Output()
	_, pos2 := n.Output()
	n.Connect(pos1, pos2)
}

func TestWithCapacityHonorsCapacities(t *testing.T) {
	n := WithCapacity(4, 4, 8)
	if n.Heap.Cells.Capacity() != 4 || n.Heap.Vars.Capacity() != 4 {
		t.Fatal("WithCapacity must size both arenas as requested")
	}
	if n.Equations.Capacity() != 8 {
		t.Fatalf("Equations.Capacity() = %d, want 8", n.Equations.Capacity())
	}
}
