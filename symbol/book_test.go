package symbol

import (
	"testing"

	"github.com/ydewit/sinrt/term"
)

func TestDeclareCtrAndFun(t *testing.T) {
	book := NewBook()

	z := book.Ctr0("Z")
	s := book.Ctr1("S", term.Neg)
	add := book.Fun2("add", term.Pos, term.Neg)

	if z.Polarity() != term.Pos {
		t.Fatalf("Ctr0 polarity = %s, want +", z.Polarity())
	}
	if s.Arity() != term.Arity1 {
		t.Fatalf("Ctr1 arity = %d, want 1", s.Arity())
	}
	if add.Polarity() != term.Neg {
		t.Fatalf("Fun2 polarity = %s, want - (Fun is always Neg)", add.Polarity())
	}
	if add.Arity() != term.Arity2 {
		t.Fatalf("Fun2 arity = %d, want 2", add.Arity())
	}

	if book.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", book.Len())
	}
}

func TestGetByNameAndMustGetByName(t *testing.T) {
	book := NewBook()
	z := book.Ctr0("Z")

	ref, ok := book.GetByName("Z")
	if !ok || ref != z {
		t.Fatalf("GetByName(%q) = (%s, %v), want (%s, true)", "Z", ref, ok, z)
	}

	if _, ok := book.GetByName("missing"); ok {
		t.Fatal("GetByName should report false for an undeclared name")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustGetByName should panic on an unknown name")
		}
	}()
	book.MustGetByName("missing")
}

func TestDeclareDuplicateNamePanics(t *testing.T) {
	book := NewBook()
	book.Ctr0("Z")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate symbol name")
		}
	}()
	book.Ctr0("Z")
}

func TestPortPolarityOutOfArityPanics(t *testing.T) {
	book := NewBook()
	z := book.Ctr0("Z")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic asking for a port an arity-0 symbol has not")
		}
	}()
	book.Get(z).PortPolarity(0)
}

func TestGetOutOfRangePanics(t *testing.T) {
	book := NewBook()
	book.Ctr0("Z")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an out-of-range ref")
		}
	}()
	book.Get(Ref(0xFFFFFF))
}
