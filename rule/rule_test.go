package rule

import (
	"testing"

	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

func declNatAdd() (*symbol.Book, symbol.Ref, symbol.Ref, symbol.Ref) {
	book := symbol.NewBook()
	z := book.Ctr0("Z")
	s := book.Ctr1("S", term.Neg)
	add := book.Fun2("add", term.Pos, term.Neg)
	return book, z, s, add
}

func TestDefineAndLookup(t *testing.T) {
	book, z, _, add := declNatAdd()
	rules := NewBook()

	b := rules.Define(book, z, add)
	r0 := b.FunPort0()
	a2 := b.FunPort1()
	b.Connect(r0, a2)
	b.Done()

	r, ctrWasA, ok := rules.Lookup(add, z)
	if !ok {
		t.Fatal("Lookup should find the rule regardless of argument order")
	}
	if ctrWasA {
		t.Fatal("ctrWasA should be false when the first Lookup argument is the Fun symbol")
	}
	if r.CtrSymbol != z || r.FunSymbol != add {
		t.Fatalf("rule symbols = (%s, %s), want (%s, %s)", r.CtrSymbol, r.FunSymbol, z, add)
	}
}

func TestLookupMiss(t *testing.T) {
	book, z, s, _ := declNatAdd()
	rules := NewBook()
	_ = book

	if _, _, ok := rules.Lookup(z, s); ok {
		t.Fatal("Lookup should report false for an unregistered pair")
	}
}

func TestDoneTwiceForSamePairPanics(t *testing.T) {
	book, z, _, add := declNatAdd()
	rules := NewBook()

	b := rules.Define(book, z, add)
	r0 := b.FunPort0()
	a2 := b.FunPort1()
	b.Connect(r0, a2)
	b.Done()

	b2 := rules.Define(book, z, add)
	r0 = b2.FunPort0()
	a2 = b2.FunPort1()
	b2.Connect(r0, a2)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering a duplicate rule")
		}
	}()
	b2.Done()
}

func TestPortPolarityIsFlippedFromDeclaration(t *testing.T) {
	// S's single port is declared Neg (book.Ctr1("S", term.Neg)); from
	// inside a rule body, the wire end the body sees must be the
	// opposite end, Pos.
	book, z, s, _ := declNatAdd()
	rules := NewBook()

	b := rules.Define(book, s, z)
	ctrPort := b.CtrPort0()
	if ctrPort.Polarity() != term.Pos {
		t.Fatalf("CtrPort0 polarity = %s, want + (flipped from S's declared -)", ctrPort.Polarity())
	}
	fresh := b.Cell0(z)
	b.Bind(ctrPort, fresh)
	b.Done()
}

func TestConnectPanicsOnSamePolarity(t *testing.T) {
	book, z, _, add := declNatAdd()
	rules := NewBook()
	b := rules.Define(book, z, add)

	// FunPort0 on add (declared Pos) flips to Neg; Var's own neg end is
	// also Neg, so pairing them is an illegal same-polarity Connect.
	r0 := b.FunPort0()
	neg, _ := b.Var()

	defer func() {
		if recover() == nil {
			t.Fatal("Connect must panic when both wire ends share a polarity")
		}
	}()
	b.Connect(r0, neg)
}

func TestVarYieldsTwoOppositeEnds(t *testing.T) {
	book, z, _, add := declNatAdd()
	rules := NewBook()
	b := rules.Define(book, z, add)

	neg, pos := b.Var()
	if neg.Var() != pos.Var() {
		t.Fatal("Var's two ends must reference the same variable")
	}
	if neg.Polarity() != term.Neg || pos.Polarity() != term.Pos {
		t.Fatal("Var must yield (neg, pos) in that order")
	}

	r0 := b.FunPort0()
	a2 := b.FunPort1()
	b.Bind(r0, pos.Term())
	b.Connect(a2, neg)
	b.Done()

	if b.rule.NumBVars() != 1 {
		t.Fatalf("NumBVars() = %d, want 1", b.rule.NumBVars())
	}
}
