package nat_test

import (
	"testing"

	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/rulesets/nat"
	"github.com/ydewit/sinrt/symbol"
)

func TestLiteralReadRoundTrip(t *testing.T) {
	for _, want := range []uint64{0, 1, 2, 7, 100} {
		book := symbol.NewBook()
		n := nat.Declare(book)
		net := rnet.New()

		term := n.Literal(net, want)
		ref := term.Cell()

		if got := n.Read(net.Heap, ref); got != want {
			t.Fatalf("Read(Literal(%d)) = %d, want %d", want, got, want)
		}
	}
}

func TestZeroAndOne(t *testing.T) {
	book := symbol.NewBook()
	n := nat.Declare(book)
	net := rnet.New()

	if got := n.Read(net.Heap, n.Zero(net).Cell()); got != 0 {
		t.Fatalf("Read(Zero()) = %d, want 0", got)
	}
	if got := n.Read(net.Heap, n.One(net).Cell()); got != 1 {
		t.Fatalf("Read(One()) = %d, want 1", got)
	}
}

func TestReadPanicsOnForeignSymbol(t *testing.T) {
	book := symbol.NewBook()
	n := nat.Declare(book)
	other := book.Ctr0("Other")
	net := rnet.New()

	ref := net.Cell0(other).Cell()

	defer func() {
		if recover() == nil {
			t.Fatal("Read should panic on a cell that is neither Z nor S")
		}
	}()
	n.Read(net.Heap, ref)
}
