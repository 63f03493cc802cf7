// Package symbol implements SymbolBook: the append-only, interned table
// of agent declarations (name, kind, arity, port polarities) that cells
// and rules reference by handle.
package symbol

import (
	"fmt"

	"github.com/ydewit/sinrt/bitpack"
	"github.com/ydewit/sinrt/term"
)

var (
	refIndexField    = bitpack.NewField32(0, 24)
	refArityField    = bitpack.NewField32(24, 2)
	refPolarityField = bitpack.NewField32(26, 1)
)

// Ref is a stable handle into a SymbolBook. Arity and the cell's
// principal polarity are cached in the handle itself so hot paths (e.g.
// redex canonical-form checks) never need to dereference the book.
type Ref uint32

func newRef(index uint32, arity term.Arity, polarity term.Polarity) Ref {
	v := refIndexField.Set(0, index)
	v = refArityField.Set(v, uint32(arity))
	v = refPolarityField.Set(v, uint32(polarity))
	return Ref(v)
}

func (r Ref) Index() uint32 { return refIndexField.Get(uint32(r)) }

// Arity returns the symbol's cached arity.
func (r Ref) Arity() term.Arity { return term.Arity(refArityField.Get(uint32(r))) }

// Polarity returns the symbol's cached principal polarity.
func (r Ref) Polarity() term.Polarity { return term.Polarity(refPolarityField.Get(uint32(r))) }

func (r Ref) String() string { return fmt.Sprintf("sym#%d", r.Index()) }

// Symbol is an agent declaration: its name, kind, arity, and the
// polarity each auxiliary port expects on the far end of its wire.
type Symbol struct {
	Name          string
	Kind          term.Kind
	Arity         term.Arity
	PortPolarity0 term.Polarity
	PortPolarity1 term.Polarity
}

// PortPolarity returns the declared polarity of auxiliary port i (0 or 1).
// It panics if i exceeds the symbol's arity.
func (s Symbol) PortPolarity(i int) term.Polarity {
	switch i {
	case 0:
		if s.Arity < term.Arity1 {
			panic(fmt.Sprintf("symbol: %s has no port 0", s.Name))
		}
		return s.PortPolarity0
	case 1:
		if s.Arity < term.Arity2 {
			panic(fmt.Sprintf("symbol: %s has no port 1", s.Name))
		}
		return s.PortPolarity1
	default:
		panic(fmt.Sprintf("symbol: invalid port index %d", i))
	}
}

// Book is the append-only SymbolBook: name -> handle and handle -> name.
type Book struct {
	byName  map[string]Ref
	symbols []Symbol
}

// NewBook creates an empty SymbolBook.
func NewBook() *Book {
	return &Book{byName: make(map[string]Ref)}
}

func (b *Book) declare(name string, kind term.Kind, arity term.Arity, p0, p1 term.Polarity) Ref {
	if _, exists := b.byName[name]; exists {
		panic(fmt.Sprintf("symbol: %q already declared", name))
	}
	index := uint32(len(b.symbols))
	ref := newRef(index, arity, kind.PrincipalPolarity())
	b.symbols = append(b.symbols, Symbol{
		Name: name, Kind: kind, Arity: arity,
		PortPolarity0: p0, PortPolarity1: p1,
	})
	b.byName[name] = ref
	return ref
}

// Ctr0 declares a nullary constructor.
func (b *Book) Ctr0(name string) Ref { return b.declare(name, term.Ctr, term.Arity0, 0, 0) }

// Ctr1 declares a unary constructor whose single port expects polarity p.
func (b *Book) Ctr1(name string, p term.Polarity) Ref {
	return b.declare(name, term.Ctr, term.Arity1, p, 0)
}

// Ctr2 declares a binary constructor with two port polarities.
func (b *Book) Ctr2(name string, p0, p1 term.Polarity) Ref {
	return b.declare(name, term.Ctr, term.Arity2, p0, p1)
}

// Fun0 declares a nullary function agent.
func (b *Book) Fun0(name string) Ref { return b.declare(name, term.Fun, term.Arity0, 0, 0) }

// Fun1 declares a unary function agent whose single port expects polarity p.
func (b *Book) Fun1(name string, p term.Polarity) Ref {
	return b.declare(name, term.Fun, term.Arity1, p, 0)
}

// Fun2 declares a binary function agent with two port polarities.
func (b *Book) Fun2(name string, p0, p1 term.Polarity) Ref {
	return b.declare(name, term.Fun, term.Arity2, p0, p1)
}

// GetByName resolves a declared symbol's name to its handle.
func (b *Book) GetByName(name string) (Ref, bool) {
	ref, ok := b.byName[name]
	return ref, ok
}

// MustGetByName resolves name or panics — used by rule/net builders where
// an unknown symbol name is a programming error, not a recoverable one.
func (b *Book) MustGetByName(name string) Ref {
	ref, ok := b.byName[name]
	if !ok {
		panic(fmt.Sprintf("symbol: unknown symbol %q", name))
	}
	return ref
}

// Get dereferences a handle to its Symbol. Panics on an out-of-range ref.
func (b *Book) Get(ref Ref) Symbol {
	idx := ref.Index()
	if idx >= uint32(len(b.symbols)) {
		panic(fmt.Sprintf("symbol: ref %s out of range", ref))
	}
	return b.symbols[idx]
}

// GetName returns the declared name for ref.
func (b *Book) GetName(ref Ref) string {
	return b.Get(ref).Name
}

// Len returns the number of declared symbols.
func (b *Book) Len() int { return len(b.symbols) }
