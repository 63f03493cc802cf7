package heap

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ydewit/sinrt/term"
)

// VarKind discriminates a Var's two variants.
type VarKind uint8

const (
	BoundVar VarKind = iota
	FreeVar
)

// Var is polymorphic in a family parameter: Bound is the storage a bound
// (internal) variable carries, Free is the storage a free (boundary)
// variable carries. The live-net family uses *NetStore for both (a
// single-writer atomic cell); the rule family uses a small bvar ordinal
// for Bound and a Port identity for Free.
type Var[Bound, Free any] struct {
	kind  VarKind
	bound Bound
	free  Free
}

// NewBoundVar wraps a bound-store value as a Var.
func NewBoundVar[Bound, Free any](store Bound) Var[Bound, Free] {
	return Var[Bound, Free]{kind: BoundVar, bound: store}
}

// NewFreeVar wraps a free-store value as a Var.
func NewFreeVar[Bound, Free any](store Free) Var[Bound, Free] {
	return Var[Bound, Free]{kind: FreeVar, free: store}
}

func (v Var[Bound, Free]) Kind() VarKind { return v.kind }
func (v Var[Bound, Free]) IsBound() bool { return v.kind == BoundVar }
func (v Var[Bound, Free]) IsFree() bool  { return v.kind == FreeVar }

// Bound returns the bound-store value. Panics if v is a free variable.
func (v Var[Bound, Free]) Bound() Bound {
	if v.kind != BoundVar {
		panic("heap: Bound() called on a free variable")
	}
	return v.bound
}

// Free returns the free-store value. Panics if v is a bound variable.
func (v Var[Bound, Free]) Free() Free {
	if v.kind != FreeVar {
		panic("heap: Free() called on a bound variable")
	}
	return v.free
}

// NetStore is the live-net variable slot: a single-writer atomic cell
// holding an optional CellRef, initially empty. It backs both the Bound
// and Free storage of the net family.
type NetStore struct {
	slot atomic.Uint64
}

const netStoreEmpty = math.MaxUint64

// NewNetStore returns an empty store.
func NewNetStore() *NetStore {
	s := &NetStore{}
	s.slot.Store(netStoreEmpty)
	return s
}

// Get returns the currently written CellRef, if any.
func (s *NetStore) Get() (term.CellRef, bool) {
	v := s.slot.Load()
	if v == netStoreEmpty {
		return 0, false
	}
	return term.CellRef(v), true
}

// TrySet attempts the single-writer transition from empty to cell. If the
// slot already held a value (written by a racing writer), TrySet returns
// that prior value and true — the caller is responsible for turning the
// collision into a redex between the two cells. If the slot was empty,
// TrySet returns (0, false) and the write is complete. A colliding
// TrySet leaves the first written value in place.
func (s *NetStore) TrySet(cell term.CellRef) (prior term.CellRef, hadPrior bool) {
	if s.slot.CompareAndSwap(netStoreEmpty, uint64(cell)) {
		return 0, false
	}
	return term.CellRef(s.slot.Load()), true
}

func (s *NetStore) String() string {
	if c, ok := s.Get(); ok {
		return fmt.Sprintf("=%s", c)
	}
	return "_"
}
