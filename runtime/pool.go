package runtime

import (
	"sync"
	"sync/atomic"

	"github.com/ydewit/sinrt/equation"
	"github.com/ydewit/sinrt/rnet"
)

// Pool evaluates a net's initial equations across several goroutines.
// Coordination beyond that is limited to what NetStore's atomic swap
// already provides: every worker shares the same underlying cell and
// variable arenas (via Heap.Worker, which hands out fresh, empty free
// lists backed by the same arena pointers) but keeps its own equation
// queue, so two workers never contend on anything but a variable store
// neither of them owns yet.
type Pool struct {
	Net     *rnet.Net
	Rules   RuleLookup
	Workers int

	progress atomic.Uint64
}

// NewPool creates a Pool with the given worker count (clamped to at
// least 1).
func NewPool(net *rnet.Net, rules RuleLookup, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{Net: net, Rules: rules, Workers: workers}
}

// Progress reports the total number of redexes fired so far, readable
// from another goroutine while Run is still executing — the debug
// surface's /stats handler polls this to report live rewrite counts
// for a pool-mode run.
func (p *Pool) Progress() uint64 { return p.progress.Load() }

// Run partitions the net's currently pending equations round-robin
// across Workers independent engines and runs them concurrently to
// completion. It returns the total number of redexes fired.
func (p *Pool) Run() uint64 {
	workers := make([]*Engine, p.Workers)
	for i := range workers {
		workers[i] = &Engine{
			Net: &rnet.Net{
				Heap:      p.Net.Heap.Worker(),
				Equations: equation.NewList(),
				Head:      p.Net.Head,
			},
			Rules:    p.Rules,
			Progress: &p.progress,
		}
	}

	i := 0
	for {
		eq, ok := p.Net.Equations.Pop()
		if !ok {
			break
		}
		workers[i%len(workers)].Net.Equations.Push(eq)
		i++
	}

	var wg sync.WaitGroup
	for _, w := range workers {
		wg.Add(1)
		go func(w *Engine) {
			defer wg.Done()
			w.Eval()
		}(w)
	}
	wg.Wait()
	return p.progress.Load()
}
