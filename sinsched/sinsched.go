// Package sinsched drives a rewrite engine from an akita discrete-event
// simulation instead of a plain host loop, the way core.Builder wires a
// Core into a *sim.TickingComponent: useful when a net needs to be
// evaluated alongside other ticked components sharing one event queue,
// or when the run should be timed in simulated cycles rather than wall
// clock.
package sinsched

import (
	"github.com/sarchlab/akita/v4/sim"

	"github.com/ydewit/sinrt/runtime"
)

// Component ticks a runtime.Engine one equation per cycle until its net
// reaches normal form.
type Component struct {
	*sim.TickingComponent

	engine *runtime.Engine
}

// Builder constructs a Component, mirroring core.Builder's fluent style.
type Builder struct {
	engine sim.Engine
	freq   sim.Freq
}

// NewBuilder returns a Builder defaulting to 1GHz; callers normally
// override this with WithFreq to match the surrounding simulation.
func NewBuilder() Builder {
	return Builder{freq: 1 * sim.GHz}
}

// WithEngine sets the akita simulation engine driving ticks.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the component's tick frequency.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// Build creates a Component that ticks re over the akita engine.
func (b Builder) Build(name string, re *runtime.Engine) *Component {
	c := &Component{engine: re}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	return c
}

// Tick fires at most one rewrite per cycle. madeProgress is false once
// the net has reached normal form, which tells the akita engine this
// component has nothing left to contribute and lets the simulation
// terminate.
func (c *Component) Tick(now sim.VTimeInSec) (madeProgress bool) {
	return c.engine.Step()
}

// Rewrites reports how many redexes the underlying engine has fired.
func (c *Component) Rewrites() uint64 { return c.engine.RewritesCount() }
