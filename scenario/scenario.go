// Package scenario wires up the bundled end-to-end demonstrations:
// Peano naturals, addition, subtraction, duplication, and Fibonacci,
// matching the six scenarios original_source/src/examples exercises.
// Each scenario declares its own symbol book and rule book (no
// scenario shares state with another) and returns a Net with its
// initial equations already enqueued.
package scenario

import (
	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/rule"
	"github.com/ydewit/sinrt/rulesets/arith"
	"github.com/ydewit/sinrt/rulesets/dup"
	"github.com/ydewit/sinrt/rulesets/fib"
	"github.com/ydewit/sinrt/rulesets/nat"
	"github.com/ydewit/sinrt/symbol"
)

// Build constructs one scenario's net and rule book given an input
// value and the four arena/queue/table capacities to allocate.
type Build func(input uint64, cellsCapacity, varsCapacity, equationsCapacity, rulesCapacity uint32) (*rnet.Net, *rule.Book)

var registry = map[string]Build{
	"nat": buildNat,
	"add": buildAdd,
	"sub": buildSub,
	"dup": buildDup,
	"fib": buildFib,
}

// Lookup resolves a scenario by name.
func Lookup(name string) (Build, bool) {
	b, ok := registry[name]
	return b, ok
}

// Names lists every registered scenario name.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// buildNat builds a literal nat(input) and exposes it directly on the
// net's single output — no rules ever fire.
func buildNat(input uint64, cellsCapacity, varsCapacity, equationsCapacity, rulesCapacity uint32) (*rnet.Net, *rule.Book) {
	book := symbol.NewBook()
	n := nat.Declare(book)
	rules := rule.NewBookWithCapacity(rulesCapacity)

	net := rnet.WithCapacity(cellsCapacity, varsCapacity, equationsCapacity)
	_, pos := net.Output()
	literal := n.Literal(net, input)
	net.Bind(pos, literal)

	return net, rules
}

// buildAdd evaluates input + 3 via the add rules.
func buildAdd(input uint64, cellsCapacity, varsCapacity, equationsCapacity, rulesCapacity uint32) (*rnet.Net, *rule.Book) {
	book := symbol.NewBook()
	n := nat.Declare(book)
	a := arith.Declare(book)
	rules := rule.NewBookWithCapacity(rulesCapacity)
	a.DefineRules(book, rules, n)

	net := rnet.WithCapacity(cellsCapacity, varsCapacity, equationsCapacity)
	_, pos := net.Output()

	operand1 := n.Literal(net, input)
	operand2 := n.Literal(net, 3)
	adder := a.Adder(net, pos.Term(), operand2)
	a.Add(net, operand1, adder)

	return net, rules
}

// buildSub evaluates input - 3 via the sub rules.
func buildSub(input uint64, cellsCapacity, varsCapacity, equationsCapacity, rulesCapacity uint32) (*rnet.Net, *rule.Book) {
	book := symbol.NewBook()
	n := nat.Declare(book)
	a := arith.Declare(book)
	rules := rule.NewBookWithCapacity(rulesCapacity)
	a.DefineRules(book, rules, n)

	net := rnet.WithCapacity(cellsCapacity, varsCapacity, equationsCapacity)
	_, pos := net.Output()

	operand1 := n.Literal(net, input)
	operand2 := n.Literal(net, 3)
	subtractor := a.Subtractor(net, pos.Term(), operand2)
	a.Subtract(net, operand1, subtractor)

	return net, rules
}

// buildDup duplicates nat(input) into two outputs, each receiving an
// equal copy, exercising the dup rules.
func buildDup(input uint64, cellsCapacity, varsCapacity, equationsCapacity, rulesCapacity uint32) (*rnet.Net, *rule.Book) {
	book := symbol.NewBook()
	n := nat.Declare(book)
	d := dup.Declare(book)
	rules := rule.NewBookWithCapacity(rulesCapacity)
	d.DefineRules(book, rules, n)

	net := rnet.WithCapacity(cellsCapacity, varsCapacity, equationsCapacity)
	_, pos1 := net.Output()
	_, pos2 := net.Output()

	value := n.Literal(net, input)
	d.Duplicate(net, value, pos1.Term(), pos2.Term())

	return net, rules
}

// buildFib evaluates fib(input) via the doubly-recursive fib/fib0
// rules, exercising nat, arith, dup, and fib together.
func buildFib(input uint64, cellsCapacity, varsCapacity, equationsCapacity, rulesCapacity uint32) (*rnet.Net, *rule.Book) {
	book := symbol.NewBook()
	n := nat.Declare(book)
	a := arith.Declare(book)
	d := dup.Declare(book)
	f := fib.Declare(book)
	rules := rule.NewBookWithCapacity(rulesCapacity)
	a.DefineRules(book, rules, n)
	d.DefineRules(book, rules, n)
	f.DefineRules(book, rules, n, a, d)

	net := rnet.WithCapacity(cellsCapacity, varsCapacity, equationsCapacity)
	_, pos := net.Output()

	num := n.Literal(net, input)
	f.Fibonacci(net, num, pos.Term())

	return net, rules
}
