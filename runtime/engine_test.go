package runtime_test

import (
	"github.com/golang/mock/gomock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ydewit/sinrt/rnet"
	"github.com/ydewit/sinrt/rule"
	"github.com/ydewit/sinrt/rulesets/arith"
	"github.com/ydewit/sinrt/rulesets/nat"
	"github.com/ydewit/sinrt/runtime"
	"github.com/ydewit/sinrt/symbol"
	"github.com/ydewit/sinrt/term"
)

var _ = Describe("Engine", func() {
	Describe("evalRedex", func() {
		It("panics when no rule is registered for the matched symbols", func() {
			ctrl := gomock.NewController(GinkgoT())
			mockRules := runtime.NewMockRuleLookup(ctrl)

			book := symbol.NewBook()
			z := book.Ctr0("Z")
			add := book.Fun2("add", term.Pos, term.Neg)
			mockRules.EXPECT().Lookup(z, add).Return(nil, false, false)

			net := rnet.New()
			zterm := net.Cell0(z)
			_, pos := net.Output()
			addterm := net.Cell2(add, pos.Term(), zterm)
			net.Redex(zterm, addterm)

			engine := runtime.New(net, mockRules)
			Expect(func() { engine.Eval() }).To(Panic())
		})
	})

	Describe("a real rule book", func() {
		It("computes 2 + 3 by firing add's two rules to completion", func() {
			book := symbol.NewBook()
			n := nat.Declare(book)
			a := arith.Declare(book)
			rules := rule.NewBook()
			a.DefineRules(book, rules, n)

			net := rnet.New()
			_, resultPos := net.Output()
			operand1 := n.Literal(net, 2)
			operand2 := n.Literal(net, 3)
			adder := a.Adder(net, resultPos.Term(), operand2)
			a.Add(net, operand1, adder)

			engine := runtime.New(net, rules)
			engine.Eval()

			store := net.Heap.GetVar(net.Head[0]).Free()
			cellRef, ok := store.Get()
			Expect(ok).To(BeTrue())
			Expect(n.Read(net.Heap, cellRef)).To(Equal(uint64(5)))
			Expect(engine.RewritesCount()).To(BeNumerically(">", 0))
		})
	})

	Describe("evalConnect aliasing two unresolved boundary variables", func() {
		It("resolves a later write through either alias and still fires the expected rule", func() {
			book := symbol.NewBook()
			n := nat.Declare(book)
			a := arith.Declare(book)
			rules := rule.NewBook()
			a.DefineRules(book, rules, n)

			net := rnet.New()
			_, resultPos := net.Output()
			operand2 := n.Literal(net, 4)
			adderTerm := a.Adder(net, resultPos.Term(), operand2)
			zeroTerm := n.Zero(net)

			negA, posA := net.Output()
			negB, posB := net.Output()

			net.Connect(posA, posB)
			net.Bind(negA, zeroTerm)
			net.Bind(negB, adderTerm)

			engine := runtime.New(net, rules)
			engine.Eval()

			store := net.Heap.GetVar(net.Head[0]).Free()
			cellRef, ok := store.Get()
			Expect(ok).To(BeTrue())
			Expect(n.Read(net.Heap, cellRef)).To(Equal(uint64(4)))
		})
	})
})
