package rule

import "fmt"

// Side identifies which of a redex's two cells a Port belongs to: the
// constructor (principal polarity Pos) or the function (principal
// polarity Neg) — a rule's key is always one of each.
type Side uint8

const (
	CtrSide Side = iota
	FunSide
)

func (s Side) String() string {
	if s == CtrSide {
		return "ctr"
	}
	return "fun"
}

// Port identifies one auxiliary port of one of the redex's two cells.
// It is the Free store of the RuleFamily: every free variable in a
// rule's body stands for "whatever the outer net had wired to this
// port," resolved by the runtime at instantiation time.
type Port struct {
	Side  Side
	Index uint8
}

func (p Port) String() string { return fmt.Sprintf("%s.%d", p.Side, p.Index) }
