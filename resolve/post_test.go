package resolve

import (
	"testing"

	"github.com/Magicolo/quint/ir"
)

func TestPostCollapsesSingleCaseTrueSwitch(t *testing.T) {
	body := ir.True()
	got := post(ir.Switch([]ir.SwitchCase{{Char: 'a', Node: &body}}))
	if got.Kind != ir.KindSymbol || got.Char != 'a' {
		t.Fatalf("post(switch{a:True}) = %+v, want Symbol(a)", got)
	}
}

func TestPostUnfoldsSingleCaseSwitchWithComplexBody(t *testing.T) {
	body := ir.Refer(ir.Index(1))
	got := post(ir.Switch([]ir.SwitchCase{{Char: 'a', Node: &body}}))
	if got.Kind != ir.KindAnd || got.Left.Kind != ir.KindSymbol || got.Left.Char != 'a' {
		t.Fatalf("post(switch{a:Refer}) = %+v, want a & Refer", got)
	}
	if got.Right.Kind != ir.KindRefer {
		t.Fatalf("post(switch{a:Refer}) right = %+v, want Refer", got.Right)
	}
}

func TestPostLeavesMultiCaseSwitchAlone(t *testing.T) {
	aBody, bBody := ir.True(), ir.True()
	got := post(ir.Switch([]ir.SwitchCase{
		{Char: 'a', Node: &aBody},
		{Char: 'b', Node: &bBody},
	}))
	if got.Kind != ir.KindSwitch || len(got.Cases) != 2 {
		t.Fatalf("post(switch{a,b}) = %+v, want unchanged", got)
	}
}

func TestPostCoalescesSymbolChainIntoText(t *testing.T) {
	got := post(ir.And(ir.Symbol('a'), ir.And(ir.Symbol('b'), ir.Symbol('c'))))
	if got.Kind != ir.KindText || got.Text != "abc" {
		t.Fatalf("post(a&(b&c)) = %+v, want Text(\"abc\")", got)
	}
}
