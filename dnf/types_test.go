package dnf_test

import (
	"testing"

	"github.com/damedic/dnf-toolbox-go/dnf"
	"github.com/damedic/dnf-toolbox-go/testdata/assert"
)

func lit(v int64) dnf.Expression[dnf.Amount] {
	return dnf.Literal[dnf.Amount]{Value: dnf.NewAmount(v, 0)}
}

func TestExpressionString(t *testing.T) {
	tests := []struct {
		name string
		expr dnf.Node
		want string
	}{
		{
			name: "right nested subtraction",
			expr: dnf.BinaryOperation[dnf.Amount]{
				Op:    dnf.Subtract,
				Left:  lit(1),
				Right: dnf.BinaryOperation[dnf.Amount]{Op: dnf.Subtract, Left: lit(2), Right: lit(3)},
			},
			want: "1 - (2 - 3)",
		},
		{
			name: "left nested subtraction",
			expr: dnf.BinaryOperation[dnf.Amount]{
				Op:    dnf.Subtract,
				Left:  dnf.BinaryOperation[dnf.Amount]{Op: dnf.Subtract, Left: lit(1), Right: lit(2)},
				Right: lit(3),
			},
			want: "1 - 2 - 3",
		},
		{
			name: "sum in product",
			expr: dnf.BinaryOperation[dnf.Amount]{
				Op:    dnf.Multiply,
				Left:  dnf.BinaryOperation[dnf.Amount]{Op: dnf.Add, Left: lit(1), Right: lit(2)},
				Right: dnf.DiceRoll{Count: 1, Faces: 4},
			},
			want: "(1 + 2) * 1d4",
		},
		{
			name: "product in sum",
			expr: dnf.BinaryOperation[dnf.Amount]{
				Op:    dnf.Add,
				Left:  lit(1),
				Right: dnf.BinaryOperation[dnf.Amount]{Op: dnf.Multiply, Left: lit(2), Right: lit(3)},
			},
			want: "1 + 2 * 3",
		},
		{
			name: "quantity",
			expr: dnf.UnitAnnotated[dnf.Time]{Value: dnf.DiceRoll{Count: 2, Faces: 4}, Unit: dnf.UnitBonusAction},
			want: "2d4 bonus action",
		},
		{
			name: "decimal",
			expr: dnf.Literal[dnf.Amount]{Value: dnf.NewAmount(150, -2)},
			want: "1.50",
		},
		{
			name: "string literal",
			expr: dnf.StringLiteral{Value: "A flaming sword"},
			want: "A flaming sword",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReferences(t *testing.T) {
	expr := dnf.BinaryOperation[dnf.Damage]{
		Op: dnf.Add,
		Left: dnf.UnitAnnotated[dnf.Damage]{
			Value: dnf.BinaryOperation[dnf.Amount]{
				Op:    dnf.Add,
				Left:  dnf.Identifier[dnf.Amount]{Name: "spell.level", Kind: dnf.KindAmount},
				Right: dnf.DiceRoll{Count: 1, Faces: 6},
			},
			Unit: dnf.UnitFire,
		},
		Right: dnf.UnitAnnotated[dnf.Damage]{
			Value: dnf.Identifier[dnf.Amount]{Name: "STR_mod", Kind: dnf.KindAmount},
			Unit:  dnf.UnitCold,
		},
	}
	assert.ReferencesEqual(t, []dnf.Reference{
		{Name: "spell.level", Kind: dnf.KindAmount},
		{Name: "STR_mod", Kind: dnf.KindAmount},
	}, expr)

	assert.ReferencesEqual(t, nil, dnf.StringLiteral{Value: "spell.level"})
	if refs := dnf.References(nil); refs != nil {
		t.Errorf("expected no references, got %v", refs)
	}
}

func TestAmountEqual(t *testing.T) {
	if !dnf.NewAmount(10, -1).Equal(dnf.NewAmount(1, 0)) {
		t.Error("expected 1.0 to equal 1")
	}
	if dnf.NewAmount(1, 0).Equal(dnf.NewAmount(2, 0)) {
		t.Error("expected 1 not to equal 2")
	}
	if dnf.NewAmount(1, 0).Equal(dnf.Amount{}) {
		t.Error("expected 1 not to equal the empty amount")
	}
	if !(dnf.Amount{}).Equal(dnf.Amount{}) {
		t.Error("expected empty amounts to be equal")
	}
}

func TestKindStringCompatible(t *testing.T) {
	for k := dnf.KindAny; k <= dnf.KindText; k++ {
		if !k.StringCompatible() {
			t.Errorf("expected %v to be string compatible", k)
		}
		id, ok := dnf.Identifier[dnf.Amount]{Name: "x", Kind: k}.AsString()
		if !ok || id != (dnf.Identifier[string]{Name: "x", Kind: k}) {
			t.Errorf("expected %v identifier to convert, got %v (ok=%v)", k, id, ok)
		}
	}
	if dnf.KindInvalid.StringCompatible() {
		t.Error("expected invalid kind not to be string compatible")
	}
	if _, ok := (dnf.Identifier[any]{Name: "x"}).AsString(); ok {
		t.Error("expected identifier of invalid kind not to convert")
	}
}
