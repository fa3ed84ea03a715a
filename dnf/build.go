package dnf

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	parser "github.com/damedic/dnf-toolbox-go/dnf/internal/parser"
)

func buildAmount(tree parser.AmountContext) (Expression[Amount], error) {
	switch t := tree.(type) {
	case *parser.NumberContext:
		value, _, err := apd.NewFromString(t.GetText())
		if err != nil {
			return nil, ParseError{
				Position: t.Token.Pos.Column,
				Token:    t.Token.Value,
				Msg:      fmt.Sprintf("invalid number: %v", err),
			}
		}
		return Literal[Amount]{Value: Amount{Value: value}}, nil
	case *parser.DiceContext:
		return DiceRoll{Count: t.Count, Faces: t.Faces}, nil
	case *parser.PathContext:
		return Identifier[Amount]{Name: t.GetText(), Kind: KindAmount}, nil
	case *parser.NegationContext:
		operand, err := buildAmount(t.Operand)
		if err != nil {
			return nil, err
		}
		return BinaryOperation[Amount]{
			Op:    Multiply,
			Left:  Literal[Amount]{Value: NewAmount(-1, 0)},
			Right: operand,
		}, nil
	case *parser.BinaryContext:
		left, err := buildAmount(t.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildAmount(t.Right)
		if err != nil {
			return nil, err
		}
		return BinaryOperation[Amount]{Op: Operator(t.Op.Value), Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("unexpected amount tree %T", tree)
	}
}

func buildQuantity[Q Quantity](tree parser.QuantityContext) (Expression[Q], error) {
	switch t := tree.(type) {
	case *parser.QuantityTermContext:
		value, err := buildAmount(t.Amount)
		if err != nil {
			return nil, err
		}
		return UnitAnnotated[Q]{Value: value, Unit: QuantityUnit[Q]{Name: t.Unit.Name}}, nil
	case *parser.QuantitySumContext:
		left, err := buildQuantity[Q](t.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildQuantity[Q](t.Right)
		if err != nil {
			return nil, err
		}
		return BinaryOperation[Q]{Op: Operator(t.Op.Value), Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("unexpected quantity tree %T", tree)
	}
}

func buildUnit[Q Quantity](tree *parser.UnitContext) Expression[QuantityUnit[Q]] {
	return Literal[QuantityUnit[Q]]{Value: QuantityUnit[Q]{Name: tree.Name}}
}

func buildIdentifier(tree *parser.PathContext) Identifier[any] {
	return Identifier[any]{Name: tree.GetText(), Kind: inferKind(tree)}
}

// inferKind derives the kind of an identifier from the shape of its path
// alone: "damage.fire_bolt" is a damage, "STR_mod" could be anything.
func inferKind(tree *parser.PathContext) Kind {
	if len(tree.Parts) < 2 {
		return KindAny
	}
	switch tree.Parts[0].Value {
	case "amount":
		return KindAmount
	case "time":
		return KindTime
	case "distance":
		return KindDistance
	case "damage":
		return KindDamage
	case "text":
		return KindText
	default:
		return KindAny
	}
}
