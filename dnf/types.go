package dnf

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Expression is a parsed, unevaluated DnF expression that evaluates to a T.
//
// The set of implementations is closed:
//
//   - Literal[T]
//   - Identifier[T]
//   - BinaryOperation[T]
//   - DiceRoll, for T = Amount
//   - UnitAnnotated[Q], for T = Q in Time, Distance, Damage
//
// Expressions are immutable and carry no evaluation state. String renders a
// canonical form that parses back into an equal expression.
type Expression[T any] interface {
	Node
	isExpression(T)
}

// Node is an expression of any value type.
type Node interface {
	fmt.Stringer
	references(dst []Reference) []Reference
}

// Amount is a dimensionless number.
type Amount struct {
	Value *apd.Decimal
}

// NewAmount returns the amount coeff * 10^exponent.
func NewAmount(coeff int64, exponent int32) Amount {
	return Amount{Value: apd.New(coeff, exponent)}
}

// Equal reports whether a and other are numerically equal, so 1.0 equals 1.
func (a Amount) Equal(other Amount) bool {
	if a.Value == nil || other.Value == nil {
		return a.Value == other.Value
	}
	return a.Value.Cmp(other.Value) == 0
}

func (a Amount) String() string {
	if a.Value == nil {
		return ""
	}
	return a.Value.Text('f')
}

// Operator is a binary arithmetic operator.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

func (o Operator) precedence() int {
	switch o {
	case Multiply, Divide:
		return 2
	default:
		return 1
	}
}

// Kind is the kind of value an identifier is expected to resolve to.
type Kind uint8

const (
	KindInvalid Kind = iota
	// KindAny is the kind of a path whose shape says nothing about its value.
	KindAny
	KindAmount
	KindTime
	KindDistance
	KindDamage
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindAmount:
		return "amount"
	case KindTime:
		return "time"
	case KindDistance:
		return "distance"
	case KindDamage:
		return "damage"
	case KindText:
		return "text"
	default:
		return "invalid"
	}
}

// StringCompatible reports whether an identifier of kind k may stand in for
// an Expression[string]. Every valid kind is: an evaluator can always render
// a resolved value as text.
func (k Kind) StringCompatible() bool {
	return k != KindInvalid && k <= KindText
}

// Reference is an identifier referenced by an expression, without its
// static type.
type Reference struct {
	Name string
	Kind Kind
}

// References returns every identifier referenced by n in source order.
func References(n Node) []Reference {
	if n == nil {
		return nil
	}
	return n.references(nil)
}

// Literal is a constant value.
type Literal[T any] struct {
	Value T
}

func (Literal[T]) isExpression(T) {}

func (l Literal[T]) String() string {
	return fmt.Sprint(l.Value)
}

func (l Literal[T]) references(dst []Reference) []Reference {
	return dst
}

// StringLiteral wraps free text verbatim.
type StringLiteral = Literal[string]

// Identifier is a named placeholder resolved by an evaluator. Two
// identifiers are equal iff their names and kinds are equal.
type Identifier[T any] struct {
	Name string
	Kind Kind
}

func (Identifier[T]) isExpression(T) {}

func (id Identifier[T]) String() string {
	return id.Name
}

func (id Identifier[T]) references(dst []Reference) []Reference {
	return append(dst, Reference{Name: id.Name, Kind: id.Kind})
}

// AsString returns id as an identifier of a string expression. ok is false
// if the kind of id is not string compatible.
func (id Identifier[T]) AsString() (s Identifier[string], ok bool) {
	if !id.Kind.StringCompatible() {
		return Identifier[string]{}, false
	}
	return Identifier[string]{Name: id.Name, Kind: id.Kind}, true
}

// BinaryOperation combines two expressions with an arithmetic operator.
type BinaryOperation[T any] struct {
	Op          Operator
	Left, Right Expression[T]
}

func (BinaryOperation[T]) isExpression(T) {}

func (b BinaryOperation[T]) String() string {
	return operandString(b.Left, b.Op, false) + " " + string(b.Op) + " " + operandString(b.Right, b.Op, true)
}

func (b BinaryOperation[T]) references(dst []Reference) []Reference {
	return b.Right.references(b.Left.references(dst))
}

// operandString parenthesizes nested operations where the canonical form
// would otherwise parse into a different tree.
func operandString[T any](e Expression[T], parent Operator, right bool) string {
	child, ok := e.(BinaryOperation[T])
	if !ok {
		return e.String()
	}
	if child.Op.precedence() < parent.precedence() ||
		(right && child.Op.precedence() == parent.precedence()) {
		return "(" + child.String() + ")"
	}
	return child.String()
}

// DiceRoll is Count dice with Faces faces each, e.g. 2d6.
type DiceRoll struct {
	Count int
	Faces int
}

func (DiceRoll) isExpression(Amount) {}

func (d DiceRoll) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Faces)
}

func (d DiceRoll) references(dst []Reference) []Reference {
	return dst
}

// UnitAnnotated is an amount measured in a unit of the quantity Q.
type UnitAnnotated[Q Quantity] struct {
	Value Expression[Amount]
	Unit  QuantityUnit[Q]
}

func (UnitAnnotated[Q]) isExpression(Q) {}

func (u UnitAnnotated[Q]) String() string {
	return u.Value.String() + " " + u.Unit.String()
}

func (u UnitAnnotated[Q]) references(dst []Reference) []Reference {
	return u.Value.references(dst)
}
