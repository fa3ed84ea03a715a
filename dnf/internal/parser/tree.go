package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// AmountContext is a node of the amount sub-grammar.
type AmountContext interface {
	GetStart() lexer.Token
	amountContext()
}

// QuantityContext is a node of a quantity rule: either a single
// amount/unit pair or a sum of those.
type QuantityContext interface {
	GetStart() lexer.Token
	quantityContext()
}

// NumberContext is a numeric literal. Negative is set when a unary minus
// was folded into the literal.
type NumberContext struct {
	Token    lexer.Token
	Negative bool
}

// DiceContext is a dice token such as 2d6 or d20.
type DiceContext struct {
	Token lexer.Token
	Count int
	Faces int
}

// PathContext is a (possibly dotted) identifier path.
type PathContext struct {
	Parts []lexer.Token
}

// NegationContext is a unary minus applied to anything but a number literal.
type NegationContext struct {
	Token   lexer.Token
	Operand AmountContext
}

// BinaryContext is a binary arithmetic operation.
type BinaryContext struct {
	Op          lexer.Token
	Left, Right AmountContext
}

// UnitContext is a unit symbol, possibly spanning several words.
type UnitContext struct {
	Tokens []lexer.Token
	// Name is the canonical unit name the symbol resolved to.
	Name string
}

// QuantityTermContext is an amount followed by a unit.
type QuantityTermContext struct {
	Amount AmountContext
	Unit   *UnitContext
}

// QuantitySumContext adds or subtracts two quantities of the same type.
type QuantitySumContext struct {
	Op          lexer.Token
	Left, Right QuantityContext
}

func (c *NumberContext) GetStart() lexer.Token       { return c.Token }
func (c *DiceContext) GetStart() lexer.Token         { return c.Token }
func (c *PathContext) GetStart() lexer.Token         { return c.Parts[0] }
func (c *NegationContext) GetStart() lexer.Token     { return c.Token }
func (c *BinaryContext) GetStart() lexer.Token       { return c.Left.GetStart() }
func (c *UnitContext) GetStart() lexer.Token         { return c.Tokens[0] }
func (c *QuantityTermContext) GetStart() lexer.Token { return c.Amount.GetStart() }
func (c *QuantitySumContext) GetStart() lexer.Token  { return c.Left.GetStart() }

func (*NumberContext) amountContext()   {}
func (*DiceContext) amountContext()     {}
func (*PathContext) amountContext()     {}
func (*NegationContext) amountContext() {}
func (*BinaryContext) amountContext()   {}

func (*QuantityTermContext) quantityContext() {}
func (*QuantitySumContext) quantityContext()  {}

// GetText returns the number as written, including a folded minus sign.
func (c *NumberContext) GetText() string {
	if c.Negative {
		return "-" + c.Token.Value
	}
	return c.Token.Value
}

// GetText returns the dotted path.
func (c *PathContext) GetText() string {
	parts := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = p.Value
	}
	return strings.Join(parts, ".")
}

// GetText returns the unit symbol as written, words joined by single spaces.
func (c *UnitContext) GetText() string {
	return joinWords(c.Tokens)
}

func joinWords(tokens []lexer.Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Value
	}
	return strings.Join(words, " ")
}
