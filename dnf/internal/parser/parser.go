package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/antlr4-go/antlr/v4"
)

// UnitSet is the unit table of one quantity type.
type UnitSet interface {
	// TypeName is the lower case name of the quantity type, e.g. "time".
	TypeName() string
	// Lookup resolves a unit symbol to its canonical unit name.
	Lookup(symbol string) (name string, ok bool)
}

// maxUnitWords is the number of words of the longest unit symbol.
const maxUnitWords = 2

// DnFParser is a single-pass recursive descent parser for the DnF grammar.
//
// Diagnostics are reported to the installed antlr.ErrorListener with the
// offending lexer.Token (or *lexer.Error for lexical errors) as offending
// symbol and a 0-based column. The recognizer and the RecognitionException
// passed to the listener are always nil. Parsing stops at the first diagnostic
// and the entry rule returns nil.
type DnFParser struct {
	input    string
	tokens   []lexer.Token
	pos      int
	listener antlr.ErrorListener
	catalog  []UnitSet
	// units is the table of the quantity rule currently parsed, if any.
	units  UnitSet
	failed bool
}

// NewDnFParser tokenizes input and prepares a parser over it. catalog lists
// every known unit table and is used to name the quantity type of a
// misplaced unit. A nil listener discards all diagnostics.
func NewDnFParser(input string, listener antlr.ErrorListener, catalog ...UnitSet) *DnFParser {
	if listener == nil {
		listener = antlr.NewDefaultErrorListener()
	}
	p := &DnFParser{
		input:    input,
		listener: listener,
		catalog:  catalog,
	}

	tokens, err := Lex(input)
	if err != nil {
		p.lexError(err)
		return p
	}
	p.tokens = tokens
	return p
}

// Failed reports whether a diagnostic has been emitted.
func (p *DnFParser) Failed() bool {
	return p.failed
}

// Amount parses the entire input as an amount.
func (p *DnFParser) Amount() AmountContext {
	if p.failed {
		return nil
	}
	a := p.amount()
	if a == nil || !p.eof() {
		return nil
	}
	return a
}

// Quantity parses the entire input as one or more amounts annotated with a
// unit from units, joined by + or -.
func (p *DnFParser) Quantity(units UnitSet) QuantityContext {
	if p.failed {
		return nil
	}
	p.units = units
	defer func() { p.units = nil }()

	q := p.quantity(units)
	if q == nil || !p.eof() {
		return nil
	}
	return q
}

// Unit parses the entire input as a bare unit symbol from units.
func (p *DnFParser) Unit(units UnitSet) *UnitContext {
	if p.failed {
		return nil
	}
	u := p.unit(units)
	if u == nil || !p.eof() {
		return nil
	}
	return u
}

// Identifier parses the entire input as an identifier path. Unit symbols
// are valid identifiers here.
func (p *DnFParser) Identifier() *PathContext {
	if p.failed {
		return nil
	}
	if !p.expectWord() {
		return nil
	}
	path := p.path()
	if path == nil || !p.eof() {
		return nil
	}
	return path
}

func (p *DnFParser) quantity(units UnitSet) QuantityContext {
	left := p.quantityTerm(units)
	if left == nil {
		return nil
	}
	for p.atOperator("+", "-") {
		op := p.next()
		right := p.quantityTerm(units)
		if right == nil {
			return nil
		}
		left = &QuantitySumContext{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *DnFParser) quantityTerm(units UnitSet) QuantityContext {
	amount := p.amount()
	if amount == nil {
		return nil
	}
	unit := p.unit(units)
	if unit == nil {
		return nil
	}
	return &QuantityTermContext{Amount: amount, Unit: unit}
}

func (p *DnFParser) amount() AmountContext {
	left := p.term()
	if left == nil {
		return nil
	}
	for p.atOperator("+", "-") {
		op := p.next()
		right := p.term()
		if right == nil {
			return nil
		}
		left = &BinaryContext{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *DnFParser) term() AmountContext {
	left := p.unary()
	if left == nil {
		return nil
	}
	for p.atOperator("*", "/") {
		op := p.next()
		right := p.unary()
		if right == nil {
			return nil
		}
		left = &BinaryContext{Op: op, Left: left, Right: right}
	}
	return left
}

func (p *DnFParser) unary() AmountContext {
	if !p.atOperator("+", "-") {
		return p.primary()
	}
	op := p.next()
	operand := p.unary()
	if operand == nil {
		return nil
	}
	if op.Value == "+" {
		return operand
	}
	if n, ok := operand.(*NumberContext); ok {
		return &NumberContext{Token: n.Token, Negative: !n.Negative}
	}
	return &NegationContext{Token: op, Operand: operand}
}

func (p *DnFParser) primary() AmountContext {
	t := p.peek()
	switch {
	case p.at(Number):
		return &NumberContext{Token: p.next()}
	case p.at(Dice):
		return p.dice()
	case p.at(Word):
		if p.units != nil {
			if _, n := p.matchUnit(p.units); n > 0 {
				p.syntaxError(t, "mismatched input %s expecting an amount before the %s unit", tokenText(t), p.units.TypeName())
				return nil
			}
		}
		path := p.path()
		if path == nil {
			return nil
		}
		return path
	case p.atPunct("("):
		p.next()
		inner := p.amount()
		if inner == nil {
			return nil
		}
		if !p.atPunct(")") {
			p.syntaxError(p.peek(), "missing ')' at %s", tokenText(p.peek()))
			return nil
		}
		p.next()
		return inner
	default:
		p.syntaxError(t, "mismatched input %s expecting {Number, Dice, Word, '(', '-'}", tokenText(t))
		return nil
	}
}

func (p *DnFParser) dice() AmountContext {
	t := p.next()
	count, faces, err := splitDice(t.Value)
	if err != nil {
		p.syntaxError(t, "invalid dice %s: %v", tokenText(t), err)
		return nil
	}
	return &DiceContext{Token: t, Count: count, Faces: faces}
}

var errDiceSpec = errors.New("dice must have positive faces and count")

func splitDice(s string) (count, faces int, err error) {
	countText, facesText, _ := strings.Cut(s, "d")
	count = 1
	if countText != "" {
		count, err = strconv.Atoi(countText)
		if err != nil {
			return 0, 0, err
		}
	}
	faces, err = strconv.Atoi(facesText)
	if err != nil {
		return 0, 0, err
	}
	if count <= 0 || faces <= 0 {
		return 0, 0, errDiceSpec
	}
	return count, faces, nil
}

func (p *DnFParser) path() *PathContext {
	parts := []lexer.Token{p.next()}
	for p.atPunct(".") {
		p.next()
		if !p.expectWord() {
			return nil
		}
		parts = append(parts, p.next())
	}
	return &PathContext{Parts: parts}
}

// expectWord reports whether the current token is a Word and emits a
// diagnostic otherwise. Dice notation such as d20 is reserved and never
// names an identifier.
func (p *DnFParser) expectWord() bool {
	t := p.peek()
	switch TokenClass(t) {
	case Word:
		return true
	case Dice:
		p.syntaxError(t, "mismatched input %s expecting Word, dice notation is reserved", tokenText(t))
	default:
		p.syntaxError(t, "mismatched input %s expecting Word", tokenText(t))
	}
	return false
}

func (p *DnFParser) unit(units UnitSet) *UnitContext {
	if name, n := p.matchUnit(units); n > 0 {
		tokens := p.tokens[p.pos : p.pos+n]
		p.pos += n
		return &UnitContext{Tokens: tokens, Name: name}
	}

	t := p.peek()
	for _, other := range p.catalog {
		if other.TypeName() == units.TypeName() {
			continue
		}
		if _, n := p.matchUnit(other); n > 0 {
			p.syntaxError(t, "unit '%s' is a %s unit, expecting a %s unit",
				joinWords(p.tokens[p.pos:p.pos+n]), other.TypeName(), units.TypeName())
			return nil
		}
	}
	p.syntaxError(t, "mismatched input %s expecting a %s unit", tokenText(t), units.TypeName())
	return nil
}

// matchUnit returns the canonical name and the word count of the longest
// symbol of units starting at the current token, or n == 0.
func (p *DnFParser) matchUnit(units UnitSet) (name string, n int) {
	for n = maxUnitWords; n > 0; n-- {
		if p.pos+n > len(p.tokens) {
			continue
		}
		words := p.tokens[p.pos : p.pos+n]
		if !allWords(words) {
			continue
		}
		if name, ok := units.Lookup(joinWords(words)); ok {
			return name, n
		}
	}
	return "", 0
}

func allWords(tokens []lexer.Token) bool {
	for _, t := range tokens {
		if TokenClass(t) != Word {
			return false
		}
	}
	return true
}

func (p *DnFParser) eof() bool {
	if t := p.peek(); !t.EOF() {
		p.syntaxError(t, "extraneous input %s expecting <EOF>", tokenText(t))
		return false
	}
	return true
}

func (p *DnFParser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *DnFParser) next() lexer.Token {
	t := p.peek()
	if !t.EOF() {
		p.pos++
	}
	return t
}

func (p *DnFParser) at(class string) bool {
	return TokenClass(p.peek()) == class
}

func (p *DnFParser) atOperator(ops ...string) bool {
	return p.atClassValue(Operator, ops)
}

func (p *DnFParser) atPunct(punct ...string) bool {
	return p.atClassValue(Punct, punct)
}

func (p *DnFParser) atClassValue(class string, values []string) bool {
	t := p.peek()
	if TokenClass(t) != class {
		return false
	}
	for _, v := range values {
		if t.Value == v {
			return true
		}
	}
	return false
}

func (p *DnFParser) syntaxError(t lexer.Token, format string, args ...any) {
	if p.failed {
		return
	}
	p.failed = true
	p.listener.SyntaxError(nil, t, t.Pos.Line, t.Pos.Column-1, fmt.Sprintf(format, args...), nil)
}

func (p *DnFParser) lexError(err error) {
	p.failed = true

	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		p.listener.SyntaxError(nil, err, 1, 0, err.Error(), nil)
		return
	}
	r, _ := utf8.DecodeRuneInString(p.input[lexErr.Pos.Offset:])
	p.listener.SyntaxError(nil, lexErr, lexErr.Pos.Line, lexErr.Pos.Column-1,
		fmt.Sprintf("token recognition error at: '%c'", r), nil)
}

func tokenText(t lexer.Token) string {
	if t.EOF() {
		return "<EOF>"
	}
	return "'" + t.Value + "'"
}
