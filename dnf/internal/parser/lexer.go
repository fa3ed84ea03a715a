package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Token classes produced by the DnF lexer.
const (
	Dice     = "Dice"
	Number   = "Number"
	Word     = "Word"
	Operator = "Operator"
	Punct    = "Punct"
)

// DnFLexer is the token pattern table of the DnF content grammar.
// Rules are tried in order; the first match wins.
//
// Dice are a single compound token ("2d6", "d20"): a count, the letter d and
// the number of faces with no whitespace in between.
var DnFLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: Dice, Pattern: `[0-9]*d[0-9]+\b`},
	{Name: Number, Pattern: `[0-9]+(?:\.[0-9]+)?`},
	{Name: Word, Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: Operator, Pattern: `[-+*/]`},
	{Name: Punct, Pattern: `[().]`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

var symbols = lexer.SymbolsByRune(DnFLexer)

// TokenClass returns the class name of t, e.g. Word or Number.
func TokenClass(t lexer.Token) string {
	if t.EOF() {
		return "EOF"
	}
	return symbols[t.Type]
}

// Lex tokenizes the whole input. The returned slice always ends with an EOF
// token. The error, if any, is a *lexer.Error positioned at the first
// character no rule matched.
func Lex(input string) ([]lexer.Token, error) {
	l, err := DnFLexer.LexString("", input)
	if err != nil {
		return nil, err
	}
	return lexer.ConsumeAll(l)
}
