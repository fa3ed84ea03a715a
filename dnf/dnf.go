// Package dnf parses the strings of DnF game content into typed, unevaluated
// expression trees.
//
// The grammar covers dimensionless amounts with dice and arithmetic
// ("2d6 + 3"), quantities of time, distance and damage ("10 ft",
// "1 minute", "2d6 fire + 1d4 cold"), bare units and identifier paths
// ("spell.level"). Identifiers are placeholders for an evaluator and are
// never resolved here.
//
// Every Parse function is strict: a lexical or syntactic mismatch is returned
// as a LexError or ParseError. ParseStringExpression never fails; it probes
// for an identifier silently and falls back to the string itself.
//
// Example:
//
//	reach, err := dnf.ParseDistance("60 ft")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(reach) // Output: 60 foot
package dnf

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/antlr4-go/antlr/v4"
	parser "github.com/damedic/dnf-toolbox-go/dnf/internal/parser"
)

var unitCatalog = []parser.UnitSet{timeUnits, distanceUnits, damageUnits}

// LexError reports input no token pattern matches. Position is the 1-based
// column of the first unmatched character.
type LexError struct {
	Position int
	Msg      string
}

func (e LexError) Error() string {
	return fmt.Sprintf("%d: %s", e.Position, e.Msg)
}

// ParseError reports tokens that do not satisfy the grammar rule. Position
// is the 1-based column of the offending token, Token its text ("" at end
// of input).
type ParseError struct {
	Position int
	Token    string
	Msg      string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d: %s", e.Position, e.Msg)
}

// SyntaxErrorListener collects the diagnostics of a parse as LexError and
// ParseError values.
type SyntaxErrorListener struct {
	*antlr.DefaultErrorListener
	Errors []error
}

func (c *SyntaxErrorListener) SyntaxError(
	recognizer antlr.Recognizer,
	offendingSymbol any,
	line, column int,
	msg string, e antlr.RecognitionException) {
	if t, ok := offendingSymbol.(lexer.Token); ok {
		token := t.Value
		if t.EOF() {
			token = ""
		}
		c.Errors = append(c.Errors, ParseError{
			Position: column + 1,
			Token:    token,
			Msg:      msg,
		})
		return
	}
	c.Errors = append(c.Errors, LexError{
		Position: column + 1,
		Msg:      msg,
	})
}

// Err returns the collected diagnostics as a single error, or nil.
func (c *SyntaxErrorListener) Err() error {
	switch len(c.Errors) {
	case 0:
		return nil
	case 1:
		return c.Errors[0]
	default:
		return errors.Join(c.Errors...)
	}
}

// SlogErrorListener logs diagnostics at debug level.
type SlogErrorListener struct {
	*antlr.DefaultErrorListener
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

func (l *SlogErrorListener) SyntaxError(
	recognizer antlr.Recognizer,
	offendingSymbol any,
	line, column int,
	msg string, e antlr.RecognitionException) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("dnf syntax error", "column", column+1, "msg", msg)
}

// Rule names an entry rule of the grammar.
type Rule uint8

const (
	RuleAmount Rule = iota + 1
	RuleTime
	RuleDistance
	RuleDamage
	RuleTimeUnit
	RuleDistanceUnit
	RuleDamageUnit
	RuleIdentifier
	// RuleString is the identifier-or-literal fallback of
	// ParseStringExpression.
	RuleString
)

var ruleNames = map[Rule]string{
	RuleAmount:       "amount",
	RuleTime:         "time",
	RuleDistance:     "distance",
	RuleDamage:       "damage",
	RuleTimeUnit:     "time_unit",
	RuleDistanceUnit: "distance_unit",
	RuleDamageUnit:   "damage_unit",
	RuleIdentifier:   "identifier",
	RuleString:       "string",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

// Rules returns all entry rules.
func Rules() []Rule {
	return []Rule{
		RuleAmount, RuleTime, RuleDistance, RuleDamage,
		RuleTimeUnit, RuleDistanceUnit, RuleDamageUnit,
		RuleIdentifier, RuleString,
	}
}

// LookupRule returns the rule called name, e.g. "time_unit".
func LookupRule(name string) (Rule, error) {
	for r, n := range ruleNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rule %q", name)
}

// ParseRule parses s with rule. Diagnostics are additionally reported to
// listeners, which may observe them without changing the result.
func ParseRule(rule Rule, s string, listeners ...antlr.ErrorListener) (Node, error) {
	var (
		expr Node
		err  error
	)
	switch rule {
	case RuleAmount:
		expr, err = node(parseAmount(s, listeners))
	case RuleTime:
		expr, err = node(parseQuantity[Time](s, listeners))
	case RuleDistance:
		expr, err = node(parseQuantity[Distance](s, listeners))
	case RuleDamage:
		expr, err = node(parseQuantity[Damage](s, listeners))
	case RuleTimeUnit:
		expr, err = node(parseUnit[Time](s, listeners))
	case RuleDistanceUnit:
		expr, err = node(parseUnit[Distance](s, listeners))
	case RuleDamageUnit:
		expr, err = node(parseUnit[Damage](s, listeners))
	case RuleIdentifier:
		expr, err = node(parseIdentifier(s, listeners))
	case RuleString:
		expr = ParseStringExpression(s)
	default:
		return nil, fmt.Errorf("unknown rule %v", rule)
	}
	return expr, err
}

// node drops the static type of a parse result. A failed parse yields a nil
// Node rather than a Node holding a zero value.
func node[T Node](v T, err error) (Node, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ParseAmount parses s as a dimensionless amount, e.g. "2d6 + 3".
func ParseAmount(s string) (Expression[Amount], error) {
	return parseAmount(s, nil)
}

// ParseTime parses s as a time, e.g. "1 minute" or "1 hour + 30 minutes".
func ParseTime(s string) (Expression[Time], error) {
	return parseQuantity[Time](s, nil)
}

// ParseDistance parses s as a distance, e.g. "10 ft".
func ParseDistance(s string) (Expression[Distance], error) {
	return parseQuantity[Distance](s, nil)
}

// ParseDamage parses s as damage, e.g. "2d6 fire".
func ParseDamage(s string) (Expression[Damage], error) {
	return parseQuantity[Damage](s, nil)
}

// ParseTimeUnit parses s as a bare time unit, e.g. "bonus action".
func ParseTimeUnit(s string) (Expression[QuantityUnit[Time]], error) {
	return parseUnit[Time](s, nil)
}

// ParseDistanceUnit parses s as a bare distance unit, e.g. "feet".
func ParseDistanceUnit(s string) (Expression[QuantityUnit[Distance]], error) {
	return parseUnit[Distance](s, nil)
}

// ParseDamageUnit parses s as a bare damage unit, e.g. "necrotic".
func ParseDamageUnit(s string) (Expression[QuantityUnit[Damage]], error) {
	return parseUnit[Damage](s, nil)
}

// ParseIdentifier parses s as an identifier path, e.g. "STR_mod" or
// "damage.fire_bolt". Unit symbols are valid identifiers.
func ParseIdentifier(s string) (Identifier[any], error) {
	return parseIdentifier(s, nil)
}

// ParseStringExpression returns the identifier s if s is one, and the
// literal s otherwise. It never fails.
//
// The result is an identifier iff ParseIdentifier(s) succeeds.
func ParseStringExpression(s string) Expression[string] {
	p := parser.NewDnFParser(s, nil, unitCatalog...)
	if tree := p.Identifier(); tree != nil {
		if id, ok := buildIdentifier(tree).AsString(); ok {
			return id
		}
	}
	return StringLiteral{Value: s}
}

// Must panics if err is not nil.
//
// This function is useful for hardcoded content, such as in tests:
//
//	damage := dnf.Must(dnf.ParseDamage("1d8 slashing"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func parseAmount(s string, listeners []antlr.ErrorListener) (Expression[Amount], error) {
	return parse(s, listeners, func(p *parser.DnFParser) (Expression[Amount], error) {
		tree := p.Amount()
		if tree == nil {
			return nil, errNoTree
		}
		return buildAmount(tree)
	})
}

func parseQuantity[Q Quantity](s string, listeners []antlr.ErrorListener) (Expression[Q], error) {
	var q Q
	units := q.QuantityType().table()
	return parse(s, listeners, func(p *parser.DnFParser) (Expression[Q], error) {
		tree := p.Quantity(units)
		if tree == nil {
			return nil, errNoTree
		}
		return buildQuantity[Q](tree)
	})
}

func parseUnit[Q Quantity](s string, listeners []antlr.ErrorListener) (Expression[QuantityUnit[Q]], error) {
	var q Q
	units := q.QuantityType().table()
	return parse(s, listeners, func(p *parser.DnFParser) (Expression[QuantityUnit[Q]], error) {
		tree := p.Unit(units)
		if tree == nil {
			return nil, errNoTree
		}
		return buildUnit[Q](tree), nil
	})
}

func parseIdentifier(s string, listeners []antlr.ErrorListener) (Identifier[any], error) {
	return parse(s, listeners, func(p *parser.DnFParser) (Identifier[any], error) {
		tree := p.Identifier()
		if tree == nil {
			return Identifier[any]{}, errNoTree
		}
		return buildIdentifier(tree), nil
	})
}

// errNoTree is returned by a rule whose parser reported a diagnostic.
var errNoTree = errors.New("no parse tree")

// parse runs rule in strict mode. Diagnostics take precedence over the
// error of rule.
func parse[T any](
	s string,
	listeners []antlr.ErrorListener,
	rule func(p *parser.DnFParser) (T, error),
) (T, error) {
	errListener := &SyntaxErrorListener{}
	var listener antlr.ErrorListener = errListener
	if len(listeners) > 0 {
		listener = antlr.NewProxyErrorListener(append([]antlr.ErrorListener{errListener}, listeners...))
	}

	p := parser.NewDnFParser(s, listener, unitCatalog...)
	result, err := rule(p)
	if syntaxErr := errListener.Err(); syntaxErr != nil {
		var zero T
		return zero, syntaxErr
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
