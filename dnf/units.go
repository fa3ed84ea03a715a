package dnf

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

//go:generate go run ../internal/cmd/generate -units ../internal/generate/units.yaml -out units_gen.go

// QuantityType is one of the physical dimensions the grammar understands.
type QuantityType uint8

const (
	TimeType QuantityType = iota + 1
	DistanceType
	DamageType
)

func (t QuantityType) String() string {
	switch t {
	case TimeType:
		return "time"
	case DistanceType:
		return "distance"
	case DamageType:
		return "damage"
	default:
		return fmt.Sprintf("QuantityType(%d)", uint8(t))
	}
}

// BaseUnit returns the canonical name of the unit all scale factors of t
// are relative to.
func (t QuantityType) BaseUnit() string {
	if table := t.table(); table != nil {
		return table.base
	}
	return ""
}

func (t QuantityType) table() *unitTable {
	switch t {
	case TimeType:
		return timeUnits
	case DistanceType:
		return distanceUnits
	case DamageType:
		return damageUnits
	default:
		return nil
	}
}

// Quantity constrains the quantity value types.
type Quantity interface {
	Time | Distance | Damage
	QuantityType() QuantityType
}

// Time is a resolved duration. Value is in seconds.
type Time struct {
	Value Amount
}

// Distance is a resolved length. Value is in feet.
type Distance struct {
	Value Amount
}

// Damage is a resolved amount of damage. Value is in hit points.
type Damage struct {
	Value Amount
}

func (Time) QuantityType() QuantityType     { return TimeType }
func (Distance) QuantityType() QuantityType { return DistanceType }
func (Damage) QuantityType() QuantityType   { return DamageType }

// QuantityUnit identifies one unit of the quantity Q, e.g. UnitFoot.
// Units are comparable; two units are equal iff they name the same
// canonical unit.
type QuantityUnit[Q Quantity] struct {
	Name string
}

// Type returns the quantity type the unit belongs to.
func (u QuantityUnit[Q]) Type() QuantityType {
	var q Q
	return q.QuantityType()
}

func (u QuantityUnit[Q]) String() string {
	return u.Name
}

// Scale returns the size of the unit relative to the base unit of its
// quantity type as the exact ratio factor/divisor. ok is false for a unit
// missing from the unit table.
func (u QuantityUnit[Q]) Scale() (factor, divisor int64, ok bool) {
	def, ok := u.Type().table().unit(u.Name)
	if !ok {
		return 0, 0, false
	}
	return def.factor, def.divisor, true
}

// ToBase converts a value measured in u to the base unit of u's quantity
// type. It is a helper for evaluators; parsing never converts units.
//
// The precision of the division is taken from the apd.Context installed with
// WithAPDContext.
func (u QuantityUnit[Q]) ToBase(ctx context.Context, a Amount) (Amount, error) {
	factor, divisor, ok := u.Scale()
	if !ok {
		return Amount{}, fmt.Errorf("unknown %s unit %q", u.Type(), u.Name)
	}
	if a.Value == nil {
		return Amount{}, fmt.Errorf("can not convert empty amount")
	}

	var scaled, result apd.Decimal
	apdCtx := apdContext(ctx)
	if _, err := apdCtx.Mul(&scaled, a.Value, apd.New(factor, 0)); err != nil {
		return Amount{}, err
	}
	if _, err := apdCtx.Quo(&result, &scaled, apd.New(divisor, 0)); err != nil {
		return Amount{}, err
	}
	return Amount{Value: &result}, nil
}

// LookupUnit resolves a unit symbol of the quantity Q, e.g.
// LookupUnit[Distance]("ft") returns UnitFoot.
func LookupUnit[Q Quantity](symbol string) (QuantityUnit[Q], bool) {
	var q Q
	name, ok := q.QuantityType().table().Lookup(symbol)
	if !ok {
		return QuantityUnit[Q]{}, false
	}
	return QuantityUnit[Q]{Name: name}, true
}

type unitDef struct {
	name    string
	symbols []string
	factor  int64
	divisor int64
}

// unitTable is the read-only unit table of one quantity type. Symbols are
// matched case-insensitively.
type unitTable struct {
	quantityType QuantityType
	base         string
	units        []unitDef
	byName       map[string]int
	bySymbol     map[string]int
}

func newUnitTable(t QuantityType, base string, units []unitDef) *unitTable {
	table := &unitTable{
		quantityType: t,
		base:         base,
		units:        units,
		byName:       make(map[string]int, len(units)),
		bySymbol:     make(map[string]int),
	}
	for i, u := range units {
		if u.divisor == 0 {
			panic(fmt.Sprintf("%s unit %q has a zero divisor", t, u.name))
		}
		table.byName[u.name] = i
		for _, s := range u.symbols {
			key := strings.ToLower(s)
			if other, ok := table.bySymbol[key]; ok {
				panic(fmt.Sprintf("%s unit symbol %q is ambiguous: %q and %q", t, s, units[other].name, u.name))
			}
			table.bySymbol[key] = i
		}
	}
	if _, ok := table.byName[base]; !ok {
		panic(fmt.Sprintf("%s base unit %q is not in the unit table", t, base))
	}
	return table
}

func (t *unitTable) TypeName() string {
	return t.quantityType.String()
}

func (t *unitTable) Lookup(symbol string) (string, bool) {
	i, ok := t.bySymbol[strings.ToLower(symbol)]
	if !ok {
		return "", false
	}
	return t.units[i].name, true
}

func (t *unitTable) unit(name string) (unitDef, bool) {
	if t == nil {
		return unitDef{}, false
	}
	i, ok := t.byName[name]
	if !ok {
		return unitDef{}, false
	}
	return t.units[i], true
}

// UnitInfo describes one entry of a unit table.
type UnitInfo struct {
	Name    string
	Symbols []string
	// Factor/Divisor is the size of the unit in base units.
	Factor, Divisor int64
}

// Units returns the unit table of t in table order.
func (t QuantityType) Units() []UnitInfo {
	table := t.table()
	if table == nil {
		return nil
	}
	units := make([]UnitInfo, len(table.units))
	for i, u := range table.units {
		units[i] = UnitInfo{
			Name:    u.name,
			Symbols: slices.Clone(u.symbols),
			Factor:  u.factor,
			Divisor: u.divisor,
		}
	}
	return units
}

type apdContextKey struct{}

// WithAPDContext sets the apd.Context used by unit conversions.
//
// By default conversions keep 34 significant decimal digits.
func WithAPDContext(ctx context.Context, apdContext *apd.Context) context.Context {
	return context.WithValue(ctx, apdContextKey{}, apdContext)
}

const defaultDecimalPrecision uint32 = 34

var defaultAPDContext = apd.BaseContext.WithPrecision(defaultDecimalPrecision)

func apdContext(ctx context.Context) *apd.Context {
	if ctx != nil {
		if apdContext, ok := ctx.Value(apdContextKey{}).(*apd.Context); ok && apdContext != nil {
			return apdContext
		}
	}
	return defaultAPDContext
}
