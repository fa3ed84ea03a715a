package dnf_test

import (
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/dnf-toolbox-go/dnf"
	"github.com/google/go-cmp/cmp"
)

var quantityTypes = []dnf.QuantityType{dnf.TimeType, dnf.DistanceType, dnf.DamageType}

func TestUnitSymbolsAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, qt := range quantityTypes {
		for _, u := range qt.Units() {
			for _, s := range u.Symbols {
				key := strings.ToLower(s)
				if other, ok := seen[key]; ok {
					t.Errorf("symbol %q is used by %s and %s %s", s, other, qt, u.Name)
				}
				seen[key] = qt.String() + " " + u.Name
			}
		}
	}
}

func TestUnitTables(t *testing.T) {
	tests := []struct {
		qt   dnf.QuantityType
		base string
	}{
		{dnf.TimeType, "second"},
		{dnf.DistanceType, "foot"},
		{dnf.DamageType, "hit point"},
	}
	for _, tt := range tests {
		t.Run(tt.qt.String(), func(t *testing.T) {
			if got := tt.qt.BaseUnit(); got != tt.base {
				t.Errorf("expected base unit %q, got %q", tt.base, got)
			}
			units := tt.qt.Units()
			if len(units) == 0 {
				t.Fatal("empty unit table")
			}
			for _, u := range units {
				if u.Factor <= 0 || u.Divisor <= 0 {
					t.Errorf("unit %q has scale %d/%d", u.Name, u.Factor, u.Divisor)
				}
				for _, s := range u.Symbols {
					if _, err := dnf.ParseRule(unitRule(tt.qt), s); err != nil {
						t.Errorf("symbol %q of %q does not parse: %v", s, u.Name, err)
					}
				}
			}
		})
	}
}

func unitRule(qt dnf.QuantityType) dnf.Rule {
	switch qt {
	case dnf.TimeType:
		return dnf.RuleTimeUnit
	case dnf.DistanceType:
		return dnf.RuleDistanceUnit
	default:
		return dnf.RuleDamageUnit
	}
}

func TestLookupUnit(t *testing.T) {
	if got, ok := dnf.LookupUnit[dnf.Distance]("FT"); !ok || got != dnf.UnitFoot {
		t.Errorf("expected foot, got %v (ok=%v)", got, ok)
	}
	if got, ok := dnf.LookupUnit[dnf.Time]("bonus actions"); !ok || got != dnf.UnitBonusAction {
		t.Errorf("expected bonus action, got %v (ok=%v)", got, ok)
	}
	if _, ok := dnf.LookupUnit[dnf.Time]("ft"); ok {
		t.Error("expected ft not to be a time unit")
	}
	if got := dnf.UnitFoot.Type(); got != dnf.DistanceType {
		t.Errorf("expected distance, got %v", got)
	}
}

func TestUnitScale(t *testing.T) {
	factor, divisor, ok := dnf.UnitInch.Scale()
	if !ok || factor != 1 || divisor != 12 {
		t.Errorf("expected 1/12, got %d/%d (ok=%v)", factor, divisor, ok)
	}
	if _, _, ok := (dnf.QuantityUnit[dnf.Distance]{Name: "parsec"}).Scale(); ok {
		t.Error("expected unknown unit to have no scale")
	}
}

func TestToBase(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		convert func(context.Context, dnf.Amount) (dnf.Amount, error)
		value   dnf.Amount
		want    dnf.Amount
		wantErr bool
	}{
		{
			name:    "miles to feet",
			convert: dnf.UnitMile.ToBase,
			value:   dnf.NewAmount(2, 0),
			want:    dnf.NewAmount(10560, 0),
		},
		{
			name:    "inches to feet",
			convert: dnf.UnitInch.ToBase,
			value:   dnf.NewAmount(6, 0),
			want:    dnf.NewAmount(5, -1),
		},
		{
			name:    "rounds to seconds",
			convert: dnf.UnitRound.ToBase,
			value:   dnf.NewAmount(10, 0),
			want:    dnf.NewAmount(60, 0),
		},
		{
			name:    "base unit",
			convert: dnf.UnitHitPoint.ToBase,
			value:   dnf.NewAmount(7, 0),
			want:    dnf.NewAmount(7, 0),
		},
		{
			name:    "unknown unit",
			convert: dnf.QuantityUnit[dnf.Time]{Name: "fortnight"}.ToBase,
			value:   dnf.NewAmount(1, 0),
			wantErr: true,
		},
		{
			name:    "empty amount",
			convert: dnf.UnitHour.ToBase,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.convert(ctx, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("amount mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToBasePrecision(t *testing.T) {
	ctx := dnf.WithAPDContext(context.Background(), apd.BaseContext.WithPrecision(5))
	got, err := dnf.UnitInch.ToBase(ctx, dnf.NewAmount(1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if want := dnf.NewAmount(83333, -6); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
