package generate

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleUnits = `
package: dnf
tables:
  - type: distance
    value: Distance
    base: foot
    units:
      - name: foot
        symbols: [ft, feet]
      - name: inch
        divisor: 12
        symbols: [in]
      - name: bonus yard
        factor: 3
        doc: Not a real unit.
        symbols: [bonus yard]
`

func TestReadUnits(t *testing.T) {
	src, err := ReadUnits(strings.NewReader(sampleUnits))
	if err != nil {
		t.Fatal(err)
	}

	want := UnitSource{
		Package: "dnf",
		Tables: []UnitTable{{
			Type:  "distance",
			Value: "Distance",
			Base:  "foot",
			Units: []Unit{
				{Name: "foot", Symbols: []string{"ft", "feet"}, Factor: 1, Divisor: 1},
				{Name: "inch", Symbols: []string{"in"}, Factor: 1, Divisor: 12},
				{Name: "bonus yard", Symbols: []string{"bonus yard"}, Factor: 3, Divisor: 1, Doc: "Not a real unit."},
			},
		}},
	}
	if diff := cmp.Diff(want, src); diff != "" {
		t.Errorf("unit source mismatch (-want +got):\n%s", diff)
	}
}

func TestReadUnitsValidation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "missing base",
			src: `
package: dnf
tables:
  - {type: time, value: Time, base: second, units: [{name: minute, symbols: [min]}]}
`,
			want: `time base unit "second" is not defined`,
		},
		{
			name: "duplicate symbol",
			src: `
package: dnf
tables:
  - {type: time, value: Time, base: second, units: [{name: second, symbols: [s]}]}
  - {type: distance, value: Distance, base: foot, units: [{name: foot, symbols: [S]}]}
`,
			want: `symbol "S" is used by second and foot`,
		},
		{
			name: "long symbol",
			src: `
package: dnf
tables:
  - {type: time, value: Time, base: second, units: [{name: second, symbols: [one whole second]}]}
`,
			want: `must have 1 to 2 words`,
		},
		{
			name: "scaled base",
			src: `
package: dnf
tables:
  - {type: time, value: Time, base: second, units: [{name: second, factor: 2, symbols: [s]}]}
`,
			want: `base unit "second" must have scale 1`,
		},
		{
			name: "unknown field",
			src: `
package: dnf
colour: red
`,
			want: `field colour not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadUnits(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, err)
			}
		})
	}
}

func TestGenerateUnits(t *testing.T) {
	src, err := ReadUnits(strings.NewReader(sampleUnits))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := GenerateUnits(src).Render(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"// Code generated by internal/cmd/generate. DO NOT EDIT.",
		"package dnf",
		`UnitBonusYard = QuantityUnit[Distance]{Name: "bonus yard"}`,
		"// Not a real unit.",
		`var distanceUnits = newUnitTable(DistanceType, "foot", []unitDef{`,
		`name: "inch", symbols: []string{"in"}, factor: 1, divisor: 12`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code does not contain %q:\n%s", want, out)
		}
	}
}

func TestCheckedInUnitTables(t *testing.T) {
	file, err := os.Open("units.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	src, err := ReadUnits(file)
	if err != nil {
		t.Fatal(err)
	}

	generated, err := os.ReadFile("../../dnf/units_gen.go")
	if err != nil {
		t.Fatal(err)
	}
	for _, table := range src.Tables {
		for _, u := range table.Units {
			if !bytes.Contains(generated, []byte(UnitConstName(u.Name))) {
				t.Errorf("dnf/units_gen.go is stale: %s is missing, run go generate ./dnf", UnitConstName(u.Name))
			}
		}
	}
}
