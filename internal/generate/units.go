package generate

import (
	"fmt"
	"io"
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// UnitSource is the YAML document the unit tables are generated from.
type UnitSource struct {
	Package string      `yaml:"package"`
	Tables  []UnitTable `yaml:"tables"`
}

// UnitTable lists the units of one quantity type.
type UnitTable struct {
	// Type is the quantity type name, e.g. "time".
	Type string `yaml:"type"`
	// Value is the Go type of resolved values, e.g. "Time".
	Value string `yaml:"value"`
	Base  string `yaml:"base"`
	Units []Unit `yaml:"units"`
}

// Unit is one canonical unit. The size relative to the base unit is
// Factor/Divisor; both default to 1.
type Unit struct {
	Name    string   `yaml:"name"`
	Symbols []string `yaml:"symbols"`
	Factor  int      `yaml:"factor"`
	Divisor int      `yaml:"divisor"`
	Doc     string   `yaml:"doc"`
}

// ReadUnits decodes and validates a unit source.
func ReadUnits(r io.Reader) (UnitSource, error) {
	var src UnitSource
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&src); err != nil {
		return UnitSource{}, fmt.Errorf("decode unit source: %w", err)
	}
	if src.Package == "" {
		return UnitSource{}, fmt.Errorf("unit source has no package")
	}

	names := map[string]string{}
	symbols := map[string]string{}
	for ti := range src.Tables {
		t := &src.Tables[ti]
		if t.Type == "" || t.Value == "" {
			return UnitSource{}, fmt.Errorf("table %d: type and value are required", ti)
		}
		hasBase := false
		for ui := range t.Units {
			u := &t.Units[ui]
			if u.Factor == 0 {
				u.Factor = 1
			}
			if u.Divisor == 0 {
				u.Divisor = 1
			}
			if u.Factor < 0 || u.Divisor < 0 {
				return UnitSource{}, fmt.Errorf("%s unit %q: scale must be positive", t.Type, u.Name)
			}
			if len(u.Symbols) == 0 {
				return UnitSource{}, fmt.Errorf("%s unit %q has no symbols", t.Type, u.Name)
			}
			if other, ok := names[u.Name]; ok {
				return UnitSource{}, fmt.Errorf("unit %q is defined by %s and %s", u.Name, other, t.Type)
			}
			names[u.Name] = t.Type
			for _, s := range u.Symbols {
				if n := len(strings.Fields(s)); n == 0 || n > maxSymbolWords {
					return UnitSource{}, fmt.Errorf("%s unit %q: symbol %q must have 1 to %d words", t.Type, u.Name, s, maxSymbolWords)
				}
				key := strings.ToLower(s)
				if other, ok := symbols[key]; ok {
					return UnitSource{}, fmt.Errorf("symbol %q is used by %s and %s", s, other, u.Name)
				}
				symbols[key] = u.Name
			}
			if u.Name == t.Base {
				hasBase = true
				if u.Factor != 1 || u.Divisor != 1 {
					return UnitSource{}, fmt.Errorf("%s base unit %q must have scale 1", t.Type, u.Name)
				}
			}
		}
		if !hasBase {
			return UnitSource{}, fmt.Errorf("%s base unit %q is not defined", t.Type, t.Base)
		}
	}
	return src, nil
}

// maxSymbolWords matches the lookahead of the parser.
const maxSymbolWords = 2

// UnitConstName returns the name of the exported unit constant, e.g.
// UnitBonusAction for "bonus action".
func UnitConstName(name string) string {
	return "Unit" + strcase.ToCamel(name)
}

// GenerateUnits renders the unit constants and unit tables of src.
func GenerateUnits(src UnitSource) *File {
	f := NewFile(src.Package)
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")

	for _, t := range src.Tables {
		generateUnitConsts(f, t)
	}
	for _, t := range src.Tables {
		generateUnitTable(f, t)
	}
	return f
}

func generateUnitConsts(f *File, t UnitTable) {
	f.Commentf("Units of %s.", t.Type)
	f.Var().DefsFunc(func(g *Group) {
		for _, u := range t.Units {
			if u.Doc != "" {
				g.Comment(u.Doc)
			}
			g.Id(UnitConstName(u.Name)).Op("=").
				Id("QuantityUnit").Types(Id(t.Value)).
				Values(Id("Name").Op(":").Lit(u.Name))
		}
	})
}

func generateUnitTable(f *File, t UnitTable) {
	items := make([]Code, 0, len(t.Units))
	for _, u := range t.Units {
		symbols := make([]Code, 0, len(u.Symbols))
		for _, s := range u.Symbols {
			symbols = append(symbols, Lit(s))
		}
		items = append(items, Values(
			Id("name").Op(":").Lit(u.Name),
			Id("symbols").Op(":").Index().String().Values(symbols...),
			Id("factor").Op(":").Lit(u.Factor),
			Id("divisor").Op(":").Lit(u.Divisor),
		))
	}

	f.Var().Id(strcase.ToLowerCamel(t.Type)+"Units").Op("=").Id("newUnitTable").Call(
		Id(t.Value+"Type"),
		Lit(t.Base),
		Index().Id("unitDef").Custom(Options{
			Open:      "{",
			Close:     "}",
			Separator: ",",
			Multi:     true,
		}, items...),
	)
}
