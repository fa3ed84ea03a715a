package testdata

import (
	"bytes"
	_ "embed"
	"log"

	"gopkg.in/yaml.v3"
)

//go:embed parse.yaml
var parseYAML []byte

// ParseTests are the shared parse cases of the DnF grammar, grouped by entry
// rule.
type ParseTests struct {
	Groups []ParseTestGroup `yaml:"groups"`
}

type ParseTestGroup struct {
	Name  string      `yaml:"name"`
	Rule  string      `yaml:"rule"`
	Tests []ParseTest `yaml:"tests"`
}

type ParseTest struct {
	Input string `yaml:"input"`
	// Output is the canonical rendering of the parsed expression.
	Output string `yaml:"output"`
	// Error is "lex" or "parse" if the input must be rejected.
	Error      string               `yaml:"error"`
	References []ParseTestReference `yaml:"references"`
	// Identifier is set if a string rule must yield an identifier.
	Identifier bool `yaml:"identifier"`
}

type ParseTestReference struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

func GetParseTests() ParseTests {
	var tests ParseTests
	dec := yaml.NewDecoder(bytes.NewReader(parseYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&tests); err != nil {
		log.Fatal(err)
	}
	return tests
}
