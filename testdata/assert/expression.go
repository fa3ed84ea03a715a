package assert

import (
	"testing"

	"github.com/damedic/dnf-toolbox-go/dnf"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ExpressionEqual fails t if the expressions differ structurally. Amounts
// compare by numeric value.
func ExpressionEqual(t *testing.T, expected, actual dnf.Node) {
	t.Helper()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("expression mismatch (-expected +actual):\n%s", diff)
	}
}

// ReferencesEqual fails t if actual does not reference exactly the expected
// identifiers in order.
func ReferencesEqual(t *testing.T, expected []dnf.Reference, actual dnf.Node) {
	t.Helper()
	if diff := cmp.Diff(expected, dnf.References(actual), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("references mismatch (-expected +actual):\n%s", diff)
	}
}
