package diag

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Pos:       token.Position{Filename: "internal/actions/user.go", Line: 14, Column: 1},
		Rule:      RuleReturnContract,
		Construct: "func UserCreate",
		Message:   "UserCreate returns nothing",
		Example:   "func UserCreate(...) error",
	}

	got := d.String()
	require.Contains(t, got, "internal/actions/user.go:14:1: ")
	require.Contains(t, got, "UserCreate returns nothing [return-contract]")
	require.Contains(t, got, "offending construct: func UserCreate")
	require.Contains(t, got, "correct form:")
	require.Contains(t, got, "\t\tfunc UserCreate(...) error")
}

func TestDiagnosticStringWithoutPosition(t *testing.T) {
	d := Diagnostic{Rule: RuleDuplicateCommand, Message: "duplicate command"}
	got := d.String()
	require.Equal(t, "duplicate command [duplicate-command]", got)
}

func TestListError(t *testing.T) {
	var empty List
	require.False(t, empty.HasErrors())

	l := List{
		{Rule: RuleComplexity, Message: "too complex"},
		{Rule: RuleCLICoupling, Message: "cli type leaked"},
	}
	require.True(t, l.HasErrors())
	require.Contains(t, l.Error(), "too complex [complexity]")
	require.Contains(t, l.Error(), "cli type leaked [cli-coupling]")
}
