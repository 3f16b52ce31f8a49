package validate

import (
	"fmt"
	"strings"

	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/internal/diag"
)

// returnShapes are the three accepted return-type shapes, shown verbatim in
// the diagnostic for a violation.
const returnShapes = `func %[1]s(...) Result            // serializable value
func %[1]s(...) (Result, error)   // serializable value or failure
func %[1]s(...) error             // failure only`

// checkReturnContract enforces rule 1: a command function must return a
// serializable value, a (value, error) pair, or a bare error.
func checkReturnContract(d *decl.Declaration) diag.List {
	fail := func(msg string) diag.List {
		return diag.List{{
			Pos:       d.Pos,
			Rule:      diag.RuleReturnContract,
			Construct: "func " + d.FuncName,
			Message:   msg + "; fix: return a serializable value, add an error, or drop extra results",
			Example:   fmt.Sprintf(returnShapes, d.FuncName),
		}}
	}

	switch len(d.Results) {
	case 0:
		return fail(fmt.Sprintf("%s returns nothing", d.FuncName))
	case 1:
		if d.Results[0] == "error" {
			return nil
		}
		if !serializable(d.Results[0]) {
			return fail(fmt.Sprintf("%s returns non-serializable %s", d.FuncName, d.Results[0]))
		}
		return nil
	case 2:
		if d.Results[1] != "error" {
			return fail(fmt.Sprintf("%s's second result must be error, got %s", d.FuncName, d.Results[1]))
		}
		if d.Results[0] == "error" || !serializable(d.Results[0]) {
			return fail(fmt.Sprintf("%s's success payload %s is not serializable", d.FuncName, d.Results[0]))
		}
		return nil
	default:
		return fail(fmt.Sprintf("%s returns %d values", d.FuncName, len(d.Results)))
	}
}

// serializable is a syntactic screen for types the output envelope cannot
// encode. It deliberately errs permissive: a struct full of channels still
// fails at runtime encoding, but the common misuses are caught at build
// time.
func serializable(typeExpr string) bool {
	stripped := strings.TrimLeft(typeExpr, "*[]")
	switch {
	case strings.HasPrefix(stripped, "func("), strings.HasPrefix(stripped, "func "):
		return false
	case strings.HasPrefix(stripped, "chan "), strings.HasPrefix(stripped, "chan<-"), strings.HasPrefix(stripped, "<-chan"):
		return false
	case stripped == "unsafe.Pointer":
		return false
	}
	return true
}
