package validate

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/internal/diag"
)

// delegateExample is the extract-and-delegate pattern shown when a command
// body exceeds the decision-point threshold.
const delegateExample = `//dg:command
func %[1]s(name string) (Report, error) {
	return %[2]s.%[1]s(name) // business logic lives in the domain package
}`

// plainParamsExample is shown when a command parameter couples the domain
// to the CLI layer.
const plainParamsExample = `//dg:command
func %s(name string, port uint16) (Report, error) { ... }`

// alwaysForbidden is the CLI-input/CLI-context type family: accepting one
// of these in a command function creates a dependency cycle between domain
// logic and the command layer.
var alwaysForbidden = []string{"handler.Input", "handler.Output", "registry."}

// checkComplexity enforces rule 4(a): a command function's own
// decision-point count must not exceed the threshold. A higher count means
// business logic has leaked into the command layer.
func checkComplexity(d *decl.Declaration, threshold int) diag.List {
	if d.Func == nil || d.Func.Body == nil {
		return nil
	}

	count := decisionPoints(d.Func.Body)
	if count <= threshold {
		return nil
	}

	return diag.List{{
		Pos:       d.Pos,
		Rule:      diag.RuleComplexity,
		Construct: "func " + d.FuncName,
		Message: fmt.Sprintf("command body has %d decision points (limit %d); extract the logic and delegate",
			count, threshold),
		Example: fmt.Sprintf(delegateExample, d.FuncName, d.PkgName),
	}}
}

// decisionPoints counts branches, loops and boolean combinators in a
// function body. Nested function literals count toward the total: their
// complexity still lives in the command body.
func decisionPoints(body *ast.BlockStmt) int {
	count := 0
	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt:
			count++
		case *ast.CaseClause:
			if n.List != nil { // default clause is not a decision
				count++
			}
		case *ast.CommClause:
			count++
		case *ast.BinaryExpr:
			if n.Op == token.LAND || n.Op == token.LOR {
				count++
			}
		}
		return true
	})
	return count
}

// checkCoupling enforces rule 4(b): command parameters must be plain typed
// values, never types from the CLI-input family.
func checkCoupling(d *decl.Declaration, extra []string) diag.List {
	patterns := append(append([]string{}, alwaysForbidden...), extra...)

	var diags diag.List
	for _, p := range d.Params {
		expr := strings.TrimLeft(p.Type.Expr, "*[]")
		for _, pat := range patterns {
			if !matchesPattern(expr, pat) {
				continue
			}
			diags = append(diags, diag.Diagnostic{
				Pos:       d.Pos,
				Rule:      diag.RuleCLICoupling,
				Construct: fmt.Sprintf("parameter %s %s of func %s", p.Name, p.Type.Expr, d.FuncName),
				Message: fmt.Sprintf("parameter %q uses CLI-layer type %s; declare plain typed parameters instead",
					p.Name, p.Type.Expr),
				Example: fmt.Sprintf(plainParamsExample, d.FuncName),
			})
			break
		}
	}
	return diags
}

// flatParamsExample is shown when a parameter nests optionals or lists
// beyond what adapter generation can recover from string input.
const flatParamsExample = `//dg:command
func %s(tags []string, limit *uint16) error { ... }`

// checkParamShape rejects parameter shapes the generator has no recovery
// code for: an optional or list must wrap a scalar or bool element.
// Emitting an adapter that cannot compile would be a silent fallback.
func checkParamShape(d *decl.Declaration) diag.List {
	var diags diag.List
	for _, p := range d.Params {
		t := &p.Type
		if t.Kind != decl.KindOptional && t.Kind != decl.KindList {
			continue
		}
		if t.Elem == nil || t.Elem.Kind == decl.KindScalar || t.Elem.Kind == decl.KindBool {
			continue
		}
		diags = append(diags, diag.Diagnostic{
			Pos:       d.Pos,
			Rule:      diag.RuleParamShape,
			Construct: fmt.Sprintf("parameter %s %s of func %s", p.Name, p.Type.Expr, d.FuncName),
			Message: fmt.Sprintf("parameter %q nests %s inside %s (%s); wrap a scalar or bool element instead",
				p.Name, t.Elem.Kind, t.Kind, p.Type.Expr),
			Example: fmt.Sprintf(flatParamsExample, d.FuncName),
		})
	}
	return diags
}

func matchesPattern(expr, pattern string) bool {
	if strings.HasSuffix(pattern, ".") {
		return strings.HasPrefix(expr, pattern)
	}
	return expr == pattern
}
