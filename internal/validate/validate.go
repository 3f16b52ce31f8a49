// Package validate is the error-proofing gate between declaration parsing
// and code generation. It runs independent structural checks against the
// scanned IR and reports every violation as a structured diagnostic; any
// error aborts generation, never a silent fallback. Validation only
// rejects, it never rewrites a declaration.
package validate

import (
	"fmt"

	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/internal/diag"
)

// DefaultComplexityThreshold is the decision-point ceiling for a command
// function body. It is policy, not physics: tune it per project via config.
const DefaultComplexityThreshold = 5

// Config carries the tunable validation policy.
type Config struct {
	// ComplexityThreshold is the maximum decision-point count allowed in a
	// command function body. Zero means DefaultComplexityThreshold.
	ComplexityThreshold int

	// ForbiddenParamTypes are type patterns command parameters must not
	// use. A pattern ending in "." matches any type from that package.
	// The CLI-input family (handler, registry) is always forbidden.
	ForbiddenParamTypes []string
}

func (c Config) threshold() int {
	if c.ComplexityThreshold > 0 {
		return c.ComplexityThreshold
	}
	return DefaultComplexityThreshold
}

// Check runs every rule over the full scan set and returns the collected
// diagnostics. Duplicate detection must see all packages at once, which is
// why the whole set comes in together.
func Check(pkgs []*decl.Package, cfg Config) diag.List {
	var diags diag.List

	seen := make(map[[2]string]*decl.Declaration)

	for _, pkg := range pkgs {
		for i := range pkg.Decls {
			d := &pkg.Decls[i]
			diags = append(diags, checkMarker(d)...)
			diags = append(diags, checkReturnContract(d)...)
			diags = append(diags, checkComplexity(d, cfg.threshold())...)
			diags = append(diags, checkCoupling(d, cfg.ForbiddenParamTypes)...)
			diags = append(diags, checkParamShape(d)...)
			diags = append(diags, checkDuplicate(d, seen)...)
		}
	}

	return diags
}

// checkDuplicate flags the second and later declarations resolving to an
// already-claimed (category, action) pair. The generated guard variable
// names enforce this in-package at compile time; this check extends the
// guarantee across the whole scan set.
func checkDuplicate(d *decl.Declaration, seen map[[2]string]*decl.Declaration) diag.List {
	key := [2]string{d.Category, d.Action}
	if first, ok := seen[key]; ok {
		return diag.List{{
			Pos:       d.Pos,
			Rule:      diag.RuleDuplicateCommand,
			Construct: "func " + d.FuncName,
			Message: fmt.Sprintf("command %q %q is already declared by %s (%s)",
				d.Category, d.Action, first.FuncName, first.Pos),
			Example: fmt.Sprintf("//dg:command \"%s-2\" \"%s\"\nfunc %s(...)", d.Action, d.Category, d.FuncName),
		}}
	}
	seen[key] = d
	return nil
}

// checkMarker enforces rule 2: marker arguments must be literal strings and
// number 0, 1 or 2.
func checkMarker(d *decl.Declaration) diag.List {
	m := d.Marker

	if len(m.Args) > 2 {
		return diag.List{{
			Pos:       m.Pos,
			Rule:      diag.RuleMarkerSyntax,
			Construct: m.Raw,
			Message:   fmt.Sprintf("marker takes at most 2 arguments (action, category), got %d", len(m.Args)),
			Example:   decl.Directive + ` "create" "user"`,
		}}
	}

	for _, arg := range m.Args {
		if !arg.Quoted {
			return diag.List{{
				Pos:       m.Pos,
				Rule:      diag.RuleMarkerSyntax,
				Construct: m.Raw,
				Message:   fmt.Sprintf("marker argument %s must be a quoted string literal", arg.Text),
				Example:   fmt.Sprintf("%s %q", decl.Directive, arg.Text),
			}}
		}
	}

	return nil
}
