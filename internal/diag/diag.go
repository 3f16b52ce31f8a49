// Package diag defines the structured build-time diagnostic: the single
// channel through which the generator communicates with the developer.
// Every diagnostic names the offending construct, the rule violated, and a
// corrected example.
package diag

import (
	"fmt"
	"go/token"
	"strings"
)

// Rule identifiers, stable across releases so they can be grepped and
// suppression-listed in CI.
const (
	RuleMarkerSyntax     = "marker-syntax"
	RuleReturnContract   = "return-contract"
	RuleDuplicateCommand = "duplicate-command"
	RuleComplexity       = "complexity"
	RuleCLICoupling      = "cli-coupling"
	RuleParamShape       = "param-shape"
)

// Diagnostic is one build-time failure. Generation aborts when any
// error-severity diagnostic is produced; there is no recovery path.
type Diagnostic struct {
	Pos       token.Position
	Rule      string
	Construct string // the offending construct, e.g. `func UserCreate`
	Message   string
	Example   string // corrected example shown to the developer
}

// String renders the diagnostic in file:line: message form with the
// corrected example indented underneath.
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.Pos.IsValid() {
		fmt.Fprintf(&b, "%s: ", d.Pos)
	}
	fmt.Fprintf(&b, "%s [%s]", d.Message, d.Rule)
	if d.Construct != "" {
		fmt.Fprintf(&b, "\n\toffending construct: %s", d.Construct)
	}
	if d.Example != "" {
		b.WriteString("\n\tcorrect form:\n")
		for _, line := range strings.Split(strings.TrimRight(d.Example, "\n"), "\n") {
			b.WriteString("\t\t" + line + "\n")
		}
	}
	return b.String()
}

// List is an ordered set of diagnostics from one generator run.
type List []Diagnostic

// HasErrors reports whether the run must abort.
func (l List) HasErrors() bool {
	return len(l) > 0
}

// Error makes a non-empty list usable as a single error value.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, d := range l {
		msgs[i] = d.String()
	}
	return strings.Join(msgs, "\n")
}
