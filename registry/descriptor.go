package registry

import (
	"context"

	"github.com/declgen-tools/cli/handler"
)

// AdapterFunc bridges the untyped input bag to a typed command function.
// Generated by dg, one per declared command.
type AdapterFunc func(ctx context.Context, in handler.Input) handler.Output

// ArgumentKind classifies how an argument is presented to the user.
type ArgumentKind int

const (
	// KindScalar takes a single value (required or optional).
	KindScalar ArgumentKind = iota
	// KindSwitch is a boolean flag; presence toggles true.
	KindSwitch
	// KindCounter increments once per repetition of the flag.
	KindCounter
	// KindList accepts one or more occurrences, collected in order.
	KindList
)

func (k ArgumentKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSwitch:
		return "switch"
	case KindCounter:
		return "counter"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Bounds is an inclusive numeric validation range.
type Bounds struct {
	Min int64
	Max uint64
}

// Relationships captures structured-documentation constraints between
// arguments: requires/conflicts pairs and mutual-exclusion groups.
type Relationships struct {
	Requires  []string
	Conflicts []string
	Group     string
}

// ArgumentMetadata describes one argument of a registered command. It is
// produced by type inference at build time, with explicit doc-tag overrides
// folded in, and is read-only at runtime.
type ArgumentMetadata struct {
	Name     string
	Required bool
	Kind     ArgumentKind
	Help     string

	// Parser is the value-parsing hint inferred from the parameter type:
	// text, int, uint, float, duration, path, addr or url.
	Parser string

	// Bounds holds the inferred numeric range, nil for non-numeric arguments.
	Bounds *Bounds

	Relationships Relationships

	// Explicit overrides from bracketed doc tags.
	Short     string
	Default   string
	EnvVar    string
	Hidden    bool
	Global    bool
	Exclusive bool
}

// RegistrationDescriptor describes one command: its place in the
// category/action tree, its argument metadata, and the adapter that
// executes it. Created once at build time, immutable afterwards.
type RegistrationDescriptor struct {
	Category string
	Action   string
	Summary  string
	Args     []ArgumentMetadata
	Adapter  AdapterFunc
}
