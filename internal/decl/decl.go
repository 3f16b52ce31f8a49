// Package decl implements the declaration parser: it scans Go packages for
// functions carrying a //dg:command directive and turns each one into an
// immutable intermediate representation of the command it declares. Parsing
// never mutates source; all checking happens later in the validator.
package decl

import (
	"go/ast"
	"go/token"
)

// Kind is the closed tag of a type descriptor.
type Kind int

const (
	KindScalar Kind = iota
	KindOptional
	KindBool
	KindCounter
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindOptional:
		return "optional"
	case KindBool:
		return "bool"
	case KindCounter:
		return "counter"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// ScalarKind is the sub-kind of a scalar descriptor, derived purely from the
// declared parameter type.
type ScalarKind int

const (
	ScalarText ScalarKind = iota
	ScalarInt
	ScalarUint
	ScalarFloat
	ScalarDuration
	ScalarPath
	ScalarAddr
	ScalarURL
)

func (s ScalarKind) String() string {
	switch s {
	case ScalarText:
		return "text"
	case ScalarInt:
		return "int"
	case ScalarUint:
		return "uint"
	case ScalarFloat:
		return "float"
	case ScalarDuration:
		return "duration"
	case ScalarPath:
		return "path"
	case ScalarAddr:
		return "addr"
	case ScalarURL:
		return "url"
	default:
		return "text"
	}
}

// TypeDesc describes a parameter's declared type. Immutable once built.
type TypeDesc struct {
	Kind   Kind
	Elem   *TypeDesc // inner type for Optional and List
	Scalar ScalarKind
	Bits   int    // integer bit width; 0 for platform-sized int/uint
	Expr   string // the declared Go type, as written
}

// MarkerArg is one argument of a //dg:command directive, kept raw so the
// validator can diagnose non-literal forms precisely.
type MarkerArg struct {
	Text   string // token as written
	Value  string // unquoted value, valid only when Quoted
	Quoted bool
}

// Marker is the parsed //dg:command directive.
type Marker struct {
	Raw  string
	Args []MarkerArg
	Pos  token.Position
}

// Parameter is one declared function parameter and its documentation.
type Parameter struct {
	Name string
	Type TypeDesc
	Help string
	// Tags holds explicit bracketed overrides from the Arguments block,
	// keyed by tag name; presence-only tags map to "".
	Tags map[string]string
}

// Declaration is the IR of one annotated command function. Created once per
// function at build time; never mutated after validation.
type Declaration struct {
	Category string
	Action   string
	Summary  string // first sentence of the doc comment, tags stripped

	FuncName string
	File     string
	PkgName  string
	PkgPath  string
	Pos      token.Position

	Marker     Marker
	Params     []Parameter
	Results    []string // declared result types, as written
	HasContext bool     // first parameter is a context.Context pass-through

	// Func is retained for the validator's structural checks.
	Func *ast.FuncDecl
}
