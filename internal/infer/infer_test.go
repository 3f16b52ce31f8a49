package infer

import (
	"go/parser"
	"go/token"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/registry"
)

func declaration(t *testing.T, src string) *decl.Declaration {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "server.go", src, parser.ParseComments)
	require.NoError(t, err)
	decls := decl.ScanFile(fset, file, "server.go", "example.test/app")
	require.Len(t, decls, 1)
	return &decls[0]
}

func TestArgumentsKinds(t *testing.T) {
	d := declaration(t, `package app

import "github.com/declgen-tools/cli/handler"

//dg:command
func ServerStart(name string, force bool, verbose handler.Count, tags []string, host *string) error {
	return nil
}
`)
	args := Arguments(d)
	require.Len(t, args, 5)

	require.Equal(t, "name", args[0].Name)
	require.Equal(t, registry.KindScalar, args[0].Kind)
	require.True(t, args[0].Required)
	require.Equal(t, "text", args[0].Parser)

	require.Equal(t, registry.KindSwitch, args[1].Kind)
	require.False(t, args[1].Required)

	require.Equal(t, registry.KindCounter, args[2].Kind)

	require.Equal(t, registry.KindList, args[3].Kind)
	require.False(t, args[3].Required)

	require.Equal(t, registry.KindScalar, args[4].Kind)
	require.False(t, args[4].Required, "optional parameter must not be required")
}

func TestArgumentsBoundsFromBitWidth(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		wantMin int64
		wantMax uint64
	}{
		{name: "uint8", typ: "uint8", wantMin: 0, wantMax: 255},
		{name: "uint16", typ: "uint16", wantMin: 0, wantMax: 65535},
		{name: "int8", typ: "int8", wantMin: -128, wantMax: 127},
		{name: "int16", typ: "int16", wantMin: -32768, wantMax: 32767},
		{name: "int64", typ: "int64", wantMin: math.MinInt64, wantMax: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := declaration(t, `package app

//dg:command
func ServerStart(value `+tt.typ+`) error { return nil }
`)
			args := Arguments(d)
			require.Len(t, args, 1)
			require.NotNil(t, args[0].Bounds)
			require.Equal(t, tt.wantMin, args[0].Bounds.Min)
			require.Equal(t, tt.wantMax, args[0].Bounds.Max)
		})
	}
}

func TestArgumentsNoBoundsForPlatformInt(t *testing.T) {
	d := declaration(t, `package app

//dg:command
func ServerStart(count int) error { return nil }
`)
	args := Arguments(d)
	require.Nil(t, args[0].Bounds)
	require.Equal(t, "int", args[0].Parser)
}

func TestArgumentsOptionalUint16Port(t *testing.T) {
	d := declaration(t, `package app

//dg:command
func ServerStart(port *uint16) error { return nil }
`)
	args := Arguments(d)
	require.Len(t, args, 1)
	require.False(t, args[0].Required)
	require.Equal(t, registry.KindScalar, args[0].Kind)
	require.Equal(t, "uint", args[0].Parser)
	require.NotNil(t, args[0].Bounds)
	require.Equal(t, int64(0), args[0].Bounds.Min)
	require.Equal(t, uint64(65535), args[0].Bounds.Max)
}

func TestArgumentsBoolElements(t *testing.T) {
	d := declaration(t, `package app

//dg:command
func ServerStart(admin *bool, modes []bool) error {
	return nil
}
`)
	args := Arguments(d)
	require.Len(t, args, 2)

	require.Equal(t, registry.KindScalar, args[0].Kind)
	require.False(t, args[0].Required)
	require.Equal(t, "bool", args[0].Parser)
	require.Nil(t, args[0].Bounds)

	require.Equal(t, registry.KindList, args[1].Kind)
	require.Equal(t, "bool", args[1].Parser)
}

func TestArgumentsTagOverrides(t *testing.T) {
	d := declaration(t, `package app

// Start a server.
//
// Arguments:
//
//	port: listen port [default: 8080] [env: APP_PORT] [short: p]
//	mode: run mode [requires: port] [conflicts: profile] [group: runtime]
//	profile: hidden tuning profile [hide]
//
//dg:command
func ServerStart(port uint16, mode string, profile string) error { return nil }
`)
	args := Arguments(d)

	port := args[0]
	require.False(t, port.Required, "a default makes the argument optional")
	require.Equal(t, "8080", port.Default)
	require.Equal(t, "APP_PORT", port.EnvVar)
	require.Equal(t, "p", port.Short)

	mode := args[1]
	require.Equal(t, []string{"port"}, mode.Relationships.Requires)
	require.Equal(t, []string{"profile"}, mode.Relationships.Conflicts)
	require.Equal(t, "runtime", mode.Relationships.Group)

	require.True(t, args[2].Hidden)
}

func TestArgumentsPure(t *testing.T) {
	d := declaration(t, `package app

// Start a server.
//
// Arguments:
//
//	port: listen port [default: 8080]
//
//dg:command
func ServerStart(port uint16, tags []string) error { return nil }
`)
	first := Arguments(d)
	second := Arguments(d)
	require.Equal(t, first, second, "inference must be deterministic for the same declaration")
}
