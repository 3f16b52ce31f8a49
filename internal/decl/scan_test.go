package decl

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
)

func scanSource(t *testing.T, filename, src string) []Declaration {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	require.NoError(t, err)
	return ScanFile(fset, file, filename, "example.test/app")
}

func TestScanFileFindsMarkedFunctions(t *testing.T) {
	src := `package app

import "context"

// Create a user account.
//
// Arguments:
//
//	email: the account email
//
//dg:command
func UserCreate(ctx context.Context, email string) (string, error) { return email, nil }

// Not a command.
func helper() {}
`
	decls := scanSource(t, "user.go", src)
	require.Len(t, decls, 1)

	d := decls[0]
	require.Equal(t, "user", d.Category)
	require.Equal(t, "create", d.Action)
	require.Equal(t, "Create a user account.", d.Summary)
	require.Equal(t, "UserCreate", d.FuncName)
	require.True(t, d.HasContext)
	require.Equal(t, []string{"string", "error"}, d.Results)

	require.Len(t, d.Params, 1)
	require.Equal(t, "email", d.Params[0].Name)
	require.Equal(t, KindScalar, d.Params[0].Type.Kind)
	require.Equal(t, "the account email", d.Params[0].Help)
}

func TestScanFileSkipsMethods(t *testing.T) {
	src := `package app

type svc struct{}

//dg:command
func (s svc) UserCreate() error { return nil }
`
	decls := scanSource(t, "user.go", src)
	require.Empty(t, decls)
}

func TestScanFileTypeInference(t *testing.T) {
	src := `package app

import (
	"context"
	"net/netip"
	"net/url"
	"time"

	"github.com/declgen-tools/cli/handler"
)

//dg:command
func ServerStart(
	ctx context.Context,
	port uint16,
	host *string,
	tags []string,
	force bool,
	verbose handler.Count,
	timeout time.Duration,
	bind netip.Addr,
	endpoint *url.URL,
	out handler.Path,
) error {
	return nil
}
`
	decls := scanSource(t, "server.go", src)
	require.Len(t, decls, 1)
	d := decls[0]
	require.True(t, d.HasContext)
	require.Len(t, d.Params, 9)

	byName := map[string]Parameter{}
	for _, p := range d.Params {
		byName[p.Name] = p
	}

	require.Equal(t, KindScalar, byName["port"].Type.Kind)
	require.Equal(t, ScalarUint, byName["port"].Type.Scalar)
	require.Equal(t, 16, byName["port"].Type.Bits)

	require.Equal(t, KindOptional, byName["host"].Type.Kind)
	require.Equal(t, ScalarText, byName["host"].Type.Elem.Scalar)

	require.Equal(t, KindList, byName["tags"].Type.Kind)
	require.Equal(t, KindBool, byName["force"].Type.Kind)
	require.Equal(t, KindCounter, byName["verbose"].Type.Kind)
	require.Equal(t, ScalarDuration, byName["timeout"].Type.Scalar)
	require.Equal(t, ScalarAddr, byName["bind"].Type.Scalar)
	require.Equal(t, ScalarPath, byName["out"].Type.Scalar)

	// *url.URL stays a plain URL scalar, not an optional.
	require.Equal(t, KindScalar, byName["endpoint"].Type.Kind)
	require.Equal(t, ScalarURL, byName["endpoint"].Type.Scalar)
}

func TestScanFileParamNamesKebabCased(t *testing.T) {
	src := `package app

//dg:command
func GenRun(dryRun bool, maxRetryCount int) error { return nil }
`
	decls := scanSource(t, "gen.go", src)
	require.Len(t, decls, 1)
	require.Equal(t, "dry-run", decls[0].Params[0].Name)
	require.Equal(t, "max-retry-count", decls[0].Params[1].Name)
}

func TestScanFileContextOnlyFirstParam(t *testing.T) {
	src := `package app

import "context"

//dg:command
func UserCreate(name string, ctx context.Context) error { return nil }
`
	decls := scanSource(t, "user.go", src)
	require.Len(t, decls, 1)
	require.False(t, decls[0].HasContext)
	require.Len(t, decls[0].Params, 2)
}
