package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/declgen-tools/cli/usage"
)

func TestOk(t *testing.T) {
	out := Ok(map[string]int{"count": 3})
	require.False(t, out.IsError())
	require.Equal(t, "ok", out.Status)
	require.NoError(t, out.Err())
}

func TestFailDomainError(t *testing.T) {
	orig := errors.New("connection refused")
	out := Fail(orig)

	require.True(t, out.IsError())
	require.Equal(t, "error", out.Status)
	require.Equal(t, "domain", out.Error.Kind)
	require.Equal(t, "connection refused", out.Error.Message)
	require.Same(t, orig, out.Err())
}

func TestFailUsageError(t *testing.T) {
	out := Fail(usage.MissingArgument("email"))

	require.True(t, out.IsError())
	require.Equal(t, "missing_argument", out.Error.Kind)
	require.Equal(t, "email", out.Error.Argument)
}

func TestOutputJSON(t *testing.T) {
	got, err := Ok("done").JSON()
	require.NoError(t, err)
	require.Contains(t, got, `"status": "ok"`)
	require.Contains(t, got, `"result": "done"`)
	require.NotContains(t, got, "error")
}

func TestOutputYAML(t *testing.T) {
	got, err := Fail(errors.New("boom")).YAML()
	require.NoError(t, err)
	require.Contains(t, got, "status: error")
	require.Contains(t, got, "kind: domain")
	require.Contains(t, got, "message: boom")
}
