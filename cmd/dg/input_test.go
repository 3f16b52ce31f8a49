package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/declgen-tools/cli/registry"
	"github.com/declgen-tools/cli/usage"
)

func deployDescriptor() *registry.RegistrationDescriptor {
	return &registry.RegistrationDescriptor{
		Category: "server",
		Action:   "deploy",
		Args: []registry.ArgumentMetadata{
			{Name: "target", Kind: registry.KindScalar, Required: true},
			{Name: "replicas", Kind: registry.KindScalar, Parser: "uint"},
			{Name: "force", Kind: registry.KindSwitch, Short: "f"},
			{Name: "verbose", Kind: registry.KindCounter, Short: "v"},
			{Name: "tags", Kind: registry.KindList},
		},
	}
}

func TestBuildInputFlags(t *testing.T) {
	in, err := buildInput(deployDescriptor(), []string{
		"--target", "prod", "--replicas=3", "-f", "-v", "-v",
	})
	require.NoError(t, err)

	target, ok := in.Value("target")
	require.True(t, ok)
	require.Equal(t, "prod", target)

	replicas, ok := in.Value("replicas")
	require.True(t, ok)
	require.Equal(t, "3", replicas)

	require.True(t, in.Present("force"))
	require.Equal(t, 2, in.Occurrences("verbose"))
}

func TestBuildInputPositionals(t *testing.T) {
	// The bare value binds to the unbound required scalar, the overflow
	// goes to the list argument.
	in, err := buildInput(deployDescriptor(), []string{"prod", "web", "db"})
	require.NoError(t, err)

	target, _ := in.Value("target")
	require.Equal(t, "prod", target)
	require.Equal(t, []string{"web", "db"}, in.Values("tags"))
}

func TestBuildInputPositionalSkipsFlagBoundScalar(t *testing.T) {
	in, err := buildInput(deployDescriptor(), []string{"--target", "prod", "web"})
	require.NoError(t, err)
	require.Equal(t, []string{"web"}, in.Values("tags"))
}

func TestBuildInputErrors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		kind   usage.ErrorKind
	}{
		{name: "unknown flag", tokens: []string{"--bogus"}, kind: usage.ErrInvalidFlag},
		{name: "unknown short", tokens: []string{"-z"}, kind: usage.ErrInvalidFlag},
		{name: "switch with value", tokens: []string{"--force=yes"}, kind: usage.ErrInvalidArgumentValue},
		{name: "scalar without value", tokens: []string{"--target"}, kind: usage.ErrInvalidArgumentValue},
		{name: "scalar followed by flag", tokens: []string{"--target", "-f"}, kind: usage.ErrInvalidArgumentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildInput(deployDescriptor(), tt.tokens)
			require.Error(t, err)
			ue, ok := err.(*usage.Error)
			require.True(t, ok)
			require.Equal(t, tt.kind, ue.Kind)
		})
	}
}

func TestBuildInputUnexpectedPositional(t *testing.T) {
	desc := &registry.RegistrationDescriptor{
		Args: []registry.ArgumentMetadata{
			{Name: "force", Kind: registry.KindSwitch},
		},
	}
	_, err := buildInput(desc, []string{"stray"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected argument 'stray'")
}

func TestCheckRelationships(t *testing.T) {
	desc := &registry.RegistrationDescriptor{
		Args: []registry.ArgumentMetadata{
			{Name: "user", Kind: registry.KindScalar,
				Relationships: registry.Relationships{Requires: []string{"team"}}},
			{Name: "team", Kind: registry.KindScalar},
			{Name: "all", Kind: registry.KindSwitch,
				Relationships: registry.Relationships{Conflicts: []string{"user"}}},
			{Name: "reset", Kind: registry.KindSwitch, Exclusive: true},
		},
	}

	t.Run("requires satisfied", func(t *testing.T) {
		_, err := buildInput(desc, []string{"--user", "ada", "--team", "core"})
		require.NoError(t, err)
	})

	t.Run("requires missing", func(t *testing.T) {
		_, err := buildInput(desc, []string{"--user", "ada"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "requires 'team'")
	})

	t.Run("conflict", func(t *testing.T) {
		_, err := buildInput(desc, []string{"--all", "--user", "ada", "--team", "core"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "conflicts with 'user'")
	})

	t.Run("exclusive alone", func(t *testing.T) {
		_, err := buildInput(desc, []string{"--reset"})
		require.NoError(t, err)
	})

	t.Run("exclusive with others", func(t *testing.T) {
		_, err := buildInput(desc, []string{"--reset", "--team", "core"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be used alone")
	})
}

func TestParseGlobals(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     globalOptions
		wantRest []string
	}{
		{
			name:     "defaults",
			args:     []string{"user", "create"},
			want:     globalOptions{format: "text"},
			wantRest: []string{"user", "create"},
		},
		{
			name:     "format separate",
			args:     []string{"--format", "json", "cache", "stats"},
			want:     globalOptions{format: "json"},
			wantRest: []string{"cache", "stats"},
		},
		{
			name:     "format equals",
			args:     []string{"cache", "stats", "--format=yaml"},
			want:     globalOptions{format: "yaml"},
			wantRest: []string{"cache", "stats"},
		},
		{
			name:     "no color and help",
			args:     []string{"--no-color", "-h"},
			want:     globalOptions{format: "text", noColor: true, help: true},
			wantRest: nil,
		},
		{
			name:     "version",
			args:     []string{"-V"},
			want:     globalOptions{format: "text", version: true},
			wantRest: nil,
		},
		{
			name:     "command flags pass through",
			args:     []string{"gen", "run", "--force"},
			want:     globalOptions{format: "text"},
			wantRest: []string{"gen", "run", "--force"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, rest := parseGlobals(tt.args)
			require.Equal(t, tt.want, opts)
			require.Equal(t, tt.wantRest, rest)
		})
	}
}
