package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/declgen-tools/cli/internal/config"
	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/internal/store"
	"github.com/declgen-tools/cli/internal/testutil"
)

const fixtureGoMod = "module fixture.test\n\ngo 1.25\n"

const fixtureCommands = `package cmds

import "context"

// Create a user account.
//
//dg:command
func UserCreate(ctx context.Context, email string, admin bool) (string, error) {
	_ = admin
	return email, nil
}

// Delete a user account.
//
//dg:command
func UserDelete(ctx context.Context, email string) error {
	_ = email
	return nil
}
`

// writeFixture lays out a minimal module with command declarations and
// makes it the working directory for the test.
func writeFixture(t *testing.T, commandsSource string) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(fixtureGoMod), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cmds"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cmds", "user.go"), []byte(commandsSource), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cmd", "app"), 0755))

	t.Chdir(dir)
	return dir
}

func fixtureConfig() config.Config {
	cfg := config.Default()
	cfg.Cache = false
	cfg.ManifestDir = filepath.Join("cmd", "app")
	return cfg
}

func TestRunGeneratesArtifacts(t *testing.T) {
	dir := writeFixture(t, fixtureCommands)
	cfg := fixtureConfig()

	report, err := run(context.Background(), nil, cfg, false, false)
	require.NoError(t, err)

	require.Equal(t, 1, report.Packages)
	require.Equal(t, 2, report.Commands)
	require.Len(t, report.Written, 2)
	require.Empty(t, report.Skipped)
	require.False(t, report.DryRun)

	artifact, err := os.ReadFile(filepath.Join(dir, "cmds", "zz_generated_commands.go"))
	require.NoError(t, err)
	require.Contains(t, string(artifact), "_declgen_user_create")
	require.Contains(t, string(artifact), "_declgen_user_delete")
	require.Contains(t, string(artifact), "registry.Register")

	manifest, err := os.ReadFile(filepath.Join(dir, "cmd", "app", "zz_generated_manifest.go"))
	require.NoError(t, err)
	require.Contains(t, string(manifest), `_ "fixture.test/cmds"`)
}

func TestRunDryRunWritesNothing(t *testing.T) {
	dir := writeFixture(t, fixtureCommands)
	cfg := fixtureConfig()

	report, err := run(context.Background(), nil, cfg, false, true)
	require.NoError(t, err)

	require.True(t, report.DryRun)
	require.Len(t, report.Written, 2)

	_, err = os.Stat(filepath.Join(dir, "cmds", "zz_generated_commands.go"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "cmd", "app", "zz_generated_manifest.go"))
	require.True(t, os.IsNotExist(err))
}

func TestRunValidationFailure(t *testing.T) {
	writeFixture(t, `package cmds

//dg:command
func UserCreate(email string) {
	_ = email
}
`)
	cfg := fixtureConfig()

	_, err := run(context.Background(), nil, cfg, false, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "returns nothing")
}

func TestRunCancelledContext(t *testing.T) {
	writeFixture(t, fixtureCommands)
	cfg := fixtureConfig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(ctx, nil, cfg, false, false)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckClean(t *testing.T) {
	writeFixture(t, fixtureCommands)

	report, err := check(context.Background(), nil, fixtureConfig())
	require.NoError(t, err)
	require.True(t, report.Clean)
	require.Equal(t, 1, report.Packages)
	require.Equal(t, 2, report.Commands)
}

func TestCheckReportsViolations(t *testing.T) {
	writeFixture(t, `package cmds

//dg:command
func UserCreate(email string) {
	_ = email
}
`)

	report, err := check(context.Background(), nil, fixtureConfig())
	require.Error(t, err)
	require.False(t, report.Clean)
}

func TestScanNoDeclarations(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(fixtureGoMod), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.go"), []byte("package fixture\n\nfunc Plain() {}\n"), 0644))
	t.Chdir(dir)

	_, err := scan(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no command declarations")
}

func TestSourceFilesExcludesArtifacts(t *testing.T) {
	pkg := &decl.Package{
		Dir: "cmds",
		Files: []string{
			"cmds/user.go",
			"cmds/zz_generated_commands.go",
			"cmds/zz_generated_manifest.go",
		},
	}

	got := sourceFiles(pkg, config.Default())
	require.Equal(t, []string{"cmds/user.go"}, got)
}

func TestHashFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package a\n"), 0644))

	first, err := hashFiles([]string{path})
	require.NoError(t, err)
	require.Len(t, first[path], 64)

	again, err := hashFiles([]string{path})
	require.NoError(t, err)
	require.Equal(t, first, again)

	require.NoError(t, os.WriteFile(path, []byte("package b\n"), 0644))
	changed, err := hashFiles([]string{path})
	require.NoError(t, err)
	require.NotEqual(t, first[path], changed[path])
}

func TestHashFilesMissingFile(t *testing.T) {
	_, err := hashFiles([]string{filepath.Join(t.TempDir(), "gone.go")})
	require.Error(t, err)
}

func TestUnchanged(t *testing.T) {
	cache := store.NewWithDB(testutil.NewTestDB(t))
	cfg := config.Default()

	dir := t.TempDir()
	source := filepath.Join(dir, "user.go")
	require.NoError(t, os.WriteFile(source, []byte("package cmds\n"), 0644))

	pkg := &decl.Package{Dir: dir, Files: []string{source}}
	hashes, err := hashFiles([]string{source})
	require.NoError(t, err)

	// Nothing recorded yet.
	require.False(t, unchanged(cache, pkg, hashes, cfg))

	runID, err := cache.BeginRun()
	require.NoError(t, err)
	recordHashes(cache, runID, hashes)

	// Hashes match but the artifact is missing.
	require.False(t, unchanged(cache, pkg, hashes, cfg))

	artifact := filepath.Join(dir, cfg.OutputFile)
	require.NoError(t, os.WriteFile(artifact, []byte("package cmds\n"), 0644))
	require.True(t, unchanged(cache, pkg, hashes, cfg))

	// A source edit invalidates the package.
	require.NoError(t, os.WriteFile(source, []byte("package cmds // edited\n"), 0644))
	hashes, err = hashFiles([]string{source})
	require.NoError(t, err)
	require.False(t, unchanged(cache, pkg, hashes, cfg))
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("instrumentation: true\n"), 0644))

	cfg, err := loadConfig(&path)
	require.NoError(t, err)
	require.True(t, cfg.Instrumentation)

	missing := filepath.Join(dir, "nope.yaml")
	_, err = loadConfig(&missing)
	require.Error(t, err)
}
