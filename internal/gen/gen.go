// Package gen emits the build artifacts for a scanned package: one
// generated source file holding a typed-to-untyped adapter plus a
// registration guard per command, and a manifest file that makes the
// aggregation of every generated package explicit and debuggable.
package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"golang.org/x/tools/imports"

	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/internal/infer"
)

const header = "// Code generated by dg. DO NOT EDIT.\n\n"

// DefaultOutputFile is the per-package artifact name.
const DefaultOutputFile = "zz_generated_commands.go"

// DefaultManifestFile is the aggregation manifest name.
const DefaultManifestFile = "zz_generated_manifest.go"

// Options shapes generation. Instrumentation is the only switch that
// changes the emitted code: when set, every adapter opens a telemetry span
// named "<category>.<action>" around the call.
type Options struct {
	OutputFile      string
	Instrumentation bool
}

func (o Options) outputFile() string {
	if o.OutputFile != "" {
		return o.OutputFile
	}
	return DefaultOutputFile
}

// File is one artifact ready to be written.
type File struct {
	Path    string
	Content []byte
}

// CommandsFile generates the adapter-and-registration artifact for one
// scanned package. Commands are emitted sorted by (category, action) so
// output is deterministic regardless of scan order.
func CommandsFile(pkg *decl.Package, opts Options) (File, error) {
	decls := make([]*decl.Declaration, 0, len(pkg.Decls))
	for i := range pkg.Decls {
		decls = append(decls, &pkg.Decls[i])
	}
	sort.Slice(decls, func(i, j int) bool {
		if decls[i].Category != decls[j].Category {
			return decls[i].Category < decls[j].Category
		}
		return decls[i].Action < decls[j].Action
	})

	var b bytes.Buffer
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", pkg.Name)
	b.WriteString(generatedImports)

	for _, d := range decls {
		args := infer.Arguments(d)
		emitAdapter(&b, d, args, opts)
		emitRegistration(&b, d, args)
	}

	path := filepath.Join(pkg.Dir, opts.outputFile())
	formatted, err := imports.Process(path, b.Bytes(), nil)
	if err != nil {
		return File{}, fmt.Errorf("format generated code for %s: %w", pkg.PkgPath, err)
	}
	return File{Path: path, Content: formatted}, nil
}

// generatedImports is the superset of imports generated code may need;
// imports.Process prunes the unused ones per file.
const generatedImports = `import (
	"context"
	"net/netip"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/declgen-tools/cli/handler"
	"github.com/declgen-tools/cli/registry"
	"github.com/declgen-tools/cli/telemetry"
	"github.com/declgen-tools/cli/usage"
)

`

// ManifestFile generates the explicit aggregation manifest: a file in the
// named target package blank-importing every package that contributed
// registrations, so the whole collection is reachable from one import.
func ManifestFile(pkgs []*decl.Package, dir, pkgName, fileName string) File {
	if fileName == "" {
		fileName = DefaultManifestFile
	}

	paths := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		paths = append(paths, p.PkgPath)
	}
	sort.Strings(paths)

	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("// This manifest links every generated command registration into the\n")
	b.WriteString("// build. Each imported package registers its commands during package\n")
	b.WriteString("// initialization.\n")
	fmt.Fprintf(&b, "package %s\n\nimport (\n", pkgName)
	for _, p := range paths {
		fmt.Fprintf(&b, "\t_ %q\n", p)
	}
	b.WriteString(")\n")

	return File{Path: filepath.Join(dir, fileName), Content: b.Bytes()}
}
