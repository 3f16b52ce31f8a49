package decl

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"
)

// Package is the scan result for one Go package: every declaration found in
// its files, in source order.
type Package struct {
	Name    string
	PkgPath string
	Dir     string
	Files   []string
	Decls   []Declaration
}

// Load scans the packages matched by the given patterns (relative to dir)
// for command declarations. Only syntax is loaded; type-checking is not
// required because inference is a table lookup on the declared type.
func Load(dir string, patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	var out []*Package
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("load %s: %s", pkg.PkgPath, pkg.Errors[0].Msg)
		}

		scanned := &Package{Name: pkg.Name, PkgPath: pkg.PkgPath}
		for _, file := range pkg.Syntax {
			filename := pkg.Fset.Position(file.Package).Filename
			if scanned.Dir == "" {
				scanned.Dir = dirOf(filename)
			}
			scanned.Files = append(scanned.Files, filename)
			scanned.Decls = append(scanned.Decls, ScanFile(pkg.Fset, file, filename, pkg.PkgPath)...)
		}

		if len(scanned.Decls) > 0 {
			out = append(out, scanned)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PkgPath < out[j].PkgPath })
	return out, nil
}

// ScanFile extracts every command declaration from a single parsed file.
// It is the unit the build pipeline and the tests share; Load is a thin
// go/packages wrapper around it.
func ScanFile(fset *token.FileSet, file *ast.File, filename, pkgPath string) []Declaration {
	imports := importMap(file)

	var decls []Declaration
	for _, raw := range file.Decls {
		fn, ok := raw.(*ast.FuncDecl)
		if !ok || fn.Recv != nil {
			continue
		}
		marker, ok := findMarker(fset, fn)
		if !ok {
			continue
		}
		decls = append(decls, buildDeclaration(fset, file, fn, marker, imports, filename, pkgPath))
	}
	return decls
}

func buildDeclaration(
	fset *token.FileSet,
	file *ast.File,
	fn *ast.FuncDecl,
	marker Marker,
	imports map[string]string,
	filename, pkgPath string,
) Declaration {
	category, action := commandName(marker, fn.Name.Name, filename)

	doc := parseDoc(fn.Doc.Text())

	d := Declaration{
		Category: category,
		Action:   action,
		Summary:  doc.summary,
		FuncName: fn.Name.Name,
		File:     filename,
		PkgName:  file.Name.Name,
		PkgPath:  pkgPath,
		Pos:      fset.Position(fn.Pos()),
		Marker:   marker,
		Func:     fn,
	}

	if fn.Type.Params != nil {
		first := true
		for _, field := range fn.Type.Params.List {
			if first && len(field.Names) == 1 && isContextParam(field.Type, imports) {
				d.HasContext = true
				first = false
				continue
			}
			first = false
			desc := typeDesc(field.Type, imports)
			for _, name := range field.Names {
				p := Parameter{
					Name: kebabCase(name.Name),
					Type: desc,
					Tags: map[string]string{},
				}
				if arg, ok := doc.args[p.Name]; ok {
					p.Help = arg.help
					p.Tags = arg.tags
				} else if arg, ok := doc.args[name.Name]; ok {
					// Doc block may use the Go parameter name as written.
					p.Help = arg.help
					p.Tags = arg.tags
				}
				d.Params = append(d.Params, p)
			}
		}
	}

	if fn.Type.Results != nil {
		for _, field := range fn.Type.Results.List {
			n := len(field.Names)
			if n == 0 {
				n = 1
			}
			for i := 0; i < n; i++ {
				d.Results = append(d.Results, types.ExprString(field.Type))
			}
		}
	}

	return d
}

func dirOf(filename string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '/' {
			return filename[:i]
		}
	}
	return "."
}
