package decl

import (
	"go/ast"
	"go/types"
	"strconv"
	"strings"
)

// handlerPkgPath is the package whose named types (Count, Path) carry
// inference meaning.
const handlerPkgPath = "github.com/declgen-tools/cli/handler"

// importMap maps each import's local name to its path for one file.
// Unnamed imports are keyed by the path's base segment, which is the
// overwhelmingly common case for the packages recognized here.
func importMap(file *ast.File) map[string]string {
	m := make(map[string]string)
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := path
		if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
			name = path[idx+1:]
		}
		if spec.Name != nil {
			name = spec.Name.Name
		}
		m[name] = path
	}
	return m
}

// typeDesc derives the closed type descriptor for a declared parameter
// type. The mapping is purely syntactic: a compile-time table lookup on the
// declared type, never reflection.
func typeDesc(expr ast.Expr, imports map[string]string) TypeDesc {
	desc := typeDescInner(expr, imports)
	desc.Expr = types.ExprString(expr)
	return desc
}

func typeDescInner(expr ast.Expr, imports map[string]string) TypeDesc {
	switch t := expr.(type) {
	case *ast.StarExpr:
		elem := typeDesc(t.X, imports)
		// A pointer to a URL stays a plain URL scalar; *url.URL is the
		// conventional way to pass one.
		if elem.Kind == KindScalar && elem.Scalar == ScalarURL {
			return TypeDesc{Kind: KindScalar, Scalar: ScalarURL}
		}
		return TypeDesc{Kind: KindOptional, Elem: &elem}

	case *ast.ArrayType:
		if t.Len != nil {
			return TypeDesc{Kind: KindScalar, Scalar: ScalarText}
		}
		elem := typeDesc(t.Elt, imports)
		return TypeDesc{Kind: KindList, Elem: &elem}

	case *ast.Ident:
		return identDesc(t.Name)

	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			return TypeDesc{Kind: KindScalar, Scalar: ScalarText}
		}
		return selectorDesc(imports[pkg.Name], t.Sel.Name)
	}

	return TypeDesc{Kind: KindScalar, Scalar: ScalarText}
}

func identDesc(name string) TypeDesc {
	switch name {
	case "bool":
		return TypeDesc{Kind: KindBool}
	case "string":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarText}
	case "int":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarInt}
	case "int8":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarInt, Bits: 8}
	case "int16":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarInt, Bits: 16}
	case "int32", "rune":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarInt, Bits: 32}
	case "int64":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarInt, Bits: 64}
	case "uint":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarUint}
	case "uint8", "byte":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarUint, Bits: 8}
	case "uint16":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarUint, Bits: 16}
	case "uint32":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarUint, Bits: 32}
	case "uint64":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarUint, Bits: 64}
	case "float32", "float64":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarFloat}
	default:
		// Unrecognized local named type: generic text parse.
		return TypeDesc{Kind: KindScalar, Scalar: ScalarText}
	}
}

func selectorDesc(pkgPath, name string) TypeDesc {
	switch {
	case pkgPath == "time" && name == "Duration":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarDuration}
	case pkgPath == "net/netip" && name == "Addr":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarAddr}
	case pkgPath == "net/url" && name == "URL":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarURL}
	case pkgPath == handlerPkgPath && name == "Count":
		return TypeDesc{Kind: KindCounter}
	case pkgPath == handlerPkgPath && name == "Path":
		return TypeDesc{Kind: KindScalar, Scalar: ScalarPath}
	default:
		return TypeDesc{Kind: KindScalar, Scalar: ScalarText}
	}
}

// isContextParam reports whether the expression is context.Context.
func isContextParam(expr ast.Expr, imports map[string]string) bool {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	return imports[pkg.Name] == "context" && sel.Sel.Name == "Context"
}
