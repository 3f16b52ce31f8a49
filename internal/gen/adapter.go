package gen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/registry"
)

// emitAdapter writes the adapter function for one declaration: recover each
// argument from the input bag in declaration order, parse it with the
// inferred routine, and call the original function. Failures come back as
// typed errors in the output envelope, never as process aborts.
func emitAdapter(b *bytes.Buffer, d *decl.Declaration, args []registry.ArgumentMetadata, opts Options) {
	name := adapterName(d)

	fmt.Fprintf(b, "func %s(ctx context.Context, in handler.Input) handler.Output {\n", name)

	if opts.Instrumentation {
		fmt.Fprintf(b, "\tctx, span := telemetry.StartSpan(ctx, %q,\n", d.Category+"."+d.Action)
		fmt.Fprintf(b, "\t\ttelemetry.String(\"category\", %q),\n", d.Category)
		fmt.Fprintf(b, "\t\ttelemetry.String(\"action\", %q))\n", d.Action)
		b.WriteString("\tdefer span.End()\n\n")
	}

	for i := range d.Params {
		emitParam(b, &d.Params[i], &args[i])
	}

	emitCall(b, d, opts)
	b.WriteString("}\n\n")
}

// emitParam writes the recovery code for one parameter, leaving a typed
// variable named <param>Arg in scope.
func emitParam(b *bytes.Buffer, p *decl.Parameter, meta *registry.ArgumentMetadata) {
	out := paramVar(p.Name)

	switch p.Type.Kind {
	case decl.KindBool:
		if p.Type.Expr == "bool" {
			fmt.Fprintf(b, "\t%s := in.Present(%q)\n", out, p.Name)
		} else {
			fmt.Fprintf(b, "\t%s := %s(in.Present(%q))\n", out, p.Type.Expr, p.Name)
		}

	case decl.KindCounter:
		fmt.Fprintf(b, "\t%s := %s(in.Occurrences(%q))\n", out, p.Type.Expr, p.Name)

	case decl.KindList:
		fmt.Fprintf(b, "\tvar %s %s\n", out, p.Type.Expr)
		fmt.Fprintf(b, "\tfor _, raw := range in.Values(%q) {\n", p.Name)
		lines, result := parseSnippet("item", "raw", p.Type.Elem, p.Name)
		for _, line := range lines {
			b.WriteString("\t\t" + line + "\n")
		}
		fmt.Fprintf(b, "\t\t%s = append(%s, %s)\n", out, out, result)
		b.WriteString("\t}\n")

	case decl.KindOptional:
		prefix := identPrefix(p.Name)
		fmt.Fprintf(b, "\tvar %s %s\n", out, p.Type.Expr)
		emitRawLookup(b, p.Name, prefix, meta)
		fmt.Fprintf(b, "\tif %sOK {\n", prefix)
		lines, result := parseSnippet(prefix, prefix+"Raw", p.Type.Elem, p.Name)
		for _, line := range lines {
			b.WriteString("\t\t" + line + "\n")
		}
		fmt.Fprintf(b, "\t\t%sVal := %s\n", prefix, result)
		fmt.Fprintf(b, "\t\t%s = &%sVal\n", out, prefix)
		b.WriteString("\t}\n")

	default: // plain scalar
		prefix := identPrefix(p.Name)
		emitRawLookup(b, p.Name, prefix, meta)
		if meta.Required {
			fmt.Fprintf(b, "\tif !%sOK {\n", prefix)
			fmt.Fprintf(b, "\t\treturn handler.Fail(usage.MissingArgument(%q))\n", p.Name)
			b.WriteString("\t}\n")
		}
		lines, result := parseSnippet(prefix, prefix+"Raw", &p.Type, p.Name)
		for _, line := range lines {
			b.WriteString("\t" + line + "\n")
		}
		fmt.Fprintf(b, "\t%s := %s\n", out, result)
	}

	b.WriteString("\n")
}

// emitRawLookup resolves the raw string for a scalar argument: input value
// first, then the bound environment variable, then the declared default.
func emitRawLookup(b *bytes.Buffer, argName, prefix string, meta *registry.ArgumentMetadata) {
	fmt.Fprintf(b, "\t%sRaw, %sOK := in.Value(%q)\n", prefix, prefix, argName)
	if meta.EnvVar != "" {
		fmt.Fprintf(b, "\tif !%sOK {\n", prefix)
		fmt.Fprintf(b, "\t\tif v, ok := os.LookupEnv(%q); ok {\n", meta.EnvVar)
		fmt.Fprintf(b, "\t\t\t%sRaw, %sOK = v, true\n", prefix, prefix)
		b.WriteString("\t\t}\n\t}\n")
	}
	if meta.Default != "" {
		fmt.Fprintf(b, "\tif !%sOK {\n", prefix)
		fmt.Fprintf(b, "\t\t%sRaw, %sOK = %q, true\n", prefix, prefix, meta.Default)
		b.WriteString("\t}\n")
	}
}

// parseSnippet returns the statements that parse rawVar and an expression
// of the target type. Parse failures return a typed invalid-value error
// naming the argument.
func parseSnippet(prefix, rawVar string, t *decl.TypeDesc, argName string) ([]string, string) {
	failLine := func(reason string) string {
		return fmt.Sprintf("return handler.Fail(usage.InvalidArgumentValue(%q, %s))", argName, reason)
	}
	typeExpr := t.Expr

	// A bool element (*bool, []bool) is recovered from its raw value, not
	// from flag presence.
	if t.Kind == decl.KindBool {
		lines := []string{
			fmt.Sprintf("%sV, %sErr := strconv.ParseBool(%s)", prefix, prefix, rawVar),
			fmt.Sprintf("if %sErr != nil {", prefix),
			"\t" + failLine(prefix+"Err.Error()"),
			"}",
		}
		result := fmt.Sprintf("%sV", prefix)
		if typeExpr != "bool" {
			result = fmt.Sprintf("%s(%sV)", typeExpr, prefix)
		}
		return lines, result
	}

	switch t.Scalar {
	case decl.ScalarInt:
		bits := t.Bits
		if bits == 0 {
			bits = 64
		}
		lines := []string{
			fmt.Sprintf("%sV, %sErr := strconv.ParseInt(%s, 10, %d)", prefix, prefix, rawVar, bits),
			fmt.Sprintf("if %sErr != nil {", prefix),
			"\t" + failLine(prefix+"Err.Error()"),
			"}",
		}
		return lines, fmt.Sprintf("%s(%sV)", typeExpr, prefix)

	case decl.ScalarUint:
		bits := t.Bits
		if bits == 0 {
			bits = 64
		}
		lines := []string{
			fmt.Sprintf("%sV, %sErr := strconv.ParseUint(%s, 10, %d)", prefix, prefix, rawVar, bits),
			fmt.Sprintf("if %sErr != nil {", prefix),
			"\t" + failLine(prefix+"Err.Error()"),
			"}",
		}
		return lines, fmt.Sprintf("%s(%sV)", typeExpr, prefix)

	case decl.ScalarFloat:
		lines := []string{
			fmt.Sprintf("%sV, %sErr := strconv.ParseFloat(%s, 64)", prefix, prefix, rawVar),
			fmt.Sprintf("if %sErr != nil {", prefix),
			"\t" + failLine(prefix+"Err.Error()"),
			"}",
		}
		return lines, fmt.Sprintf("%s(%sV)", typeExpr, prefix)

	case decl.ScalarDuration:
		lines := []string{
			fmt.Sprintf("%sV, %sErr := time.ParseDuration(%s)", prefix, prefix, rawVar),
			fmt.Sprintf("if %sErr != nil {", prefix),
			"\t" + failLine(prefix+"Err.Error()"),
			"}",
		}
		result := fmt.Sprintf("%sV", prefix)
		if typeExpr != "time.Duration" {
			result = fmt.Sprintf("%s(%sV)", typeExpr, prefix)
		}
		return lines, result

	case decl.ScalarAddr:
		lines := []string{
			fmt.Sprintf("%sV, %sErr := netip.ParseAddr(%s)", prefix, prefix, rawVar),
			fmt.Sprintf("if %sErr != nil {", prefix),
			"\t" + failLine(prefix+"Err.Error()"),
			"}",
		}
		return lines, fmt.Sprintf("%sV", prefix)

	case decl.ScalarURL:
		lines := []string{
			fmt.Sprintf("%sV, %sErr := url.Parse(%s)", prefix, prefix, rawVar),
			fmt.Sprintf("if %sErr != nil {", prefix),
			"\t" + failLine(prefix+"Err.Error()"),
			"}",
		}
		result := fmt.Sprintf("*%sV", prefix)
		if strings.HasPrefix(typeExpr, "*") {
			result = fmt.Sprintf("%sV", prefix)
		}
		return lines, result

	case decl.ScalarPath:
		lines := []string{
			fmt.Sprintf("if %s == \"\" {", rawVar),
			"\t" + failLine(`"empty path"`),
			"}",
		}
		return lines, fmt.Sprintf("%s(filepath.Clean(%s))", typeExpr, rawVar)

	default: // text
		if typeExpr == "string" {
			return nil, rawVar
		}
		return nil, fmt.Sprintf("%s(%s)", typeExpr, rawVar)
	}
}

// emitCall writes the invocation of the original function and wraps its
// result into the output envelope, propagating a failing result untouched.
func emitCall(b *bytes.Buffer, d *decl.Declaration, opts Options) {
	var callArgs []string
	if d.HasContext {
		callArgs = append(callArgs, "ctx")
	}
	for i := range d.Params {
		callArgs = append(callArgs, paramVar(d.Params[i].Name))
	}
	call := fmt.Sprintf("%s(%s)", d.FuncName, strings.Join(callArgs, ", "))

	recordError := ""
	if opts.Instrumentation {
		recordError = "\t\tspan.RecordError(err)\n"
	}

	switch {
	case len(d.Results) == 1 && d.Results[0] == "error":
		fmt.Fprintf(b, "\tif err := %s; err != nil {\n", call)
		b.WriteString(recordError)
		b.WriteString("\t\treturn handler.Fail(err)\n\t}\n")
		b.WriteString("\treturn handler.Ok(nil)\n")

	case len(d.Results) == 2:
		fmt.Fprintf(b, "\tres, err := %s\n", call)
		b.WriteString("\tif err != nil {\n")
		b.WriteString(recordError)
		b.WriteString("\t\treturn handler.Fail(err)\n\t}\n")
		b.WriteString("\treturn handler.Ok(res)\n")

	default:
		fmt.Fprintf(b, "\treturn handler.Ok(%s)\n", call)
	}
}

// adapterName builds the adapter identifier: adapterUserCreate for
// ("user", "create").
func adapterName(d *decl.Declaration) string {
	return "adapter" + exportedIdent(d.Category) + exportedIdent(d.Action)
}

// guardName builds the registration guard identifier. The name encodes the
// (category, action) pair so a duplicate declaration in the same package is
// a compile-time redeclaration error.
func guardName(d *decl.Declaration) string {
	return "_declgen_" + flatIdent(d.Category) + "_" + flatIdent(d.Action)
}

// paramVar is the local variable holding one recovered argument.
func paramVar(argName string) string {
	return identPrefix(argName) + "Arg"
}

// identPrefix converts a kebab-case argument name into a lower-camel
// identifier prefix.
func identPrefix(argName string) string {
	parts := strings.Split(argName, "-")
	for i := 1; i < len(parts); i++ {
		parts[i] = title(parts[i])
	}
	return sanitize(strings.Join(parts, ""))
}

func exportedIdent(name string) string {
	parts := strings.Split(name, "-")
	for i := range parts {
		parts[i] = title(parts[i])
	}
	return sanitize(strings.Join(parts, ""))
}

func flatIdent(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
