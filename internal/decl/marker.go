package decl

import (
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"
)

// Directive is the comment prefix that marks a function as a command
// declaration.
const Directive = "//dg:command"

// findMarker returns the directive comment attached to a function, if any.
func findMarker(fset *token.FileSet, fn *ast.FuncDecl) (Marker, bool) {
	if fn.Doc == nil {
		return Marker{}, false
	}
	for _, c := range fn.Doc.List {
		if c.Text == Directive || strings.HasPrefix(c.Text, Directive+" ") {
			rest := strings.TrimPrefix(c.Text, Directive)
			return Marker{
				Raw:  c.Text,
				Args: splitMarkerArgs(rest),
				Pos:  fset.Position(c.Pos()),
			}, true
		}
	}
	return Marker{}, false
}

// splitMarkerArgs tokenizes the directive's argument list, preserving quoted
// strings as single tokens so the validator can tell literals from bare
// identifiers.
func splitMarkerArgs(s string) []MarkerArg {
	var args []MarkerArg
	i := 0
	for i < len(s) {
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		if s[i] == '"' {
			i++
			for i < len(s) && s[i] != '"' {
				if s[i] == '\\' {
					i++
				}
				i++
			}
			if i < len(s) {
				i++ // closing quote
			}
			tok := s[start:i]
			val, err := strconv.Unquote(tok)
			args = append(args, MarkerArg{Text: tok, Value: val, Quoted: err == nil})
			continue
		}
		for i < len(s) && s[i] != ' ' && s[i] != '\t' {
			i++
		}
		args = append(args, MarkerArg{Text: s[start:i]})
	}
	return args
}

// commandName resolves the (category, action) pair for a declaration:
// explicit marker arguments win, then the action falls back to the function
// name with any leading category prefix stripped, and the category falls
// back to the source file's base name.
func commandName(m Marker, funcName, file string) (category, action string) {
	category = categoryFromFile(file)
	if len(m.Args) >= 2 && m.Args[1].Quoted {
		category = m.Args[1].Value
	}

	if len(m.Args) >= 1 && m.Args[0].Quoted {
		action = m.Args[0].Value
		return category, action
	}

	action = kebabCase(stripCategoryPrefix(funcName, category))
	return category, action
}

// categoryFromFile derives the implicit category from the compilation
// unit's identity: the source file name, sans extension and any _commands
// suffix, with underscores normalized to dashes.
func categoryFromFile(file string) string {
	base := file
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.TrimSuffix(base, ".go")
	base = strings.TrimSuffix(base, "_commands")
	return strings.ReplaceAll(base, "_", "-")
}

// stripCategoryPrefix removes a leading camel-case category prefix from a
// function name: UserCreate with category "user" becomes Create.
func stripCategoryPrefix(funcName, category string) string {
	words := splitCamel(funcName)
	catWords := strings.Split(category, "-")

	i := 0
	for i < len(words) && i < len(catWords) && strings.EqualFold(words[i], catWords[i]) {
		i++
	}
	if i == 0 || i >= len(words) {
		return funcName
	}
	return strings.Join(words[i:], "")
}

// kebabCase converts a camel-case identifier to kebab-case.
func kebabCase(name string) string {
	words := splitCamel(name)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, "-")
}

// splitCamel splits an identifier into camel-case words, keeping acronym
// runs together (HTTPServer -> HTTP, Server).
func splitCamel(s string) []string {
	var words []string
	runes := []rune(s)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := unicode.IsLower(prev) && unicode.IsUpper(cur)
		if !boundary && i+1 < len(runes) {
			// End of an acronym run: HTTPServer splits before Server.
			boundary = unicode.IsUpper(prev) && unicode.IsUpper(cur) && unicode.IsLower(runes[i+1])
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, string(runes[start:]))
	}
	return words
}
