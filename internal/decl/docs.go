package decl

import (
	"regexp"
	"strings"
)

// tagPattern matches one bracketed relationship tag inside a per-parameter
// description line, e.g. [requires: email] or [hide].
var tagPattern = regexp.MustCompile(`\[\s*([a-z]+)\s*(?::\s*([^\]]*?)\s*)?\]`)

// knownTags are the accepted bracketed tag names. Unknown brackets are left
// in the help text untouched rather than silently swallowed.
var knownTags = map[string]bool{
	"group":     true,
	"requires":  true,
	"conflicts": true,
	"env":       true,
	"default":   true,
	"short":     true,
	"hide":      true,
	"global":    true,
	"exclusive": true,
}

// docInfo is the parsed documentation of one declaration.
type docInfo struct {
	summary string
	// args maps parameter name to its help text and explicit tags.
	args map[string]docArg
}

type docArg struct {
	help string
	tags map[string]string
}

// parseDoc splits a function's doc text into a one-line summary and the
// per-parameter entries of its "Arguments:" block, folding bracketed tags
// out of the help text shown to users.
func parseDoc(text string) docInfo {
	info := docInfo{args: make(map[string]docArg)}

	lines := strings.Split(text, "\n")
	inArgs := false
	sawEntry := false
	summaryDone := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !inArgs {
			if trimmed == "Arguments:" {
				inArgs = true
				sawEntry = false
				continue
			}
			// The summary is the first paragraph, joined onto one line.
			if trimmed == "" {
				summaryDone = info.summary != ""
			} else if !summaryDone {
				if info.summary != "" {
					info.summary += " "
				}
				info.summary += trimmed
			}
			continue
		}

		if trimmed == "" {
			// gofmt inserts a blank line between the heading and the
			// indented block; only a blank after an entry ends it.
			if sawEntry {
				inArgs = false
			}
			continue
		}

		name, rest, ok := strings.Cut(trimmed, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		help, tags := extractTags(strings.TrimSpace(rest))
		info.args[name] = docArg{help: help, tags: tags}
		sawEntry = true
	}

	return info
}

// extractTags strips recognized bracketed tags from a description line and
// returns the cleaned help text plus the tag map. A repeated tag
// (e.g. two [requires: x] entries) accumulates comma-separated.
func extractTags(s string) (string, map[string]string) {
	tags := make(map[string]string)

	cleaned := tagPattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := tagPattern.FindStringSubmatch(match)
		key := groups[1]
		if !knownTags[key] {
			return match
		}
		value := strings.TrimSpace(groups[2])
		if prev, ok := tags[key]; ok && prev != "" && value != "" {
			value = prev + "," + value
		}
		tags[key] = value
		return ""
	})

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return cleaned, tags
}
