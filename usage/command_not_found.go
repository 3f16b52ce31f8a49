package usage

import (
	"fmt"
	"strings"
)

// CommandNotFound is returned when routing cannot resolve a (category, action)
// pair. Suggestions carry nearby valid names for "did you mean" rendering.
func CommandNotFound(category, action string, suggestions ...string) *Error {
	name := category
	if action != "" {
		name = category + " " + action
	}

	msg := fmt.Sprintf("dg: '%s' is not a known command. See 'dg --help'.", name)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf("\n\nDid you mean one of these?\n\t%s", strings.Join(suggestions, "\n\t"))
	}

	return &Error{
		Kind:        ErrCommandNotFound,
		Category:    category,
		Action:      action,
		Suggestions: suggestions,
		Message:     msg,
	}
}
