package decl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDocSummary(t *testing.T) {
	doc := parseDoc("Create a user account\nin the directory.\n\nLong detail paragraph.\n")
	require.Equal(t, "Create a user account in the directory.", doc.summary)
}

func TestParseDocArguments(t *testing.T) {
	text := `Create a user account.

Arguments:

	email: the account email [requires: name]
	name: display name shown in listings
	port: listen port [default: 8080] [env: APP_PORT]
	verbose: log every step [short: v] [hide]
`
	doc := parseDoc(text)
	require.Equal(t, "Create a user account.", doc.summary)
	require.Len(t, doc.args, 4)

	email := doc.args["email"]
	require.Equal(t, "the account email", email.help)
	require.Equal(t, "name", email.tags["requires"])

	port := doc.args["port"]
	require.Equal(t, "8080", port.tags["default"])
	require.Equal(t, "APP_PORT", port.tags["env"])

	verbose := doc.args["verbose"]
	require.Equal(t, "v", verbose.tags["short"])
	_, hidden := verbose.tags["hide"]
	require.True(t, hidden)
}

func TestParseDocBlockEndsAtBlankLine(t *testing.T) {
	text := `Summary.

Arguments:

	email: the account email

Note: this trailing paragraph is not an argument.
`
	doc := parseDoc(text)
	require.Len(t, doc.args, 1)
	require.Contains(t, doc.args, "email")
}

func TestExtractTagsRepeatedAccumulate(t *testing.T) {
	help, tags := extractTags("the email [requires: name] [requires: team]")
	require.Equal(t, "the email", help)
	require.Equal(t, "name,team", tags["requires"])
}

func TestExtractTagsUnknownLeftInHelp(t *testing.T) {
	help, tags := extractTags("size in bytes [weird: x]")
	require.Equal(t, "size in bytes [weird: x]", help)
	require.Empty(t, tags)
}
