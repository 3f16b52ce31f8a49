// Package completions generates shell completion scripts from the
// runtime registry. The scripts complete category names, action names
// within a category, and the flags of the resolved command.
package completions

import (
	"fmt"
	"io"

	"github.com/declgen-tools/cli/registry"
)

// Shell identifies a supported completion target.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ParseShell validates a shell name given on the command line.
func ParseShell(name string) (Shell, error) {
	switch Shell(name) {
	case ShellBash, ShellZsh, ShellFish:
		return Shell(name), nil
	}
	return "", fmt.Errorf("unsupported shell %q (want bash, zsh or fish)", name)
}

// Print writes the completion script for the given shell to w.
func Print(w io.Writer, shell Shell, reg *registry.Registry) error {
	script, err := Script(shell, reg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, script)
	return err
}

// Script renders the completion script for the given shell.
func Script(shell Shell, reg *registry.Registry) (string, error) {
	commands := visible(reg.Commands())
	switch shell {
	case ShellBash:
		return generateBash(commands), nil
	case ShellZsh:
		return generateZsh(commands), nil
	case ShellFish:
		return generateFish(commands), nil
	}
	return "", fmt.Errorf("unsupported shell: %s", shell)
}

// visible drops hidden arguments so they never appear in completion
// candidates. The commands themselves are always listed.
func visible(commands []registry.CommandInfo) []registry.CommandInfo {
	out := make([]registry.CommandInfo, 0, len(commands))
	for _, cmd := range commands {
		kept := cmd
		kept.Args = nil
		for _, arg := range cmd.Args {
			if arg.Hidden {
				continue
			}
			kept.Args = append(kept.Args, arg)
		}
		out = append(out, kept)
	}
	return out
}
