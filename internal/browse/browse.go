// Package browse is the interactive command browser: a sidebar listing
// every declared command grouped by category, with a detail pane showing
// the declaration site and the inferred argument table.
package browse

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/declgen-tools/cli/registry"
)

// Entry is one browsable command. It carries more than the runtime
// descriptor because the browser shows where the declaration lives.
type Entry struct {
	Category string
	Action   string
	Summary  string
	FuncName string
	File     string
	Args     []registry.ArgumentMetadata
}

// Run starts the full-screen browser over the given entries. It refuses
// to start without an interactive terminal on both ends.
func Run(entries []Entry) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("browser requires an interactive terminal")
	}
	if len(entries) == 0 {
		return errors.New("no commands to browse")
	}

	m := newModel(entries)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
