package main

import (
	"fmt"
	"io"

	"github.com/declgen-tools/cli/internal/ui/style"
	"github.com/declgen-tools/cli/registry"
	"github.com/declgen-tools/cli/usage"
)

func printUsage(w io.Writer, reg *registry.Registry) {
	fmt.Fprintln(w, style.Header("dg - declaration-driven command registry"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Header("USAGE"))
	fmt.Fprintln(w, "  dg <category> <action> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Header("COMMANDS"))
	for _, cmd := range reg.Commands() {
		name := cmd.Category + " " + cmd.Action
		fmt.Fprintf(w, "  %s %s\n", style.Info(fmt.Sprintf("%-22s", name)), style.Muted(cmd.Summary))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Header("GLOBAL FLAGS"))
	fmt.Fprintf(w, "  %-22s %s\n", "--format <fmt>", style.Muted("output format: text, json or yaml"))
	fmt.Fprintf(w, "  %-22s %s\n", "--no-color", style.Muted("disable styled output"))
	fmt.Fprintf(w, "  %-22s %s\n", "--version, -V", style.Muted("print the dg version"))
	fmt.Fprintf(w, "  %-22s %s\n", "--help, -h", style.Muted("show this help"))
}

// printCategory lists the actions of one category, or reports the nearest
// valid categories when the name does not exist.
func printCategory(reg *registry.Registry, category string) int {
	var actions []registry.CommandInfo
	for _, cmd := range reg.Commands() {
		if cmd.Category == category {
			actions = append(actions, cmd)
		}
	}
	if len(actions) == 0 {
		return renderError(notFound(reg, category))
	}

	fmt.Println(style.Header("USAGE"))
	fmt.Printf("  dg %s <action> [arguments]\n\n", category)
	fmt.Println(style.Header("ACTIONS"))
	for _, cmd := range actions {
		fmt.Printf("  %s %s\n", style.Info(fmt.Sprintf("%-14s", cmd.Action)), style.Muted(cmd.Summary))
	}
	return 0
}

func notFound(reg *registry.Registry, category string) error {
	_, err := reg.Lookup(category, "")
	if err != nil {
		return err
	}
	return usage.CommandNotFound(category, "")
}
