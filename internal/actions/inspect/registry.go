// Package inspect holds the registry command family: introspection over
// declared commands, the interactive browser, and completion scripts.
package inspect

import (
	"context"

	"github.com/declgen-tools/cli/internal/browse"
	"github.com/declgen-tools/cli/internal/completions"
	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/internal/infer"
	"github.com/declgen-tools/cli/registry"
)

// DescribeReport lists every declared command with its inferred
// argument table.
type DescribeReport struct {
	Commands []CommandDetail `json:"commands" yaml:"commands"`
}

// CommandDetail is one described command.
type CommandDetail struct {
	Category string      `json:"category" yaml:"category"`
	Action   string      `json:"action" yaml:"action"`
	Summary  string      `json:"summary,omitempty" yaml:"summary,omitempty"`
	Function string      `json:"function" yaml:"function"`
	File     string      `json:"file" yaml:"file"`
	Args     []ArgDetail `json:"args,omitempty" yaml:"args,omitempty"`
}

// ArgDetail is one inferred argument of a described command.
type ArgDetail struct {
	Name     string `json:"name" yaml:"name"`
	Kind     string `json:"kind" yaml:"kind"`
	Parser   string `json:"parser" yaml:"parser"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Default  string `json:"default,omitempty" yaml:"default,omitempty"`
	Env      string `json:"env,omitempty" yaml:"env,omitempty"`
	Short    string `json:"short,omitempty" yaml:"short,omitempty"`
}

// List every command declared in the scanned packages, with the argument
// metadata inference derives for each.
//
// Arguments:
//
//	packages: package patterns to scan, ./... when omitted
//
//dg:command
func RegistryDescribe(ctx context.Context, packages []string) (DescribeReport, error) {
	pkgs, err := scan(packages)
	if err != nil {
		return DescribeReport{}, err
	}

	var report DescribeReport
	for _, pkg := range pkgs {
		for i := range pkg.Decls {
			report.Commands = append(report.Commands, describe(&pkg.Decls[i]))
		}
	}
	return report, nil
}

// Browse declared commands in an interactive full-screen viewer.
//
// Arguments:
//
//	packages: package patterns to scan, ./... when omitted
//
//dg:command
func RegistryBrowse(ctx context.Context, packages []string) error {
	pkgs, err := scan(packages)
	if err != nil {
		return err
	}

	var entries []browse.Entry
	for _, pkg := range pkgs {
		for i := range pkg.Decls {
			d := &pkg.Decls[i]
			entries = append(entries, browse.Entry{
				Category: d.Category,
				Action:   d.Action,
				Summary:  d.Summary,
				FuncName: d.FuncName,
				File:     d.File,
				Args:     infer.Arguments(d),
			})
		}
	}
	return browse.Run(entries)
}

// Emit a completion script for dg's own commands.
//
// Arguments:
//
//	shell: completion target, one of bash, zsh or fish
//
//dg:command
func RegistryCompletions(shell string) (string, error) {
	sh, err := completions.ParseShell(shell)
	if err != nil {
		return "", err
	}
	reg, err := registry.Default()
	if err != nil {
		return "", err
	}
	return completions.Script(sh, reg)
}

func scan(patterns []string) ([]*decl.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	return decl.Load(".", patterns...)
}

func describe(d *decl.Declaration) CommandDetail {
	detail := CommandDetail{
		Category: d.Category,
		Action:   d.Action,
		Summary:  d.Summary,
		Function: d.FuncName,
		File:     d.File,
	}
	for _, arg := range infer.Arguments(d) {
		detail.Args = append(detail.Args, ArgDetail{
			Name:     arg.Name,
			Kind:     kindName(arg.Kind),
			Parser:   arg.Parser,
			Required: arg.Required,
			Default:  arg.Default,
			Env:      arg.EnvVar,
			Short:    arg.Short,
		})
	}
	return detail
}

func kindName(k registry.ArgumentKind) string {
	switch k {
	case registry.KindSwitch:
		return "switch"
	case registry.KindCounter:
		return "counter"
	case registry.KindList:
		return "list"
	default:
		return "scalar"
	}
}
