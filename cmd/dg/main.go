package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/declgen-tools/cli/handler"
	"github.com/declgen-tools/cli/internal/app"
	"github.com/declgen-tools/cli/internal/ui/style"
	"github.com/declgen-tools/cli/registry"
	"github.com/declgen-tools/cli/usage"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, rest := parseGlobals(args)

	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !opts.noColor
	app.Bootstrap(enableColor)
	defer app.Shutdown()

	if opts.version {
		rest = []string{"info", "version"}
	}

	reg, err := registry.Default()
	if err != nil {
		fmt.Fprintln(os.Stderr, style.Error("dg: "+err.Error()))
		return 1
	}

	if opts.help || len(rest) == 0 || rest[0] == "help" {
		printUsage(os.Stdout, reg)
		return 0
	}

	category := rest[0]
	if len(rest) == 1 {
		return printCategory(reg, category)
	}

	action := rest[1]
	desc, err := reg.Lookup(category, action)
	if err != nil {
		return renderError(err)
	}

	in, err := buildInput(desc, rest[2:])
	if err != nil {
		return renderError(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := desc.Adapter(ctx, in)
	return render(out, opts.format)
}

// globalOptions are the flags handled before routing.
type globalOptions struct {
	format  string
	noColor bool
	help    bool
	version bool
}

// parseGlobals strips the global flags from the argument stream and leaves
// everything else, in order, for the routed command.
func parseGlobals(args []string) (globalOptions, []string) {
	opts := globalOptions{format: "text"}

	var rest []string
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--no-color":
			opts.noColor = true
		case "--help", "-h":
			opts.help = true
		case "--version", "-V":
			opts.version = true
		case "--format":
			if i+1 < len(args) {
				i++
				opts.format = args[i]
			}
		default:
			if len(arg) > 9 && arg[:9] == "--format=" {
				opts.format = arg[9:]
			} else {
				rest = append(rest, arg)
			}
		}
	}
	return opts, rest
}

func renderError(err error) int {
	fmt.Fprintln(os.Stderr, style.Error(err.Error()))
	if ue, ok := err.(*usage.Error); ok {
		return ue.GetExitCode()
	}
	return 1
}

func render(out handler.Output, format string) int {
	switch format {
	case "json":
		s, err := out.JSON()
		if err != nil {
			return renderError(err)
		}
		fmt.Println(s)
	case "yaml":
		s, err := out.YAML()
		if err != nil {
			return renderError(err)
		}
		fmt.Print(s)
	default:
		renderText(out)
	}

	if out.IsError() {
		if ue, ok := out.Err().(*usage.Error); ok {
			return ue.GetExitCode()
		}
		return 1
	}
	return 0
}
