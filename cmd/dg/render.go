package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/declgen-tools/cli/handler"
	"github.com/declgen-tools/cli/internal/ui/style"
)

// renderText writes the human-facing form of an envelope: failures go
// styled to stderr, string results print raw, and structured results fall
// back to indented JSON. The dispatcher knows nothing about individual
// result shapes.
func renderText(out handler.Output) {
	if out.IsError() {
		fmt.Fprintln(os.Stderr, style.Error(out.Error.Message))
		return
	}

	switch res := out.Result.(type) {
	case nil:
		fmt.Println(style.Success("ok"))
	case string:
		fmt.Println(res)
	default:
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, style.Error("dg: encode result: "+err.Error()))
			return
		}
		fmt.Println(string(b))
	}
}
