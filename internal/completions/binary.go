package completions

import (
	"os"
	"path/filepath"
)

// BinaryName returns the name the completion script should register for.
// Symlinks are resolved so a renamed install completes under its real name.
func BinaryName() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		if name := filepath.Base(exe); name != "" && name != "." {
			return name
		}
	}
	if len(os.Args) > 0 {
		if name := filepath.Base(os.Args[0]); name != "" && name != "." {
			return name
		}
	}
	return "dg"
}
