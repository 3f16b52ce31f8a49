// Package app wires the ambient pieces every dg invocation needs:
// configuration, the log file, and terminal styling.
package app

import (
	"github.com/declgen-tools/cli/internal/config"
	"github.com/declgen-tools/cli/internal/log"
	"github.com/declgen-tools/cli/internal/paths"
	"github.com/declgen-tools/cli/internal/ui/style"
)

// Bootstrap initializes logging and styling from the project
// configuration. Logging failures degrade to the nop logger; a CLI that
// cannot open its log file still has work to do.
func Bootstrap(enableColor bool) config.Config {
	cfg, err := config.Load("")
	if err != nil {
		cfg = config.Default()
	}

	if logErr := log.Init(paths.LogFilePath(), log.ParseLevel(cfg.LogLevel)); logErr != nil {
		log.Set(nil)
	}
	if err != nil {
		log.Warn("config: %v, using defaults", err)
	}

	style.Init(enableColor)
	return cfg
}

// Shutdown flushes buffered log output.
func Shutdown() {
	log.Sync()
}
