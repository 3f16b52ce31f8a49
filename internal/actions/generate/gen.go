package generate

import (
	"context"
)

// Scan packages for command declarations, validate them, and write the
// generated registration files.
//
// Arguments:
//
//	packages: package patterns to scan, ./... when omitted
//	config-file: explicit configuration file path [short: c]
//	force: regenerate even when the cache says inputs are unchanged [short: f]
//	dry-run: report what would be written without touching any file
//
//dg:command
func GenRun(ctx context.Context, packages []string, configFile *string, force, dryRun bool) (RunReport, error) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return RunReport{}, err
	}
	return run(ctx, packages, cfg, force, dryRun)
}

// Validate command declarations without generating anything.
//
// Arguments:
//
//	packages: package patterns to scan, ./... when omitted
//	config-file: explicit configuration file path [short: c]
//
//dg:command
func GenCheck(ctx context.Context, packages []string, configFile *string) (CheckReport, error) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return CheckReport{}, err
	}
	return check(ctx, packages, cfg)
}

// Watch declaration packages and regenerate after every change.
//
// Arguments:
//
//	packages: package patterns to watch, ./... when omitted
//	config-file: explicit configuration file path [short: c]
//
//dg:command
func GenWatch(ctx context.Context, packages []string, configFile *string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	return watchLoop(ctx, packages, cfg)
}
