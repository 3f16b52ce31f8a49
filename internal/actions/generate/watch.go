package generate

import (
	"context"
	"fmt"

	"github.com/declgen-tools/cli/internal/config"
	"github.com/declgen-tools/cli/internal/gen"
	"github.com/declgen-tools/cli/internal/ui/style"
	"github.com/declgen-tools/cli/internal/watch"
)

// watchLoop runs the pipeline once, then re-runs it after every settled
// change in a scanned package directory. Failed runs keep the watcher
// alive: broken declarations mid-edit are the normal case, not an exit.
func watchLoop(ctx context.Context, patterns []string, cfg config.Config) error {
	pkgs, err := scan(patterns)
	if err != nil {
		return err
	}

	dirs := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		dirs = append(dirs, pkg.Dir)
	}

	rerun := func() error {
		report, err := run(ctx, patterns, cfg, false, false)
		if err != nil {
			fmt.Println(style.Error(fmt.Sprintf("dg: %v", err)))
			return err
		}
		fmt.Println(style.Success(fmt.Sprintf(
			"regenerated %d file(s), %d package(s) unchanged",
			len(report.Written), len(report.Skipped))))
		return nil
	}

	w, err := watch.New(dirs, artifactNames(cfg), rerun)
	if err != nil {
		return err
	}

	// Initial pass before settling into the loop.
	_ = rerun()

	fmt.Println(style.Info(fmt.Sprintf("watching %d package(s) for changes", len(dirs))))
	return w.Run(ctx)
}

func artifactNames(cfg config.Config) []string {
	output := cfg.OutputFile
	if output == "" {
		output = gen.DefaultOutputFile
	}
	manifest := cfg.ManifestFile
	if manifest == "" {
		manifest = gen.DefaultManifestFile
	}
	return []string{output, manifest}
}
