package generate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/declgen-tools/cli/internal/config"
	"github.com/declgen-tools/cli/internal/decl"
	"github.com/declgen-tools/cli/internal/gen"
	"github.com/declgen-tools/cli/internal/log"
	"github.com/declgen-tools/cli/internal/paths"
	"github.com/declgen-tools/cli/internal/store"
	"github.com/declgen-tools/cli/internal/validate"
)

func loadConfig(explicit *string) (config.Config, error) {
	path := ""
	if explicit != nil {
		path = *explicit
	}
	return config.Load(path)
}

// scan loads the matched packages and fails when nothing declares a
// command: an empty run almost always means the wrong patterns.
func scan(patterns []string) ([]*decl.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	pkgs, err := decl.Load(".", patterns...)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no command declarations found in %v", patterns)
	}
	return pkgs, nil
}

func validateAll(pkgs []*decl.Package, cfg config.Config) error {
	diags := validate.Check(pkgs, validate.Config{
		ComplexityThreshold: cfg.ComplexityThreshold,
		ForbiddenParamTypes: cfg.ForbiddenParamTypes,
	})
	if diags.HasErrors() {
		return diags
	}
	return nil
}

// run is the full pipeline: scan, validate, generate, write, record.
func run(ctx context.Context, patterns []string, cfg config.Config, force, dryRun bool) (RunReport, error) {
	report := RunReport{DryRun: dryRun}

	pkgs, err := scan(patterns)
	if err != nil {
		return report, err
	}
	report.Packages = len(pkgs)
	for _, pkg := range pkgs {
		report.Commands += len(pkg.Decls)
	}

	if err := validateAll(pkgs, cfg); err != nil {
		return report, err
	}

	cache := openCache(cfg)
	if cache != nil {
		defer cache.Close()
	}

	runID := ""
	if cache != nil && !dryRun {
		if id, err := cache.BeginRun(); err == nil {
			runID = id
		} else {
			log.Warn("cache: begin run: %v", err)
		}
	}

	opts := gen.Options{OutputFile: cfg.OutputFile, Instrumentation: cfg.Instrumentation}
	for _, pkg := range pkgs {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		hashes, err := hashFiles(sourceFiles(pkg, cfg))
		if err != nil {
			return report, err
		}

		if cache != nil && !force && unchanged(cache, pkg, hashes, cfg) {
			log.Debug("gen: %s unchanged, skipping", pkg.PkgPath)
			report.Skipped = append(report.Skipped, pkg.PkgPath)
			continue
		}

		file, err := gen.CommandsFile(pkg, opts)
		if err != nil {
			return report, err
		}

		if !dryRun {
			if err := os.WriteFile(file.Path, file.Content, 0o644); err != nil {
				return report, fmt.Errorf("write %s: %w", file.Path, err)
			}
			recordHashes(cache, runID, hashes)
		}
		report.Written = append(report.Written, file.Path)
	}

	if cfg.ManifestDir != "" {
		manifest := gen.ManifestFile(pkgs, cfg.ManifestDir, cfg.ManifestPackage, cfg.ManifestFile)
		if !dryRun {
			if err := os.WriteFile(manifest.Path, manifest.Content, 0o644); err != nil {
				return report, fmt.Errorf("write %s: %w", manifest.Path, err)
			}
		}
		report.Written = append(report.Written, manifest.Path)
	}

	if runID != "" {
		if err := cache.FinishRun(runID, len(report.Written), len(report.Skipped)); err != nil {
			log.Warn("cache: finish run: %v", err)
		}
		report.RunID = runID
	}

	return report, nil
}

func check(_ context.Context, patterns []string, cfg config.Config) (CheckReport, error) {
	pkgs, err := scan(patterns)
	if err != nil {
		return CheckReport{}, err
	}

	report := CheckReport{Packages: len(pkgs)}
	for _, pkg := range pkgs {
		report.Commands += len(pkg.Decls)
	}

	if err := validateAll(pkgs, cfg); err != nil {
		return report, err
	}
	report.Clean = true
	return report, nil
}

// openCache opens the incremental store. A broken cache degrades to a full
// rebuild rather than failing the run.
func openCache(cfg config.Config) *store.Store {
	if !cfg.Cache {
		return nil
	}
	s, err := store.New(paths.CacheDBPath())
	if err != nil {
		log.Warn("cache: open: %v", err)
		return nil
	}
	return s
}

// sourceFiles drops the generated artifacts from a package's file list so
// dg's own output never feeds back into the change detection.
func sourceFiles(pkg *decl.Package, cfg config.Config) []string {
	output := cfg.OutputFile
	if output == "" {
		output = gen.DefaultOutputFile
	}
	manifest := cfg.ManifestFile
	if manifest == "" {
		manifest = gen.DefaultManifestFile
	}

	var out []string
	for _, path := range pkg.Files {
		base := filepath.Base(path)
		if base == output || base == manifest {
			continue
		}
		out = append(out, path)
	}
	return out
}

func hashFiles(files []string) (map[string]string, error) {
	hashes := make(map[string]string, len(files))
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("hash %s: %w", path, err)
		}
		sum := sha256.Sum256(content)
		hashes[path] = hex.EncodeToString(sum[:])
	}
	return hashes, nil
}

// unchanged reports whether every source file of the package hashes to its
// cached value and the generated artifact is still on disk.
func unchanged(cache *store.Store, pkg *decl.Package, hashes map[string]string, cfg config.Config) bool {
	output := cfg.OutputFile
	if output == "" {
		output = gen.DefaultOutputFile
	}
	if _, err := os.Stat(filepath.Join(pkg.Dir, output)); err != nil {
		return false
	}

	for path, hash := range hashes {
		stored, ok, err := cache.LookupHash(path)
		if err != nil || !ok || stored != hash {
			return false
		}
	}
	return true
}

func recordHashes(cache *store.Store, runID string, hashes map[string]string) {
	if cache == nil || runID == "" {
		return
	}
	for path, hash := range hashes {
		if err := cache.RecordHash(runID, path, hash); err != nil {
			log.Warn("cache: record %s: %v", path, err)
		}
	}
}
