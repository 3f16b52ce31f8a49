// Package config loads the per-project generator configuration from
// declgen.yaml. Every knob has a default; a missing file means defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/declgen-tools/cli/internal/paths"
)

// Config is the generator configuration. Validation thresholds are policy,
// not constants: projects tune them here.
type Config struct {
	// OutputFile is the per-package artifact name.
	OutputFile string `yaml:"output_file"`

	// ManifestDir is the directory that receives the aggregation
	// manifest, usually the main package. Empty disables the manifest.
	ManifestDir string `yaml:"manifest_dir"`

	// ManifestPackage is the package name of the manifest file.
	ManifestPackage string `yaml:"manifest_package"`

	// ManifestFile overrides the manifest artifact name.
	ManifestFile string `yaml:"manifest_file"`

	// Instrumentation makes generated adapters open a telemetry span per
	// invocation. A generation-time switch: the no-feature build carries
	// no tracing code at all.
	Instrumentation bool `yaml:"instrumentation"`

	// ComplexityThreshold is the decision-point ceiling for command
	// bodies.
	ComplexityThreshold int `yaml:"complexity_threshold"`

	// ForbiddenParamTypes extends the always-forbidden CLI-layer types.
	ForbiddenParamTypes []string `yaml:"forbidden_param_types"`

	// Cache toggles the incremental generation cache.
	Cache bool `yaml:"cache"`

	// LogLevel for the dg log file: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutputFile:          "zz_generated_commands.go",
		ManifestPackage:     "main",
		ComplexityThreshold: 5,
		Cache:               true,
		LogLevel:            "warn",
	}
}

// Load reads the config file at path, or falls back to ./declgen.yaml, or
// to defaults when neither exists. An unreadable or malformed file is an
// error, never a silent fallback.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = filepath.Join(".", paths.ConfigFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.OutputFile == "" {
		cfg.OutputFile = Default().OutputFile
	}
	if cfg.ComplexityThreshold <= 0 {
		cfg.ComplexityThreshold = Default().ComplexityThreshold
	}
	if cfg.ManifestPackage == "" {
		cfg.ManifestPackage = Default().ManifestPackage
	}

	return cfg, nil
}
