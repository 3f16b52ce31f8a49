// Package cache holds the cache command family: inspection and reset of
// the incremental generation store.
package cache

import (
	"fmt"

	"github.com/declgen-tools/cli/internal/format"
	"github.com/declgen-tools/cli/internal/paths"
	"github.com/declgen-tools/cli/internal/store"
)

// StatsReport summarizes the incremental cache for display.
type StatsReport struct {
	Path    string `json:"path" yaml:"path"`
	Files   int    `json:"files" yaml:"files"`
	Runs    int    `json:"runs" yaml:"runs"`
	LastRun string `json:"last_run" yaml:"last_run"`
}

// Show the size and freshness of the incremental generation cache.
//
//dg:command
func CacheStats() (StatsReport, error) {
	path := paths.CacheDBPath()

	s, err := store.New(path)
	if err != nil {
		return StatsReport{}, fmt.Errorf("open cache: %w", err)
	}
	defer s.Close()

	stats, err := s.GetStats()
	if err != nil {
		return StatsReport{}, err
	}

	return StatsReport{
		Path:    path,
		Files:   stats.Files,
		Runs:    stats.Runs,
		LastRun: format.Relative(stats.LastRun),
	}, nil
}

// Drop every cached file hash and run record, forcing the next run to
// regenerate everything.
//
//dg:command
func CacheClear() (string, error) {
	s, err := store.New(paths.CacheDBPath())
	if err != nil {
		return "", fmt.Errorf("open cache: %w", err)
	}
	defer s.Close()

	if err := s.Clear(); err != nil {
		return "", err
	}
	return "cache cleared", nil
}
