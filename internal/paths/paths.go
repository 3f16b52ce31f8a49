// Package paths centralizes the on-disk locations dg uses for its own
// state: the generation cache, the log file, and the project config.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "declgen"

// ConfigFileName is the per-project generator config, looked up relative
// to the working directory.
const ConfigFileName = "declgen.yaml"

// AppDataDir returns the application data directory for dg-managed state.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory, where
// the generation cache database lives.
//   - macOS: ~/Library/Application Support/declgen
//   - Linux: $XDG_DATA_HOME/declgen or ~/.local/share/declgen
//   - Windows: %LOCALAPPDATA%\declgen
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// CacheDBPath returns the path to the generation cache database.
func CacheDBPath() string {
	dir := AppLocalDataDir()
	_ = os.MkdirAll(dir, 0700)
	return filepath.Join(dir, "cache.db")
}

// LogFilePath returns the path to the dg log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "dg.log")
}
