// Package info holds the info command family.
package info

import (
	"runtime"

	"github.com/declgen-tools/cli/internal/app"
)

// VersionInfo is the version report.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit,omitempty" yaml:"commit,omitempty"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// Report the dg version and build details.
//
//dg:command
func InfoVersion() (VersionInfo, error) {
	return VersionInfo{
		Version:   app.VersionString(),
		Commit:    app.Commit,
		GoVersion: runtime.Version(),
	}, nil
}
