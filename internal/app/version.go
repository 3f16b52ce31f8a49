package app

import "runtime/debug"

// Version is stamped by the release build via -ldflags; "dev" otherwise.
var Version = "dev"

// Commit is the short commit hash stamped by the release build.
var Commit = ""

// VersionString resolves the displayed version: the stamped value when
// present, the module version from build info for go-installed binaries,
// "dev" for local builds.
func VersionString() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}
