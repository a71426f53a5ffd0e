// Package misc holds build information helpers needed across the program.
package misc

import "runtime/debug"

const appName = "ldc"

// GetAppName returns short program name used for file naming and logging.
func GetAppName() string {
	return appName
}

// GetVersion returns module version recorded by the build.
func GetVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) != 0 {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision recorded by the build, if any.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
