package display

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Version returns "name vX" for the given version, or for the module version
// recorded in the build info when version is empty.
func Version(name, version string) string {
	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "No version specified"
		}
		version = inferred
	}
	if name != "" {
		name = name + " "
	}
	return fmt.Sprintf("%sv%s", name, strings.TrimPrefix(version, "v"))
}

// inferVersion attempts to infer the module version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", fmt.Errorf("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", fmt.Errorf("no version info found in build metadata")
}
