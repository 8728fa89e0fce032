// Package version exposes the build version of matcompare.
package version

// version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rshade/matcompare/pkg/version.version=v1.2.3"
var version = "dev" //nolint:gochecknoglobals // Overridden by the linker.

// GetVersion returns the build version, or "dev" for local builds.
func GetVersion() string {
	if version == "" {
		return "dev"
	}
	return version
}
