package version

// version is set at build time with
// -ldflags "-X github.com/cbodonnell/jigsaw/pkg/version.version=v1.2.3"
var version = "dev"

// Get returns the version the binary was built with.
func Get() string {
	return version
}
