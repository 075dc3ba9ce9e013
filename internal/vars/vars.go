// Package vars holds build-time version information.
package vars

import (
	"fmt"
	"runtime"
)

// Populated with -ldflags at build time.
var (
	// Version is the release version or git describe output.
	Version = "dev"

	// Commit is the git commit hash the binary was built from.
	Commit = "unknown"

	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Print writes version information to stdout.
func Print() {
	fmt.Printf("rom-info-tool %s\n", Version)
	fmt.Printf("commit:     %s\n", Commit)
	fmt.Printf("built:      %s\n", BuildTime)
	fmt.Printf("go runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
