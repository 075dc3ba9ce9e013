package rom

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParsePlatform resolves a user-supplied platform label.
func ParsePlatform(label string) (Platform, error) {
	switch strings.ToLower(label) {
	case "snes", "sfc":
		return SNES, nil
	case "megadrive", "genesis", "md":
		return MegaDrive, nil
	case "nds", "ds":
		return NDS, nil
	}

	return "", fmt.Errorf("%w: unrecognised label %q", ErrUnsupportedPlatform, label)
}

// PlatformFromPath guesses the platform from a file extension.
func PlatformFromPath(path string) (Platform, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".smc", ".sfc", ".swc":
		return SNES, true
	case ".gen", ".md", ".smd":
		return MegaDrive, true
	case ".nds":
		return NDS, true
	}

	return "", false
}
