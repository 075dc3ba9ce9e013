package rom

import "errors"

// Decode failure kinds. Decoders wrap these with context; callers
// discriminate with errors.Is.
var (
	// ErrBadFileSize means the file length matches no known packaging convention.
	ErrBadFileSize = errors.New("file size does not match any known packaging convention")

	// ErrNoHeader means no candidate offset produced a valid header.
	ErrNoHeader = errors.New("no valid header found")

	// ErrShortBuffer means fewer bytes were available than the header layout requires.
	ErrShortBuffer = errors.New("buffer too short for header")

	// ErrUnsupportedPlatform means a platform label or detection result is not supported.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
