// Package sniff guesses a cartridge platform from file contents.
package sniff

import (
	"bytes"

	"github.com/woozymasta/rom-info-tool/internal/rom"
	"github.com/woozymasta/rom-info-tool/internal/snes"
)

// megaDriveMagic sits at the start of the system type field (0x100).
var megaDriveMagic = []byte("SEGA")

// Detect inspects image bytes and reports the platform when the contents are
// recognizable. Mega Drive images carry a "SEGA" magic at 0x100; Super
// Nintendo images are recognized by a validating header. DS images have no
// usable magic here, so they are only matched by extension.
func Detect(data []byte) (rom.Platform, bool) {
	if len(data) >= 0x104 && bytes.Equal(data[0x100:0x104], megaDriveMagic) {
		return rom.MegaDrive, true
	}

	if _, err := snes.Decode(data); err == nil {
		return rom.SNES, true
	}

	return "", false
}
