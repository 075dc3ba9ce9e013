package megadrive

import (
	"fmt"
	"strings"
)

// deviceCodes maps each character of the device field to a peripheral.
var deviceCodes = map[byte]string{
	'J': "3-button controller",
	'6': "6-button controller",
	'0': "Master System controller",
	'A': "Analog joystick",
	'4': "Multitap",
	'G': "Lightgun",
	'L': "Activator",
	'M': "Mouse",
	'B': "Trackball",
	'T': "Tablet",
	'V': "Paddle",
	'K': "Keyboard",
	'R': "RS-232 (Serial)",
	'P': "Printer",
	'C': "CD-ROM (Sega CD)",
	'F': "Floppy drive",
	'D': "Download",
}

// softwareTypes maps the 2-character software type code to a description.
var softwareTypes = map[string]string{
	"GM": "Game",
	"AI": "Aid",
	"OS": "Boot ROM (TMSS)",
	"BR": "Boot ROM (Sega CD)",
}

// supportedDevices resolves the per-character device field. Each position
// maps independently; characters with no table entry are filler and skipped,
// not reported as unknown.
func (h *Header) supportedDevices() []string {
	var out []string
	for i := 0; i < len(h.DeviceCodes); i++ {
		if desc, ok := deviceCodes[h.DeviceCodes[i]]; ok {
			out = append(out, desc)
		}
	}

	return out
}

// softwareType resolves the software type code, keeping the raw code visible
// when it is not a documented one.
func (h *Header) softwareType() string {
	if desc, ok := softwareTypes[h.SoftwareType]; ok {
		return desc
	}

	return fmt.Sprintf("unknown '%s'", h.SoftwareType)
}

// supportedRegions interprets the 3-byte region field, which exists in two
// formats. The old format is up to three of the letters J, U and E in any
// order; the newer format packs the regions into a single hex digit in the
// first byte. The lone legacy Europe marker " E " is recognized before the
// hex check.
func (h *Header) supportedRegions() []Region {
	if h.RegionCodes == " E " {
		return []Region{RegionEurope}
	}

	if len(h.RegionCodes) > 0 {
		if v, ok := hexDigit(h.RegionCodes[0]); ok {
			return bitmaskRegions(v)
		}
	}

	return legacyRegions(h.RegionCodes)
}

// hexDigit converts an uppercase hexadecimal character to its value.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}

// bitmaskRegions decodes the newer format: bit 0 is Japan, bit 2 the
// Americas, bit 3 Europe. Bit 1 is unused.
func bitmaskRegions(v uint8) []Region {
	var out []Region
	if v&0x01 != 0 {
		out = append(out, RegionJapan)
	}
	if v&0x04 != 0 {
		out = append(out, RegionAmericas)
	}
	if v&0x08 != 0 {
		out = append(out, RegionEurope)
	}

	return out
}

// legacyRegions decodes the old letter format. Order does not matter and
// duplicates are ignored.
func legacyRegions(codes string) []Region {
	var out []Region
	if strings.ContainsRune(codes, 'J') {
		out = append(out, RegionJapan)
	}
	if strings.ContainsRune(codes, 'U') {
		out = append(out, RegionAmericas)
	}
	if strings.ContainsRune(codes, 'E') {
		out = append(out, RegionEurope)
	}

	return out
}
