// Package nds decodes Nintendo DS cartridge headers.
package nds

import (
	"fmt"

	"github.com/woozymasta/rom-info-tool/internal/rom"
)

const headerSize = 30

// Device is a handheld model a cartridge can run on.
type Device string

const (
	// DeviceDS is the original Nintendo DS family.
	DeviceDS Device = "DS"

	// DeviceDSi is the Nintendo DSi.
	DeviceDSi Device = "DSi"
)

// Header is the raw header at the start of the image. Text fields are plain
// bytes padded with spaces or NULs.
type Header struct {
	GameTitle  string // offset 0, 12 bytes
	GameCode   string // offset 12, 4 bytes
	MakerCode  string // offset 16, 2 bytes
	UnitCode   uint8  // offset 18
	DeviceType uint8  // offset 19
	CardSize   uint8  // offset 20, capacity is 2^(20+n) bytes
	Flags      uint8  // offset 29
}

// Rom is the decoded record for a Nintendo DS image.
type Rom struct {
	SoftwareTitle    string          `json:"software_title"`    // short title from the header
	GameCode         string          `json:"game_code"`         // 4-character game code
	MakerCode        string          `json:"maker_code"`        // 2-character maker code
	SupportedDevices []Device        `json:"supported_devices"` // models the cartridge runs on
	CardSize         rom.StorageSize `json:"card_size"`         // declared card capacity, not validated
	Fingerprint      string          `json:"fingerprint"`       // xxhash of the image
}

// RomPlatform implements rom.Info.
func (Rom) RomPlatform() rom.Platform { return rom.NDS }

// Decode parses a Nintendo DS image held in memory. The header sits at the
// very start of the image with no placement ambiguity.
func Decode(data []byte) (*Rom, error) {
	hdr, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	return &Rom{
		SoftwareTitle:    hdr.GameTitle,
		GameCode:         hdr.GameCode,
		MakerCode:        hdr.MakerCode,
		SupportedDevices: hdr.supportedDevices(),
		CardSize:         hdr.cardCapacity(),
		Fingerprint:      rom.Fingerprint(data),
	}, nil
}

// readHeader extracts the fixed-layout header from the start of the buffer.
func readHeader(buf []byte) (*Header, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", rom.ErrShortBuffer, headerSize, len(buf))
	}

	return &Header{
		GameTitle:  rom.TrimPadding(string(buf[0:12])),
		GameCode:   rom.TrimPadding(string(buf[12:16])),
		MakerCode:  rom.TrimPadding(string(buf[16:18])),
		UnitCode:   buf[18],
		DeviceType: buf[19],
		CardSize:   buf[20],
		Flags:      buf[29],
	}, nil
}

// supportedDevices applies the unit-code rule: 3 is DSi-exclusive, 2 runs on
// both models, anything else is a plain DS cartridge.
func (h *Header) supportedDevices() []Device {
	switch h.UnitCode {
	case 3:
		return []Device{DeviceDSi}
	case 2:
		return []Device{DeviceDS, DeviceDSi}
	default:
		return []Device{DeviceDS}
	}
}

// cardCapacity derives the declared card size, 2^(20+n) bytes. Informational
// only; it is not checked against the file length.
func (h *Header) cardCapacity() rom.StorageSize {
	return rom.BytesToSize(uint64(1) << (20 + uint64(h.CardSize)))
}
