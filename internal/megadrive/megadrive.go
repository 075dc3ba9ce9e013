// Package megadrive decodes Sega Mega Drive / Genesis cartridge headers.
package megadrive

import (
	"fmt"

	"github.com/woozymasta/rom-info-tool/internal/rom"
)

// Region is a market a cartridge is coded for.
type Region string

const (
	// RegionJapan is the Japanese domestic market.
	RegionJapan Region = "Japan"

	// RegionAmericas is the North and South American market.
	RegionAmericas Region = "Americas"

	// RegionEurope is the European market.
	RegionEurope Region = "Europe"
)

// SoftwareTitle carries the two title variants baked into the header.
type SoftwareTitle struct {
	Domestic string `json:"domestic"` // Japanese market title
	Overseas string `json:"overseas"` // export market title
}

// ReleaseDate is the header-declared release month and year.
type ReleaseDate struct {
	Month uint8  `json:"month"` // 1-12, 0 when unknown
	Year  uint16 `json:"year"`  // 0 when unknown
}

// Rom is the decoded record for a Mega Drive image.
type Rom struct {
	SoftwareTitle    SoftwareTitle   `json:"software_title"`          // domestic and overseas titles
	SystemType       string          `json:"system_type"`             // console name string from the header
	Publisher        string          `json:"publisher"`               // publisher code from the copyright field
	SoftwareType     string          `json:"software_type"`           // resolved software type
	SerialNumber     string          `json:"serial_number"`           // product serial
	Revision         string          `json:"revision"`                // product revision
	ReleaseDate      ReleaseDate     `json:"release_date"`            // declared release date
	SupportedDevices []string        `json:"supported_devices"`       // resolved peripheral support
	SupportedRegions []Region        `json:"supported_regions"`       // decoded region coding
	ModemSupport     string          `json:"modem_support,omitempty"` // modem field, usually blank
	Checksum         string          `json:"checksum"`                // header checksum (hex)
	RomSize          rom.StorageSize `json:"rom_size"`                // derived from the ROM address range
	Fingerprint      string          `json:"fingerprint"`             // xxhash of the image
}

// RomPlatform implements rom.Info.
func (Rom) RomPlatform() rom.Platform { return rom.MegaDrive }

// Decode parses a Mega Drive image held in memory. The header always sits at
// 0x100; the image size is not header-encoded, so there is no placement
// search and no size cross-check.
func Decode(data []byte) (*Rom, error) {
	if len(data) < headerOffset+headerSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d",
			rom.ErrShortBuffer, headerOffset+headerSize, len(data))
	}

	hdr, err := readHeader(data[headerOffset : headerOffset+headerSize])
	if err != nil {
		return nil, err
	}

	return &Rom{
		SoftwareTitle: SoftwareTitle{
			Domestic: hdr.TitleDomestic,
			Overseas: hdr.TitleOverseas,
		},
		SystemType:   hdr.SystemType,
		Publisher:    hdr.Publisher,
		SoftwareType: hdr.softwareType(),
		SerialNumber: hdr.SerialNumber,
		Revision:     hdr.Revision,
		ReleaseDate: ReleaseDate{
			Month: hdr.releaseMonth(),
			Year:  hdr.releaseYear(),
		},
		SupportedDevices: hdr.supportedDevices(),
		SupportedRegions: hdr.supportedRegions(),
		ModemSupport:     hdr.ModemSupport,
		Checksum:         fmt.Sprintf("0x%04X", hdr.Checksum),
		RomSize:          hdr.romSize(),
		Fingerprint:      rom.Fingerprint(data),
	}, nil
}
