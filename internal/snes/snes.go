// Package snes decodes Super Nintendo / Super Famicom cartridge headers.
package snes

import (
	"fmt"

	"github.com/woozymasta/rom-info-tool/internal/rom"
)

// Placement tells which of the two candidate offsets held the header.
type Placement string

const (
	// PlacementLoROM means the header was found at the LoROM offset (0x7FB0).
	PlacementLoROM Placement = "lorom"

	// PlacementHiROM means the header was found at the HiROM offset (0xFFB0).
	PlacementHiROM Placement = "hirom"
)

// Rom is the decoded record for a Super Nintendo image.
type Rom struct {
	Title              string          `json:"title"`               // cartridge title (EUC-JP in the header)
	MakerCode          string          `json:"maker_code"`          // 2-character maker code
	GameCode           string          `json:"game_code"`           // 4-character game code
	MapMode            string          `json:"map_mode"`            // resolved memory map mode
	CartridgeType      string          `json:"cartridge_type"`      // resolved cartridge hardware
	TargetMarket       string          `json:"target_market"`       // resolved destination code
	Placement          Placement       `json:"placement"`           // which candidate offset validated
	Version            uint8           `json:"version"`             // mask ROM revision
	Checksum           string          `json:"checksum"`            // header checksum (hex)
	ChecksumComplement string          `json:"checksum_complement"` // header checksum complement (hex)
	Fingerprint        string          `json:"fingerprint"`         // xxhash of the payload
	HasSMCHeader       bool            `json:"has_smc_header"`      // 512-byte copier prefix present
	RomSize            rom.StorageSize `json:"rom_size"`            // ROM size from the header exponent
	SramSize           rom.StorageSize `json:"sram_size"`           // SRAM size from the header exponent
}

// RomPlatform implements rom.Info.
func (Rom) RomPlatform() rom.Platform { return rom.SNES }

// Decode parses a Super Nintendo image held in memory. It strips any copier
// prefix, locates the header at one of the two candidate offsets, and
// resolves the coded fields.
func Decode(data []byte) (*Rom, error) {
	prefix, err := copierPrefixLen(len(data))
	if err != nil {
		return nil, err
	}
	payload := data[prefix:]

	hdr, placement, err := locateHeader(payload)
	if err != nil {
		return nil, err
	}

	return &Rom{
		Title:              hdr.Title,
		MakerCode:          hdr.MakerCode,
		GameCode:           hdr.GameCode,
		MapMode:            lookupLabel(hdr.MapMode, mapModes),
		CartridgeType:      lookupLabel(hdr.CartridgeType, cartridgeTypes),
		TargetMarket:       lookupLabel(hdr.DestinationCode, destinationCodes),
		Placement:          placement,
		Version:            hdr.Version,
		Checksum:           fmt.Sprintf("0x%04X", hdr.Checksum),
		ChecksumComplement: fmt.Sprintf("0x%04X", hdr.ComplementCheck),
		Fingerprint:        rom.Fingerprint(payload),
		HasSMCHeader:       prefix != 0,
		RomSize:            rom.KilobytesToSize(exponentKilobytes(hdr.ROMSize)),
		SramSize:           rom.KilobytesToSize(exponentKilobytes(hdr.SramSize)),
	}, nil
}

// copierPrefixLen detects the fixed-size prefix block some third-party
// copier tools prepend. Images are padded to whole 1 KiB blocks; the prefix
// is exactly half a block. Any other remainder means the file is malformed
// or repackaged in a way this decoder does not understand.
func copierPrefixLen(total int) (int, error) {
	switch total % copierBlockSize {
	case 0:
		return 0, nil
	case copierPrefixSize:
		return copierPrefixSize, nil
	default:
		return 0, fmt.Errorf("%w: %d bytes leaves remainder %d modulo %d",
			rom.ErrBadFileSize, total, total%copierBlockSize, copierBlockSize)
	}
}

// exponentKilobytes converts a header size exponent to kilobytes (2^n KiB).
func exponentKilobytes(exp uint8) uint64 {
	return uint64(1) << exp
}
