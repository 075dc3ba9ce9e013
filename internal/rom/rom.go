// Package rom provides the shared types for decoded cartridge images.
package rom

// Platform identifies a supported cartridge platform.
type Platform string

const (
	// SNES is the Super Nintendo / Super Famicom.
	SNES Platform = "snes"

	// MegaDrive is the Sega Mega Drive / Genesis.
	MegaDrive Platform = "megadrive"

	// NDS is the Nintendo DS.
	NDS Platform = "nds"
)

// Info is implemented by every decoded cartridge record.
type Info interface {
	RomPlatform() Platform
}

// StorageSize is one storage quantity expressed in three derived units.
// All units come from a single source value, so they cannot disagree.
type StorageSize struct {
	Bytes     uint64 `json:"bytes"`     // size in bytes
	Kilobytes uint64 `json:"kilobytes"` // size in KiB
	Kilobits  uint64 `json:"kilobits"`  // size in Kibit
}

// KilobytesToSize builds a StorageSize from a kilobyte count.
func KilobytesToSize(kb uint64) StorageSize {
	return StorageSize{
		Bytes:     kb * 1024,
		Kilobytes: kb,
		Kilobits:  kb * 8,
	}
}

// BytesToSize builds a StorageSize from a byte count.
func BytesToSize(b uint64) StorageSize {
	return StorageSize{
		Bytes:     b,
		Kilobytes: b / 1024,
		Kilobits:  b / 128,
	}
}
