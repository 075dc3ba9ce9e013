package snes

import (
	"fmt"

	"github.com/woozymasta/rom-info-tool/internal/rom"
)

const (
	headerStartLoROM = 0x7FB0
	headerStartHiROM = 0xFFB0
	headerSize       = 48

	copierBlockSize  = 1024
	copierPrefixSize = 512
)

// Header is the raw 48-byte cartridge header before enumeration resolution.
// All multi-byte integers are big-endian.
type Header struct {
	MakerCode        string  // offset 0, 2 bytes
	GameCode         string  // offset 2, 4 bytes
	fixed            [7]byte // offset 6, must be all zero in a real header
	ExpansionRAMSize uint8   // offset 13
	SpecialVersion   uint8   // offset 14
	CartridgeType    uint8   // offset 15
	Title            string  // offset 16, 21 bytes of EUC-JP text
	MapMode          uint8   // offset 37
	ROMType          uint8   // offset 38
	ROMSize          uint8   // offset 39, size exponent in KiB
	SramSize         uint8   // offset 40, size exponent in KiB
	DestinationCode  uint8   // offset 41
	FixedValue       uint8   // offset 42, 0x33 on licensed cartridges
	Version          uint8   // offset 43
	ComplementCheck  uint16  // offset 44
	Checksum         uint16  // offset 46
}

// readHeaderAt extracts the fixed-layout header starting at the given offset
// of the payload. The read consumes exactly headerSize bytes; a shorter
// buffer is a hard failure, never a partial record.
func readHeaderAt(payload []byte, offset int) (*Header, error) {
	if offset < 0 || len(payload) < offset+headerSize {
		return nil, fmt.Errorf("%w: need %d bytes at offset 0x%X, have %d",
			rom.ErrShortBuffer, headerSize, offset, len(payload))
	}
	buf := payload[offset : offset+headerSize]

	h := &Header{
		MakerCode:        rom.TrimPadding(string(buf[0:2])),
		GameCode:         rom.TrimPadding(string(buf[2:6])),
		ExpansionRAMSize: buf[13],
		SpecialVersion:   buf[14],
		CartridgeType:    buf[15],
		Title:            rom.DecodeEUCJP(buf[16:37]),
		MapMode:          buf[37],
		ROMType:          buf[38],
		ROMSize:          buf[39],
		SramSize:         buf[40],
		DestinationCode:  buf[41],
		FixedValue:       buf[42],
		Version:          buf[43],
		ComplementCheck:  rom.ReadU16(buf[44:46]),
		Checksum:         rom.ReadU16(buf[46:48]),
	}
	copy(h.fixed[:], buf[6:13])

	return h, nil
}

// checksOut reports whether the parsed header appears legitimate.
//
// The header can sit at one of two offsets, so a candidate read may land on
// arbitrary program bytes. Two independent checks must both hold: the 7-byte
// fixed run is all zero, and the header size exponent matches the real
// payload size. A single criterion can coincidentally pass at the wrong
// offset for some images.
func (h *Header) checksOut(realSize uint64) bool {
	if h.fixed != [7]byte{} {
		return false
	}

	calculated := uint64(copierBlockSize) << h.ROMSize

	return calculated == realSize
}

// locateHeader determines which candidate offset holds a legitimate header.
// The LoROM candidate is always tried first, so location is deterministic
// even if both candidates would validate.
func locateHeader(payload []byte) (*Header, Placement, error) {
	if len(payload) < headerStartLoROM+headerSize {
		return nil, "", fmt.Errorf("%w: %d bytes cannot contain a header at 0x%X",
			rom.ErrShortBuffer, len(payload), headerStartLoROM)
	}
	realSize := uint64(len(payload))

	if hdr, err := readHeaderAt(payload, headerStartLoROM); err == nil && hdr.checksOut(realSize) {
		return hdr, PlacementLoROM, nil
	}

	if hdr, err := readHeaderAt(payload, headerStartHiROM); err == nil && hdr.checksOut(realSize) {
		return hdr, PlacementHiROM, nil
	}

	return nil, "", fmt.Errorf("%w: image is not a recognizable Super Nintendo ROM", rom.ErrNoHeader)
}
