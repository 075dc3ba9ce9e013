package megadrive

import (
	"fmt"
	"strconv"

	"github.com/woozymasta/rom-info-tool/internal/rom"
)

const (
	headerOffset = 0x100
	headerSize   = 243
)

// Header is the raw header at 0x100 before enumeration resolution.
// Multi-byte integers are big-endian; text fields are Shift-JIS.
type Header struct {
	SystemType    string   // offset 0, 16 bytes
	Publisher     string   // offset 19, 4 bytes inside the copyright field
	ReleaseYear   string   // offset 24, 4 bytes inside the copyright field
	ReleaseMonth  string   // offset 29, 3-letter abbreviation
	TitleDomestic string   // offset 32, 48 bytes
	TitleOverseas string   // offset 80, 48 bytes
	SoftwareType  string   // offset 128, 2 bytes
	SerialNumber  string   // offset 131, 8 bytes
	Revision      string   // offset 140, 2 bytes
	Checksum      uint16   // offset 142
	DeviceCodes   string   // offset 144, 16 one-character codes
	ROMStart      uint32   // offset 160
	ROMEnd        uint32   // offset 164
	RAMStart      uint32   // offset 168
	RAMEnd        uint32   // offset 172
	ExtraMemory   [12]byte // offset 176
	ModemSupport  string   // offset 188, 12 bytes
	RegionCodes   string   // offset 240, 3 bytes, spaces preserved
}

// readHeader extracts the fixed-layout header from the 243-byte window at
// 0x100. The caller guarantees the window length; the layout below must
// consume exactly headerSize bytes.
func readHeader(buf []byte) (*Header, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", rom.ErrShortBuffer, headerSize, len(buf))
	}

	h := &Header{
		SystemType: text(buf[0:16]),
		// the copyright field reads "(C)XXXX YYYY.MMM"
		Publisher:     text(buf[19:23]),
		ReleaseYear:   text(buf[24:28]),
		ReleaseMonth:  text(buf[29:32]),
		TitleDomestic: text(buf[32:80]),
		TitleOverseas: text(buf[80:128]),
		SoftwareType:  text(buf[128:130]),
		SerialNumber:  text(buf[131:139]),
		Revision:      text(buf[140:142]),
		Checksum:      rom.ReadU16(buf[142:144]),
		DeviceCodes:   text(buf[144:160]),
		ROMStart:      rom.ReadU32(buf[160:164]),
		ROMEnd:        rom.ReadU32(buf[164:168]),
		RAMStart:      rom.ReadU32(buf[168:172]),
		RAMEnd:        rom.ReadU32(buf[172:176]),
		ModemSupport:  text(buf[188:200]),
		// not squeezed: the space positions tell the old and new region
		// coding formats apart
		RegionCodes: string(buf[240:243]),
	}
	copy(h.ExtraMemory[:], buf[176:188])

	return h, nil
}

// text decodes a fixed-length Shift-JIS field, trims trailing whitespace and
// collapses internal padding runs to a single space.
func text(b []byte) string {
	return rom.CollapseSpaces(rom.DecodeShiftJIS(b))
}

// releaseMonth matches the 3-letter month abbreviation and returns the
// calendar month 1-12, or 0 when the field holds anything else.
func (h *Header) releaseMonth() uint8 {
	for i, m := range months {
		if m == h.ReleaseMonth {
			return uint8(i + 1)
		}
	}

	return 0
}

// months in header abbreviation form, January first.
var months = [...]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}

// releaseYear parses the numeric year field, 0 when unparsable.
func (h *Header) releaseYear() uint16 {
	y, err := strconv.ParseUint(h.ReleaseYear, 10, 16)
	if err != nil {
		return 0
	}

	return uint16(y)
}

// romSize derives the cartridge size from the declared ROM address range.
func (h *Header) romSize() rom.StorageSize {
	if h.ROMEnd < h.ROMStart {
		return rom.StorageSize{}
	}

	return rom.BytesToSize(uint64(h.ROMEnd) - uint64(h.ROMStart) + 1)
}
