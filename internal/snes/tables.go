package snes

import "fmt"

// mapModes maps the map-mode byte to a bus speed and board layout.
var mapModes = map[uint8]string{
	0x20: "2.68MHz LoROM",
	0x21: "2.68MHz HiROM",
	0x23: "SA-1",
	0x25: "2.68MHz ExHiROM",
	0x30: "3.58MHz LoROM",
	0x31: "3.58MHz HiROM",
	0x35: "3.58MHz ExHiROM",
}

// cartridgeTypes maps the cartridge-type byte to the hardware on the board.
var cartridgeTypes = map[uint8]string{
	0x00: "ROM only",
	0x01: "ROM and RAM",
	0x02: "ROM, RAM and battery",
	0x33: "ROM and SA-1",
	0x34: "ROM, SA-1 and RAM",
	0x35: "ROM, SA-1, RAM and battery",
}

// destinationCodes maps the destination byte to a market. The official
// assignment has gaps (0x0E, 0x12-0x14); those fall through to the unknown
// label rather than a guessed market.
var destinationCodes = map[uint8]string{
	0x00: "Japan",
	0x01: "North America",
	0x02: "Europe",
	0x03: "Nordic",
	0x04: "Finland",
	0x05: "Denmark",
	0x06: "France",
	0x07: "Netherlands",
	0x08: "Spain",
	0x09: "Germany",
	0x0A: "Italy",
	0x0B: "China",
	0x0C: "Indonesia",
	0x0D: "Korea",
	0x0F: "Canada",
	0x10: "Brazil",
	0x11: "Australia",
}

// lookupLabel resolves a coded byte against a table. Unknown codes never
// fail: unofficial cartridges use undocumented values, so the raw code is
// reported instead.
func lookupLabel(code uint8, table map[uint8]string) string {
	if desc, ok := table[code]; ok {
		return desc
	}

	return fmt.Sprintf("unknown (0x%02X)", code)
}
