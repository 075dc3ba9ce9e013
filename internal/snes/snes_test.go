package snes

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/woozymasta/rom-info-tool/internal/rom"
)

// buildImage builds a synthetic image of 2^exp KiB with a header written at
// the given candidate offset. The rest of the image stays zero.
func buildImage(t *testing.T, placement Placement, exp uint8) []byte {
	t.Helper()

	img := make([]byte, (1<<exp)*1024)
	start := headerStartLoROM
	if placement == PlacementHiROM {
		start = headerStartHiROM
	}
	writeHeader(img[start:start+headerSize], exp)

	return img
}

// writeHeader fills a 48-byte window with a plausible header. The fixed run
// at offsets 6..12 stays zero, which is what validation expects.
func writeHeader(buf []byte, exp uint8) {
	copy(buf[0:2], "01")
	copy(buf[2:6], "TEST")
	buf[15] = 0x02 // ROM, RAM and battery
	copy(buf[16:37], "HELLO WORLD          ")
	buf[37] = 0x20 // 2.68MHz LoROM
	buf[39] = exp
	buf[40] = 0x03 // 8 KiB SRAM
	buf[41] = 0x01 // North America
	buf[42] = 0x33
	buf[43] = 1
	buf[44], buf[45] = 0x12, 0x34
	buf[46], buf[47] = 0xED, 0xCB
}

func withSMCPrefix(img []byte) []byte {
	return append(make([]byte, copierPrefixSize), img...)
}

func TestDecodeLoROM(t *testing.T) {
	t.Parallel()

	r, err := Decode(buildImage(t, PlacementLoROM, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Placement != PlacementLoROM {
		t.Fatalf("placement=%s want %s", r.Placement, PlacementLoROM)
	}
	if r.Title != "HELLO WORLD" {
		t.Fatalf("title=%q", r.Title)
	}
	if r.MapMode != "2.68MHz LoROM" {
		t.Fatalf("map mode=%q", r.MapMode)
	}
	if r.CartridgeType != "ROM, RAM and battery" {
		t.Fatalf("cartridge type=%q", r.CartridgeType)
	}
	if r.TargetMarket != "North America" {
		t.Fatalf("target market=%q", r.TargetMarket)
	}
	if r.HasSMCHeader {
		t.Fatalf("unexpected SMC header flag")
	}
	if r.RomSize.Kilobytes != 32 || r.RomSize.Bytes != 32*1024 {
		t.Fatalf("rom size=%+v want 32 KiB", r.RomSize)
	}
	if r.SramSize.Kilobytes != 8 {
		t.Fatalf("sram size=%+v want 8 KiB", r.SramSize)
	}
	if r.Checksum != "0xEDCB" || r.ChecksumComplement != "0x1234" {
		t.Fatalf("checksum=%s complement=%s", r.Checksum, r.ChecksumComplement)
	}
}

func TestDecodeHiROM(t *testing.T) {
	t.Parallel()

	r, err := Decode(buildImage(t, PlacementHiROM, 6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Placement != PlacementHiROM {
		t.Fatalf("placement=%s want %s", r.Placement, PlacementHiROM)
	}
	if r.RomSize.Kilobytes != 64 {
		t.Fatalf("rom size=%+v want 64 KiB", r.RomSize)
	}
}

func TestLoROMWinsWhenBothValidate(t *testing.T) {
	t.Parallel()

	img := buildImage(t, PlacementHiROM, 6)
	writeHeader(img[headerStartLoROM:headerStartLoROM+headerSize], 6)

	r, err := Decode(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Placement != PlacementLoROM {
		t.Fatalf("placement=%s, candidate order must prefer LoROM", r.Placement)
	}
}

func TestSizeMismatchFailsLocation(t *testing.T) {
	t.Parallel()

	// zero run is intact, but the stored exponent says 32 KiB while the
	// image is 64 KiB; the size cross-check must disqualify the candidate
	img := make([]byte, 64*1024)
	writeHeader(img[headerStartLoROM:headerStartLoROM+headerSize], 5)

	_, err := Decode(img)
	if !errors.Is(err, rom.ErrNoHeader) {
		t.Fatalf("want ErrNoHeader, got %v", err)
	}
}

func TestSMCPrefix(t *testing.T) {
	t.Parallel()

	bare := buildImage(t, PlacementLoROM, 5)

	r, err := Decode(withSMCPrefix(bare))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.HasSMCHeader {
		t.Fatalf("SMC header flag not set")
	}

	plain, err := Decode(bare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plain.Fingerprint != r.Fingerprint {
		t.Fatalf("fingerprint differs with copier prefix: %s vs %s", plain.Fingerprint, r.Fingerprint)
	}
}

func TestBadFileLength(t *testing.T) {
	t.Parallel()

	_, err := Decode(make([]byte, 32*1024+100))
	if !errors.Is(err, rom.ErrBadFileSize) {
		t.Fatalf("want ErrBadFileSize, got %v", err)
	}
}

func TestTooShortForAnyCandidate(t *testing.T) {
	t.Parallel()

	// whole kilobytes, so the length check passes, but no room for a header
	_, err := Decode(make([]byte, 1024))
	if !errors.Is(err, rom.ErrShortBuffer) {
		t.Fatalf("want ErrShortBuffer, got %v", err)
	}
}

func TestNoValidHeader(t *testing.T) {
	t.Parallel()

	// big enough for both candidates but all zero: size checks cannot match
	_, err := Decode(make([]byte, 128*1024))
	if !errors.Is(err, rom.ErrNoHeader) {
		t.Fatalf("want ErrNoHeader, got %v", err)
	}
}

func TestUnknownCodesStillDecode(t *testing.T) {
	t.Parallel()

	img := buildImage(t, PlacementLoROM, 5)
	img[headerStartLoROM+37] = 0x99 // map mode not in the table
	img[headerStartLoROM+41] = 0x0E // documented gap in destination codes

	r, err := Decode(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(r.MapMode, "0x99") {
		t.Fatalf("map mode label %q does not carry the raw code", r.MapMode)
	}
	if !strings.Contains(r.TargetMarket, "0x0E") {
		t.Fatalf("target market label %q does not carry the raw code", r.TargetMarket)
	}
}

func TestTitleEUCJP(t *testing.T) {
	t.Parallel()

	img := buildImage(t, PlacementLoROM, 5)
	title := img[headerStartLoROM+16 : headerStartLoROM+37]
	for i := range title {
		title[i] = ' '
	}
	// "あ" followed by an invalid lead byte that must be dropped
	title[0], title[1], title[2] = 0xA4, 0xA2, 0xFF

	r, err := Decode(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "あ" {
		t.Fatalf("title=%q want %q", r.Title, "あ")
	}
}

func TestStorageUnitsAgree(t *testing.T) {
	t.Parallel()

	r, err := Decode(buildImage(t, PlacementLoROM, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range []rom.StorageSize{r.RomSize, r.SramSize} {
		if s.Bytes != s.Kilobytes*1024 || s.Bytes != s.Kilobits*128 {
			t.Fatalf("derived units disagree: %+v", s)
		}
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	t.Parallel()

	img := buildImage(t, PlacementLoROM, 5)

	a, err := Decode(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Decode(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("decoding the same bytes twice differs:\n%+v\n%+v", a, b)
	}
}
