package rom

import "testing"

func TestDecodeEUCJP(t *testing.T) {
	t.Parallel()

	// "あ" is 0xA4 0xA2 in EUC-JP
	if got := DecodeEUCJP([]byte{'A', 0xA4, 0xA2, ' ', ' '}); got != "Aあ" {
		t.Fatalf("got %q want %q", got, "Aあ")
	}
}

func TestDecodeEUCJPIgnoresBadBytes(t *testing.T) {
	t.Parallel()

	// a stray 0xFF is not a valid EUC-JP lead byte; it must be dropped, not
	// fail the decode
	if got := DecodeEUCJP([]byte{'O', 'K', 0xFF, '!'}); got != "OK!" {
		t.Fatalf("got %q want %q", got, "OK!")
	}
}

func TestDecodeShiftJIS(t *testing.T) {
	t.Parallel()

	// "あ" is 0x82 0xA0 in Shift-JIS
	if got := DecodeShiftJIS([]byte{0x82, 0xA0, 'B', ' '}); got != "あB" {
		t.Fatalf("got %q want %q", got, "あB")
	}
}

func TestCollapseSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"SONIC    THE    HEDGEHOG", "SONIC THE HEDGEHOG"},
		{"NO PADDING", "NO PADDING"},
		{"TAB\t\tRUN", "TAB RUN"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CollapseSpaces(tt.in); got != tt.want {
			t.Fatalf("CollapseSpaces(%q)=%q want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimPadding(t *testing.T) {
	t.Parallel()

	if got := TrimPadding("TITLE \x00\x00"); got != "TITLE" {
		t.Fatalf("got %q want %q", got, "TITLE")
	}

	// only trailing padding goes, internal bytes stay
	if got := TrimPadding("A\x00B"); got != "A\x00B" {
		t.Fatalf("got %q want %q", got, "A\x00B")
	}
}
