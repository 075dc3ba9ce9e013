package rom

import (
	"errors"
	"testing"
)

func TestParsePlatform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  Platform
	}{
		{"snes", SNES},
		{"sfc", SNES},
		{"SFC", SNES},
		{"megadrive", MegaDrive},
		{"genesis", MegaDrive},
		{"md", MegaDrive},
		{"nds", NDS},
		{"ds", NDS},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePlatform(tt.label)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestParsePlatformUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParsePlatform("gamegear")
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Fatalf("want ErrUnsupportedPlatform, got %v", err)
	}
}

func TestPlatformFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Platform
		ok   bool
	}{
		{"game.sfc", SNES, true},
		{"GAME.SMC", SNES, true},
		{"dir/game.swc", SNES, true},
		{"game.md", MegaDrive, true},
		{"game.gen", MegaDrive, true},
		{"game.smd", MegaDrive, true},
		{"game.nds", NDS, true},
		{"game.bin", "", false},
		{"game", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, ok := PlatformFromPath(tt.path)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("got (%s, %v) want (%s, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
