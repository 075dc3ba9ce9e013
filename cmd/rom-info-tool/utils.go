package main

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/yaml"

	"github.com/woozymasta/rom-info-tool/internal/megadrive"
	"github.com/woozymasta/rom-info-tool/internal/nds"
	"github.com/woozymasta/rom-info-tool/internal/rom"
	"github.com/woozymasta/rom-info-tool/internal/snes"
)

// decodeImage runs the platform decoder matching the tag.
func decodeImage(platform rom.Platform, data []byte) (rom.Info, error) {
	switch platform {
	case rom.SNES:
		return snes.Decode(data)
	case rom.MegaDrive:
		return megadrive.Decode(data)
	case rom.NDS:
		return nds.Decode(data)
	default:
		return nil, fmt.Errorf("%w: %q", rom.ErrUnsupportedPlatform, platform)
	}
}

// encodeInfo serializes the decoded record to the requested format.
func encodeInfo(info rom.Info, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(info)
	case "json":
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
