package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/woozymasta/rom-info-tool/internal/rom"
	"github.com/woozymasta/rom-info-tool/internal/sniff"
)

type infoCmd struct {
	Args struct {
		Input string `positional-arg-name:"FILE" required:"true" description:"ROM image file"`
	} `positional-args:"true"`

	Format   string `short:"f" long:"format" choice:"yaml" choice:"json" default:"yaml" description:"Output format"`
	Platform string `short:"p" long:"platform" default:"auto" description:"Platform (auto, snes, sfc, megadrive, genesis, md, nds, ds)"`
	Verbose  bool   `short:"v" long:"verbose" description:"Print detection notes to stderr"`
}

// Execute decodes the input image and prints the decoded record.
func (c *infoCmd) Execute(_ []string) error {
	data, err := os.ReadFile(c.Args.Input)
	if err != nil {
		return err
	}

	platform, err := c.resolvePlatform(data)
	if err != nil {
		return err
	}

	info, err := decodeImage(platform, data)
	if err != nil {
		return err
	}

	out, err := encodeInfo(info, strings.ToLower(c.Format))
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(out)
	return err
}

// resolvePlatform resolves an explicit label, or detects the platform from
// the file extension with a content-sniffing fallback.
func (c *infoCmd) resolvePlatform(data []byte) (rom.Platform, error) {
	if c.Platform != "" && c.Platform != "auto" {
		return rom.ParsePlatform(c.Platform)
	}

	if p, ok := rom.PlatformFromPath(c.Args.Input); ok {
		c.note("platform %s detected from the file extension", p)
		return p, nil
	}

	if p, ok := sniff.Detect(data); ok {
		c.note("platform %s detected from the file contents", p)
		return p, nil
	}

	return "", fmt.Errorf("%w: could not detect the platform, use '-p' to set one explicitly",
		rom.ErrUnsupportedPlatform)
}

// note prints a progress line to stderr in verbose mode.
func (c *infoCmd) note(format string, args ...any) {
	if c.Verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
