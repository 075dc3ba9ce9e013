// Command rom-info-tool prints cartridge header metadata from ROM images.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/woozymasta/rom-info-tool/internal/vars"
)

type rootCmd struct {
	Version versionCmd `command:"version" description:"Show version information"`
	Info    infoCmd    `command:"info" description:"Decode and print ROM header metadata"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	vars.Print()
	return nil
}
