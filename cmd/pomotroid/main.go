package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/SpreadSheets600/pomotroid/internal/cmd"
	"github.com/SpreadSheets600/pomotroid/internal/config"
	"github.com/SpreadSheets600/pomotroid/internal/version"
)

func main() {
	// Load settings from $POMOTROID_HOME/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Parse CLI arguments with Kong
	var cli cmd.CLI
	cli.SetSettings(settings) // Set settings before parsing
	ctx := kong.Parse(&cli,
		kong.Name("pomotroid"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
