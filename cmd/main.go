package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/katiemcmillin/homework-cloner/internal/cmd"
	"github.com/katiemcmillin/homework-cloner/internal/config"
	"github.com/katiemcmillin/homework-cloner/version"
)

func main() {
	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("homework-cloner"),
		kong.Description(version.Tagline),
		kong.Vars{
			"default_config":  config.DefaultConfigPath,
			"default_history": config.DefaultHistoryDB,
			"default_record":  config.DefaultRecordPath,
			"version":         version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	// Execute the selected command
	err := ctx.Run()
	cli.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
