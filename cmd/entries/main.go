package main

import (
	"flag"
	"os"

	"github.com/idilsaglam/entries/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	configPath := flag.String("config", "", "path to config.toml")
	theme := flag.String("theme", "", "color theme: classic, neon or mono")
	lang := flag.String("lang", "", "UI language tag, e.g. en or fr")
	flag.Parse()

	// Hand the remaining args to the CLI runner; no args starts the TUI.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		ConfigPath: *configPath,
		Theme:      *theme,
		Lang:       *lang,
	}))
}
