package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"git.home.luguber.info/inful/silkie/internal/config"
	"git.home.luguber.info/inful/silkie/internal/site"
	"git.home.luguber.info/inful/silkie/internal/version"
)

var CLI struct {
	Input      string           `short:"i" help:"Path to the input file/folder"`
	Stylesheet string           `short:"s" help:"URL path to a stylesheet"`
	Lang       string           `short:"l" help:"Language of the HTML document [en-CA by default]"`
	Config     string           `short:"c" help:"Read option defaults from the specified INI file"`
	Output     string           `short:"o" help:"Output directory for generated pages [dist by default]"`
	Verbose    bool             `help:"Enable verbose logging"`
	Version    kong.VersionFlag `short:"v" help:"Show the version and exit"`
}

var failStyle = pterm.NewStyle(pterm.FgRed)

func main() {
	kong.Parse(&CLI,
		kong.Name("silkie"),
		kong.Description("Static site generator with the smoothness of silk"),
		kong.Vars{"version": version.Version},
	)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		failStyle.Printfln("✕ %s", err)
		os.Exit(1)
	}
}

// run resolves options and performs one generation pass. All user-facing
// errors surface here as a single line, never as a stack trace.
func run() error {
	opts, err := config.Load(config.Flags{
		Input:      CLI.Input,
		Stylesheet: CLI.Stylesheet,
		Lang:       CLI.Lang,
		Output:     CLI.Output,
		Config:     CLI.Config,
	})
	if err != nil {
		return err
	}
	return site.NewGenerator(opts).Generate()
}
