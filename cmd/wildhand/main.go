package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/wildhand/cmd/wildhand/shared"
	"github.com/lox/wildhand/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to HCL config file" default:"wildhand.hcl" type:"path"`
	LogLevel string           `help:"Override the configured log level (debug, info, warn, error)"`
	Plain    bool             `help:"Disable colours in output"`
	Symbols  bool             `help:"Render suits as symbols"`

	Eval  EvalCmd  `cmd:"" help:"Find the best five-card hand in a seven-card hand"`
	Batch BatchCmd `cmd:"" help:"Evaluate hands from a file, one per line"`
}

// App carries the resolved configuration into commands
type App struct {
	cfg    *config.Config
	logger *log.Logger
	render renderer
	out    io.Writer
}

func newApp(cli *CLI, out, errOut io.Writer) (*App, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Plain {
		cfg.Output.Style = config.StylePlain
	}
	if cli.Symbols {
		cfg.Output.Symbols = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := shared.SetupLogger(errOut, cfg.Level())
	if cfg.Plain() {
		logger = shared.SetupStructuredLogger(errOut, cfg.Level())
	}
	logger.Debug("Loaded configuration",
		"file", cli.Config,
		"workers", cfg.Workers,
		"style", cfg.Output.Style)

	return &App{
		cfg:    cfg,
		logger: logger,
		render: renderer{plain: cfg.Plain(), symbols: cfg.Output.Symbols},
		out:    out,
	}, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wildhand"),
		kong.Description("Best five-card poker hand finder with joker support"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := newApp(&cli, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
