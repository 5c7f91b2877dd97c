package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"

	"github.com/lox/camelcards/internal/config"
	"github.com/lox/camelcards/internal/logging"
	"github.com/lox/camelcards/internal/report"
	"github.com/lox/camelcards/internal/scorer"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Path     string           `arg:"" name:"path" help:"Hands file with one '<cards> <bid>' record per line"`
	Config   string           `short:"c" default:"camelcards.hcl" help:"Path to HCL configuration file"`
	Rules    string           `help:"Rule set, jokers or standard (overrides config)"`
	LogLevel string           `short:"l" help:"Log level (overrides config)"`
	Debug    bool             `help:"Enable debug logging"`
	Ranking  bool             `short:"r" help:"Print the standings table before the total"`
	Output   string           `short:"o" help:"Also write the standings as JSON to this file"`
	NoColor  bool             `help:"Disable colored output"`
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("camelcards"),
		kong.Description("Rank Camel Cards hands and total their winnings"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = run(cli, os.Stdout, os.Stderr, !cli.NoColor)
	ctx.FatalIfErrorf(err)
}

// resolveConfig loads the config file and applies command line overrides.
func resolveConfig(cli CLI) (*config.Config, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cli.Rules != "" {
		cfg.Rules = cli.Rules
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Debug {
		cfg.LogLevel = "debug"
	}
	if cli.Ranking {
		cfg.Ranking = true
	}
	if cli.Output != "" {
		cfg.Output = cli.Output
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run scores the hands file. Nothing reaches stdout unless the whole file
// parsed and every side output was written.
func run(cli CLI, stdout, stderr io.Writer, color bool) error {
	cfg, err := resolveConfig(cli)
	if err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.LogLevel)
	logger.Debug("Starting", "path", cli.Path, "rules", cfg.Rules, "config", cli.Config)

	s := scorer.New(cfg.GameRules(), logger, quartz.NewReal())
	result, err := s.ScoreFile(cli.Path)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		if err := report.WriteJSON(cfg.Output, result); err != nil {
			return fmt.Errorf("writing standings: %w", err)
		}
		logger.Info("Wrote standings", "path", cfg.Output, "hands", len(result.Standings))
	}

	printer := report.NewPrinter(stdout, color)
	if cfg.Ranking {
		if err := printer.Standings(result.Standings); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}
	return printer.Total(result)
}
