package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/crossref/internal/config"
	"git.home.luguber.info/inful/crossref/internal/logfields"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"crossref.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Check struct {
		Docs   string `short:"d" help:"Docs directory (overrides config)"`
		Strict bool   `help:"Warn on every unresolved reference and exit nonzero on warnings"`
	} `cmd:"" help:"Resolve cross-references across the document tree and report diagnostics"`

	Index struct {
		Docs   string `short:"d" help:"Docs directory (overrides config)"`
		Output string `short:"o" help:"Registry index database path" default:"crossref.db"`
	} `cmd:"" help:"Build the label registry and persist it as a SQLite index"`
}

func main() {
	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg := loadConfig(CLI.Config)
	passID := uuid.NewString()
	logger = logger.With(logfields.PassID(passID))

	switch ctx.Command() {
	case "check":
		if CLI.Check.Docs != "" {
			cfg.Docs = CLI.Check.Docs
		}
		if CLI.Check.Strict {
			cfg.Strict = true
		}
		warnings, err := runCheck(cfg, logger)
		if err != nil {
			logger.Error("check failed", logfields.Error(err))
			os.Exit(1)
		}
		if cfg.Strict && warnings > 0 {
			os.Exit(1)
		}
	case "index":
		if CLI.Index.Docs != "" {
			cfg.Docs = CLI.Index.Docs
		}
		if err := runIndex(cfg, CLI.Index.Output, logger); err != nil {
			logger.Error("index failed", logfields.Error(err))
			os.Exit(1)
		}
	}
}

// loadConfig loads the config file when present and falls back to
// defaults otherwise, so the CLI works in an unconfigured docs tree.
func loadConfig(path string) *config.Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load configuration", logfields.Error(err))
		os.Exit(1)
	}
	return cfg
}
