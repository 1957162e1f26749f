package main

import (
	"log/slog"

	"git.home.luguber.info/inful/crossref/internal/config"
	"git.home.luguber.info/inful/crossref/internal/logfields"
	"git.home.luguber.info/inful/crossref/internal/registry"
)

// runIndex builds the label registry from the docs tree and persists it.
func runIndex(cfg *config.Config, output string, logger *slog.Logger) error {
	builder := registry.NewBuilder(cfg.HeadingAnchors, cfg.SourceSuffixes...).WithLogger(logger)
	reg, err := builder.ScanDir(cfg.Docs)
	if err != nil {
		return err
	}

	store, err := registry.OpenStore(output)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Save(reg); err != nil {
		return err
	}
	logger.Info("registry index written",
		logfields.DocsDir(cfg.Docs),
		slog.String("store", output),
		slog.Int("documents", len(reg.Documents())),
		slog.Int("labels", len(reg.Labels())),
	)
	return nil
}
