package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/crossref/internal/config"
	"git.home.luguber.info/inful/crossref/internal/diag"
	"git.home.luguber.info/inful/crossref/internal/doctree"
	"git.home.luguber.info/inful/crossref/internal/domain"
	"git.home.luguber.info/inful/crossref/internal/logfields"
	"git.home.luguber.info/inful/crossref/internal/registry"
	"git.home.luguber.info/inful/crossref/internal/resolve"
)

// runCheck resolves cross-references across the whole docs tree and
// prints collected diagnostics. Returns the number of warnings.
func runCheck(cfg *config.Config, logger *slog.Logger) (int, error) {
	start := time.Now()

	reg, err := loadRegistry(cfg, logger)
	if err != nil {
		return 0, err
	}

	domains := domain.NewRegistry()
	domains.RegisterBuiltin(domain.NewStandard())

	collector := &diag.Collector{}
	resolver := resolve.New(reg, domains, resolve.Options{
		HeadingAnchors: cfg.HeadingAnchors,
		SourceSuffixes: cfg.SourceSuffixes,
		RefDomains:     cfg.RefDomains,
		Strict:         cfg.Strict,
		Sink:           diag.Tee{collector, diag.LogSink{Logger: logger}},
		Logger:         logger,
	})

	docCount := 0
	err = walkDocs(cfg, func(docname string, body []byte) {
		root := doctree.Parse(docname, body)
		resolver.ResolveDocument(docname, root, body)
		docCount++
	})
	if err != nil {
		return 0, err
	}

	for _, d := range collector.All() {
		fmt.Println(d.String())
	}
	logger.Info("check complete",
		slog.Int("documents", docCount),
		slog.Int("warnings", collector.Warnings()),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())),
	)
	return collector.Warnings(), nil
}

// loadRegistry prefers a persisted index when one is configured and
// present; otherwise it builds the registry by scanning the docs tree.
func loadRegistry(cfg *config.Config, logger *slog.Logger) (*registry.Registry, error) {
	if cfg.Store != "" {
		if _, err := os.Stat(cfg.Store); err == nil {
			store, err := registry.OpenStore(cfg.Store)
			if err != nil {
				return nil, err
			}
			defer func() { _ = store.Close() }()
			logger.Debug("loading registry index", slog.String("store", cfg.Store))
			return store.Load()
		}
	}
	builder := registry.NewBuilder(cfg.HeadingAnchors, cfg.SourceSuffixes...).WithLogger(logger)
	return builder.ScanDir(cfg.Docs)
}

// walkDocs visits every document under the configured docs dir with its
// frontmatter-stripped body.
func walkDocs(cfg *config.Config, visit func(docname string, body []byte)) error {
	root, err := filepath.Abs(cfg.Docs)
	if err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		var suffix string
		for _, s := range cfg.SourceSuffixes {
			if strings.HasSuffix(d.Name(), s) {
				suffix = s
				break
			}
		}
		if suffix == "" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		docname := strings.TrimSuffix(filepath.ToSlash(rel), suffix)
		// #nosec G304 -- path comes from the directory walk above.
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		visit(docname, doctree.StripFrontmatter(content))
		return nil
	})
}
