package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/config"
	"github.com/c360studio/ontograph/importer"
	"github.com/c360studio/ontograph/metric"
	"github.com/c360studio/ontograph/neo4jstore"
)

func importCmd(configPath, logLevel *string) *cobra.Command {
	var (
		files []string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a Turtle ontology into the graph store",
		Long: `Import parses one or more Turtle ontology files, maps classes and
properties onto graph nodes and edges, clears the target store, and
applies the generated statements.

File arguments accept glob patterns, including ** for recursive
matching. With --watch the process stays up and re-imports whenever a
matched file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), *configPath, *logLevel, files, watch)
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "Turtle file path or glob pattern (repeatable)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-import when ontology files change")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(ctx context.Context, configPath, logLevel string, patterns []string, watch bool) error {
	cfg, logger, err := setup(configPath, logLevel)
	if err != nil {
		return err
	}

	paths, err := importer.ExpandPaths(patterns)
	if err != nil {
		return err
	}
	logger.Info("Resolved ontology files", "count", len(paths))

	store, err := neo4jstore.Connect(ctx, neo4jstore.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	}, logger)
	if err != nil {
		return err
	}
	defer store.Close(ctx)

	metrics := metric.New()
	imp := importer.New(store,
		importer.WithLogger(logger),
		importer.WithMetrics(metrics),
	)

	report, err := imp.ImportOntology(ctx, paths)
	if err != nil {
		return err
	}
	printSummary(report)

	if !watch {
		return nil
	}

	return watchLoop(ctx, cfg, logger, imp, metrics, paths)
}

// watchLoop blocks until interrupted, re-importing after each debounced
// change to the watched ontology files. When a metrics listen address
// is configured, /metrics is served for the lifetime of the loop.
func watchLoop(ctx context.Context, cfg *config.Config, logger *slog.Logger, imp *importer.Importer, metrics *metric.Metrics, paths []string) error {
	signalCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Metrics.Listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		server := &http.Server{Addr: cfg.Metrics.Listen, Handler: mux}
		go func() {
			logger.Info("Serving metrics", "addr", cfg.Metrics.Listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("Metrics server failed", "error", err)
			}
		}()
		defer server.Close()
	}

	watcher, err := importer.NewWatcher(paths, cfg.Watch.Debounce, logger)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	logger.Info("Watching ontology files", "count", len(paths))
	err = watcher.Run(signalCtx, func(ctx context.Context) {
		report, err := imp.ImportOntology(ctx, paths)
		if err != nil {
			logger.Error("Re-import failed", "error", err)
			return
		}
		printSummary(report)
	})
	if errors.Is(err, context.Canceled) {
		logger.Info("Watch stopped")
		return nil
	}
	return err
}
