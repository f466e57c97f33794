package main

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/datamodel"
	"github.com/c360studio/ontograph/importer"
	"github.com/c360studio/ontograph/metric"
	"github.com/c360studio/ontograph/neo4jstore"
)

func dataModelCmd(configPath, logLevel *string) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "datamodel",
		Short: "Ingest a JSON data model into the graph store",
		Long: `Datamodel fetches a JSON data model document over HTTP and ingests
it as a DataModel node linked to its Property and Dimension nodes.

The store is cleared before ingestion, same as an ontology import.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDataModel(cmd.Context(), *configPath, *logLevel, url)
		},
	}

	cmd.Flags().StringVarP(&url, "url", "u", "", "Data model document URL")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func runDataModel(ctx context.Context, configPath, logLevel, url string) error {
	cfg, logger, err := setup(configPath, logLevel)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: cfg.HTTP.Timeout}
	model, err := datamodel.Fetch(ctx, client, url)
	if err != nil {
		logger.Error("Skipping data model ingestion", "url", url, "error", err)
		return err
	}
	logger.Info("Fetched data model",
		"uri", model.URI,
		"dimensions", len(model.Dimensions),
		"properties", len(model.Properties))

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

	imp := importer.New(store,
		importer.WithLogger(logger),
		importer.WithMetrics(metric.New()),
	)

	statements := datamodel.NewBuilder().Statements(model)
	report, err := imp.Apply(ctx, metric.PathDataModel, statements)
	if err != nil {
		return err
	}
	printSummary(report)
	return nil
}
