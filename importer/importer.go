// Package importer orchestrates ontology and data-model imports: it
// sequences the mapping rules, clears the target store, applies the
// rendered statements one at a time, and reports the outcome.
//
// Per-statement failures are recovered locally so one bad triple cannot
// block import of the rest of the ontology. Only parse, connection, and
// clear failures abort a run.
package importer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/c360studio/ontograph/graph"
	"github.com/c360studio/ontograph/metric"
	"github.com/c360studio/ontograph/triplestore"
)

// Store is the capability the importer needs from the target graph
// store. It is injected per run; *neo4jstore.Store satisfies it.
type Store interface {
	Clear(ctx context.Context) error
	Run(ctx context.Context, cypher string, params map[string]any) error
}

// Failure records one rejected statement.
type Failure struct {
	Statement string
	Err       string
}

// Report is the immutable outcome of applying a statement sequence.
type Report struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Failures  []Failure
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) { i.logger = logger }
}

// WithMetrics enables statement counters.
func WithMetrics(m *metric.Metrics) Option {
	return func(i *Importer) { i.metrics = m }
}

// Importer applies mutation statements against a store.
type Importer struct {
	store   Store
	logger  *slog.Logger
	metrics *metric.Metrics
}

// New creates an Importer bound to a store for the duration of a run.
func New(store Store, opts ...Option) *Importer {
	i := &Importer{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// OntologyStatements parses each Turtle file and renders the full
// mutation statement sequence in rule order. A parse failure on any
// file aborts with no statements.
func OntologyStatements(paths []string) ([]graph.Statement, error) {
	var statements []graph.Statement
	for _, path := range paths {
		store, err := triplestore.Open(path)
		if err != nil {
			return nil, err
		}
		statements = append(statements, graph.RenderAll(graph.Extract(store))...)
	}
	return statements, nil
}

// ImportOntology parses the Turtle files, clears the store, and applies
// the generated statements. Parse and clear failures abort before any
// statement is attempted.
func (i *Importer) ImportOntology(ctx context.Context, paths []string) (Report, error) {
	statements, err := OntologyStatements(paths)
	if err != nil {
		return Report{}, err
	}
	i.logger.Info("Generated ontology statements", "files", len(paths), "statements", len(statements))
	return i.Apply(ctx, metric.PathOntology, statements)
}

// Apply clears the store and then folds over the statement sequence,
// producing the run report. The clear runs first so a rerun leaves the
// store with the same node and edge counts; if it fails, zero
// statements are attempted.
func (i *Importer) Apply(ctx context.Context, path string, statements []graph.Statement) (Report, error) {
	if i.metrics != nil {
		i.metrics.ImportRuns.WithLabelValues(path).Inc()
		i.metrics.StatementsGenerated.WithLabelValues(path).Add(float64(len(statements)))
	}

	if err := i.store.Clear(ctx); err != nil {
		return Report{}, err
	}

	report := fold(func(s graph.Statement) error {
		return i.store.Run(ctx, s.Text, s.Params)
	}, statements, i.logger)

	if i.metrics != nil {
		i.metrics.StatementsSucceeded.WithLabelValues(path).Add(float64(report.Succeeded))
		i.metrics.StatementsFailed.WithLabelValues(path).Add(float64(report.Failed))
	}

	i.logger.Info("Import finished",
		"run_id", report.RunID,
		"path", path,
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed)
	return report, nil
}

// fold applies each statement in sequence order and accumulates an
// immutable report. A failure is logged with the offending statement
// and the store's error, then execution continues; there is no
// rollback and no abort.
func fold(apply func(graph.Statement) error, statements []graph.Statement, logger *slog.Logger) Report {
	report := Report{
		RunID: uuid.NewString(),
		Total: len(statements),
	}
	for _, statement := range statements {
		if err := apply(statement); err != nil {
			logger.Error("Statement rejected by store",
				"statement", statement.Text,
				"error", err)
			report.Failed++
			report.Failures = append(report.Failures, Failure{
				Statement: statement.Text,
				Err:       err.Error(),
			})
			continue
		}
		report.Succeeded++
	}
	return report
}
