// Package neo4jstore wraps the Neo4j driver with the narrow surface the
// importer needs: clear the graph, run one statement, close.
package neo4jstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ErrConnection indicates the store is unreachable or the initial
// clear failed. Connection errors are fatal; the run aborts before any
// mutation statement is attempted.
var ErrConnection = errors.New("neo4j connection failed")

// Config holds the Neo4j connection settings.
type Config struct {
	URI      string
	Username string
	Password string
	Database string
}

// Store is a run-scoped Neo4j client. Acquire it with Connect and
// release it with Close on every exit path.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *slog.Logger
}

// Connect creates a driver and verifies connectivity before returning.
func Connect(ctx context.Context, cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("%w: verify %s: %v", ErrConnection, cfg.URI, err)
	}

	logger.Debug("Connected to Neo4j", "uri", cfg.URI, "database", cfg.Database)
	return &Store{driver: driver, database: cfg.Database, logger: logger}, nil
}

// Clear detach-deletes every node and edge in the database. A clear
// failure is a connection-class error and aborts the run.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.Run(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
		return fmt.Errorf("%w: clear graph: %v", ErrConnection, err)
	}
	s.logger.Debug("Cleared graph")
	return nil
}

// Run executes a single statement in a write session.
func (s *Store) Run(ctx context.Context, cypher string, params map[string]any) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return err
	}
	// Drain so the server reports statement errors before the session closes.
	_, err = result.Consume(ctx)
	return err
}

// Close releases the underlying driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}
