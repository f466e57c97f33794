// Package config provides configuration loading and management for
// Ontograph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Ontograph configuration
type Config struct {
	Neo4j   Neo4jConfig   `yaml:"neo4j"`
	HTTP    HTTPConfig    `yaml:"http"`
	Watch   WatchConfig   `yaml:"watch"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Neo4jConfig configures the target graph store connection
type Neo4jConfig struct {
	// URI is the bolt/neo4j connection URI (default: neo4j://localhost:7687)
	URI string `yaml:"uri"`
	// Username for basic auth (default: neo4j)
	Username string `yaml:"username"`
	// Password for basic auth
	Password string `yaml:"password"`
	// Database is the target database name (empty = server default)
	Database string `yaml:"database"`
}

// HTTPConfig configures the data model fetch client
type HTTPConfig struct {
	// Timeout is the maximum time to wait for the data model document
	Timeout time.Duration `yaml:"timeout"`
}

// WatchConfig configures ontology file watching
type WatchConfig struct {
	// Debounce is how long to wait for more changes before re-importing
	Debounce time.Duration `yaml:"debounce"`
}

// MetricsConfig configures the Prometheus metrics endpoint
type MetricsConfig struct {
	// Listen is the address to serve /metrics on in watch mode
	// (empty = disabled)
	Listen string `yaml:"listen"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Neo4j: Neo4jConfig{
			URI:      "neo4j://localhost:7687",
			Username: "neo4j",
			Password: "",
			Database: "",
		},
		HTTP: HTTPConfig{
			Timeout: 30 * time.Second,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Metrics: MetricsConfig{
			Listen: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Neo4j.URI == "" {
		return fmt.Errorf("neo4j.uri is required")
	}
	if !strings.Contains(c.Neo4j.URI, "://") {
		return fmt.Errorf("neo4j.uri must be a connection URI, got %q", c.Neo4j.URI)
	}
	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence
// for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Neo4j.URI != "" {
		c.Neo4j.URI = other.Neo4j.URI
	}
	if other.Neo4j.Username != "" {
		c.Neo4j.Username = other.Neo4j.Username
	}
	if other.Neo4j.Password != "" {
		c.Neo4j.Password = other.Neo4j.Password
	}
	if other.Neo4j.Database != "" {
		c.Neo4j.Database = other.Neo4j.Database
	}

	if other.HTTP.Timeout != 0 {
		c.HTTP.Timeout = other.HTTP.Timeout
	}

	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}

	if other.Metrics.Listen != "" {
		c.Metrics.Listen = other.Metrics.Listen
	}
}
