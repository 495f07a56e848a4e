package sql

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/quarrydb/quarry/dialect"
)

// ConfigFileName is the name of the connection config file.
const ConfigFileName = "quarry.yaml"

// ConfigFileNameAlt is the alternate name of the connection config file.
const ConfigFileNameAlt = "quarry.yml"

// Config describes a database connection. It is loaded from a yaml file
// with environment variables layered on top.
type Config struct {
	// Dialect is the registered dialect name (mysql, postgres, ...).
	Dialect string `koanf:"dialect"`
	// Driver is the database/sql driver name. Defaults to the dialect name.
	Driver string `koanf:"driver"`
	// DSN is the driver-specific data source name.
	DSN string `koanf:"dsn"`
	// Schema, when set, is switched to right after connecting.
	Schema string `koanf:"schema"`
	// SlowQueryThreshold enables query statistics collection with the given
	// slow-query threshold when positive.
	SlowQueryThreshold time.Duration `koanf:"slow_query_threshold"`
}

// LoadConfig loads the connection config from quarry.yaml (or quarry.yml)
// in the given directory, then overlays QUARRY_-prefixed environment
// variables (QUARRY_DSN, QUARRY_DIALECT, ...). A missing config file is not
// an error; the environment alone may carry the full configuration.
func LoadConfig(dir string) (*Config, error) {
	k := koanf.New(".")
	if path := findConfigFile(dir); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("dialect/sql: read config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("QUARRY_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "QUARRY_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("dialect/sql: load env vars: %w", err)
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("dialect/sql: decode config: %w", err)
	}
	return &cfg, nil
}

// findConfigFile finds the config file in the given directory.
// Returns empty string if not found.
func findConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Open opens a database connection described by the config. The dialect
// must be registered; when Schema is set, the session is switched to it
// using the dialect's schema-switch statement.
func (c *Config) Open(ctx context.Context) (dialect.Driver, error) {
	if c.Dialect == "" {
		return nil, fmt.Errorf("dialect/sql: config: %w", dialect.ErrNoDialect)
	}
	d, err := dialect.Lookup(c.Dialect)
	if err != nil {
		return nil, err
	}
	driverName := c.Driver
	if driverName == "" {
		driverName = c.Dialect
	}
	drv, err := Open(driverName, c.DSN)
	if err != nil {
		return nil, err
	}
	drv.dialect = c.Dialect
	drv.Conn.dialect = c.Dialect
	if c.Schema != "" {
		stmt, err := d.SetSchema(c.Schema)
		if err != nil {
			drv.Close()
			return nil, err
		}
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			drv.Close()
			return nil, err
		}
	}
	if c.SlowQueryThreshold > 0 {
		return NewStatsDriver(drv, WithSlowThreshold(c.SlowQueryThreshold)), nil
	}
	return drv, nil
}
