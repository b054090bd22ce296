package sqldb

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	maxOpenConnections            = 25
	maxIdleConnections            = 5
	connMaxLifetime               = 5 * time.Minute
	connMaxIdleTime               = 1 * time.Minute
	defaultStatementTimeoutMillis = 60000
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Host                   string `envconfig:"HOST"`
	Port                   string `envconfig:"PORT" default:"5432"`
	Username               string `envconfig:"USERNAME"`
	Password               string `envconfig:"PASSWORD"`
	Database               string `envconfig:"DATABASE"`
	SSLMode                string `envconfig:"SSL_MODE" default:"disable"`
	StatementTimeoutMillis int    `envconfig:"STATEMENT_TIMEOUT" default:"60000"`
	SQLitePath             string `envconfig:"SQLITE_PATH" default:"celestai.db"`
}

// NormalizeDriver maps driver aliases onto DriverPostgres / DriverSQLite.
func NormalizeDriver(driver string) string {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pg", "pgx":
		return DriverPostgres
	case "sqlite", "sqlite3":
		return DriverSQLite
	default:
		return driver
	}
}

// Validate checks that the settings required by driver are present
func (c *Config) Validate(driver string) error {
	switch NormalizeDriver(driver) {
	case DriverPostgres:
		if c.Host == "" || c.Database == "" || c.Username == "" {
			return fmt.Errorf("postgres host, database and username are required")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required")
		}
	default:
		return fmt.Errorf("unsupported sql driver %q", driver)
	}
	return nil
}

func (c *Config) toPgConnection() string {
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		c.Host,
		c.Port,
		c.Username,
		c.Database,
		c.Password,
		c.SSLMode,
	)
}

// NewConnection opens a pooled connection for driver and applies per-driver session settings
func (c *Config) NewConnection(driver string) (*sqlx.DB, error) {
	switch NormalizeDriver(driver) {
	case DriverPostgres:
		return c.newPostgres()
	case DriverSQLite:
		return OpenSQLite(c.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// pgConnConfig parses the connection settings; statement_timeout is a
// runtime param so every pooled connection gets it
func (c *Config) pgConnConfig() (*pgx.ConnConfig, error) {
	connectionConfig, err := pgx.ParseConfig(c.toPgConnection())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	timeout := c.StatementTimeoutMillis
	if timeout <= 0 {
		timeout = defaultStatementTimeoutMillis
	}
	connectionConfig.RuntimeParams["statement_timeout"] = strconv.Itoa(timeout)

	return connectionConfig, nil
}

func (c *Config) newPostgres() (*sqlx.DB, error) {
	connectionConfig, err := c.pgConnConfig()
	if err != nil {
		return nil, err
	}

	connectionString := stdlib.RegisterConnConfig(connectionConfig)
	db, err := sqlx.Connect("pgx", connectionString)
	if err != nil {
		return nil, fmt.Errorf("connect db error: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConnections)
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetMaxIdleConns(maxIdleConnections)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	return db, nil
}

// OpenSQLite opens a single-connection sqlite database; ":memory:" is allowed.
func OpenSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite error: %w", err)
	}
	// one connection keeps an in-memory database shared and serializes writers
	db.SetMaxOpenConns(1)
	return db, nil
}
