package sqldb

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
)

// DB implements persistence.RecordStore on top of sqlx
type DB struct {
	Db  *sqlx.DB
	sql sq.StatementBuilderType
	log *slog.Logger
}

// NewDB wraps db; driver selects the placeholder format
func NewDB(db *sqlx.DB, driver string, log *slog.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if NormalizeDriver(driver) == DriverPostgres {
		placeholder = sq.Dollar
	}
	return &DB{
		Db:  db,
		sql: sq.StatementBuilder.PlaceholderFormat(placeholder),
		log: log,
	}
}

var _ persistence.RecordStore = (*DB)(nil)

// GetRecord reads the unique row of table where key = value into dest
func (d *DB) GetRecord(ctx context.Context, table, key string, value any, dest any) error {
	query, args, err := d.sql.Select("*").
		From(table).
		Where(sq.Eq{key: value}).
		Limit(2).
		ToSql()
	if err != nil {
		return fmt.Errorf("build select %s: %w", table, err)
	}

	rows, err := d.Db.QueryxContext(ctx, query, args...)
	if err != nil {
		d.log.Error("failed to select record", "error", err, "table", table, "key", key)
		return &domain.StoreError{Message: err.Error()}
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return &domain.StoreError{Message: err.Error()}
		}
		return &domain.NotFoundError{Entity: persistence.EntityName(table)}
	}

	if err := rows.StructScan(dest); err != nil {
		d.log.Error("failed to scan record", "error", err, "table", table)
		return &domain.StoreError{Message: err.Error()}
	}

	if rows.Next() {
		return &domain.StoreError{Message: fmt.Sprintf("more than one %s matched %s", table, key)}
	}

	return nil
}

// InsertRecord appends rec to table
func (d *DB) InsertRecord(ctx context.Context, table string, rec persistence.Record) error {
	query, args, err := d.sql.Insert(table).
		SetMap(map[string]interface{}(rec)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert %s: %w", table, err)
	}

	result, err := d.Db.ExecContext(ctx, query, args...)
	if err != nil {
		d.log.Error("failed to insert record", "error", err, "table", table)
		return &domain.StoreError{Message: err.Error()}
	}

	affected, err := result.RowsAffected()
	if err != nil || affected == 0 {
		return &domain.StoreError{Message: "store returned no data"}
	}

	return nil
}

func (d *DB) Ping(ctx context.Context) error {
	return d.Db.PingContext(ctx)
}

// Close closes the underlying pool
func (d *DB) Close() error {
	return d.Db.Close()
}
