package persistence

import (
	"context"
	"strings"
)

// Record is a single table row keyed by column name.
type Record map[string]any

// RecordStore is the gateway over the relational row store.
//
// GetRecord decodes the unique row where key == value into dest. Zero rows
// yield *domain.NotFoundError, backend failures *domain.StoreError.
// InsertRecord writes one row and fails with *domain.StoreError when the
// store rejects it or acknowledges without a confirming payload.
type RecordStore interface {
	GetRecord(ctx context.Context, table, key string, value any, dest any) error
	InsertRecord(ctx context.Context, table string, rec Record) error
	Ping(ctx context.Context) error
}

// EntityName turns a table name into the entity used in not-found messages: users -> User.
func EntityName(table string) string {
	name := strings.TrimSuffix(table, "s")
	if name == "" {
		return table
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
