package chartRepo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
	chartRepo "github.com/SagarBajaj14/CelestAI.io/internal/repository/chart"
)

type recordingStore struct {
	tables  []string
	records []persistence.Record
	err     error
}

func (s *recordingStore) GetRecord(context.Context, string, string, any, any) error {
	return errors.New("not used")
}

func (s *recordingStore) InsertRecord(_ context.Context, table string, rec persistence.Record) error {
	if s.err != nil {
		return s.err
	}
	s.tables = append(s.tables, table)
	s.records = append(s.records, rec)
	return nil
}

func (s *recordingStore) Ping(context.Context) error { return nil }

func TestCreate(t *testing.T) {
	store := &recordingStore{}
	repo := chartRepo.New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	chart := &domain.AstroChart{ID: "c-1", UserID: "u-1", SVGChart: "<svg/>"}
	if err := repo.Create(context.Background(), chart); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(store.records) != 1 || store.tables[0] != "astro_data" {
		t.Fatalf("expected one astro_data insert, got %v", store.tables)
	}
	rec := store.records[0]
	if rec["id"] != "c-1" || rec["user_id"] != "u-1" || rec["svg_chart"] != "<svg/>" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestCreate_StoreFailure(t *testing.T) {
	store := &recordingStore{err: &domain.StoreError{Message: "store returned no data"}}
	repo := chartRepo.New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := repo.Create(context.Background(), &domain.AstroChart{ID: "c-1"})

	var storeErr *domain.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
}
