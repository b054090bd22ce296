package postgrest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SagarBajaj14/CelestAI.io/internal/adapters/secondary/storage/postgrest"
	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
)

func newClient(srv *httptest.Server) *postgrest.Client {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return postgrest.NewClient(&postgrest.Config{URL: srv.URL, Key: "anon-key"}, log)
}

func TestGetRecord_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/rest/v1/users" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "eq.u-1" {
			t.Errorf("unexpected filter %q", got)
		}
		if r.Header.Get("apikey") != "anon-key" || r.Header.Get("Authorization") != "Bearer anon-key" {
			t.Errorf("missing auth headers")
		}
		_, _ = w.Write([]byte(`[{"id":"u-1","name":"Asha","place":"Delhi","time":"10:30","day":"01","month":"02","year":"1990","timezone":"+05:30"}]`))
	}))
	defer srv.Close()

	var user domain.User
	if err := newClient(srv).GetRecord(context.Background(), "users", "id", "u-1", &user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Asha" || user.Timezone != "+05:30" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestGetRecord_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	var user domain.User
	err := newClient(srv).GetRecord(context.Background(), "users", "id", "nope", &user)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "User not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestGetRecord_StoreStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	var user domain.User
	err := newClient(srv).GetRecord(context.Background(), "users", "id", "u-1", &user)

	var storeErr *domain.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if storeErr.HTTPStatus() != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", storeErr.HTTPStatus())
	}
	if storeErr.Message != "Invalid API key" {
		t.Errorf("unexpected message %q", storeErr.Message)
	}
}

func TestGetRecord_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := newClient(srv)
	srv.Close()

	var user domain.User
	err := client.GetRecord(context.Background(), "users", "id", "u-1", &user)

	var storeErr *domain.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if storeErr.HTTPStatus() != http.StatusInternalServerError {
		t.Errorf("expected 500 for missing status, got %d", storeErr.HTTPStatus())
	}
}

func TestInsertRecord_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Prefer") != "return=representation" {
			t.Errorf("missing Prefer header")
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("[" + string(body) + "]"))
	}))
	defer srv.Close()

	rec := persistence.Record{"id": "c-1", "user_id": "u-1", "svg_chart": "<svg/>"}
	if err := newClient(srv).InsertRecord(context.Background(), "astro_data", rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["svg_chart"] != "<svg/>" {
		t.Errorf("unexpected payload %v", got)
	}
}

func TestInsertRecord_EmptyAcknowledgement(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	err := newClient(srv).InsertRecord(context.Background(), "astro_data", persistence.Record{"id": "c-1"})

	var storeErr *domain.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if storeErr.HTTPStatus() != http.StatusInternalServerError || storeErr.Message != "store returned no data" {
		t.Errorf("unexpected error %d %q", storeErr.HTTPStatus(), storeErr.Message)
	}
}

func TestInsertRecord_ConflictUsesGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	err := newClient(srv).InsertRecord(context.Background(), "users", persistence.Record{"id": "u-1"})

	var storeErr *domain.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if storeErr.HTTPStatus() != http.StatusConflict || storeErr.Message != "record store error" {
		t.Errorf("unexpected error %d %q", storeErr.HTTPStatus(), storeErr.Message)
	}
}
