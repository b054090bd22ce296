package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/ports/persistence"
)

const restPath = "/rest/v1/"

// Client implements persistence.RecordStore against a PostgREST (Supabase) endpoint
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient creates a REST record store client
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Log:        log,
	}
}

var _ persistence.RecordStore = (*Client)(nil)

func (c *Client) tableURL(table string) string {
	return strings.TrimSuffix(c.cfg.URL, "/") + restPath + table
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.cfg.Key)
	req.Header.Set("Authorization", "Bearer "+c.cfg.Key)
	req.Header.Set("Accept", "application/json")
	if c.cfg.Schema != "" {
		req.Header.Set("Accept-Profile", c.cfg.Schema)
		req.Header.Set("Content-Profile", c.cfg.Schema)
	}
}

// GetRecord fetches the unique row of table where key = value
func (c *Client) GetRecord(ctx context.Context, table, key string, value any, dest any) error {
	q := url.Values{}
	q.Set("select", "*")
	q.Set(key, "eq."+fmt.Sprint(value))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(table)+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)

	body, err := c.do(req, table)
	if err != nil {
		return err
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return &domain.StoreError{Message: fmt.Sprintf("decode %s rows: %v", table, err)}
	}

	switch len(rows) {
	case 0:
		return &domain.NotFoundError{Entity: persistence.EntityName(table)}
	case 1:
	default:
		return &domain.StoreError{Message: fmt.Sprintf("more than one %s matched %s", table, key)}
	}

	if err := json.Unmarshal(rows[0], dest); err != nil {
		return &domain.StoreError{Message: fmt.Sprintf("decode %s row: %v", table, err)}
	}
	return nil
}

// InsertRecord inserts rec and expects the store to echo the written row back
func (c *Client) InsertRecord(ctx context.Context, table string, rec persistence.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	body, err := c.do(req, table)
	if err != nil {
		return err
	}

	var rows []json.RawMessage
	if len(bytes.TrimSpace(body)) == 0 || json.Unmarshal(body, &rows) != nil || len(rows) == 0 {
		c.Log.Debug("record store acknowledged insert without data", "table", table)
		return &domain.StoreError{Message: "store returned no data"}
	}

	return nil
}

// Ping checks that the REST endpoint answers
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimSuffix(c.cfg.URL, "/")+restPath, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("record store unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("record store status %d", resp.StatusCode)
	}
	return nil
}

// do executes req and turns failure statuses into StoreError
func (c *Client) do(req *http.Request, table string) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("record store request failed", "error", err, "table", table)
		return nil, &domain.StoreError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.StoreError{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.Log.Debug("record store returned error status",
			"table", table,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, &domain.StoreError{Status: resp.StatusCode, Message: extractMessage(body)}
	}

	return body, nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
