package astroApi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SagarBajaj14/CelestAI.io/internal/domain"
	"github.com/SagarBajaj14/CelestAI.io/internal/pkg/metrics"
)

const (
	chartEndpoint  = "southindian_chart"
	matchEndpoint  = "match_report"
	planetEndpoint = "all_planet_data"
	houseEndpoint  = "all_house_data"
)

// truncateString cuts s to maxLen bytes for log previews
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client talks to the VedAstro calculation API.
// Parameters are placed into the URL path positionally; only stray '%' is escaped.
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		Log: log,
	}
}

func (c *Client) buildURL(segments ...string) string {
	return strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + requotePercent(strings.Join(segments, "/"))
}

// requotePercent escapes every '%' that does not start a valid escape, so
// "100% Town" is sent as "100%25 Town" while "%20" is left alone
func requotePercent(path string) string {
	if !strings.Contains(path, "%") {
		return path
	}

	var b strings.Builder
	b.Grow(len(path) + 8)
	for i := 0; i < len(path); i++ {
		if path[i] == '%' && !(i+2 < len(path) && isHex(path[i+1]) && isHex(path[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(path[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func birthSegments(u *domain.User) []string {
	return []string{"Location", u.Place, "Time", u.TimeSpec()}
}

// FetchChartSVG returns the South Indian chart for the user verbatim
func (c *Client) FetchChartSVG(ctx context.Context, u *domain.User) (string, error) {
	segments := append([]string{"Calculate", "SouthIndianChart"}, birthSegments(u)...)
	segments = append(segments, "ChartType", "BhavaChalit", "Ayanamsa", "RAMAN")

	body, err := c.getOK(ctx, chartEndpoint, c.buildURL(segments...), "VedAstro error")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchMatchReport returns the compatibility report for two users verbatim
func (c *Client) FetchMatchReport(ctx context.Context, u1, u2 *domain.User) (string, error) {
	segments := []string{"Calculate", "MatchReport"}
	segments = append(segments, birthSegments(u1)...)
	segments = append(segments, birthSegments(u2)...)
	segments = append(segments, "Ayanamsa", "LAHIRI")

	body, err := c.getOK(ctx, matchEndpoint, c.buildURL(segments...), "VedAstro error")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchPlanetData returns data for every planet at the given place and time
func (c *Client) FetchPlanetData(ctx context.Context, location, timeSpec string) (*PlanetDataResponse, error) {
	segments := []string{"Calculate", "AllPlanetData", "PlanetName", "All", "Location", location, "Time", timeSpec, "Ayanamsa", "RAMAN"}

	var resp PlanetDataResponse
	if err := c.getJSON(ctx, planetEndpoint, segments, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchHouseData returns data for every house at the given place and time
func (c *Client) FetchHouseData(ctx context.Context, location, timeSpec string) (*HouseDataResponse, error) {
	segments := []string{"Calculate", "AllHouseData", "HouseName", "All", "Location", location, "Time", timeSpec, "Ayanamsa", "RAMAN"}

	var resp HouseDataResponse
	if err := c.getJSON(ctx, houseEndpoint, segments, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) getJSON(ctx context.Context, name string, segments []string, dest any) error {
	failed := fmt.Sprintf("VedAstro %s failed", strings.Join(segments, "/"))

	body, err := c.get(ctx, name, c.buildURL(segments...), failed, func(code int) bool {
		return code >= http.StatusOK && code < http.StatusBadRequest
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		c.Log.Debug("failed to unmarshal VedAstro response",
			"endpoint", name,
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return &domain.UpstreamError{Message: failed, Err: err}
	}
	return nil
}

func (c *Client) getOK(ctx context.Context, name, url, failed string) ([]byte, error) {
	return c.get(ctx, name, url, failed, func(code int) bool {
		return code == http.StatusOK
	})
}

// get performs a GET and returns the body when ok(status) holds
func (c *Client) get(ctx context.Context, name, url, failed string, ok func(int) bool) ([]byte, error) {
	m := metrics.Global()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.UpstreamError{Message: failed, Err: err}
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		m.UpstreamCalls.WithLabelValues("vedastro", name, "error").Inc()
		c.Log.Error("VedAstro request failed", "endpoint", name, "error", err)
		return nil, &domain.UpstreamError{Message: failed, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		m.UpstreamCalls.WithLabelValues("vedastro", name, "error").Inc()
		return nil, &domain.UpstreamError{Message: failed, Status: resp.StatusCode, Err: err}
	}

	if !ok(resp.StatusCode) {
		m.UpstreamCalls.WithLabelValues("vedastro", name, "error").Inc()
		c.Log.Debug("VedAstro returned unexpected status",
			"endpoint", name,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, &domain.UpstreamError{Message: failed, Status: resp.StatusCode}
	}

	m.UpstreamCalls.WithLabelValues("vedastro", name, "ok").Inc()
	return body, nil
}
