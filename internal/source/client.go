// Package source talks to the remote podcast catalog API. It normalizes
// transport failures to domain sentinels and maps the wire DTOs to domain
// entities; it performs no retries and no caching.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/kpeters/castdeck/internal/domain"
)

const (
	// DefaultBaseURL is the public catalog endpoint.
	DefaultBaseURL = "https://podcast-api.netlify.app"

	defaultTimeout = 30 * time.Second
	userAgent      = "castdeck/1.0"

	// The catalog API is unauthenticated; stay well under any polite limit.
	requestsPerSecond = 4
)

// Client implements domain.CatalogClient over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a catalog API client. An empty baseURL selects the
// public endpoint.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		logger:     logger,
	}
}

// doRequest performs a GET against the API and returns the raw body.
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", c.baseURL+path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, domain.ErrSourceOffline
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrShowNotFound
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode, "path", path)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// FetchCatalog returns every show preview in the catalog.
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.Show, error) {
	body, err := c.doRequest(ctx, "/shows")
	if err != nil {
		return nil, err
	}

	var previews []previewDTO
	if err := json.Unmarshal(body, &previews); err != nil {
		c.logger.Error("catalog parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c.logger.Debug("catalog fetched", "count", len(previews))
	return MapPreviews(previews), nil
}

// FetchShowDetail returns the full season/episode breakdown for one show.
func (c *Client) FetchShowDetail(ctx context.Context, id string) (*domain.ShowDetail, error) {
	body, err := c.doRequest(ctx, "/id/"+id)
	if err != nil {
		return nil, err
	}

	var dto showDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		c.logger.Error("show detail parse error", "error", err, "showID", id)
		return nil, fmt.Errorf("failed to parse show detail: %w", err)
	}

	// The endpoint answers 200 with an empty body shape for unknown ids.
	if dto.ID == "" {
		return nil, domain.ErrShowNotFound
	}

	return MapShowDetail(dto), nil
}
