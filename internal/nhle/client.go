package nhle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/sven-0414/nhl-data-service/internal/domain"
)

// Config controls how the client reaches the NHL api-web schedule endpoint.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client fetches the daily schedule from the NHL API and decodes it into
// domain games. A single request is issued per date; failures are terminal
// for that call (no retries).
type Client struct {
	baseURL    string
	httpClient httpDoer
	logger     *slog.Logger
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

// FetchGames retrieves and parses the schedule for a calendar date
// (YYYY-MM-DD). Transport errors and non-200 statuses are returned as-is;
// malformed payloads decode to an empty slice.
func (c *Client) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	raw, err := c.fetchSchedule(ctx, date)
	if err != nil {
		return nil, err
	}
	return ParseSchedule(raw, c.logger), nil
}

func (c *Client) fetchSchedule(ctx context.Context, date string) ([]byte, error) {
	url := c.baseURL + schedulePath + date

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("nhle: unexpected status %d for %s", resp.StatusCode, date)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("nhle: reading schedule body: %w", err)
	}
	return body, nil
}
