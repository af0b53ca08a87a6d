package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coursecatalog/internal/model"

	"github.com/rs/zerolog"
)

const (
	coursesEndpoint   = "/api/courses"
	offeringsEndpoint = "/api/offerings"

	maxErrorBodyBytes = 1 << 20
)

// CatalogAPI is the read side of the catalog backend.
type CatalogAPI interface {
	Courses(ctx context.Context) ([]model.Course, error)
	Offerings(ctx context.Context) ([]model.Offering, error)
}

// FetchError is returned when the backend answers with a non-2xx status.
// Body holds the response body as sent.
type FetchError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("GET %s returned HTTP %d: %s", e.URL, e.StatusCode, strings.TrimSpace(e.Body))
}

// Client fetches catalog data over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "CatalogClient").Logger(),
	}
}

// Courses fetches the full course list.
func (c *Client) Courses(ctx context.Context) ([]model.Course, error) {
	courses := []model.Course{}
	if err := c.getJSON(ctx, coursesEndpoint, &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, nil
}

// Offerings fetches the full timetable.
func (c *Client) Offerings(ctx context.Context) ([]model.Offering, error) {
	offerings := []model.Offering{}
	if err := c.getJSON(ctx, offeringsEndpoint, &offerings); err != nil {
		return nil, err
	}
	if offerings == nil {
		offerings = []model.Offering{}
	}
	return offerings, nil
}

// CloseIdleConnections releases pooled connections held by the client.
func (c *Client) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if readErr != nil {
			c.logger.Warn().Err(readErr).Int("status_code", resp.StatusCode).Str("url", url).Msg("Failed to read error body")
		}
		return &FetchError{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", url, err)
	}
	return nil
}
