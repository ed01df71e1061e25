package timetable

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"schedulebot/pkg/metrics"
	"schedulebot/pkg/utils"
)

const (
	DefaultURL  = "https://tahveltp.edu.ee/hois_back/schoolBoard/8/timetableByGroup"
	DefaultLang = "ET"
)

// DefaultGroup is the student group the bot was built for.
var DefaultGroup = uuid.MustParse("a01d68d7-7bff-497b-b1ee-4f04e258d9fb")

// ErrUnavailable wraps every failure to obtain the timetable from the remote API.
var ErrUnavailable = errors.New("timetable unavailable")

// Source provides the full timetable of the configured group.
type Source interface {
	Events(ctx context.Context) ([]Event, error)
}

// Query holds the fixed parameters of the timetable request.
type Query struct {
	URL          string
	Lang         string
	StudentGroup uuid.UUID
}

func (q Query) Values() url.Values {
	return url.Values{
		"lang":             {q.Lang},
		"studentGroupUuid": {q.StudentGroup.String()},
	}
}

// Endpoint returns the request URL with the query parameters applied.
func (q Query) Endpoint() (string, error) {
	u, err := url.Parse(q.URL)
	if err != nil {
		return "", fmt.Errorf("error parsing URL: %w", err)
	}
	u.RawQuery = q.Values().Encode()
	return u.String(), nil
}

// StatusError is returned when the API answers with anything but 200 OK.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Client fetches the timetable over HTTP. It implements [Source].
type Client struct {
	query   Query
	client  *http.Client
	metrics *metrics.Metrics
}

// NewClient creates a client for query. A nil httpClient gets a 30 second timeout.
func NewClient(query Query, httpClient *http.Client, m *metrics.Metrics) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{query: query, client: httpClient, metrics: m}
}

// Events performs exactly one GET request and returns every event of the group.
func (c *Client) Events(ctx context.Context) ([]Event, error) {
	start := time.Now()
	events, err := c.fetch(ctx)
	c.metrics.ObserveFetch(err, time.Since(start))
	return events, err
}

func (c *Client) fetch(ctx context.Context) ([]Event, error) {
	endpoint, err := c.query.Endpoint()
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %q: %w", ErrUnavailable, c.query.URL, &StatusError{Code: resp.StatusCode})
	}

	response, err := utils.DecodeAndClose[Response](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding response: %w", ErrUnavailable, err)
	}

	return response.TimetableEvents, nil
}
