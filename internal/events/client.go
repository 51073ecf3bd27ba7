package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	eventsPath          = "/api/events"
	maxResponseBodySize = 4 << 20 // 4MB
)

// HTTPError is returned by Fetch when the backend answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error %d", e.StatusCode)
}

// Client fetches the event list from a lab backend.
//
// No timeout is configured: a hung request stays in flight until the
// backend answers or the context passed to Fetch is cancelled.
type Client struct {
	url        string
	userAgent  string
	httpClient *http.Client
}

func NewClient(baseURL, version string) *Client {
	return &Client{
		url:        strings.TrimRight(baseURL, "/") + eventsPath,
		userAgent:  "labmon/" + version,
		httpClient: &http.Client{},
	}
}

// URL returns the full endpoint the client polls.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs one GET of the event list. Transport and decode errors are
// returned as-is so their message reaches the user unchanged; a non-2xx
// status yields *HTTPError. A missing or null "events" key is an empty list.
func (c *Client) Fetch(ctx context.Context) ([]Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, err
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	if p.Events == nil {
		p.Events = []Event{}
	}
	return p.Events, nil
}

// Close releases idle keep-alive connections held by the client.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	c.httpClient.CloseIdleConnections()
}
