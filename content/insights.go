package content

import (
	"context"
	"net/http"
	"sync"
)

// InsightsClient fetches generated insights. No cache: every mount or
// refresh hits the network. On failure the previously displayed list is
// left untouched.
type InsightsClient struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	status Status
	items  []Insight
}

// NewInsightsClient builds a client for the given API base URL. A nil
// httpClient gets the default 30s-timeout client.
func NewInsightsClient(baseURL string, httpClient *http.Client) *InsightsClient {
	if httpClient == nil {
		httpClient = defaultHTTPClient()
	}
	return &InsightsClient{baseURL: baseURL, httpClient: httpClient, status: StatusIdle}
}

// Fetch requests fresh insights. refresh only affects the reported
// status (Refreshing instead of Loading when already Ready).
func (c *InsightsClient) Fetch(ctx context.Context, userContext string, refresh bool) ([]Insight, error) {
	c.mu.Lock()
	if refresh && c.status == StatusReady {
		c.status = StatusRefreshing
	} else {
		c.status = StatusLoading
	}
	c.mu.Unlock()

	var body any
	if userContext != "" {
		body = map[string]string{"userContext": userContext}
	}

	var payload struct {
		Insights []Insight `json:"insights"`
	}
	err := postJSON(ctx, c.httpClient, c.baseURL+"/api/v1/insights", body, &payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusFailed
		return nil, err
	}
	c.status = StatusReady
	c.items = payload.Insights
	return payload.Insights, nil
}

// Status reports the client's current fetch state.
func (c *InsightsClient) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Items returns the last successfully fetched list.
func (c *InsightsClient) Items() []Insight {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}
