package content

import (
	"context"
	"net/http"
	"sync"
	"time"

	"finbuddy-go-be/cache"
)

const (
	// NewsCacheKey is the single key the news cache is stored under.
	NewsCacheKey = "financial_news_cache"
	// NewsCacheTTL is how long cached news counts as fresh.
	NewsCacheTTL = 10 * time.Minute
)

// NewsClient fetches generated news through a TTL cache. A fresh cache
// hit skips the network entirely; an explicit refresh always bypasses
// the cache; on network failure the last cached value is served
// regardless of its age.
type NewsClient struct {
	baseURL    string
	httpClient *http.Client
	store      *cache.TTL[[]NewsItem]

	mu     sync.Mutex
	status Status
	items  []NewsItem
	stale  bool
}

// NewNewsClient builds a client for the given API base URL. The cache is
// injectable for testing; nil gets a fresh 10-minute cache. A nil
// httpClient gets the default 30s-timeout client.
func NewNewsClient(baseURL string, httpClient *http.Client, store *cache.TTL[[]NewsItem]) *NewsClient {
	if httpClient == nil {
		httpClient = defaultHTTPClient()
	}
	if store == nil {
		store = cache.NewTTL[[]NewsItem](NewsCacheTTL)
	}
	return &NewsClient{baseURL: baseURL, httpClient: httpClient, store: store, status: StatusIdle}
}

// Fetch returns news items, from cache when fresh and refresh is false.
func (c *NewsClient) Fetch(ctx context.Context, refresh bool) ([]NewsItem, error) {
	if !refresh {
		if items, ok := c.store.Get(NewsCacheKey); ok {
			c.mu.Lock()
			c.status = StatusReady
			c.items = items
			c.stale = false
			c.mu.Unlock()
			return items, nil
		}
	}

	c.mu.Lock()
	if refresh && c.status == StatusReady {
		c.status = StatusRefreshing
	} else {
		c.status = StatusLoading
	}
	c.mu.Unlock()

	var payload struct {
		News []NewsItem `json:"news"`
	}
	err := postJSON(ctx, c.httpClient, c.baseURL+"/api/v1/news", nil, &payload)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		// Stale-on-error: any cached value beats an error message.
		if items, ok := c.store.GetStale(NewsCacheKey); ok {
			c.status = StatusReady
			c.items = items
			c.stale = true
			return items, nil
		}
		c.status = StatusFailed
		return nil, err
	}

	c.store.Set(NewsCacheKey, payload.News)
	c.status = StatusReady
	c.items = payload.News
	c.stale = false
	return payload.News, nil
}

// Status reports the client's current fetch state.
func (c *NewsClient) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Stale reports whether the last returned list came from an expired
// cache entry after a failed fetch.
func (c *NewsClient) Stale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale
}

// Items returns the last returned list.
func (c *NewsClient) Items() []NewsItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}
