// Package content implements the fetch clients for the AI-generated
// insight and news endpoints: request/response handling, the news cache
// and the stale-on-error fallback.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Status tracks where a fetch client is in its lifecycle.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusRefreshing Status = "refreshing"
	StatusReady      Status = "ready"
	StatusFailed     Status = "failed"
)

// ErrRateLimited marks an HTTP 429 from the content endpoint, so callers
// can show the "too many requests" message instead of the generic one.
var ErrRateLimited = errors.New("content: too many requests")

// defaultTimeout bounds every content request.
const defaultTimeout = 30 * time.Second

// Insight mirrors the insights endpoint's item shape.
type Insight struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Summary            string  `json:"summary"`
	Category           string  `json:"category"`
	Impact             string  `json:"impact"`
	RelatedLessonID    *int    `json:"relatedLessonId"`
	RelatedLessonTitle *string `json:"relatedLessonTitle"`
}

// NewsItem mirrors the news endpoint's item shape.
type NewsItem struct {
	ID                 string  `json:"id"`
	Headline           string  `json:"headline"`
	Summary            string  `json:"summary"`
	Category           string  `json:"category"`
	Sentiment          string  `json:"sentiment"`
	RelatedTopic       string  `json:"relatedTopic"`
	RelatedLessonID    *int    `json:"relatedLessonId"`
	RelatedLessonTitle *string `json:"relatedLessonTitle"`
}

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}

// postJSON issues the request and decodes a successful response into out.
// Non-2xx responses become errors carrying the server's error message;
// 429 wraps ErrRateLimited.
func postJSON(ctx context.Context, client *http.Client, url string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		msg := resp.Status
		if json.NewDecoder(resp.Body).Decode(&payload) == nil && payload.Error != "" {
			msg = payload.Error
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("%w: %s", ErrRateLimited, msg)
		}
		return fmt.Errorf("content request failed (%d): %s", resp.StatusCode, msg)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
