package indexnow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Actions accepted by the submission endpoint
const (
	ActionSubmit    = "submit"
	ActionSubmitAll = "submit-all"
	ActionSubmitNew = "submit-new"
)

var ErrNotConfigured = errors.New("indexnow key is not configured")

// Client forwards URL change notifications to an IndexNow endpoint.
// Pure request forwarding: no retries, no batching beyond what the
// protocol itself accepts in one call.
type Client struct {
	endpoint   string
	key        string
	siteURL    string
	httpClient *http.Client
}

// Config holds the IndexNow client configuration
type Config struct {
	Endpoint string
	Key      string
	SiteURL  string
}

// NewClient creates an IndexNow client. Returns nil when no key is
// configured, which disables submissions.
func NewClient(config Config) *Client {
	if config.Key == "" {
		return nil
	}
	return &Client{
		endpoint:   config.Endpoint,
		key:        config.Key,
		siteURL:    config.SiteURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Key returns the verification key, served as /<key>.txt.
func (c *Client) Key() string {
	return c.key
}

type submission struct {
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// Result reports what happened for one submission batch
type Result struct {
	Submitted int    `json:"submitted"`
	Status    int    `json:"status"`
	Message   string `json:"message,omitempty"`
}

// Submit forwards the given URLs. The protocol caps one call at 10,000
// URLs, far above anything this site produces, so no batching is done.
func (c *Client) Submit(ctx context.Context, urls []string) (*Result, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}
	if len(urls) == 0 {
		return &Result{Submitted: 0, Status: http.StatusOK, Message: "nothing to submit"}, nil
	}

	site, err := url.Parse(c.siteURL)
	if err != nil {
		return nil, err
	}

	payload := submission{
		Host:        site.Host,
		Key:         c.key,
		KeyLocation: fmt.Sprintf("%s/%s.txt", c.siteURL, c.key),
		URLList:     urls,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	result := &Result{Submitted: len(urls), Status: resp.StatusCode}
	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		result.Message = string(respBody)
		return result, fmt.Errorf("indexnow endpoint returned %d", resp.StatusCode)
	}
	return result, nil
}
