// Package fetch implements the API consumer: a generic JSON GET client and
// three integrations (GitHub repositories, current weather, cryptocurrency
// prices), plus JSON/CSV export of the fetched records.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// requestTimeout bounds every API call.
const requestTimeout = 30 * time.Second

// Client is a minimal JSON-over-HTTP GET client bound to one API base URL.
// Default headers are sent with every request.
type Client struct {
	baseURL string
	headers map[string]string
	httpc   *http.Client
}

// NewClient creates a client for baseURL. headers may be nil.
func NewClient(baseURL string, headers map[string]string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		httpc:   &http.Client{Timeout: requestTimeout},
	}
}

// Get performs a GET against endpoint (joined to the base URL) with the
// given query parameters and decodes the JSON response into out.
// Non-2xx responses are errors.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	u := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("cannot build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: unexpected status %s", u, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cannot decode response: %w", err)
	}
	return nil
}
