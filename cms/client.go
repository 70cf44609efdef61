// Package cms is a minimal read-only client for the headless CMS query API.
// It speaks the hosted query endpoint
// (https://{project}.{host}/v{version}/data/query/{dataset}?query=...)
// and decodes the JSON "result" envelope. It does not retry and it does not
// cache; both are left to the caller.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Fetcher is the read surface the query layer depends on. Tests substitute
// their own implementation.
type Fetcher interface {
	Fetch(ctx context.Context, query string, out any) error
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for one project/dataset. The API version is a
// date string as issued by the CMS vendor (e.g. "2024-01-01").
func NewClient(projectID, dataset, apiVersion, apiHost string) *Client {
	return &Client{
		baseURL: fmt.Sprintf("https://%s.%s/v%s/data/query/%s", projectID, apiHost, apiVersion, dataset),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// WithToken sets a bearer token for private datasets. Public datasets need
// none.
func (c *Client) WithToken(token string) *Client {
	c.token = token
	return c
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// Fetch runs a query and decodes the result into out. A query that matches
// nothing yields a null result, which leaves out at its zero value; callers
// must check for that rather than treat it as an error.
func (c *Client) Fetch(ctx context.Context, query string, out any) error {
	u := c.baseURL + "?query=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("query cms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("cms returned %s: %s", resp.Status, body)
	}

	var envelope queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode cms response: %w", err)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("decode cms result: %w", err)
	}
	return nil
}
