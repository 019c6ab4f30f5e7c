package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Client is a thin wrapper around one collaborator service.
type Client struct {
	Name    string
	BaseURL *url.URL
	HTTP    *http.Client
}

func NewClient(name string, baseURL string, httpClient *http.Client) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid %s base url %q: %v", name, baseURL, err))
	}
	return &Client{Name: name, BaseURL: u, HTTP: httpClient}
}

// getJSON performs a GET against path and decodes the body into out.
// A 404 becomes ErrNotFound; every other failure (dial, status, decode)
// becomes a *RemoteError carrying the cause.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	rel := &url.URL{Path: path}
	u := c.BaseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &RemoteError{Service: c.Name, Err: err}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &RemoteError{Service: c.Name, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &RemoteError{Service: c.Name, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Service: c.Name, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
