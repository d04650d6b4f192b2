// Package metadata talks to the external book metadata provider.
// One blocking GET per lookup, bounded by the client timeout; the
// provider's availability problems are the caller's to handle, so
// there is deliberately no retry or backoff here.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bookcatalog-backend/internal/domains/book/model"
)

// Fetcher is the capability the enrichment service depends on.
type Fetcher interface {
	FetchByISBN(ctx context.Context, isbn string) (*model.BookMetadata, error)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient validates the base URL up front so a misconfigured
// deployment fails at startup, not on the first enrichment request.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("metadata base URL %q is not an absolute URL", baseURL)
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}, nil
}

// FetchByISBN retrieves provider metadata for one ISBN. Transport
// failures surface as ErrProviderUnavailable, bad statuses and
// undecodable bodies as ErrProviderResponse.
func (c *Client) FetchByISBN(ctx context.Context, isbn string) (*model.BookMetadata, error) {
	endpoint := fmt.Sprintf("%s/books/%s", c.baseURL, url.PathEscape(isbn))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProviderUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", model.ErrProviderResponse, resp.StatusCode)
	}

	var md model.BookMetadata
	if err := json.NewDecoder(resp.Body).Decode(&md); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProviderResponse, err)
	}

	return &md, nil
}
