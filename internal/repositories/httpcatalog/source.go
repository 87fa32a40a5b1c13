// Package httpcatalog fetches the product catalog from its external JSON
// resource. The resource is a plain unauthenticated list of product records;
// there is no pagination and no retry, a failed fetch just leaves the
// catalog empty for the session.
package httpcatalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxCatalogBody = 4 * 1024 * 1024

// Source fetches raw catalog entries over HTTP.
type Source struct {
	client *http.Client
	url    string
}

// NewSource constructs a Source for the given URL. A nil client falls back
// to a default with the provided timeout.
func NewSource(client *http.Client, url string, timeout time.Duration) (*Source, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("httpcatalog: url is required")
	}
	if client == nil {
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &Source{client: client, url: url}, nil
}

// Fetch retrieves and decodes the catalog list. Individual entries stay
// undecoded so the caller can drop malformed records one by one.
func (s *Source) Fetch(ctx context.Context) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpcatalog: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpcatalog: fetch: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpcatalog: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBody))
	if err != nil {
		return nil, fmt.Errorf("httpcatalog: read body: %w", err)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpcatalog: decode list: %w", err)
	}
	return entries, nil
}
