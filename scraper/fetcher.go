package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "GeoSearch/1.0"

// Fetcher retrieves page content over HTTP. It is the only part of the
// analysis pipeline that performs I/O.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with a pooled, keep-alive transport.
func NewFetcher(timeout time.Duration) *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Fetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// FetchPage downloads the page at url and reports how long the request
// took. Non-2xx responses are errors.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (string, time.Duration, error) {
	start := time.Now()
	body, status, err := f.get(ctx, url)
	elapsed := time.Since(start)
	if err != nil {
		return "", elapsed, err
	}
	if status < 200 || status >= 300 {
		return "", elapsed, fmt.Errorf("unexpected status %d fetching %s", status, url)
	}
	return body, elapsed, nil
}

// FetchText retrieves an auxiliary document such as robots.txt or
// sitemap.xml. A fetch failure or non-200 status is not an error for
// the caller, just absence.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, bool) {
	body, status, err := f.get(ctx, url)
	if err != nil || status != http.StatusOK {
		return "", false
	}
	return body, true
}

func (f *Fetcher) get(ctx context.Context, url string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}
