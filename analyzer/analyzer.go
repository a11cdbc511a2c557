// Package analyzer orchestrates a full page analysis: fetch the page
// and its robots.txt and sitemap.xml, extract the structured record,
// run every scorer and assemble the report.
package analyzer

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/geosearch/backend/airead"
	"github.com/geosearch/backend/crawlability"
	"github.com/geosearch/backend/metrics"
	"github.com/geosearch/backend/readability"
	"github.com/geosearch/backend/scraper"
	"github.com/geosearch/backend/stats"
)

type cacheEntry struct {
	report    *Report
	timestamp time.Time
}

// CacheStats provides statistics about the analyzer's report cache.
type CacheStats struct {
	Entries     int           `json:"entries"`
	CacheHits   int           `json:"cacheHits"`
	CacheMisses int           `json:"cacheMisses"`
	CacheTTL    time.Duration `json:"cacheTTL"`
}

// Analyzer runs the analysis pipeline and caches reports by URL.
type Analyzer struct {
	fetcher *scraper.Fetcher
	scorer  *metrics.Scorer
	read    *readability.Analyzer
	crawl   *crawlability.Analyzer
	ai      *airead.Analyzer

	cache           map[string]cacheEntry
	cacheMutex      sync.RWMutex
	cacheTTL        time.Duration
	maxCacheSize    int
	lastCleanup     time.Time
	cleanupInterval time.Duration
	done            chan struct{}

	stats *stats.Storage
}

// New creates an Analyzer with default components and statistics
// persisted under dataDir.
func New(dataDir string) (*Analyzer, error) {
	statsStorage, err := stats.NewStorage(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stats storage: %w", err)
	}

	a := &Analyzer{
		fetcher:         scraper.NewFetcher(15 * time.Second),
		scorer:          metrics.NewScorer(),
		read:            readability.New(),
		crawl:           crawlability.New(),
		ai:              airead.New(),
		cache:           make(map[string]cacheEntry),
		cacheTTL:        30 * time.Minute,
		maxCacheSize:    1000,
		cleanupInterval: 5 * time.Minute,
		lastCleanup:     time.Now(),
		done:            make(chan struct{}),
		stats:           statsStorage,
	}

	go a.periodicCleanup()
	return a, nil
}

func (a *Analyzer) periodicCleanup() {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.cleanup()
		case <-a.done:
			return
		}
	}
}

// cleanup removes expired entries and enforces the cache size limit.
func (a *Analyzer) cleanup() {
	now := time.Now()

	a.cacheMutex.Lock()
	for key, entry := range a.cache {
		if now.Sub(entry.timestamp) > a.cacheTTL {
			delete(a.cache, key)
		}
	}

	if len(a.cache) > a.maxCacheSize {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(a.cache))
		for key, entry := range a.cache {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})
		for i := 0; i < len(entries)-a.maxCacheSize; i++ {
			delete(a.cache, entries[i].key)
		}
	}
	a.cacheMutex.Unlock()

	a.lastCleanup = now
}

// SetCacheTTL sets how long reports stay valid in the cache.
func (a *Analyzer) SetCacheTTL(ttl time.Duration) {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cacheTTL = ttl
}

// SetMaxCacheSize sets the maximum number of cached reports.
func (a *Analyzer) SetMaxCacheSize(size int) {
	a.cacheMutex.Lock()
	a.maxCacheSize = size
	a.cacheMutex.Unlock()
	a.cleanup()
}

// ClearCache drops every cached report.
func (a *Analyzer) ClearCache() {
	a.cacheMutex.Lock()
	defer a.cacheMutex.Unlock()
	a.cache = make(map[string]cacheEntry)
}

func cacheKey(url string) string {
	hash := md5.Sum([]byte(url))
	return hex.EncodeToString(hash[:])
}

// IsCached reports whether a fresh report for url is in the cache.
func (a *Analyzer) IsCached(url string) bool {
	key := cacheKey(url)
	a.cacheMutex.RLock()
	defer a.cacheMutex.RUnlock()

	entry, found := a.cache[key]
	return found && time.Since(entry.timestamp) < a.cacheTTL
}

// GetCacheStats returns cache figures for the statistics endpoint.
func (a *Analyzer) GetCacheStats() CacheStats {
	current := a.stats.CurrentStats()

	a.cacheMutex.RLock()
	entries := len(a.cache)
	ttl := a.cacheTTL
	a.cacheMutex.RUnlock()

	return CacheStats{
		Entries:     entries,
		CacheHits:   current.CacheHits,
		CacheMisses: current.CacheMisses,
		CacheTTL:    ttl,
	}
}

// Analyze runs a complete analysis of the given URL, serving from
// cache when a fresh report exists.
func (a *Analyzer) Analyze(rawURL string) (*Report, error) {
	if time.Since(a.lastCleanup) > a.cleanupInterval {
		go a.cleanup()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key := cacheKey(rawURL)
	a.cacheMutex.RLock()
	if entry, found := a.cache[key]; found && time.Since(entry.timestamp) < a.cacheTTL {
		a.cacheMutex.RUnlock()
		a.stats.RecordCacheHit()
		return entry.report, nil
	}
	a.cacheMutex.RUnlock()
	a.stats.RecordCacheMiss()

	start := time.Now()
	report, err := a.AnalyzeWithContext(ctx, rawURL)
	a.stats.RecordAnalysis(float64(time.Since(start).Milliseconds()), err != nil)
	if err != nil {
		return nil, err
	}

	a.cacheMutex.Lock()
	a.cache[key] = cacheEntry{report: report, timestamp: time.Now()}
	a.cacheMutex.Unlock()

	return report, nil
}

// AnalyzeWithContext runs a complete analysis of the given URL,
// bypassing the cache.
func (a *Analyzer) AnalyzeWithContext(ctx context.Context, rawURL string) (*Report, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("url %q must be absolute", rawURL)
	}

	html, loadTime, err := a.fetcher.FetchPage(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}

	robotsURL := parsed.Scheme + "://" + parsed.Host + "/robots.txt"
	sitemapURL := parsed.Scheme + "://" + parsed.Host + "/sitemap.xml"
	robotsTxt, robotsExists := a.fetcher.FetchText(ctx, robotsURL)
	sitemapXML, sitemapExists := a.fetcher.FetchText(ctx, sitemapURL)

	logrus.WithFields(logrus.Fields{
		"url":     rawURL,
		"robots":  robotsExists,
		"sitemap": sitemapExists,
		"loadMs":  loadTime.Milliseconds(),
	}).Debug("page fetched")

	return a.assemble(html, rawURL, crawlability.Input{
		PageURL:         rawURL,
		RobotsTxt:       robotsTxt,
		RobotsTxtExists: robotsExists,
		RobotsTxtURL:    robotsURL,
		SitemapXML:      sitemapXML,
		SitemapExists:   sitemapExists,
		SitemapURL:      sitemapURL,
		LoadTime:        loadTime,
		LoadTimeKnown:   true,
	})
}

// AnalyzeHTML analyzes an HTML document without any network access.
// Robots.txt, sitemap and load time are reported as absent.
func (a *Analyzer) AnalyzeHTML(html, pageURL string) (*Report, error) {
	return a.assemble(html, pageURL, crawlability.Input{PageURL: pageURL})
}

// assemble runs extraction and every scorer over the document.
func (a *Analyzer) assemble(html, pageURL string, crawlIn crawlability.Input) (*Report, error) {
	ext, err := scraper.Extract(html, pageURL, a.scorer.StopWords())
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	crawlIn.HTML = html
	crawlIn.Text = ext.Text
	crawlIn.RobotsMeta = ext.Robots

	report := &Report{
		URL:           pageURL,
		FetchedAt:     time.Now().UTC(),
		Result:        *a.scorer.Compute(ext),
		Readability:   a.read.Analyze(ext.Text),
		Crawlability:  a.crawl.Analyze(crawlIn),
		AIReadability: a.ai.Analyze(ext),
	}
	return report, nil
}

// GetStats returns the statistics storage instance.
func (a *Analyzer) GetStats() *stats.Storage {
	return a.stats
}

// Shutdown stops background work and flushes statistics to disk.
func (a *Analyzer) Shutdown() error {
	if a == nil {
		return nil
	}

	close(a.done)
	if a.stats != nil {
		if err := a.stats.Shutdown(); err != nil {
			return fmt.Errorf("failed to shutdown stats storage: %w", err)
		}
	}

	a.cacheMutex.Lock()
	a.cache = nil
	a.cacheMutex.Unlock()

	return nil
}
