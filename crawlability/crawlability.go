// Package crawlability analyzes how well a page can be crawled and
// indexed: robots meta directives, sitemap inclusion, text density,
// fetch latency and robots.txt directives for known AI crawlers.
package crawlability

import (
	"fmt"
	"strings"
	"time"

	"github.com/geosearch/backend/metrics"
)

// Config holds the crawlability thresholds and score weights.
type Config struct {
	IdealTextRatio metrics.Range // percent
	IdealLoadTime  time.Duration
	Weights        Weights
}

// Weights distributes the crawlability score across its components.
type Weights struct {
	Indexability float64 `json:"indexability"`
	Sitemap      float64 `json:"sitemap"`
	TextRatio    float64 `json:"text_ratio"`
	LoadTime     float64 `json:"load_time"`
	Bots         float64 `json:"llm_bot"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Indexability + w.Sitemap + w.TextRatio + w.LoadTime + w.Bots
}

// DefaultConfig returns the standard thresholds and weights.
func DefaultConfig() Config {
	return Config{
		IdealTextRatio: metrics.Range{Min: 25, Max: 70},
		IdealLoadTime:  2 * time.Second,
		Weights: Weights{
			Indexability: 0.30,
			Sitemap:      0.20,
			TextRatio:    0.20,
			LoadTime:     0.15,
			Bots:         0.15,
		},
	}
}

// Analyzer scores crawlability. Configuration and the crawler registry
// are fixed at construction; an Analyzer is safe for concurrent use.
type Analyzer struct {
	cfg      Config
	registry []Crawler
}

// New creates an Analyzer with the default configuration and registry.
func New() *Analyzer {
	return &Analyzer{cfg: DefaultConfig(), registry: DefaultRegistry()}
}

// NewWithConfig creates an Analyzer with explicit configuration. A nil
// registry falls back to the default.
func NewWithConfig(cfg Config, registry []Crawler) *Analyzer {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Analyzer{cfg: cfg, registry: registry}
}

// Registry returns the crawler identities the Analyzer checks.
func (a *Analyzer) Registry() []Crawler { return a.registry }

// Input carries everything the crawlability analysis needs. The fetch
// collaborators fill it in; the analysis itself performs no I/O.
type Input struct {
	PageURL         string
	HTML            string
	Text            string
	RobotsMeta      string // content of <meta name="robots">
	RobotsTxt       string
	RobotsTxtExists bool
	RobotsTxtURL    string
	SitemapXML      string
	SitemapExists   bool
	SitemapURL      string
	LoadTime        time.Duration
	LoadTimeKnown   bool
}

// Indexability reports the robots meta verdict.
type Indexability struct {
	IsIndexable       bool   `json:"is_indexable"`
	IsFollowable      bool   `json:"is_followable"`
	MetaRobotsPresent bool   `json:"meta_robots_present"`
	MetaRobotsContent string `json:"meta_robots_content"`
	Explanation       string `json:"explanation"`
}

// TextRatio reports text bytes versus markup bytes.
type TextRatio struct {
	Ratio       float64 `json:"ratio"`
	TextBytes   int     `json:"text_bytes"`
	HTMLBytes   int     `json:"html_bytes"`
	IsOptimal   bool    `json:"is_optimal"`
	Explanation string  `json:"explanation"`
}

// LoadTime reports fetch latency against the ideal threshold.
type LoadTime struct {
	Seconds     float64 `json:"load_time"`
	Known       bool    `json:"measured"`
	IsOptimal   bool    `json:"is_optimal"`
	Explanation string  `json:"explanation"`
}

// Overall is the weighted crawlability score with its component
// breakdown, on the uniform 0-100 scale.
type Overall struct {
	Score       float64            `json:"score"`
	Components  map[string]float64 `json:"components"`
	Explanation string             `json:"explanation"`
}

// Report bundles every crawlability metric for one page.
type Report struct {
	Indexability  Indexability  `json:"indexability"`
	SitemapStatus SitemapStatus `json:"sitemap_status"`
	TextRatio     TextRatio     `json:"text_ratio"`
	LoadTime      LoadTime      `json:"load_time"`
	BotAnalysis   BotAnalysis   `json:"llm_bot_analysis"`
	Overall       Overall       `json:"overall_score"`
}

// Analyze runs every crawlability check on the input.
func (a *Analyzer) Analyze(in Input) Report {
	r := Report{
		Indexability:  analyzeIndexability(in.RobotsMeta),
		SitemapStatus: CheckSitemap(in.PageURL, in.SitemapURL, in.SitemapXML, in.SitemapExists),
		TextRatio:     a.textRatio(in.HTML, in.Text),
		LoadTime:      a.loadTime(in.LoadTime, in.LoadTimeKnown),
		BotAnalysis:   AnalyzeRobots(in.RobotsTxt, in.RobotsTxtExists, a.registry),
	}
	r.Overall = a.overall(r)
	return r
}

func analyzeIndexability(robotsMeta string) Indexability {
	content := strings.ToLower(robotsMeta)
	noindex := strings.Contains(content, "noindex")
	nofollow := strings.Contains(content, "nofollow")

	idx := Indexability{
		IsIndexable:       !noindex,
		IsFollowable:      !nofollow,
		MetaRobotsPresent: robotsMeta != "",
		MetaRobotsContent: robotsMeta,
	}
	switch {
	case noindex:
		idx.Explanation = "Page is not indexable (noindex directive present)"
	case nofollow:
		idx.Explanation = "Page is indexable but links are not followed (nofollow directive present)"
	default:
		idx.Explanation = "Page is fully indexable and crawlable"
	}
	return idx
}

func (a *Analyzer) textRatio(html, text string) TextRatio {
	tr := TextRatio{
		TextBytes: len(text),
		HTMLBytes: len(html),
	}
	if tr.HTMLBytes > 0 {
		tr.Ratio = float64(tr.TextBytes) / float64(tr.HTMLBytes) * 100
	}
	tr.IsOptimal = a.cfg.IdealTextRatio.Contains(tr.Ratio)

	switch {
	case tr.Ratio < a.cfg.IdealTextRatio.Min:
		tr.Explanation = fmt.Sprintf("Low text-to-HTML ratio (%.1f%%) - page may have too much code", tr.Ratio)
	case tr.Ratio > a.cfg.IdealTextRatio.Max:
		tr.Explanation = fmt.Sprintf("High text-to-HTML ratio (%.1f%%) - page may have too much text", tr.Ratio)
	default:
		tr.Explanation = fmt.Sprintf("Optimal text-to-HTML ratio (%.1f%%)", tr.Ratio)
	}
	return tr
}

func (a *Analyzer) loadTime(d time.Duration, known bool) LoadTime {
	if !known {
		return LoadTime{Explanation: "Load time was not measured"}
	}
	lt := LoadTime{
		Seconds:   d.Seconds(),
		Known:     true,
		IsOptimal: d <= a.cfg.IdealLoadTime,
	}
	if lt.IsOptimal {
		lt.Explanation = fmt.Sprintf("Fast page load time (%.2fs)", lt.Seconds)
	} else {
		lt.Explanation = fmt.Sprintf("Slow page load time (%.2fs) - may affect crawlability", lt.Seconds)
	}
	return lt
}

// overall folds the component verdicts into the weighted score.
// Components map onto the 0-100 scale: hard failures score 0, partial
// credit scores 50.
func (a *Analyzer) overall(r Report) Overall {
	indexScore := 0.0
	if r.Indexability.IsIndexable {
		indexScore = 100
	}

	sitemapScore := 0.0
	switch {
	case r.SitemapStatus.URLInSitemap:
		sitemapScore = 100
	case r.SitemapStatus.SitemapExists:
		sitemapScore = 50
	}

	ratioScore := 50.0
	if r.TextRatio.IsOptimal {
		ratioScore = 100
	}

	loadScore := 0.0
	if r.LoadTime.IsOptimal {
		loadScore = 100
	}

	botScore := 0.0
	if r.BotAnalysis.RobotsTxtExists {
		if total := len(r.BotAnalysis.BotDirectives); total > 0 {
			allowed := 0
			for _, d := range r.BotAnalysis.BotDirectives {
				if d.IsAllowed {
					allowed++
				}
			}
			botScore = float64(allowed) / float64(total) * 100
		} else {
			botScore = 50
		}
	}

	w := a.cfg.Weights
	components := map[string]float64{
		"indexability": indexScore,
		"sitemap":      sitemapScore,
		"text_ratio":   ratioScore,
		"load_time":    loadScore,
		"llm_bot":      botScore,
	}
	score := indexScore*w.Indexability + sitemapScore*w.Sitemap +
		ratioScore*w.TextRatio + loadScore*w.LoadTime + botScore*w.Bots

	o := Overall{Score: score, Components: components}
	switch {
	case score >= 80:
		o.Explanation = "Excellent crawlability"
	case score >= 60:
		o.Explanation = "Good crawlability"
	case score >= 40:
		o.Explanation = "Fair crawlability"
	default:
		o.Explanation = "Poor crawlability"
	}
	return o
}
