package crawlability

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRobots = `# robots
User-agent: GPTBot
Disallow: /private/
Crawl-delay: 10

User-agent: ClaudeBot
User-agent: CCBot
Disallow: /internal/

User-agent: *
Disallow:
`

func TestAnalyzeRobotsDirectives(t *testing.T) {
	analysis := AnalyzeRobots(sampleRobots, true, DefaultRegistry())

	require.True(t, analysis.RobotsTxtExists)
	require.Len(t, analysis.BotDirectives, len(DefaultRegistry()))

	gpt := analysis.BotDirectives["GPTBot"]
	assert.False(t, gpt.IsAllowed)
	assert.Equal(t, []string{"/private/"}, gpt.DisallowedPaths)
	require.NotNil(t, gpt.CrawlDelay)
	assert.Equal(t, 10, *gpt.CrawlDelay)
	assert.Equal(t, []string{"GPTBot"}, gpt.UserAgentsFound)

	// Stacked user-agent lines share one directive block.
	claude := analysis.BotDirectives["ClaudeBot"]
	assert.False(t, claude.IsAllowed)
	assert.Equal(t, []string{"/internal/"}, claude.DisallowedPaths)
	cc := analysis.BotDirectives["CCBot"]
	assert.False(t, cc.IsAllowed)

	// Identities without a matching block default to allowed.
	perplexity := analysis.BotDirectives["PerplexityBot"]
	assert.True(t, perplexity.IsAllowed)
	assert.Empty(t, perplexity.DisallowedPaths)
	assert.Nil(t, perplexity.CrawlDelay)
	assert.Empty(t, perplexity.UserAgentsFound)
}

func TestAnalyzeRobotsEmptyDisallow(t *testing.T) {
	robots := "User-agent: GPTBot\nDisallow:\n"
	analysis := AnalyzeRobots(robots, true, DefaultRegistry())

	gpt := analysis.BotDirectives["GPTBot"]
	assert.True(t, gpt.IsAllowed)
	assert.Equal(t, []string{"GPTBot"}, gpt.UserAgentsFound)
}

func TestAnalyzeRobotsMissing(t *testing.T) {
	analysis := AnalyzeRobots("", false, DefaultRegistry())

	assert.False(t, analysis.RobotsTxtExists)
	assert.Empty(t, analysis.BotDirectives)
	assert.Equal(t, "No robots.txt found", analysis.Summary)
}

func TestSummaryOrder(t *testing.T) {
	analysis := AnalyzeRobots(sampleRobots, true, DefaultRegistry())

	assert.Contains(t, analysis.Summary, "Blocked: OpenAI, Anthropic, Common Crawl")
	assert.Contains(t, analysis.Summary, "Allowed: Google")
}

func TestAliasMatchingCaseInsensitive(t *testing.T) {
	robots := "User-agent: gptbot\nDisallow: /x/\n"
	analysis := AnalyzeRobots(robots, true, DefaultRegistry())

	assert.False(t, analysis.BotDirectives["GPTBot"].IsAllowed)
}

func TestCheckSitemap(t *testing.T) {
	sitemap := `<?xml version="1.0"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>https://example.com/page</loc></url>
  <url><loc>https://example.com/other</loc></url>
</urlset>`

	status := CheckSitemap("https://example.com/page", "https://example.com/sitemap.xml", sitemap, true)
	assert.True(t, status.SitemapExists)
	assert.True(t, status.URLInSitemap)

	status = CheckSitemap("https://example.com/missing", "https://example.com/sitemap.xml", sitemap, true)
	assert.True(t, status.SitemapExists)
	assert.False(t, status.URLInSitemap)

	status = CheckSitemap("https://example.com/page", "", "", false)
	assert.False(t, status.SitemapExists)
	assert.Equal(t, "No sitemap.xml found", status.Explanation)
}

func TestSitemapURLsMalformed(t *testing.T) {
	assert.Nil(t, SitemapURLs("not xml at all"))
}

func TestIndexability(t *testing.T) {
	idx := analyzeIndexability("")
	assert.True(t, idx.IsIndexable)
	assert.True(t, idx.IsFollowable)
	assert.False(t, idx.MetaRobotsPresent)

	idx = analyzeIndexability("noindex, follow")
	assert.False(t, idx.IsIndexable)
	assert.True(t, idx.IsFollowable)

	idx = analyzeIndexability("index, NOFOLLOW")
	assert.True(t, idx.IsIndexable)
	assert.False(t, idx.IsFollowable)
}

func TestTextRatio(t *testing.T) {
	a := New()

	tr := a.textRatio("<html>aaaaaaaaaaaaaaaaaaaa</html>", "aaaaaaaaaa")
	assert.Equal(t, 10, tr.TextBytes)
	assert.Greater(t, tr.Ratio, 0.0)

	tr = a.textRatio("", "")
	assert.Equal(t, 0.0, tr.Ratio)
	assert.False(t, tr.IsOptimal)
}

func TestLoadTime(t *testing.T) {
	a := New()

	lt := a.loadTime(1500*time.Millisecond, true)
	assert.True(t, lt.IsOptimal)

	lt = a.loadTime(3*time.Second, true)
	assert.False(t, lt.IsOptimal)

	lt = a.loadTime(0, false)
	assert.False(t, lt.Known)
	assert.Equal(t, "Load time was not measured", lt.Explanation)
}

func TestAnalyzeOverallWeighting(t *testing.T) {
	a := New()

	// Everything favorable: indexable, URL in sitemap, optimal ratio,
	// fast load, every bot allowed.
	in := Input{
		PageURL:         "https://example.com/page",
		HTML:            "<html><body>" + strings.Repeat("text ", 20) + "</body></html>",
		Text:            strings.Repeat("text ", 8),
		RobotsTxt:       "User-agent: *\nDisallow:\n",
		RobotsTxtExists: true,
		SitemapXML:      `<urlset><url><loc>https://example.com/page</loc></url></urlset>`,
		SitemapExists:   true,
		SitemapURL:      "https://example.com/sitemap.xml",
		LoadTime:        time.Second,
		LoadTimeKnown:   true,
	}

	report := a.Analyze(in)
	require.True(t, report.TextRatio.IsOptimal, "ratio %.1f", report.TextRatio.Ratio)
	assert.InDelta(t, 100.0, report.Overall.Score, 1e-9)
	assert.Equal(t, "Excellent crawlability", report.Overall.Explanation)

	// Noindex drops exactly the indexability weight.
	in.RobotsMeta = "noindex"
	report = a.Analyze(in)
	assert.InDelta(t, 70.0, report.Overall.Score, 1e-9)

	// Without robots.txt the bot component scores zero.
	in.RobotsMeta = ""
	in.RobotsTxt = ""
	in.RobotsTxtExists = false
	report = a.Analyze(in)
	assert.InDelta(t, 85.0, report.Overall.Score, 1e-9)
}

func TestWeightsSum(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultConfig().Weights.Sum(), 1e-9)
}
