package metrics

import (
	"regexp"
	"strings"

	"github.com/geosearch/backend/scraper"
)

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9_]+`)

// scoreKeywords builds the keyword bundle: each top keyword is density-
// scored and checked for membership in the title and meta description
// word sets. The bundle score is the mean of the per-keyword scores.
func (s *Scorer) scoreKeywords(ext *scraper.Extraction, d *defaults) KeywordOptimization {
	ko := KeywordOptimization{
		KeywordUsage:  make(map[string]KeywordUsage, len(ext.TopKeywords)),
		TotalKeywords: len(ext.TopKeywords),
	}

	if len(ext.TopKeywords) == 0 {
		d.add("keyword_optimization.keyword_usage")
		return ko
	}

	titleWords := tokenSet(ext.Title.Content)
	metaWords := tokenSet(ext.MetaDescription.Content)

	total := 0.0
	for _, kw := range ext.TopKeywords {
		usage := KeywordUsage{
			Density:           kw.Density,
			InTitle:           titleWords[kw.Word],
			InMetaDescription: metaWords[kw.Word],
			Score:             s.ranges.KeywordDensity.Score(kw.Density),
		}
		ko.KeywordUsage[kw.Word] = usage
		total += usage.Score
	}
	ko.Score = total / float64(len(ext.TopKeywords))
	return ko
}

// tokenSet lowercases text and returns its word-token membership set.
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		set[w] = true
	}
	return set
}
