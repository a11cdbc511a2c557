package metrics

import (
	"strings"

	"github.com/geosearch/backend/scraper"
)

// scoreLinks builds the link bundle: internal and external counts are
// range-scored and every anchor text earns a quality score, averaged
// across both categories.
func (s *Scorer) scoreLinks(ext *scraper.Extraction, d *defaults) LinkQuality {
	lq := LinkQuality{
		InternalLinks: s.metric(float64(len(ext.InternalLinks)), s.ranges.InternalLinks, "internal link count", "links"),
		ExternalLinks: s.metric(float64(len(ext.ExternalLinks)), s.ranges.ExternalLinks, "external link count", "links"),
	}

	all := make([]scraper.Link, 0, len(ext.InternalLinks)+len(ext.ExternalLinks))
	all = append(all, ext.InternalLinks...)
	all = append(all, ext.ExternalLinks...)

	if len(all) == 0 {
		lq.AnchorText = Metric{OptimalRange: s.ranges.AnchorTextLen, Explanation: "No links to evaluate"}
		d.add("link_quality.anchor_text")
	} else {
		total := 0.0
		for _, link := range all {
			total += s.anchorTextScore(link.Text)
		}
		avg := total / float64(len(all))
		lq.AnchorText = Metric{
			Value:        float64(len(all)),
			Score:        avg,
			OptimalRange: s.ranges.AnchorTextLen,
			Explanation:  "Average anchor text quality across all links",
		}
	}

	lq.Score = mean(lq.InternalLinks.Score, lq.ExternalLinks.Score, lq.AnchorText.Score)
	return lq
}

// anchorTextScore averages a length score against the ideal anchor
// length with a stop-word bonus: full marks if any token is not a stop
// word, half otherwise.
func (s *Scorer) anchorTextScore(text string) float64 {
	lengthScore := s.ranges.AnchorTextLen.Score(float64(len(text)))

	bonus := MaxScore / 2
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if !s.stopWords[token] {
			bonus = MaxScore
			break
		}
	}
	return (lengthScore + bonus) / 2
}
