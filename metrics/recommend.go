package metrics

import (
	"fmt"

	"github.com/geosearch/backend/scraper"
)

// recommend evaluates the rule table against the extraction. Each rule
// fires at most once per call; order follows the table.
func (s *Scorer) recommend(ext *scraper.Extraction) []Recommendation {
	recs := make([]Recommendation, 0)

	titleLen := float64(ext.Title.Length)
	if !s.ranges.TitleLength.Contains(titleLen) {
		recs = append(recs, Recommendation{
			Category: "title",
			Priority: PriorityHigh,
			Message: fmt.Sprintf("Title length (%d chars) should be between %g and %g characters",
				ext.Title.Length, s.ranges.TitleLength.Min, s.ranges.TitleLength.Max),
		})
	}

	metaLen := float64(ext.MetaDescription.Length)
	if !s.ranges.MetaDescription.Contains(metaLen) {
		recs = append(recs, Recommendation{
			Category: "meta_description",
			Priority: PriorityHigh,
			Message: fmt.Sprintf("Meta description length (%d chars) should be between %g and %g characters",
				ext.MetaDescription.Length, s.ranges.MetaDescription.Min, s.ranges.MetaDescription.Max),
		})
	}

	if ext.TotalImages > 0 {
		altPct := float64(ext.ImagesWithAlt) / float64(ext.TotalImages) * 100
		if altPct < s.ranges.AltTextCoverage.Min {
			recs = append(recs, Recommendation{
				Category: "images",
				Priority: PriorityMedium,
				Message: fmt.Sprintf("Only %.1f%% of images have alt text. Aim for at least %g%%",
					altPct, s.ranges.AltTextCoverage.Min),
			})
		}
	}

	if !ext.Technical.HasViewport {
		recs = append(recs, Recommendation{
			Category: "technical",
			Priority: PriorityHigh,
			Message:  "Add viewport meta tag for mobile optimization",
		})
	}
	if !ext.Technical.HasStructuredData {
		recs = append(recs, Recommendation{
			Category: "technical",
			Priority: PriorityMedium,
			Message:  "Consider adding structured data for better search results",
		})
	}

	return recs
}
