package metrics

import (
	"github.com/geosearch/backend/scraper"
)

// scoreTechnical builds the technical bundle: title length, meta
// description length and the coverage of technical SEO elements.
func (s *Scorer) scoreTechnical(ext *scraper.Extraction, d *defaults) TechnicalScore {
	ts := TechnicalScore{
		Title:           s.metric(float64(ext.Title.Length), s.ranges.TitleLength, "title length", "chars"),
		MetaDescription: s.metric(float64(ext.MetaDescription.Length), s.ranges.MetaDescription, "meta description length", "chars"),
		Elements: map[string]bool{
			"viewport":        ext.Technical.HasViewport,
			"favicon":         ext.Technical.HasFavicon,
			"structured_data": ext.Technical.HasStructuredData,
			"analytics":       ext.Technical.HasAnalytics,
			"robots_meta":     ext.Technical.HasRobotsMeta,
		},
	}

	if !ext.Title.Found {
		ts.Title.Explanation = "No title tag found"
		d.add("technical_score.title")
	}
	if !ext.MetaDescription.Found {
		ts.MetaDescription.Explanation = "No meta description found"
		d.add("technical_score.meta_description")
	}

	present := 0
	for _, ok := range ts.Elements {
		if ok {
			present++
		}
	}
	ts.ElementsScore = float64(present) / float64(len(ts.Elements)) * MaxScore
	ts.Score = mean(ts.Title.Score, ts.MetaDescription.Score, ts.ElementsScore)
	return ts
}
