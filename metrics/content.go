package metrics

import (
	"fmt"

	"github.com/geosearch/backend/scraper"
)

// scoreContent builds the content-quality bundle: content length,
// text/HTML ratio, heading structure and paragraph length, averaged
// into the bundle score.
func (s *Scorer) scoreContent(ext *scraper.Extraction, d *defaults) ContentQuality {
	cq := ContentQuality{
		ContentLength:  s.metric(float64(ext.ContentLength), s.ranges.ContentLength, "content length", "chars"),
		TextHTMLRatio:  s.metric(ext.TextHTMLRatio, s.ranges.TextHTMLRatio, "text/HTML ratio", "%"),
		ParagraphCount: ext.ParagraphCount,
	}

	if ext.ParagraphCount == 0 {
		cq.ParagraphLength = Metric{OptimalRange: s.ranges.ParagraphLength, Explanation: "No paragraphs found"}
		d.add("content_quality.avg_paragraph_length")
	} else {
		cq.ParagraphLength = s.metric(ext.ParagraphLength, s.ranges.ParagraphLength, "average paragraph length", "chars")
	}

	cq.HeadingStructure = s.scoreHeadings(ext)
	cq.Score = mean(cq.ContentLength.Score, cq.TextHTMLRatio.Score, cq.HeadingStructure.Score, cq.ParagraphLength.Score)
	return cq
}

// scoreHeadings combines per-level density scores with a hierarchy
// bonus: full marks need exactly one h1 and at least one h2.
func (s *Scorer) scoreHeadings(ext *scraper.Extraction) HeadingStructure {
	h1 := float64(ext.Headings["h1"])
	h2 := float64(ext.Headings["h2"])
	h3 := float64(ext.Headings["h3"])

	levels := map[string]Metric{
		"h1": s.metric(h1, s.ranges.H1Count, "h1 count", "headings"),
		"h2": s.metric(h2, s.ranges.H2Count, "h2 count", "headings"),
		"h3": s.metric(h3, s.ranges.H3Count, "h3 count", "headings"),
	}
	density := mean(levels["h1"].Score, levels["h2"].Score, levels["h3"].Score)

	var hierarchy float64
	var explanation string
	switch {
	case h1 == 1 && h2 >= 1:
		hierarchy = MaxScore
		explanation = "Single h1 with supporting h2 headings"
	case h1 == 1:
		hierarchy = MaxScore / 2
		explanation = "Single h1 but no h2 headings to structure the content"
	case h1 == 0:
		explanation = "No h1 heading found"
	default:
		explanation = fmt.Sprintf("%d h1 headings found, expected exactly one", int(h1))
	}

	return HeadingStructure{
		Levels:         levels,
		HierarchyScore: hierarchy,
		Score:          mean(hierarchy, density),
		Explanation:    explanation,
	}
}

// metric range-scores a value and attaches a threshold explanation.
func (s *Scorer) metric(value float64, r Range, label, unit string) Metric {
	m := Metric{
		Value:        value,
		Score:        r.Score(value),
		OptimalRange: r,
	}
	switch {
	case r.Contains(value):
		m.Explanation = fmt.Sprintf("Optimal %s (%.1f %s)", label, value, unit)
	case value < r.Min:
		m.Explanation = fmt.Sprintf("Low %s (%.1f %s), ideal is %g-%g", label, value, unit, r.Min, r.Max)
	default:
		m.Explanation = fmt.Sprintf("High %s (%.1f %s), ideal is %g-%g", label, value, unit, r.Min, r.Max)
	}
	return m
}
