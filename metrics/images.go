package metrics

import (
	"github.com/geosearch/backend/scraper"
)

// scoreImages builds the image bundle. Coverage percentages guard the
// zero-image case: no images means zero coverage scores, recorded as
// defaults rather than raised as errors.
func (s *Scorer) scoreImages(ext *scraper.Extraction, d *defaults) ImageOptimization {
	io := ImageOptimization{TotalImages: ext.TotalImages}

	if ext.TotalImages == 0 {
		io.AltText = Metric{OptimalRange: s.ranges.AltTextCoverage, Explanation: "No images found"}
		io.Dimensions = Metric{OptimalRange: s.ranges.DimensionCover, Explanation: "No images found"}
		d.add("image_optimization.alt_text")
		d.add("image_optimization.dimensions")
		return io
	}

	altPct := float64(ext.ImagesWithAlt) / float64(ext.TotalImages) * 100
	dimPct := float64(ext.ImagesWithDimensions) / float64(ext.TotalImages) * 100

	io.AltText = s.metric(altPct, s.ranges.AltTextCoverage, "alt text coverage", "%")
	io.Dimensions = s.metric(dimPct, s.ranges.DimensionCover, "dimension coverage", "%")
	io.Score = mean(io.AltText.Score, io.Dimensions.Score)
	return io
}
