package metrics

import (
	"fmt"
	"math"

	"github.com/geosearch/backend/scraper"
)

// Weights distributes the overall SEO score across the five sub-score
// bundles. A valid table sums to 1.0.
type Weights struct {
	Content   float64 `json:"content_quality"`
	Technical float64 `json:"technical_score"`
	Keywords  float64 `json:"keyword_optimization"`
	Links     float64 `json:"link_quality"`
	Images    float64 `json:"image_optimization"`
}

// DefaultWeights returns the standard weight table.
func DefaultWeights() Weights {
	return Weights{
		Content:   0.30,
		Technical: 0.25,
		Keywords:  0.20,
		Links:     0.15,
		Images:    0.10,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Content + w.Technical + w.Keywords + w.Links + w.Images
}

// Scorer turns an Extraction into scored bundles, recommendations and
// an overall score. All configuration is fixed at construction; a
// Scorer is safe for concurrent use.
type Scorer struct {
	ranges    Ranges
	weights   Weights
	stopWords map[string]bool
}

// NewScorer creates a Scorer with the default ranges, weights and
// stop-word set.
func NewScorer() *Scorer {
	s, _ := NewScorerWith(DefaultRanges(), DefaultWeights(), DefaultStopWords())
	return s
}

// NewScorerWith creates a Scorer from explicit configuration. The
// weight table must sum to 1.0.
func NewScorerWith(ranges Ranges, weights Weights, stopWords map[string]bool) (*Scorer, error) {
	if math.Abs(weights.Sum()-1.0) > 1e-9 {
		return nil, fmt.Errorf("weights must sum to 1.0, got %g", weights.Sum())
	}
	if stopWords == nil {
		stopWords = DefaultStopWords()
	}
	return &Scorer{ranges: ranges, weights: weights, stopWords: stopWords}, nil
}

// Ranges returns the ideal-range table the Scorer was built with.
func (s *Scorer) Ranges() Ranges { return s.ranges }

// Weights returns the weight table the Scorer was built with.
func (s *Scorer) Weights() Weights { return s.weights }

// StopWords returns the stop-word set the Scorer was built with.
func (s *Scorer) StopWords() map[string]bool { return s.stopWords }

// defaults tracks metric names that fell back to zero scores because
// their input was missing or degenerate.
type defaults struct {
	names []string
}

func (d *defaults) add(name string) {
	d.names = append(d.names, name)
}

// Compute scores the extraction. It never fails: a nil or sparse
// extraction produces zero scores for the affected metrics, each one
// recorded in the result's DefaultsApplied list.
func (s *Scorer) Compute(ext *scraper.Extraction) *Result {
	d := &defaults{}
	if ext == nil {
		ext = &scraper.Extraction{}
		d.add("extraction")
	}

	res := &Result{
		ContentQuality:      s.scoreContent(ext, d),
		TechnicalScore:      s.scoreTechnical(ext, d),
		KeywordOptimization: s.scoreKeywords(ext, d),
		LinkQuality:         s.scoreLinks(ext, d),
		ImageOptimization:   s.scoreImages(ext, d),
		Recommendations:     s.recommend(ext),
	}
	res.OverallScore = s.aggregate(res)
	res.DefaultsApplied = d.names
	return res
}

// aggregate folds the five bundle scores into the weighted overall
// score. Bundles always carry a numeric score (0 on failure), so the
// aggregate is always complete.
func (s *Scorer) aggregate(res *Result) OverallScore {
	breakdown := map[string]float64{
		"content_quality":      res.ContentQuality.Score,
		"technical_score":      res.TechnicalScore.Score,
		"keyword_optimization": res.KeywordOptimization.Score,
		"link_quality":         res.LinkQuality.Score,
		"image_optimization":   res.ImageOptimization.Score,
	}

	score := res.ContentQuality.Score*s.weights.Content +
		res.TechnicalScore.Score*s.weights.Technical +
		res.KeywordOptimization.Score*s.weights.Keywords +
		res.LinkQuality.Score*s.weights.Links +
		res.ImageOptimization.Score*s.weights.Images

	return OverallScore{
		Score:     round2(score),
		Breakdown: breakdown,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
