package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosearch/backend/scraper"
)

// goodExtraction builds an extraction that sits inside every ideal
// range.
func goodExtraction() *scraper.Extraction {
	return &scraper.Extraction{
		URL:             "https://example.com/",
		Title:           scraper.TagInfo{Found: true, Content: "A Title About Search Optimization And Related Topics Here", Length: 55},
		MetaDescription: scraper.TagInfo{Found: true, Content: "A meta description that covers search optimization topics in enough depth to fill the ideal length band for snippets today.", Length: 140},
		Headings:        map[string]int{"h1": 1, "h2": 3, "h3": 5},
		ParagraphCount:  6,
		ParagraphLength: 100,
		ContentLength:   1200,
		TextHTMLRatio:   35,
		TopKeywords: []scraper.Keyword{
			{Word: "search", Count: 12, Density: 2.0},
			{Word: "optimization", Count: 9, Density: 1.5},
		},
		InternalLinks: manyLinks(8, "the guide"),
		ExternalLinks: manyLinks(4, "Reference"),
		Images: []scraper.Image{
			{Src: "a.png", HasAlt: true, HasDimensions: true},
		},
		TotalImages:          1,
		ImagesWithAlt:        1,
		ImagesWithDimensions: 1,
		Technical: scraper.TechnicalFlags{
			HasViewport:       true,
			HasFavicon:        true,
			HasStructuredData: true,
			HasRobotsMeta:     true,
			HasAnalytics:      true,
		},
	}
}

func manyLinks(n int, text string) []scraper.Link {
	links := make([]scraper.Link, n)
	for i := range links {
		links[i] = scraper.Link{URL: "https://example.com/p", Text: text}
	}
	return links
}

func TestComputeOptimalPage(t *testing.T) {
	s := NewScorer()
	res := s.Compute(goodExtraction())

	assert.Equal(t, 100.0, res.ContentQuality.Score)
	assert.Equal(t, 100.0, res.TechnicalScore.Score)
	assert.Equal(t, 100.0, res.KeywordOptimization.Score)
	assert.Equal(t, 100.0, res.LinkQuality.Score)
	assert.Equal(t, 100.0, res.ImageOptimization.Score)
	assert.Equal(t, 100.0, res.OverallScore.Score)
	assert.Empty(t, res.DefaultsApplied)
	assert.Empty(t, res.Recommendations)
}

func TestComputeWeightedAggregate(t *testing.T) {
	s := NewScorer()
	ext := goodExtraction()
	// Drop images to zero: coverage defaults to 0, everything else
	// stays optimal.
	ext.Images = nil
	ext.TotalImages = 0
	ext.ImagesWithAlt = 0
	ext.ImagesWithDimensions = 0

	res := s.Compute(ext)

	assert.Equal(t, 0.0, res.ImageOptimization.Score)
	// 100*(0.30+0.25+0.20+0.15) + 0*0.10
	assert.InDelta(t, 90.0, res.OverallScore.Score, 1e-9)
	assert.Contains(t, res.DefaultsApplied, "image_optimization.alt_text")
	assert.Contains(t, res.DefaultsApplied, "image_optimization.dimensions")
}

func TestComputeNilExtraction(t *testing.T) {
	s := NewScorer()
	res := s.Compute(nil)

	require.NotNil(t, res)
	assert.Contains(t, res.DefaultsApplied, "extraction")
	assert.Equal(t, 0.0, res.KeywordOptimization.Score)
	assert.GreaterOrEqual(t, res.OverallScore.Score, 0.0)
	assert.LessOrEqual(t, res.OverallScore.Score, 100.0)
}

func TestDefaultWeightsSum(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultWeights().Sum(), 1e-9)
}

func TestNewScorerWithInvalidWeights(t *testing.T) {
	w := DefaultWeights()
	w.Content = 0.5

	_, err := NewScorerWith(DefaultRanges(), w, nil)
	assert.Error(t, err)
}

func TestAltCoverageBelowIdeal(t *testing.T) {
	s := NewScorer()
	ext := goodExtraction()
	ext.TotalImages = 4
	ext.ImagesWithAlt = 3 // 75% against ideal [80,100]
	ext.ImagesWithDimensions = 4

	res := s.Compute(ext)

	assert.InDelta(t, 75.0, res.ImageOptimization.AltText.Value, 1e-9)
	assert.InDelta(t, 75.0/80.0*100.0, res.ImageOptimization.AltText.Score, 1e-9)
	assert.NotContains(t, res.DefaultsApplied, "image_optimization.alt_text")

	found := false
	for _, rec := range res.Recommendations {
		if rec.Category == "images" {
			found = true
			assert.Equal(t, PriorityMedium, rec.Priority)
		}
	}
	assert.True(t, found, "expected an images recommendation")
}

func TestKeywordScoring(t *testing.T) {
	s := NewScorer()
	ext := goodExtraction()
	ext.TopKeywords = []scraper.Keyword{
		{Word: "search", Density: 2.0},  // in range -> 100
		{Word: "stuffed", Density: 6.0}, // 100 - 3/3*100 -> 0
	}

	res := s.Compute(ext)

	usage := res.KeywordOptimization.KeywordUsage
	require.Len(t, usage, 2)
	assert.Equal(t, 100.0, usage["search"].Score)
	assert.Equal(t, 0.0, usage["stuffed"].Score)
	assert.InDelta(t, 50.0, res.KeywordOptimization.Score, 1e-9)
	assert.True(t, usage["search"].InTitle)
	assert.False(t, usage["stuffed"].InTitle)
}

func TestHeadingHierarchy(t *testing.T) {
	s := NewScorer()

	t.Run("single h1 with h2", func(t *testing.T) {
		ext := goodExtraction()
		res := s.Compute(ext)
		assert.Equal(t, 100.0, res.ContentQuality.HeadingStructure.HierarchyScore)
	})

	t.Run("single h1 without h2", func(t *testing.T) {
		ext := goodExtraction()
		ext.Headings = map[string]int{"h1": 1}
		res := s.Compute(ext)
		assert.Equal(t, 50.0, res.ContentQuality.HeadingStructure.HierarchyScore)
	})

	t.Run("no h1", func(t *testing.T) {
		ext := goodExtraction()
		ext.Headings = map[string]int{"h2": 3}
		res := s.Compute(ext)
		assert.Equal(t, 0.0, res.ContentQuality.HeadingStructure.HierarchyScore)
	})

	t.Run("multiple h1", func(t *testing.T) {
		ext := goodExtraction()
		ext.Headings = map[string]int{"h1": 3, "h2": 2}
		res := s.Compute(ext)
		assert.Equal(t, 0.0, res.ContentQuality.HeadingStructure.HierarchyScore)
	})
}

func TestMissingTitleAndMeta(t *testing.T) {
	s := NewScorer()
	ext := goodExtraction()
	ext.Title = scraper.TagInfo{}
	ext.MetaDescription = scraper.TagInfo{}

	res := s.Compute(ext)

	assert.Equal(t, 0.0, res.TechnicalScore.Title.Score)
	assert.Contains(t, res.DefaultsApplied, "technical_score.title")
	assert.Contains(t, res.DefaultsApplied, "technical_score.meta_description")

	categories := make(map[string]bool)
	for _, rec := range res.Recommendations {
		categories[rec.Category] = true
	}
	assert.True(t, categories["title"])
	assert.True(t, categories["meta_description"])
}

func TestAnchorTextStopWordPenalty(t *testing.T) {
	s := NewScorer()

	meaningful := s.anchorTextScore("pricing") // 7 chars, not a stop word
	stopOnly := s.anchorTextScore("the")       // 3 chars, stop word only
	assert.Equal(t, 100.0, meaningful)
	assert.Equal(t, 75.0, stopOnly)
}

func TestNoLinksDefault(t *testing.T) {
	s := NewScorer()
	ext := goodExtraction()
	ext.InternalLinks = nil
	ext.ExternalLinks = nil

	res := s.Compute(ext)

	assert.Equal(t, 0.0, res.LinkQuality.AnchorText.Score)
	assert.Contains(t, res.DefaultsApplied, "link_quality.anchor_text")
}
