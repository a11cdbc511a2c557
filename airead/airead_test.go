package airead

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geosearch/backend/scraper"
)

func optimalExtraction() *scraper.Extraction {
	return &scraper.Extraction{
		Title:           scraper.TagInfo{Found: true, Length: 55},
		MetaDescription: scraper.TagInfo{Found: true, Length: 140},
		Headings:        map[string]int{"h1": 1, "h2": 2},
		HeadingSequence: []int{1, 2, 3, 2, 3},
		Text:            strings.Repeat("word ", 400),
		Structure:       scraper.StructureInfo{SemanticCount: 6, SectionCount: 10},
	}
}

func TestAnalyzeOptimalPage(t *testing.T) {
	a := New()
	report := a.Analyze(optimalExtraction())

	assert.True(t, report.TitleTagLength.Optimal)
	assert.True(t, report.MetaDescriptionLength.Optimal)
	assert.True(t, report.H1TagPresence.Optimal)
	assert.True(t, report.ContentWordCount.Optimal)
	assert.True(t, report.SemanticElementUsage.Optimal)
	assert.True(t, report.HTMLValidationErrors.Optimal)
	assert.True(t, report.HeadingHierarchyOrder.Optimal)
}

func TestTitleThresholds(t *testing.T) {
	a := New()

	ext := optimalExtraction()
	ext.Title.Length = 20
	report := a.Analyze(ext)
	assert.False(t, report.TitleTagLength.Optimal)
	assert.Contains(t, report.TitleTagLength.Explanation, "Too short")

	ext.Title.Length = 80
	report = a.Analyze(ext)
	assert.False(t, report.TitleTagLength.Optimal)
	assert.Contains(t, report.TitleTagLength.Explanation, "Too long")
}

func TestMetaDescriptionMissing(t *testing.T) {
	a := New()
	ext := optimalExtraction()
	ext.MetaDescription = scraper.TagInfo{}

	report := a.Analyze(ext)
	assert.False(t, report.MetaDescriptionLength.Optimal)
	assert.Contains(t, report.MetaDescriptionLength.Explanation, "Missing")
}

func TestH1Presence(t *testing.T) {
	a := New()

	ext := optimalExtraction()
	ext.Headings = map[string]int{}
	report := a.Analyze(ext)
	assert.False(t, report.H1TagPresence.Optimal)
	assert.Contains(t, report.H1TagPresence.Explanation, "No H1")

	ext.Headings = map[string]int{"h1": 3}
	report = a.Analyze(ext)
	assert.False(t, report.H1TagPresence.Optimal)
	assert.Contains(t, report.H1TagPresence.Explanation, "Multiple H1")
}

func TestThinContent(t *testing.T) {
	a := New()
	ext := optimalExtraction()
	ext.Text = "just a few words here"

	report := a.Analyze(ext)
	assert.False(t, report.ContentWordCount.Optimal)
	assert.Equal(t, 5, report.ContentWordCount.Value)
}

func TestSemanticUsageRatio(t *testing.T) {
	a := New()
	ext := optimalExtraction()
	ext.Structure = scraper.StructureInfo{SemanticCount: 1, SectionCount: 10}

	report := a.Analyze(ext)
	assert.InDelta(t, 0.1, report.SemanticElementUsage.Ratio, 1e-9)
	assert.False(t, report.SemanticElementUsage.Optimal)
}

func TestHeadingHierarchySkip(t *testing.T) {
	a := New()
	ext := optimalExtraction()
	ext.HeadingSequence = []int{1, 3}

	report := a.Analyze(ext)
	assert.False(t, report.HeadingHierarchyOrder.Optimal)
	assert.Contains(t, report.HeadingHierarchyOrder.Explanation, "h1 to h3")
}

func TestValidationErrors(t *testing.T) {
	a := New()
	ext := optimalExtraction()
	ext.Structure.UnclosedTags = 2

	report := a.Analyze(ext)
	assert.False(t, report.HTMLValidationErrors.Optimal)
	assert.Equal(t, 2, report.HTMLValidationErrors.Value)
}

func TestAnalyzeNilExtraction(t *testing.T) {
	a := New()
	report := a.Analyze(nil)

	assert.False(t, report.TitleTagLength.Optimal)
	assert.False(t, report.H1TagPresence.Optimal)
	assert.Equal(t, "No headings found.", report.HeadingHierarchyOrder.Explanation)
}
