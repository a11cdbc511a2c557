// Package airead evaluates how well a page's structure reads for AI
// crawlers and summarizers: tag lengths, heading hierarchy, semantic
// element usage and rough markup hygiene.
package airead

import (
	"fmt"
	"strings"

	"github.com/geosearch/backend/scraper"
)

// Config holds the structural thresholds.
type Config struct {
	TitleMin         int
	TitleMax         int
	MetaDescMax      int
	ContentWordMin   int
	SemanticRatioMin float64
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		TitleMin:         50,
		TitleMax:         60,
		MetaDescMax:      155,
		ContentWordMin:   300,
		SemanticRatioMin: 0.5,
	}
}

// Analyzer runs the AI-readability checks. Configuration is fixed at
// construction; an Analyzer is safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// New creates an Analyzer with the default thresholds.
func New() *Analyzer {
	return &Analyzer{cfg: DefaultConfig()}
}

// NewWithConfig creates an Analyzer with explicit thresholds.
func NewWithConfig(cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Check is one pass/fail structural metric.
type Check struct {
	Value       int    `json:"value"`
	Optimal     bool   `json:"optimal"`
	Explanation string `json:"explanation"`
}

// SemanticUsage reports the share of sectioning elements that are
// semantic HTML5 tags rather than divs.
type SemanticUsage struct {
	SemanticCount int     `json:"semantic_count"`
	TotalSections int     `json:"total_sections"`
	Ratio         float64 `json:"ratio"`
	Optimal       bool    `json:"optimal"`
	Explanation   string  `json:"explanation"`
}

// HeadingHierarchy reports whether heading levels descend without
// skips.
type HeadingHierarchy struct {
	Levels      []int  `json:"levels"`
	Optimal     bool   `json:"optimal"`
	Explanation string `json:"explanation"`
}

// Report bundles every AI-readability metric for one page.
type Report struct {
	TitleTagLength        Check            `json:"title_tag_length"`
	MetaDescriptionLength Check            `json:"meta_description_length"`
	H1TagPresence         Check            `json:"h1_tag_presence"`
	ContentWordCount      Check            `json:"content_word_count"`
	SemanticElementUsage  SemanticUsage    `json:"semantic_element_usage"`
	HTMLValidationErrors  Check            `json:"html_validation_errors"`
	HeadingHierarchyOrder HeadingHierarchy `json:"heading_hierarchy_order"`
}

// Analyze runs every structural check against the extraction.
func (a *Analyzer) Analyze(ext *scraper.Extraction) Report {
	if ext == nil {
		ext = &scraper.Extraction{}
	}
	return Report{
		TitleTagLength:        a.checkTitle(ext),
		MetaDescriptionLength: a.checkMetaDescription(ext),
		H1TagPresence:         a.checkH1(ext),
		ContentWordCount:      a.checkWordCount(ext),
		SemanticElementUsage:  a.checkSemantics(ext),
		HTMLValidationErrors:  a.checkValidation(ext),
		HeadingHierarchyOrder: a.checkHierarchy(ext),
	}
}

func (a *Analyzer) checkTitle(ext *scraper.Extraction) Check {
	length := ext.Title.Length
	c := Check{
		Value:   length,
		Optimal: length >= a.cfg.TitleMin && length <= a.cfg.TitleMax,
	}
	switch {
	case c.Optimal:
		c.Explanation = "Optimal: Title is concise and clear for AI/search display."
	case length < a.cfg.TitleMin:
		c.Explanation = "Too short: Title may not be optimal for AI/search context."
	default:
		c.Explanation = "Too long: Title may not be optimal for AI/search context."
	}
	return c
}

func (a *Analyzer) checkMetaDescription(ext *scraper.Extraction) Check {
	length := ext.MetaDescription.Length
	c := Check{
		Value:   length,
		Optimal: length > 0 && length <= a.cfg.MetaDescMax,
	}
	switch {
	case c.Optimal:
		c.Explanation = "Optimal: Meta description is present and concise for AI/search snippets."
	case length == 0:
		c.Explanation = "Missing: No meta description for AI/search snippet."
	default:
		c.Explanation = "Too long: May be truncated in AI/search results."
	}
	return c
}

func (a *Analyzer) checkH1(ext *scraper.Extraction) Check {
	count := ext.Headings["h1"]
	c := Check{Value: count, Optimal: count == 1}
	switch {
	case c.Optimal:
		c.Explanation = "Optimal: Single H1 tag provides clear main topic for AI parsing."
	case count == 0:
		c.Explanation = "Missing: No H1 tag for main topic."
	default:
		c.Explanation = "Multiple H1 tags: Ambiguous main topic for AI."
	}
	return c
}

func (a *Analyzer) checkWordCount(ext *scraper.Extraction) Check {
	count := len(strings.Fields(ext.Text))
	c := Check{Value: count, Optimal: count >= a.cfg.ContentWordMin}
	if c.Optimal {
		c.Explanation = "Optimal: Sufficient content for AI to understand and summarize."
	} else {
		c.Explanation = "Too little content: May be considered 'thin' by AI/search."
	}
	return c
}

func (a *Analyzer) checkSemantics(ext *scraper.Extraction) SemanticUsage {
	s := SemanticUsage{
		SemanticCount: ext.Structure.SemanticCount,
		TotalSections: ext.Structure.SectionCount,
	}
	if s.TotalSections > 0 {
		s.Ratio = float64(s.SemanticCount) / float64(s.TotalSections)
	}
	s.Optimal = s.Ratio >= a.cfg.SemanticRatioMin
	if s.Optimal {
		s.Explanation = "Optimal: Semantic HTML5 elements are used for clear structure."
	} else {
		s.Explanation = "Suboptimal: Consider using more semantic HTML5 elements for better AI understanding."
	}
	return s
}

// checkValidation reports the unclosed-tag count. This is a rough
// hygiene signal, not a full validator.
func (a *Analyzer) checkValidation(ext *scraper.Extraction) Check {
	errs := ext.Structure.UnclosedTags
	c := Check{Value: errs, Optimal: errs == 0}
	if c.Optimal {
		c.Explanation = "Optimal: No HTML validation errors detected."
	} else {
		c.Explanation = fmt.Sprintf("%d HTML validation error(s) detected. This may confuse AI/bots.", errs)
	}
	return c
}

func (a *Analyzer) checkHierarchy(ext *scraper.Extraction) HeadingHierarchy {
	levels := ext.HeadingSequence
	h := HeadingHierarchy{Levels: levels}
	if len(levels) == 0 {
		h.Explanation = "No headings found."
		return h
	}
	prev := levels[0]
	for _, curr := range levels[1:] {
		if curr > prev+1 {
			h.Explanation = fmt.Sprintf("Heading level skipped: h%d to h%d.", prev, curr)
			return h
		}
		prev = curr
	}
	h.Optimal = true
	h.Explanation = "Optimal: Heading hierarchy is logical and accessible."
	return h
}
