package metrics

// Metric is one scored measurement: the value that was observed, the
// score it earned and the ideal range it was judged against.
type Metric struct {
	Value        float64 `json:"value"`
	Score        float64 `json:"score"`
	OptimalRange Range   `json:"optimal_range"`
	Explanation  string  `json:"explanation,omitempty"`
}

// HeadingStructure scores the h1/h2/h3 distribution of a page.
type HeadingStructure struct {
	Levels         map[string]Metric `json:"levels"`
	HierarchyScore float64           `json:"hierarchy_score"`
	Score          float64           `json:"score"`
	Explanation    string            `json:"explanation"`
}

// ContentQuality is the content sub-score bundle.
type ContentQuality struct {
	ContentLength    Metric           `json:"content_length"`
	TextHTMLRatio    Metric           `json:"text_html_ratio"`
	HeadingStructure HeadingStructure `json:"heading_structure"`
	ParagraphCount   int              `json:"paragraph_count"`
	ParagraphLength  Metric           `json:"avg_paragraph_length"`
	Score            float64          `json:"score"`
}

// TechnicalScore is the technical sub-score bundle.
type TechnicalScore struct {
	Title           Metric          `json:"title"`
	MetaDescription Metric          `json:"meta_description"`
	Elements        map[string]bool `json:"technical_elements"`
	ElementsScore   float64         `json:"technical_score"`
	Score           float64         `json:"score"`
}

// KeywordUsage scores a single top keyword.
type KeywordUsage struct {
	Density           float64 `json:"density"`
	InTitle           bool    `json:"in_title"`
	InMetaDescription bool    `json:"in_meta_description"`
	Score             float64 `json:"score"`
}

// KeywordOptimization is the keyword sub-score bundle.
type KeywordOptimization struct {
	KeywordUsage  map[string]KeywordUsage `json:"keyword_usage"`
	TotalKeywords int                     `json:"total_keywords"`
	Score         float64                 `json:"score"`
}

// LinkQuality is the link sub-score bundle. AnchorText averages the
// per-link text quality across both link categories.
type LinkQuality struct {
	InternalLinks Metric  `json:"internal_links"`
	ExternalLinks Metric  `json:"external_links"`
	AnchorText    Metric  `json:"anchor_text"`
	Score         float64 `json:"score"`
}

// ImageOptimization is the image sub-score bundle. Coverage values are
// percentages of the total image count.
type ImageOptimization struct {
	AltText     Metric  `json:"alt_text"`
	Dimensions  Metric  `json:"dimensions"`
	TotalImages int     `json:"total_images"`
	Score       float64 `json:"score"`
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is one advisory message produced by the rule table.
type Recommendation struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
}

// OverallScore is the weighted composite of the five sub-score bundles.
type OverallScore struct {
	Score     float64            `json:"score"`
	Breakdown map[string]float64 `json:"breakdown"`
}

// Result is the complete output of the scoring core. DefaultsApplied
// lists metrics that fell back to zero because their input was missing
// or degenerate, so callers can tell a computed zero from a default.
type Result struct {
	ContentQuality      ContentQuality      `json:"content_quality"`
	TechnicalScore      TechnicalScore      `json:"technical_score"`
	KeywordOptimization KeywordOptimization `json:"keyword_optimization"`
	LinkQuality         LinkQuality         `json:"link_quality"`
	ImageOptimization   ImageOptimization   `json:"image_optimization"`
	Recommendations     []Recommendation    `json:"recommendations"`
	OverallScore        OverallScore        `json:"overall_score"`
	DefaultsApplied     []string            `json:"defaults_applied"`
}
