package scraper

// Extraction is the structured record pulled out of one fetched page.
// It is built once per analysis and read-only afterwards; every scorer
// consumes it without mutating it.
type Extraction struct {
	URL             string            `json:"url"`
	Title           TagInfo           `json:"title"`
	MetaDescription TagInfo           `json:"meta_description"`
	Robots          string            `json:"robots"`
	Viewport        string            `json:"viewport"`
	Charset         string            `json:"charset"`
	Canonical       string            `json:"canonical"`
	OGTags          map[string]string `json:"og_tags"`
	TwitterCards    map[string]string `json:"twitter_cards"`

	Headings        map[string]int `json:"heading_structure"`
	HeadingSequence []int          `json:"heading_sequence"`
	ParagraphCount  int            `json:"paragraph_count"`
	ParagraphLength float64        `json:"avg_paragraph_length"`
	ContentLength   int            `json:"content_length"`
	TextHTMLRatio   float64        `json:"text_html_ratio"`
	Text            string         `json:"-"`

	TotalWords  int       `json:"total_words"`
	UniqueWords int       `json:"unique_words"`
	TopKeywords []Keyword `json:"top_keywords"`

	InternalLinks []Link `json:"internal_links"`
	ExternalLinks []Link `json:"external_links"`

	Images               []Image `json:"images"`
	TotalImages          int     `json:"total_images"`
	ImagesWithAlt        int     `json:"images_with_alt"`
	ImagesWithDimensions int     `json:"images_with_dimensions"`

	Technical TechnicalFlags `json:"technical_seo"`
	Structure StructureInfo  `json:"structure"`
	URLInfo   URLInfo        `json:"url_structure"`
}

// TagInfo describes a single text-bearing tag such as <title> or the
// meta description.
type TagInfo struct {
	Found   bool   `json:"found"`
	Content string `json:"content"`
	Length  int    `json:"length"`
}

// Keyword is one entry of the top-N keyword table.
type Keyword struct {
	Word    string  `json:"word"`
	Count   int     `json:"count"`
	Density float64 `json:"density"` // percentage of all counted words
}

// Link is one anchor found on the page, with its resolved URL.
type Link struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	Title    string `json:"title"`
	NoFollow bool   `json:"nofollow"`
}

// Image is one <img> element and its optimization attributes.
type Image struct {
	Src           string `json:"src"`
	Alt           string `json:"alt"`
	Title         string `json:"title"`
	HasAlt        bool   `json:"has_alt"`
	HasDimensions bool   `json:"has_dimensions"`
}

// TechnicalFlags records presence of technical SEO elements.
type TechnicalFlags struct {
	HasViewport       bool `json:"has_viewport"`
	HasFavicon        bool `json:"has_favicon"`
	HasStructuredData bool `json:"has_structured_data"`
	HasSitemapLink    bool `json:"has_xml_sitemap"`
	HasRobotsMeta     bool `json:"has_robots_txt"`
	HasAnalytics      bool `json:"has_analytics"`
}

// StructureInfo counts sectioning elements for the AI-readability
// checks. SectionCount is semantic elements plus divs; UnclosedTags is
// an approximate count of tags left open at line ends.
type StructureInfo struct {
	SemanticCount int `json:"semantic_count"`
	SectionCount  int `json:"total_sections"`
	UnclosedTags  int `json:"unclosed_tags"`
}

// URLInfo is the decomposition of the analyzed URL.
type URLInfo struct {
	Scheme       string   `json:"protocol"`
	Domain       string   `json:"domain"`
	PathDepth    int      `json:"path_depth"`
	PathSegments []string `json:"path_segments"`
	HasQuery     bool     `json:"has_query_params"`
	HasFragment  bool     `json:"has_fragment"`
	IsClean      bool     `json:"is_clean_url"`
}
