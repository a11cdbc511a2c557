package metrics

// MaxScore is the top of the uniform scoring scale. Every range score,
// sub-score and composite in this package lives in [0, MaxScore].
const MaxScore = 100.0

// Range is an ideal [Min,Max] interval for a measured metric.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Score maps a measured value onto [0,100] against the ideal range.
// Values inside [Min,Max] inclusive score 100; below-minimum values
// score proportionally (value/Min); above-maximum values decay linearly
// with overshoot. Zero-valued bounds never divide.
func (r Range) Score(value float64) float64 {
	if value >= r.Min && value <= r.Max {
		return MaxScore
	}
	if value < r.Min {
		if r.Min == 0 {
			return 0
		}
		return clamp(value/r.Min*MaxScore, 0, MaxScore)
	}
	if r.Max == 0 {
		return 0
	}
	return clamp(MaxScore-(value-r.Max)/r.Max*MaxScore, 0, MaxScore)
}

// Contains reports whether value lies inside the range, bounds included.
func (r Range) Contains(value float64) bool {
	return value >= r.Min && value <= r.Max
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ranges holds every ideal interval used by the sub-scorers. Constructed
// once and passed by value; nothing mutates it after startup.
type Ranges struct {
	TitleLength     Range
	MetaDescription Range
	ContentLength   Range
	TextHTMLRatio   Range
	KeywordDensity  Range
	H1Count         Range
	H2Count         Range
	H3Count         Range
	InternalLinks   Range
	ExternalLinks   Range
	AltTextCoverage Range // percentage
	DimensionCover  Range // percentage
	ParagraphLength Range
	AnchorTextLen   Range // characters
}

// DefaultRanges returns the standard ideal intervals.
func DefaultRanges() Ranges {
	return Ranges{
		TitleLength:     Range{50, 60},
		MetaDescription: Range{120, 160},
		ContentLength:   Range{300, 2500},
		TextHTMLRatio:   Range{20, 70},
		KeywordDensity:  Range{1, 3},
		H1Count:         Range{1, 1},
		H2Count:         Range{2, 5},
		H3Count:         Range{3, 8},
		InternalLinks:   Range{5, 20},
		ExternalLinks:   Range{2, 10},
		AltTextCoverage: Range{80, 100},
		DimensionCover:  Range{80, 100},
		ParagraphLength: Range{50, 150},
		AnchorTextLen:   Range{3, 10},
	}
}

// DefaultStopWords returns the stop-word set used for keyword filtering
// and anchor-text quality checks.
func DefaultStopWords() map[string]bool {
	words := []string{
		"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
		"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	}
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
