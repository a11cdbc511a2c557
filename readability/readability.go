// Package readability computes Flesch Reading Ease and related lexical
// metrics from raw page text.
package readability

import (
	"fmt"
	"regexp"
	"strings"
)

// NeutralScore is reported as the overall score when there is no text
// to analyze.
const NeutralScore = 50.0

var (
	htmlTag     = regexp.MustCompile(`<[^>]+>`)
	whitespace  = regexp.MustCompile(`\s+`)
	disallowed  = regexp.MustCompile(`[^a-zA-Z0-9\s.,!?]`)
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
)

// Config holds the readability thresholds.
type Config struct {
	IdealSentenceLength float64 // words per sentence
	MaxSentenceLength   float64
	ComplexSyllables    int     // syllables that make a word complex
	ComplexPercentMax   float64 // acceptable share of complex words
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		IdealSentenceLength: 14,
		MaxSentenceLength:   20,
		ComplexSyllables:    3,
		ComplexPercentMax:   15,
	}
}

// Analyzer scores text readability. Configuration is fixed at
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

// Flesch is the Flesch Reading Ease result.
type Flesch struct {
	Score               float64 `json:"score"`
	Level               string  `json:"level"`
	AvgSentenceLength   float64 `json:"avg_sentence_length"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
	IsOptimal           bool    `json:"is_optimal"`
	Explanation         string  `json:"explanation"`
}

// SentenceLength reports the average sentence length check.
type SentenceLength struct {
	AvgLength         float64 `json:"avg_length"`
	OptimalPercentage float64 `json:"optimal_percentage"`
	IsOptimal         bool    `json:"is_optimal"`
	Explanation       string  `json:"explanation"`
}

// LexicalComplexity reports the complex-word share.
type LexicalComplexity struct {
	ComplexWords      int     `json:"complex_words"`
	ComplexPercentage float64 `json:"complex_percentage"`
	IsOptimal         bool    `json:"is_optimal"`
	Explanation       string  `json:"explanation"`
}

// Overall is the blended readability score on the 0-100 scale.
type Overall struct {
	Score       float64            `json:"score"`
	Components  map[string]float64 `json:"components"`
	Explanation string             `json:"explanation"`
}

// Report bundles all readability metrics for one text.
type Report struct {
	Flesch            Flesch            `json:"flesch_reading_ease"`
	SentenceLength    SentenceLength    `json:"average_sentence_length"`
	LexicalComplexity LexicalComplexity `json:"lexical_complexity"`
	Overall           Overall           `json:"overall_score"`
}

// Analyze cleans the text, tokenizes it and computes every readability
// metric. Empty input yields zeroed metrics, tier "Unknown" and the
// neutral overall score rather than an error.
func (a *Analyzer) Analyze(text string) Report {
	cleaned := CleanText(text)
	sentences := Sentences(cleaned)
	words := Words(cleaned)

	flesch := a.flesch(sentences, words)
	sentence := a.sentenceLength(sentences, words)
	lexical := a.lexicalComplexity(words)

	return Report{
		Flesch:            flesch,
		SentenceLength:    sentence,
		LexicalComplexity: lexical,
		Overall:           a.overall(flesch, sentence, lexical, len(words) == 0),
	}
}

// CleanText strips HTML tags, collapses whitespace and removes
// characters that are neither alphanumeric nor sentence punctuation.
func CleanText(text string) string {
	text = htmlTag.ReplaceAllString(text, " ")
	text = disallowed.ReplaceAllString(text, "")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Sentences splits cleaned text on terminal punctuation runs.
func Sentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// Words splits cleaned text on whitespace, trimming punctuation from
// each token.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := strings.Trim(f, ".,!?"); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// flesch computes Flesch Reading Ease:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
func (a *Analyzer) flesch(sentences, words []string) Flesch {
	if len(sentences) == 0 || len(words) == 0 {
		return Flesch{Level: "Unknown", Explanation: "No text content to analyze"}
	}

	avgSentence := float64(len(words)) / float64(len(sentences))
	totalSyllables := 0
	for _, w := range words {
		totalSyllables += CountSyllables(w)
	}
	avgSyllables := float64(totalSyllables) / float64(len(words))

	score := 206.835 - 1.015*avgSentence - 84.6*avgSyllables
	level := Level(score)

	return Flesch{
		Score:               score,
		Level:               level,
		AvgSentenceLength:   avgSentence,
		AvgSyllablesPerWord: avgSyllables,
		IsOptimal:           score >= 60 && score <= 80,
		Explanation:         fmt.Sprintf("Flesch Reading Ease: %.1f (%s)", score, level),
	}
}

// Level maps a Flesch score to its readability tier. Tiers use
// inclusive lower bounds; a negative score reports Unknown.
func Level(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	case score >= 0:
		return "Very Difficult"
	default:
		return "Unknown"
	}
}

func (a *Analyzer) sentenceLength(sentences, words []string) SentenceLength {
	if len(sentences) == 0 {
		return SentenceLength{Explanation: "No sentences found"}
	}

	avg := float64(len(words)) / float64(len(sentences))
	optimal := 0
	for _, s := range sentences {
		if float64(len(Words(s))) <= a.cfg.IdealSentenceLength {
			optimal++
		}
	}
	pct := float64(optimal) / float64(len(sentences)) * 100

	r := SentenceLength{
		AvgLength:         avg,
		OptimalPercentage: pct,
		IsOptimal:         avg <= a.cfg.IdealSentenceLength,
	}
	switch {
	case avg <= a.cfg.IdealSentenceLength:
		r.Explanation = fmt.Sprintf("Optimal average sentence length (%.1f words)", avg)
	case avg <= a.cfg.MaxSentenceLength:
		r.Explanation = fmt.Sprintf("Acceptable average sentence length (%.1f words)", avg)
	default:
		r.Explanation = fmt.Sprintf("Long average sentence length (%.1f words) - may affect readability", avg)
	}
	return r
}

func (a *Analyzer) lexicalComplexity(words []string) LexicalComplexity {
	if len(words) == 0 {
		return LexicalComplexity{Explanation: "No words found"}
	}

	complexCount := 0
	for _, w := range words {
		if CountSyllables(w) >= a.cfg.ComplexSyllables {
			complexCount++
		}
	}
	pct := float64(complexCount) / float64(len(words)) * 100

	r := LexicalComplexity{
		ComplexWords:      complexCount,
		ComplexPercentage: pct,
		IsOptimal:         pct <= a.cfg.ComplexPercentMax,
	}
	if r.IsOptimal {
		r.Explanation = fmt.Sprintf("Good lexical complexity (%.1f%% complex words)", pct)
	} else {
		r.Explanation = fmt.Sprintf("High lexical complexity (%.1f%% complex words) - may affect readability", pct)
	}
	return r
}

// overall blends boolean-optimal indicators mapped to {100, 50} with
// weights flesch 0.4, sentence length 0.3, lexical complexity 0.3.
// Empty input reports the neutral score.
func (a *Analyzer) overall(flesch Flesch, sentence SentenceLength, lexical LexicalComplexity, empty bool) Overall {
	if empty {
		return Overall{
			Score:       NeutralScore,
			Components:  map[string]float64{},
			Explanation: "No text content to analyze",
		}
	}

	indicator := func(optimal bool) float64 {
		if optimal {
			return 100
		}
		return 50
	}
	components := map[string]float64{
		"flesch":          indicator(flesch.IsOptimal),
		"sentence_length": indicator(sentence.IsOptimal),
		"lexical":         indicator(lexical.IsOptimal),
	}
	score := components["flesch"]*0.4 + components["sentence_length"]*0.3 + components["lexical"]*0.3

	o := Overall{Score: score, Components: components}
	switch {
	case score >= 80:
		o.Explanation = "Excellent readability"
	case score >= 60:
		o.Explanation = "Good readability"
	case score >= 40:
		o.Explanation = "Fair readability"
	default:
		o.Explanation = "Poor readability"
	}
	return o
}
