package analyzer

import (
	"time"

	"github.com/geosearch/backend/airead"
	"github.com/geosearch/backend/crawlability"
	"github.com/geosearch/backend/metrics"
	"github.com/geosearch/backend/readability"
)

// Report is the complete analysis of one page: the scored SEO bundles
// plus the readability, crawlability and AI-readability sections.
type Report struct {
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"fetched_at"`

	metrics.Result

	Readability   readability.Report  `json:"readability"`
	Crawlability  crawlability.Report `json:"crawlability"`
	AIReadability airead.Report       `json:"ai_readability"`
}
