package crawlability

// Crawler is one known crawler identity: the user-agent aliases it
// announces in robots.txt, the organization that runs it and its
// stated purpose.
type Crawler struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	Company string   `json:"company"`
	Purpose string   `json:"purpose"`
}

// DefaultRegistry returns the known AI/LLM crawler identities checked
// against robots.txt.
func DefaultRegistry() []Crawler {
	return []Crawler{
		{
			Name:    "GPTBot",
			Aliases: []string{"GPTBot"},
			Company: "OpenAI",
			Purpose: "Crawls to improve OpenAI models (e.g., ChatGPT)",
		},
		{
			Name:    "ClaudeBot",
			Aliases: []string{"ClaudeBot", "anthropic-ai"},
			Company: "Anthropic",
			Purpose: "Crawls for Claude model training",
		},
		{
			Name:    "Google-Extended",
			Aliases: []string{"Google-Extended"},
			Company: "Google",
			Purpose: "Controls use of content in Google's AI models (SGE, Gemini)",
		},
		{
			Name:    "CCBot",
			Aliases: []string{"CCBot"},
			Company: "Common Crawl",
			Purpose: "Feeds large public datasets (used by many LLMs)",
		},
		{
			Name:    "PerplexityBot",
			Aliases: []string{"PerplexityBot"},
			Company: "Perplexity AI",
			Purpose: "Real-time AI search engine crawler",
		},
		{
			Name:    "Amazonbot",
			Aliases: []string{"Amazonbot"},
			Company: "Amazon",
			Purpose: "May power Alexa and Amazon's AI training datasets",
		},
		{
			Name:    "YouBot",
			Aliases: []string{"YouBot"},
			Company: "You.com",
			Purpose: "AI-powered search engine with LLM-like summaries",
		},
		{
			Name:    "Neevabot",
			Aliases: []string{"Neevabot"},
			Company: "NeevaAI",
			Purpose: "Former AI search engine",
		},
		{
			Name:    "MetaBot",
			Aliases: []string{"facebookexternalhit", "MetaBot"},
			Company: "Meta",
			Purpose: "Meta's AI and social graph crawling",
		},
	}
}
