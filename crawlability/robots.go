package crawlability

import (
	"fmt"
	"strconv"
	"strings"
)

// BotDirective is the resolved robots.txt state for one crawler
// identity. Identities with no matching user-agent line default to
// allowed with no directives.
type BotDirective struct {
	BotName         string   `json:"bot_name"`
	Company         string   `json:"company"`
	Purpose         string   `json:"purpose"`
	IsAllowed       bool     `json:"is_allowed"`
	DisallowedPaths []string `json:"disallowed_paths"`
	CrawlDelay      *int     `json:"crawl_delay"`
	UserAgentsFound []string `json:"user_agents_found"`
	Explanation     string   `json:"explanation"`
}

// BotAnalysis is the full robots.txt verdict across the registry.
type BotAnalysis struct {
	RobotsTxtExists bool                    `json:"robots_txt_exists"`
	BotDirectives   map[string]BotDirective `json:"bot_directives"`
	Summary         string                  `json:"summary"`
}

// directiveBlock is one robots.txt group: the user-agent values it
// names and the directives that follow them. Consecutive User-agent
// lines share a block.
type directiveBlock struct {
	agents     []string
	disallows  []string
	crawlDelay *int
}

// parseRobots splits robots.txt into directive blocks with a single
// line scan. Unknown directives are ignored.
func parseRobots(content string) []directiveBlock {
	var blocks []directiveBlock
	var current *directiveBlock
	inAgentRun := false

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		field, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		field = strings.ToLower(strings.TrimSpace(field))
		value = strings.TrimSpace(value)

		switch field {
		case "user-agent":
			if current == nil || !inAgentRun {
				blocks = append(blocks, directiveBlock{})
				current = &blocks[len(blocks)-1]
			}
			current.agents = append(current.agents, value)
			inAgentRun = true
		case "disallow":
			if current != nil && value != "" {
				current.disallows = append(current.disallows, value)
			}
			inAgentRun = false
		case "crawl-delay":
			if current != nil {
				if delay, err := strconv.Atoi(value); err == nil && delay >= 0 {
					current.crawlDelay = &delay
				}
			}
			inAgentRun = false
		default:
			inAgentRun = false
		}
	}
	return blocks
}

// AnalyzeRobots resolves the registry against robots.txt text. Alias
// matching is a case-insensitive substring search on the user-agent
// values; a matched alias inherits every directive in its block.
func AnalyzeRobots(content string, exists bool, registry []Crawler) BotAnalysis {
	if !exists {
		return BotAnalysis{
			BotDirectives: map[string]BotDirective{},
			Summary:       "No robots.txt found",
		}
	}

	blocks := parseRobots(content)
	directives := make(map[string]BotDirective, len(registry))
	for _, crawler := range registry {
		directives[crawler.Name] = resolveDirective(blocks, crawler)
	}

	return BotAnalysis{
		RobotsTxtExists: true,
		BotDirectives:   directives,
		Summary:         summarize(registry, directives),
	}
}

func resolveDirective(blocks []directiveBlock, crawler Crawler) BotDirective {
	d := BotDirective{
		BotName:         crawler.Name,
		Company:         crawler.Company,
		Purpose:         crawler.Purpose,
		IsAllowed:       true,
		DisallowedPaths: []string{},
	}

	for _, alias := range crawler.Aliases {
		matched := false
		for _, block := range blocks {
			if !blockMatches(block, alias) {
				continue
			}
			matched = true
			if len(block.disallows) > 0 {
				d.DisallowedPaths = append(d.DisallowedPaths, block.disallows...)
				d.IsAllowed = false
			}
			if block.crawlDelay != nil {
				d.CrawlDelay = block.crawlDelay
			}
		}
		if matched {
			d.UserAgentsFound = append(d.UserAgentsFound, alias)
		}
	}

	d.Explanation = explainDirective(d)
	return d
}

func blockMatches(block directiveBlock, alias string) bool {
	for _, agent := range block.agents {
		if strings.Contains(strings.ToLower(agent), strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

func explainDirective(d BotDirective) string {
	if len(d.UserAgentsFound) == 0 {
		return fmt.Sprintf("No specific directives found for %s bots", d.Company)
	}
	if !d.IsAllowed {
		return fmt.Sprintf("%s bots are blocked from: %s", d.Company, strings.Join(d.DisallowedPaths, ", "))
	}
	if d.CrawlDelay != nil {
		return fmt.Sprintf("%s bots are allowed with %ds crawl delay", d.Company, *d.CrawlDelay)
	}
	return fmt.Sprintf("%s bots are allowed to crawl", d.Company)
}

// summarize joins allowed and blocked organizations into one line,
// preserving registry order.
func summarize(registry []Crawler, directives map[string]BotDirective) string {
	var allowed, blocked []string
	for _, crawler := range registry {
		if directives[crawler.Name].IsAllowed {
			allowed = append(allowed, crawler.Company)
		} else {
			blocked = append(blocked, crawler.Company)
		}
	}

	var parts []string
	if len(allowed) > 0 {
		parts = append(parts, "Allowed: "+strings.Join(allowed, ", "))
	}
	if len(blocked) > 0 {
		parts = append(parts, "Blocked: "+strings.Join(blocked, ", "))
	}
	if len(parts) == 0 {
		return "No LLM bot directives found"
	}
	return strings.Join(parts, " | ")
}
