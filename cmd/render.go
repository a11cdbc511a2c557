package cmd

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/geosearch/backend/analyzer"
	"github.com/geosearch/backend/metrics"
)

// reportStyles holds the styles used by the console summary.
type reportStyles struct {
	header lipgloss.Style
	label  lipgloss.Style
	good   lipgloss.Style
	fair   lipgloss.Style
	poor   lipgloss.Style
	dim    lipgloss.Style
}

func newReportStyles() reportStyles {
	return reportStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:  lipgloss.NewStyle().Bold(true),
		good:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		fair:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		poor:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// scoreStyle picks the color for a 0-100 score.
func (s reportStyles) scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 80:
		return s.good
	case score >= 50:
		return s.fair
	default:
		return s.poor
	}
}

func renderReport(report *analyzer.Report) {
	styles := newReportStyles()

	fmt.Println()
	fmt.Println(styles.header.Render("GeoSearch analysis: " + report.URL))
	fmt.Println()

	overall := report.OverallScore.Score
	fmt.Printf("%s %s\n", styles.label.Render("Overall SEO score:"),
		styles.scoreStyle(overall).Render(fmt.Sprintf("%.1f / 100", overall)))

	names := make([]string, 0, len(report.OverallScore.Breakdown))
	for name := range report.OverallScore.Breakdown {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		score := report.OverallScore.Breakdown[name]
		fmt.Printf("  %-22s %s\n", name,
			styles.scoreStyle(score).Render(fmt.Sprintf("%6.1f", score)))
	}

	fmt.Println()
	fleschScore := report.Readability.Flesch.Score
	fmt.Printf("%s %s (%s)\n", styles.label.Render("Readability:"),
		styles.scoreStyle(report.Readability.Overall.Score).Render(fmt.Sprintf("%.1f / 100", report.Readability.Overall.Score)),
		report.Readability.Flesch.Level)
	fmt.Printf("  %s\n", styles.dim.Render(fmt.Sprintf("Flesch Reading Ease %.1f, %.1f words per sentence",
		fleschScore, report.Readability.SentenceLength.AvgLength)))

	fmt.Println()
	crawl := report.Crawlability.Overall
	fmt.Printf("%s %s\n", styles.label.Render("Crawlability:"),
		styles.scoreStyle(crawl.Score).Render(fmt.Sprintf("%.1f / 100", crawl.Score)))
	fmt.Printf("  %s\n", styles.dim.Render(crawl.Explanation))
	fmt.Printf("  %s\n", styles.dim.Render(report.Crawlability.BotAnalysis.Summary))

	fmt.Println()
	fmt.Println(styles.label.Render("AI readability:"))
	printCheck(styles, "Title length", report.AIReadability.TitleTagLength.Optimal)
	printCheck(styles, "Meta description", report.AIReadability.MetaDescriptionLength.Optimal)
	printCheck(styles, "Single H1", report.AIReadability.H1TagPresence.Optimal)
	printCheck(styles, "Content length", report.AIReadability.ContentWordCount.Optimal)
	printCheck(styles, "Semantic HTML", report.AIReadability.SemanticElementUsage.Optimal)
	printCheck(styles, "Heading hierarchy", report.AIReadability.HeadingHierarchyOrder.Optimal)

	if len(report.Recommendations) > 0 {
		fmt.Println()
		fmt.Println(styles.label.Render("Recommendations:"))
		for _, rec := range report.Recommendations {
			fmt.Printf("  %s %s\n", priorityBadge(styles, rec.Priority), rec.Message)
		}
	}
	fmt.Println()
}

func printCheck(styles reportStyles, label string, ok bool) {
	mark := styles.good.Render("ok")
	if !ok {
		mark = styles.poor.Render("!!")
	}
	fmt.Printf("  [%s] %s\n", mark, label)
}

func priorityBadge(styles reportStyles, p metrics.Priority) string {
	switch p {
	case metrics.PriorityHigh:
		return styles.poor.Render("[high]")
	case metrics.PriorityMedium:
		return styles.fair.Render("[medium]")
	default:
		return styles.dim.Render("[low]")
	}
}
