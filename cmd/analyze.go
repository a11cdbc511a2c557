package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/geosearch/backend/analyzer"
)

var (
	analyzeOutput string
	analyzeJSON   bool
	analyzeFile   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyze one page and print the report",
	Long: `Fetches the page together with its robots.txt and sitemap.xml,
runs the full analysis and prints a console summary. Use --json for
the raw report, or --file to analyze a local HTML document offline
(the URL argument is then used as the page's canonical address).`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Write the JSON report to this file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw JSON report instead of the summary")
	analyzeCmd.Flags().StringVar(&analyzeFile, "file", "", "Analyze this local HTML file instead of fetching the URL")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	pageURL := args[0]

	a, err := analyzer.New(dataDir)
	if err != nil {
		return err
	}
	defer a.Shutdown()

	var report *analyzer.Report
	if analyzeFile != "" {
		html, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", analyzeFile, err)
		}
		report, err = a.AnalyzeHTML(string(html), pageURL)
		if err != nil {
			return err
		}
	} else {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		report, err = a.AnalyzeWithContext(ctx, pageURL)
		if err != nil {
			return err
		}
	}

	if analyzeOutput != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(analyzeOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", analyzeOutput, err)
		}
		fmt.Printf("Report written to %s\n", analyzeOutput)
		return nil
	}

	if analyzeJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	renderReport(report)
	return nil
}
