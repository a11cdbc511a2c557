// Package cmd wires the CLI: the HTTP API server and the one-shot
// analyze command.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/geosearch/backend/logging"
)

var (
	dataDir  string
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "geosearch",
	Short: "SEO, readability and AI-crawlability analyzer",
	Long: `GeoSearch analyzes web pages for search engine optimization,
text readability and crawlability by AI/LLM bots.

Run "geosearch serve" to expose the analysis as an HTTP API, or
"geosearch analyze <url>" for a one-shot report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadEnv()
		if lvl := os.Getenv("LOG_LEVEL"); lvl != "" && !cmd.Flags().Changed("log-level") {
			logLevel = lvl
		}
		if dir := os.Getenv("DATA_DIR"); dir != "" && !cmd.Flags().Changed("data-dir") {
			dataDir = dir
		}
		return logging.Init(logLevel, logFile)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Directory for persisted statistics")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this file")
}

// loadEnv loads .env.development for local development, falling back
// to .env, then to the process environment.
func loadEnv() {
	if err := godotenv.Load(".env.development"); err != nil {
		if err := godotenv.Load(); err != nil {
			logrus.Debug("no .env file found, using environment variables")
		}
	}
}
