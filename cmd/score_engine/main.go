// Package main provides the entry point for the resume scoring CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "score_engine",
	Short: "Resume scoring engine",
	Long:  "Score resumes against job descriptions with TF-IDF keyword matching, multi-dimensional component scoring and feedback-driven weight tuning.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
