package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/engine"
	"github.com/jonathan/resume-scorer/internal/observability"
)

var analyzeMatchCmd = &cobra.Command{
	Use:   "analyze-match",
	Short: "Analyze how well a resume matches a job description",
	Long:  "Compare resume keywords against job description keywords and report a 0-100 match score with missing, underrepresented and irrelevant keyword lists.",
	RunE:  runAnalyzeMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchOutputFile string
	matchVerbose    bool
)

func init() {
	analyzeMatchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeMatchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description text or HTML file (required)")
	analyzeMatchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeMatchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a formatted result instead of JSON")

	rootCmd.AddCommand(analyzeMatchCmd)
}

func runAnalyzeMatch(_ *cobra.Command, _ []string) error {
	resumeText, err := readTextFile(matchResumeFile, "resume")
	if err != nil {
		return err
	}
	jobText, err := readTextFile(matchJobFile, "job description")
	if err != nil {
		return err
	}

	eng := engine.New(nil, nil)
	match, err := eng.AnalyzeJDMatch(context.Background(), resumeText, jobText)
	if err != nil {
		return fmt.Errorf("failed to analyze match: %w", err)
	}

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintJDMatch(match)
		if matchOutputFile == "" {
			return nil
		}
	}
	return writeJSON(match, matchOutputFile)
}
