package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/keywords"
)

var checkKeywordsCmd = &cobra.Command{
	Use:   "check-keywords",
	Short: "Check a resume for a list of required keywords",
	Long:  "Report what percentage of the required keywords appear in the resume as whole words, and optionally a keyword density score.",
	RunE:  runCheckKeywords,
}

var (
	checkResumeFile  string
	checkKeywordList string
	checkOutputFile  string
	checkDensity     bool
)

func init() {
	checkKeywordsCmd.Flags().StringVarP(&checkResumeFile, "resume", "r", "", "Path to resume text file (required)")
	checkKeywordsCmd.Flags().StringVarP(&checkKeywordList, "keywords", "k", "", "Comma-separated required keywords (required)")
	checkKeywordsCmd.Flags().StringVarP(&checkOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	checkKeywordsCmd.Flags().BoolVar(&checkDensity, "density", false, "Also score keyword density across the text")

	rootCmd.AddCommand(checkKeywordsCmd)
}

type checkOutput struct {
	CoveragePercent int      `json:"coverage_percent"`
	Keywords        []string `json:"keywords"`
	DensityScore    *float64 `json:"density_score,omitempty"`
}

func runCheckKeywords(_ *cobra.Command, _ []string) error {
	resumeText, err := readTextFile(checkResumeFile, "resume")
	if err != nil {
		return err
	}

	var required []string
	for _, keyword := range strings.Split(checkKeywordList, ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			required = append(required, keyword)
		}
	}
	if len(required) == 0 {
		return fmt.Errorf("at least one keyword is required (use --keywords)")
	}

	out := checkOutput{
		CoveragePercent: keywords.QuickCheck(resumeText, required),
		Keywords:        required,
	}
	if checkDensity {
		density := keywords.Density(resumeText, required)
		out.DensityScore = &density
	}

	return writeJSON(out, checkOutputFile)
}
