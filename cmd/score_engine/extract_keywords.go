package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/keywords"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/types"
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract the top TF-IDF keywords from a text file",
	Long:  "Rank the terms of a resume or job description by TF-IDF score. With --phrases, also report recurring 2-3 word phrases.",
	RunE:  runExtractKeywords,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractTopN       int
	extractPhrases    bool
	extractMinFreq    int
	extractVerbose    bool
)

func init() {
	extractKeywordsCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to input text file (required)")
	extractKeywordsCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	extractKeywordsCmd.Flags().IntVarP(&extractTopN, "top", "n", keywords.DefaultTopN, "Number of keywords to return")
	extractKeywordsCmd.Flags().BoolVar(&extractPhrases, "phrases", false, "Also extract recurring multi-word phrases")
	extractKeywordsCmd.Flags().IntVar(&extractMinFreq, "min-freq", 2, "Minimum phrase frequency (with --phrases)")
	extractKeywordsCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted result instead of JSON")

	rootCmd.AddCommand(extractKeywordsCmd)
}

type extractOutput struct {
	Keywords []types.KeywordScore    `json:"keywords"`
	Phrases  []types.PhraseFrequency `json:"phrases,omitempty"`
}

func runExtractKeywords(_ *cobra.Command, _ []string) error {
	text, err := readTextFile(extractInputFile, "input")
	if err != nil {
		return err
	}

	out := extractOutput{Keywords: keywords.ExtractTFIDF(text, extractTopN)}
	if extractPhrases {
		out.Phrases = keywords.ExtractPhrases(text, extractMinFreq)
	}

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintKeywords(out.Keywords)
		if extractOutputFile == "" {
			return nil
		}
	}
	return writeJSON(out, extractOutputFile)
}
