package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/engine"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/scoring"
	"github.com/jonathan/resume-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume, optionally against a job description",
	Long:  "Score a resume on weighted components. With a job description, runs the 4-axis scorer with JD keyword matching; --basic switches to the 3-axis structure/content/tailoring scorer.",
	RunE:  runScore,
}

var (
	scoreResumeFile  string
	scoreJobFile     string
	scoreRole        string
	scoreOutputFile  string
	scoreConfigFile  string
	scoreAPIKey      string
	scoreDatabaseURL string
	scoreBasic       bool
	scoreAI          bool
	scoreAdaptive    bool
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job description text or HTML file")
	scoreCmd.Flags().StringVar(&scoreRole, "role", "software_engineer", "Target job role for weight selection")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreDatabaseURL, "db-url", "", "Database URL for adaptive weights (overrides DATABASE_URL env var)")
	scoreCmd.Flags().BoolVar(&scoreBasic, "basic", false, "Use the 3-axis scorer instead of the 4-axis PRO scorer")
	scoreCmd.Flags().BoolVar(&scoreAI, "ai", false, "Enable AI suggestions and summary")
	scoreCmd.Flags().BoolVar(&scoreAdaptive, "adaptive", false, "Use feedback-tuned weights when an active configuration exists")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted result instead of JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume: scoreResumeFile,
		Job:    scoreJobFile,
		Role:   scoreRole,
		APIKey: scoreAPIKey,
	}
	if scoreConfigFile != "" {
		fileCfg, err := config.LoadConfig(scoreConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	scoreVerbose = scoreVerbose || cfg.Verbose

	resumeText, err := readTextFile(cfg.Resume, "resume")
	if err != nil {
		return err
	}
	jobText := ""
	if cfg.Job != "" {
		jobText, err = readTextFile(cfg.Job, "job description")
		if err != nil {
			return err
		}
	}

	ctx := context.Background()

	if scoreBasic {
		result, err := engine.New(nil, nil).CalculateScore(ctx, resumeText, jobText)
		if err != nil {
			return fmt.Errorf("failed to score resume: %w", err)
		}
		return emitResult(result)
	}

	customWeights := types.WeightProfile(cfg.CustomWeights)
	if cfg.WeightVariance > 0 {
		// Exploration mode: perturb the base profile so feedback is collected
		// across slightly different weightings.
		base := customWeights
		if len(base) == 0 {
			base = scoring.RoleWeights(cfg.Role)
		}
		customWeights = scoring.ApplyAdaptiveWeights(base, cfg.WeightVariance)
	}

	databaseURL := ""
	if scoreAdaptive {
		databaseURL = resolveDatabaseURL(scoreDatabaseURL)
		if databaseURL == "" {
			databaseURL = cfg.DatabaseURL
		}
	}
	eng, cleanup, err := buildEngine(ctx, resolveAPIKey(cfg.APIKey), databaseURL, scoreAI || cfg.AIInsights)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := eng.CalculateProScore(ctx, resumeText, types.ScoreOptions{
		JobRole:            cfg.Role,
		JobDescription:     jobText,
		IncludeAIInsights:  scoreAI || cfg.AIInsights,
		UseAdaptiveWeights: scoreAdaptive,
		CustomWeights:      customWeights,
	})
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}
	return emitResult(result)
}

func emitResult(result *types.ScoringResult) error {
	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoringResult(result)
		printer.PrintJDMatch(result.JDMatch)
		if scoreOutputFile == "" {
			return nil
		}
	}
	return writeJSON(result, scoreOutputFile)
}
