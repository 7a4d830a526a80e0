package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/config"
	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/tuning"
)

var tuneWeightsCmd = &cobra.Command{
	Use:   "tune-weights",
	Short: "Propose tuned component weights from stored feedback",
	Long:  "Analyze stored feedback for a role and propose a shifted weight configuration when enough records flag a component as inaccurate. With --activate, the proposal immediately supersedes the current active configuration.",
	RunE:  runTuneWeights,
}

var (
	tuneRole        string
	tuneDatabaseURL string
	tuneConfigFile  string
	tuneMinFeedback int
	tuneActivate    bool
	tuneVerbose     bool
)

func init() {
	tuneWeightsCmd.Flags().StringVar(&tuneRole, "role", "", "Job role to tune weights for (required)")
	tuneWeightsCmd.Flags().StringVar(&tuneDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	tuneWeightsCmd.Flags().StringVarP(&tuneConfigFile, "config", "c", "", "Path to JSON config file")
	tuneWeightsCmd.Flags().IntVar(&tuneMinFeedback, "min-feedback", 10, "Feedback records required before tuning")
	tuneWeightsCmd.Flags().BoolVar(&tuneActivate, "activate", false, "Activate the proposed configuration")
	tuneWeightsCmd.Flags().BoolVarP(&tuneVerbose, "verbose", "v", false, "Print a formatted result instead of JSON")

	rootCmd.AddCommand(tuneWeightsCmd)
}

func runTuneWeights(cmd *cobra.Command, _ []string) error {
	if tuneConfigFile != "" {
		fileCfg, err := config.LoadConfig(tuneConfigFile)
		if err != nil {
			return err
		}
		if tuneRole == "" {
			tuneRole = fileCfg.Role
		}
		if tuneDatabaseURL == "" {
			tuneDatabaseURL = fileCfg.DatabaseURL
		}
		if fileCfg.MinFeedbackCount > 0 && !cmd.Flags().Changed("min-feedback") {
			tuneMinFeedback = fileCfg.MinFeedbackCount
		}
	}
	if tuneRole == "" {
		return fmt.Errorf("role is required (use --role)")
	}

	ctx := context.Background()
	database, err := connectDB(ctx, resolveDatabaseURL(tuneDatabaseURL))
	if err != nil {
		return err
	}
	defer database.Close()

	tuner := tuning.New(database, database)
	proposal, err := tuner.UpdateWeightsFromFeedback(ctx, tuneRole, tuneMinFeedback)
	if err != nil {
		return fmt.Errorf("failed to tune weights: %w", err)
	}
	if proposal == nil {
		_, _ = fmt.Fprintf(os.Stdout, "Not enough feedback to tune weights for role %q (need %d records with flagged components)\n",
			tuneRole, tuneMinFeedback)
		return nil
	}

	if tuneActivate {
		if err := tuner.ActivateWeightConfiguration(ctx, proposal.ID); err != nil {
			return fmt.Errorf("failed to activate configuration: %w", err)
		}
		activated, err := database.Get(ctx, proposal.ID)
		if err != nil {
			return fmt.Errorf("failed to reload configuration: %w", err)
		}
		proposal = activated
	}

	if tuneVerbose {
		observability.NewPrinter(os.Stdout).PrintWeightConfiguration(proposal)
		return nil
	}
	return writeJSON(proposal, "")
}
