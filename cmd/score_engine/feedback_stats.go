package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/observability"
	"github.com/jonathan/resume-scorer/internal/tuning"
)

var feedbackStatsCmd = &cobra.Command{
	Use:   "feedback-stats",
	Short: "Show aggregate feedback statistics",
	Long:  "Aggregate stored feedback over a time window: record count, average rating, helpful rate, flagged components and the mean gap between expected and actual scores.",
	RunE:  runFeedbackStats,
}

var (
	statsDatabaseURL string
	statsDays        int
	statsVerbose     bool
)

func init() {
	feedbackStatsCmd.Flags().StringVar(&statsDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	feedbackStatsCmd.Flags().IntVar(&statsDays, "days", 30, "Window size in days, ending now")
	feedbackStatsCmd.Flags().BoolVarP(&statsVerbose, "verbose", "v", false, "Print a formatted result instead of JSON")

	rootCmd.AddCommand(feedbackStatsCmd)
}

func runFeedbackStats(_ *cobra.Command, _ []string) error {
	if statsDays <= 0 {
		return fmt.Errorf("days must be positive")
	}

	ctx := context.Background()
	database, err := connectDB(ctx, resolveDatabaseURL(statsDatabaseURL))
	if err != nil {
		return err
	}
	defer database.Close()

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -statsDays)

	tuner := tuning.New(database, database)
	analytics, err := tuner.FeedbackAnalytics(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to aggregate feedback: %w", err)
	}

	if statsVerbose {
		observability.NewPrinter(os.Stdout).PrintFeedbackAnalytics(analytics)
		return nil
	}
	return writeJSON(analytics, "")
}
