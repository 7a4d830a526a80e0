package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scorer/internal/tuning"
	"github.com/jonathan/resume-scorer/internal/types"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record user feedback on a scoring result",
	Long:  "Store a feedback record for a scored resume: a 1-5 rating, whether the result was helpful, and optionally the component the user considered inaccurate.",
	RunE:  runFeedback,
}

var (
	feedbackDatabaseURL string
	feedbackResumeID    string
	feedbackRole        string
	feedbackScore       float64
	feedbackRating      int
	feedbackHelpful     bool
	feedbackComment     string
	feedbackComponent   string
	feedbackExpected    int
)

func init() {
	feedbackCmd.Flags().StringVar(&feedbackDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	feedbackCmd.Flags().StringVar(&feedbackResumeID, "resume-id", "", "Identifier of the scored resume (required)")
	feedbackCmd.Flags().StringVar(&feedbackRole, "role", "", "Job role the resume was scored for")
	feedbackCmd.Flags().Float64Var(&feedbackScore, "score", 0, "Overall score the engine produced")
	feedbackCmd.Flags().IntVar(&feedbackRating, "rating", 0, "User rating of the result, 1-5 (required)")
	feedbackCmd.Flags().BoolVar(&feedbackHelpful, "helpful", false, "Whether the result was helpful")
	feedbackCmd.Flags().StringVar(&feedbackComment, "comment", "", "Free-form comment")
	feedbackCmd.Flags().StringVar(&feedbackComponent, "inaccurate-component", "", "Component the user considered inaccurate")
	feedbackCmd.Flags().IntVar(&feedbackExpected, "expected-score", -1, "Score the user expected (omit for none)")

	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := connectDB(ctx, resolveDatabaseURL(feedbackDatabaseURL))
	if err != nil {
		return err
	}
	defer database.Close()

	record := types.FeedbackRecord{
		ResumeID:            feedbackResumeID,
		JobRole:             feedbackRole,
		Score:               feedbackScore,
		Rating:              feedbackRating,
		Helpful:             feedbackHelpful,
		Comment:             feedbackComment,
		InaccurateComponent: feedbackComponent,
	}
	if feedbackExpected >= 0 {
		record.ExpectedScore = &feedbackExpected
	}

	tuner := tuning.New(database, database)
	if err := tuner.StoreFeedback(ctx, record); err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Feedback recorded for resume %s\n", feedbackResumeID)
	return nil
}
