package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-scorer/internal/db"
	"github.com/jonathan/resume-scorer/internal/engine"
	"github.com/jonathan/resume-scorer/internal/llm"
	"github.com/jonathan/resume-scorer/internal/suggestions"
	"github.com/jonathan/resume-scorer/internal/tuning"
)

// readTextFile loads a resume or job description from disk.
func readTextFile(path, label string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%s file is required", label)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s file: %w", label, err)
	}
	return string(data), nil
}

// writeJSON marshals v with indentation to the given path, or stdout when
// the path is empty.
func writeJSON(v any, outPath string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if outPath == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", data)
		return nil
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// resolveAPIKey prefers the flag value over the GEMINI_API_KEY env var.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("GEMINI_API_KEY")
}

// resolveDatabaseURL prefers the flag value over the DATABASE_URL env var.
func resolveDatabaseURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}

// connectDB connects to PostgreSQL and ensures the schema exists.
func connectDB(ctx context.Context, databaseURL string) (*db.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL environment variable or use --db-url flag)")
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return database, nil
}

// buildEngine assembles an Engine for a scoring command. The returned cleanup
// closes whatever resources were opened and is safe to call unconditionally.
func buildEngine(ctx context.Context, apiKey, databaseURL string, withAI bool) (*engine.Engine, func(), error) {
	cleanup := func() {}

	var tuner *tuning.Tuner
	if databaseURL != "" {
		database, err := connectDB(ctx, databaseURL)
		if err != nil {
			return nil, cleanup, err
		}
		tuner = tuning.New(database, database)
		cleanup = database.Close
	}

	var ai *suggestions.AIStrategy
	if withAI {
		if apiKey == "" {
			cleanup()
			return nil, func() {}, fmt.Errorf("API key is required for AI insights (set GEMINI_API_KEY environment variable or use --api-key flag)")
		}
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("failed to create LLM client: %w", err)
		}
		ai = suggestions.NewAIStrategy(client, suggestions.DefaultAITimeout)
		closeDB := cleanup
		cleanup = func() {
			_ = client.Close()
			closeDB()
		}
	}

	return engine.New(tuner, ai), cleanup, nil
}
