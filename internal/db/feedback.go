package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-scorer/internal/types"
)

// Append inserts a feedback record. Records are write-once; there is no
// update path.
func (db *DB) Append(ctx context.Context, record types.FeedbackRecord) error {
	var componentsJSON []byte
	if record.ComponentScores != nil {
		data, err := json.Marshal(record.ComponentScores)
		if err != nil {
			return fmt.Errorf("failed to marshal component scores: %w", err)
		}
		componentsJSON = data
	}

	_, err := db.pool.Exec(ctx,
		`INSERT INTO scoring_feedback
			(id, resume_id, job_role, score, component_scores, rating, helpful,
			 comment, inaccurate_component, expected_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		record.ID, record.ResumeID, record.JobRole, record.Score, componentsJSON,
		record.Rating, record.Helpful, record.Comment, record.InaccurateComponent,
		record.ExpectedScore, record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// Count returns the number of feedback records for a role (empty role: all).
func (db *DB) Count(ctx context.Context, role string) (int, error) {
	query := `SELECT COUNT(*) FROM scoring_feedback`
	args := []any{}
	if role != "" {
		query += ` WHERE job_role = $1`
		args = append(args, role)
	}

	var count int
	if err := db.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}

// List returns feedback records created within [start, end], oldest first.
// Zero times leave that bound open; empty role matches all roles.
func (db *DB) List(ctx context.Context, role string, start, end time.Time) ([]types.FeedbackRecord, error) {
	query := `SELECT id, resume_id, job_role, score, component_scores, rating,
			helpful, comment, inaccurate_component, expected_score, created_at
		FROM scoring_feedback WHERE TRUE`
	args := []any{}
	if role != "" {
		args = append(args, role)
		query += fmt.Sprintf(` AND job_role = $%d`, len(args))
	}
	if !start.IsZero() {
		args = append(args, start)
		query += fmt.Sprintf(` AND created_at >= $%d`, len(args))
	}
	if !end.IsZero() {
		args = append(args, end)
		query += fmt.Sprintf(` AND created_at <= $%d`, len(args))
	}
	query += ` ORDER BY created_at ASC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	defer rows.Close()

	var records []types.FeedbackRecord
	for rows.Next() {
		var record types.FeedbackRecord
		var componentsJSON []byte
		if err := rows.Scan(&record.ID, &record.ResumeID, &record.JobRole,
			&record.Score, &componentsJSON, &record.Rating, &record.Helpful,
			&record.Comment, &record.InaccurateComponent, &record.ExpectedScore,
			&record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		if componentsJSON != nil {
			_ = json.Unmarshal(componentsJSON, &record.ComponentScores)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate feedback rows: %w", err)
	}
	return records, nil
}
