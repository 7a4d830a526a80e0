package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-scorer/internal/tuning"
	"github.com/jonathan/resume-scorer/internal/types"
)

// Save inserts a weight configuration or updates an existing one by ID.
func (db *DB) Save(ctx context.Context, config types.WeightConfiguration) error {
	weightsJSON, err := json.Marshal(config.Weights)
	if err != nil {
		return fmt.Errorf("failed to marshal weights: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO weight_configurations (id, role, weights, state, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET weights = $3, state = $4`,
		config.ID, config.Role, weightsJSON, config.State, config.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save weight configuration: %w", err)
	}
	return nil
}

// Get returns the configuration with the given ID.
func (db *DB) Get(ctx context.Context, id uuid.UUID) (*types.WeightConfiguration, error) {
	config, err := db.scanConfig(ctx,
		`SELECT id, role, weights, state, created_at
		 FROM weight_configurations WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, tuning.ErrConfigNotFound
	}
	return config, nil
}

// Active returns the active configuration for a role, or nil when none exists.
func (db *DB) Active(ctx context.Context, role string) (*types.WeightConfiguration, error) {
	return db.scanConfig(ctx,
		`SELECT id, role, weights, state, created_at
		 FROM weight_configurations WHERE role = $1 AND state = 'active'`, role)
}

// Activate flips the configuration to active and the previously active
// configuration for the same role to superseded, in a single transaction, so
// readers never observe zero or two active configurations.
func (db *DB) Activate(ctx context.Context, id uuid.UUID) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var role string
	var state types.ConfigState
	err = tx.QueryRow(ctx,
		`SELECT role, state FROM weight_configurations WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&role, &state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return tuning.ErrConfigNotFound
		}
		return fmt.Errorf("failed to load configuration for activation: %w", err)
	}
	if state == types.StateActive {
		return tx.Commit(ctx)
	}

	_, err = tx.Exec(ctx,
		`UPDATE weight_configurations SET state = 'superseded'
		 WHERE role = $1 AND state = 'active'`, role)
	if err != nil {
		return fmt.Errorf("failed to supersede active configuration: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE weight_configurations SET state = 'active' WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to activate configuration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}
	return nil
}

// History returns all configurations for a role, newest first.
func (db *DB) History(ctx context.Context, role string) ([]types.WeightConfiguration, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, role, weights, state, created_at
		 FROM weight_configurations WHERE role = $1
		 ORDER BY created_at DESC`, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight configurations: %w", err)
	}
	defer rows.Close()

	var configs []types.WeightConfiguration
	for rows.Next() {
		config, err := scanConfigRow(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, *config)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weight configurations: %w", err)
	}
	return configs, nil
}

func (db *DB) scanConfig(ctx context.Context, query string, args ...any) (*types.WeightConfiguration, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query weight configuration: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read weight configuration: %w", err)
		}
		return nil, nil
	}
	return scanConfigRow(rows)
}

func scanConfigRow(row pgx.Rows) (*types.WeightConfiguration, error) {
	var config types.WeightConfiguration
	var weightsJSON []byte
	if err := row.Scan(&config.ID, &config.Role, &weightsJSON, &config.State,
		&config.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to scan weight configuration: %w", err)
	}
	if err := json.Unmarshal(weightsJSON, &config.Weights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights: %w", err)
	}
	return &config, nil
}
