// Package tuning implements the adaptive weight tuner: it aggregates user
// feedback on scoring results and derives revised weight configurations that
// the scorer picks up on its next run.
package tuning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/types"
)

// FeedbackStore persists immutable feedback records. Implementations must be
// append-only; records are never mutated or deleted.
type FeedbackStore interface {
	// Append stores a new feedback record.
	Append(ctx context.Context, record types.FeedbackRecord) error
	// Count returns the number of stored records, optionally filtered by role
	// (empty role counts everything).
	Count(ctx context.Context, role string) (int, error)
	// List returns records created within [start, end], oldest first. Zero
	// times leave that bound open. Empty role matches all roles.
	List(ctx context.Context, role string, start, end time.Time) ([]types.FeedbackRecord, error)
}

// WeightConfigStore persists weight configurations across their lifecycle.
// Superseded configurations are kept for audit and rollback.
type WeightConfigStore interface {
	// Save inserts a configuration or updates an existing one by ID.
	Save(ctx context.Context, config types.WeightConfiguration) error
	// Get returns the configuration with the given ID, or ErrConfigNotFound.
	Get(ctx context.Context, id uuid.UUID) (*types.WeightConfiguration, error)
	// Active returns the active configuration for a role (empty role means the
	// global default), or nil when none has been activated.
	Active(ctx context.Context, role string) (*types.WeightConfiguration, error)
	// Activate atomically marks the configuration active and the previously
	// active configuration for the same role superseded. Exactly one
	// configuration per role is active at any instant the store is read.
	Activate(ctx context.Context, id uuid.UUID) error
	// History returns all configurations for a role, newest first.
	History(ctx context.Context, role string) ([]types.WeightConfiguration, error)
}
