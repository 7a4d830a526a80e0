package tuning

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-scorer/internal/types"
)

// MemoryStore is an in-memory FeedbackStore and WeightConfigStore, used by
// tests and single-process CLI runs. Activation holds one lock, so the
// one-active-per-role invariant holds for concurrent readers.
type MemoryStore struct {
	mu       sync.RWMutex
	feedback []types.FeedbackRecord
	configs  map[uuid.UUID]types.WeightConfiguration
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		configs: make(map[uuid.UUID]types.WeightConfiguration),
	}
}

// Append stores a feedback record.
func (s *MemoryStore) Append(_ context.Context, record types.FeedbackRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, record)
	return nil
}

// Count returns the number of stored records for a role (empty role: all).
func (s *MemoryStore) Count(_ context.Context, role string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if role == "" {
		return len(s.feedback), nil
	}
	count := 0
	for _, record := range s.feedback {
		if record.JobRole == role {
			count++
		}
	}
	return count, nil
}

// List returns records in [start, end], oldest first.
func (s *MemoryStore) List(_ context.Context, role string, start, end time.Time) ([]types.FeedbackRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.FeedbackRecord, 0, len(s.feedback))
	for _, record := range s.feedback {
		if role != "" && record.JobRole != role {
			continue
		}
		if !start.IsZero() && record.CreatedAt.Before(start) {
			continue
		}
		if !end.IsZero() && record.CreatedAt.After(end) {
			continue
		}
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Save inserts or updates a configuration by ID.
func (s *MemoryStore) Save(_ context.Context, config types.WeightConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	config.Weights = config.Weights.Clone()
	s.configs[config.ID] = config
	return nil
}

// Get returns the configuration with the given ID.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*types.WeightConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	config, ok := s.configs[id]
	if !ok {
		return nil, ErrConfigNotFound
	}
	config.Weights = config.Weights.Clone()
	return &config, nil
}

// Active returns the active configuration for a role, or nil when none.
func (s *MemoryStore) Active(_ context.Context, role string) (*types.WeightConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, config := range s.configs {
		if config.Role == role && config.State == types.StateActive {
			config.Weights = config.Weights.Clone()
			return &config, nil
		}
	}
	return nil, nil
}

// Activate marks the configuration active and supersedes the previous active
// configuration for the same role in one critical section.
func (s *MemoryStore) Activate(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	config, ok := s.configs[id]
	if !ok {
		return ErrConfigNotFound
	}
	if config.State == types.StateActive {
		return nil
	}

	for otherID, other := range s.configs {
		if other.Role == config.Role && other.State == types.StateActive {
			other.State = types.StateSuperseded
			s.configs[otherID] = other
		}
	}

	config.State = types.StateActive
	s.configs[id] = config
	return nil
}

// History returns all configurations for a role, newest first.
func (s *MemoryStore) History(_ context.Context, role string) ([]types.WeightConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.WeightConfiguration, 0)
	for _, config := range s.configs {
		if config.Role != role {
			continue
		}
		config.Weights = config.Weights.Clone()
		out = append(out, config)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
