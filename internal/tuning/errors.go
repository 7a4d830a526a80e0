package tuning

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrConfigNotFound is returned when a weight configuration ID does not exist.
var ErrConfigNotFound = errors.New("weight configuration not found")

// ConfigurationIntegrityError blocks activation of a weight configuration
// whose weights cannot be renormalized to sum to 100.
type ConfigurationIntegrityError struct {
	ID  uuid.UUID
	Sum float64
}

func (e *ConfigurationIntegrityError) Error() string {
	return fmt.Sprintf("configuration integrity error: weights for %s sum to %.6f, cannot normalize to 100", e.ID, e.Sum)
}
