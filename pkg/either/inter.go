package either

import (
	"time"

	"github.com/google/uuid"
)

// Sided defines an interface for types that expose which case of a
// two-case union they hold, without exposing the wrapped value.
type Sided interface {
	// IsLeft returns true for the failure-carrying case
	IsLeft() bool
	// IsRight returns true for the success-carrying case
	IsRight() bool
	// IsEmpty returns true for an uninitialized value
	IsEmpty() bool
}

// Stamped extends Sided with per-instance provenance.
type Stamped interface {
	Sided
	// Id returns the unique identity assigned at construction
	Id() uuid.UUID
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}
