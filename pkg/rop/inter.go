package rop

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the part of a Result that does not depend on its value type.
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// Error returns the failure, panics on success
	Error() Error
	// ID identifies the Result
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var _ Outcome = Result[int]{}
