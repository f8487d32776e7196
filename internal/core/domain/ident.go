package domain

import "github.com/google/uuid"

// NewID returns an opaque identifier unique across the process lifetime
// with overwhelming probability. Collisions are treated as impossible
// rather than detected.
func NewID() string {
	return uuid.NewString()
}
