package domain

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7, so ordering by id follows insertion order.
func NewID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
