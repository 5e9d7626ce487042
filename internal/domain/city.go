package domain

import "github.com/google/uuid"

// City is read-only reference data resolved when assembling company views.
type City struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
