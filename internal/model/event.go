package model

import "time"

// Event represents a listed event. Events are mutable only via the
// admin-gated update operation.
type Event struct {
	ID          string    `json:"event_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UpdateEventRequest carries the admin-provided partial update. Nil fields
// are left untouched.
type UpdateEventRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// HasUpdates reports whether the request carries at least one field.
func (r *UpdateEventRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil
}
