package model

import "time"

// RSVP is one row of the attendance relation: an ordered
// (event_id, user_id) pair. The store holds at most one row per pair; a
// duplicate insert is ignored, never an error.
type RSVP struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Attendee is the public projection of a user attending an event. Only
// non-sensitive fields cross the boundary.
type Attendee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
