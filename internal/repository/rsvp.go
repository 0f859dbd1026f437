package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// RSVPRepository owns the attendance relation. It is the only component
// that touches the rsvp table; pair uniqueness is guaranteed by the store's
// unique index over (event_id, user_id), not by application locking, so
// concurrent duplicate inserts are safe.
type RSVPRepository struct {
	db database.Database
}

// NewRSVPRepository creates a new RSVP repository
func NewRSVPRepository(db database.Database) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Create inserts an attendance pair. A duplicate pair surfaces as
// database.ErrDuplicate; callers treat it as a no-op to keep registration
// idempotent.
func (r *RSVPRepository) Create(ctx context.Context, eventID, userID string) error {
	query := `
		CREATE rsvp CONTENT {
			event_id: type::record($event_id),
			user_id: type::record($user_id),
			createdAt: time::now()
		}
	`
	vars := map[string]interface{}{
		"event_id": eventID,
		"user_id":  userID,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: attendance already recorded", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// Delete removes the matching pair if present. Deleting a non-existent pair
// is not an error; cancellation stays idempotent.
func (r *RSVPRepository) Delete(ctx context.Context, eventID, userID string) error {
	query := `
		DELETE rsvp
		WHERE event_id = type::record($event_id)
		AND user_id = type::record($user_id)
	`
	vars := map[string]interface{}{
		"event_id": eventID,
		"user_id":  userID,
	}

	return r.db.Execute(ctx, query, vars)
}

// ListAttendees projects the non-sensitive fields of every user attending
// an event, joined through the relation's record links.
func (r *RSVPRepository) ListAttendees(ctx context.Context, eventID string) ([]*model.Attendee, error) {
	query := `
		SELECT user_id.name AS name, user_id.email AS email, user_id.phone AS phone
		FROM rsvp
		WHERE event_id = type::record($event_id)
		ORDER BY createdAt ASC
	`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	rows := extractRows(result)
	attendees := make([]*model.Attendee, 0, len(rows))
	for _, row := range rows {
		attendees = append(attendees, &model.Attendee{
			Name:  getString(row, "name"),
			Email: getString(row, "email"),
			Phone: getString(row, "phone"),
		})
	}
	return attendees, nil
}
