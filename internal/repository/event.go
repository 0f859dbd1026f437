package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// GetByID retrieves an event by record id. Returns nil when the event does
// not exist.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	row, ok := result.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected result format", database.ErrQuery)
	}
	return parseEventRow(row), nil
}

// List retrieves all events ordered by creation time.
func (r *EventRepository) List(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT * FROM event ORDER BY createdAt ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows := extractRows(result)
	events := make([]*model.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, parseEventRow(row))
	}
	return events, nil
}

// Update applies the provided fields to an event. Nil fields are left
// untouched.
func (r *EventRepository) Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) error {
	query := `UPDATE type::record($id) SET`
	vars := map[string]interface{}{"id": eventID}

	first := true
	if req.Name != nil {
		query += " name = $name"
		vars["name"] = *req.Name
		first = false
	}
	if req.Description != nil {
		if !first {
			query += ","
		}
		query += " description = $description"
		vars["description"] = *req.Description
	}

	return r.db.Execute(ctx, query, vars)
}

func parseEventRow(row map[string]interface{}) *model.Event {
	event := &model.Event{
		ID:          convertSurrealID(row["id"]),
		Name:        getString(row, "name"),
		Description: getString(row, "description"),
		CreatedAt:   getTime(row, "createdAt"),
	}
	if owner, ok := row["ownerId"]; ok && owner != nil {
		event.OwnerID = convertSurrealID(owner)
	}
	return event
}
