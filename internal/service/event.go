package service

import (
	"context"

	"github.com/gatherly/api/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*model.Event, error)
	List(ctx context.Context) ([]*model.Event, error)
	Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) error
}

// EventService handles event directory reads and admin edits
type EventService struct {
	eventRepo EventRepository
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// List returns all events ordered by creation time.
func (s *EventService) List(ctx context.Context) ([]*model.Event, error) {
	return s.eventRepo.List(ctx)
}

// Get returns a single event by id.
func (s *EventService) Get(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Update applies a partial edit to an event. The route guard already
// requires an admin caller; existence is checked here so a bad id yields
// not-found rather than a silent no-op.
func (s *EventService) Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) (*model.Event, error) {
	if !req.HasUpdates() {
		return nil, ErrNoFieldsToUpdate
	}

	existing, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrEventNotFound
	}

	if err := s.eventRepo.Update(ctx, eventID, req); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(ctx, eventID)
}
