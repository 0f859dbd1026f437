package service

import (
	"context"
	"errors"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// RSVPRepository defines the interface for attendance storage
type RSVPRepository interface {
	Create(ctx context.Context, eventID, userID string) error
	Delete(ctx context.Context, eventID, userID string) error
	ListAttendees(ctx context.Context, eventID string) ([]*model.Attendee, error)
}

// RSVPService manages the attendance relation between users and events
type RSVPService struct {
	rsvpRepo  RSVPRepository
	eventRepo EventRepository
}

// NewRSVPService creates a new RSVP service
func NewRSVPService(rsvpRepo RSVPRepository, eventRepo EventRepository) *RSVPService {
	return &RSVPService{rsvpRepo: rsvpRepo, eventRepo: eventRepo}
}

// Add registers the caller for an event. Registering twice is a no-op; the
// store's unique pair index absorbs the duplicate.
func (s *RSVPService) Add(ctx context.Context, claims *model.TokenClaims, eventID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	if err := s.rsvpRepo.Create(ctx, eventID, claims.UserID); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil
		}
		return err
	}
	return nil
}

// Remove cancels an attendance. Callers cancel their own; an admin may
// cancel on behalf of another user by passing that user's id. Removing an
// absent pair is a no-op.
func (s *RSVPService) Remove(ctx context.Context, claims *model.TokenClaims, eventID, userID string) error {
	if userID == "" {
		userID = claims.UserID
	}
	if userID != claims.UserID && !claims.IsAdmin {
		return ErrNotOwnRecord
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	return s.rsvpRepo.Delete(ctx, eventID, userID)
}

// ListAttendees returns the public projection of every user attending an
// event.
func (s *RSVPService) ListAttendees(ctx context.Context, eventID string) ([]*model.Attendee, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	return s.rsvpRepo.ListAttendees(ctx, eventID)
}
