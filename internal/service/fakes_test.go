package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// ============================================================================
// In-memory fakes backing the service tests. They enforce the same
// uniqueness rules the store does so duplicate paths can be exercised
// without a live database.
// ============================================================================

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int
	err    error // when set, every call fails with this error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
	}
	f.nextID++
	user.ID = fmt.Sprintf("user:%d", f.nextID)
	user.CreatedAt = time.Now()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	users := make([]*model.User, 0, len(f.users))
	for _, user := range f.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	user, ok := f.users[userID]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name = value.(string)
		case "email":
			email := value.(string)
			for id, other := range f.users {
				if id != userID && other.Email == email {
					return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
				}
			}
			user.Email = email
		case "phone":
			user.Phone = value.(string)
		case "isAdmin":
			user.IsAdmin = value.(bool)
		}
	}
	return nil
}

type fakeEventRepo struct {
	events map[string]*model.Event
	err    error
}

func newFakeEventRepo(events ...*model.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[string]*model.Event)}
	for _, event := range events {
		clone := *event
		repo.events[event.ID] = &clone
	}
	return repo
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	event, ok := f.events[id]
	if !ok {
		return nil, nil
	}
	clone := *event
	return &clone, nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	events := make([]*model.Event, 0, len(f.events))
	for _, event := range f.events {
		clone := *event
		events = append(events, &clone)
	}
	return events, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) error {
	if f.err != nil {
		return f.err
	}
	event, ok := f.events[eventID]
	if !ok {
		return nil
	}
	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	return nil
}

type fakeRSVPRepo struct {
	pairs     map[string]bool // "eventID|userID"
	attendees map[string][]*model.Attendee
	err       error
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{
		pairs:     make(map[string]bool),
		attendees: make(map[string][]*model.Attendee),
	}
}

func pairKey(eventID, userID string) string {
	return eventID + "|" + userID
}

func (f *fakeRSVPRepo) Create(ctx context.Context, eventID, userID string) error {
	if f.err != nil {
		return f.err
	}
	key := pairKey(eventID, userID)
	if f.pairs[key] {
		return fmt.Errorf("%w: attendance already recorded", database.ErrDuplicate)
	}
	f.pairs[key] = true
	return nil
}

func (f *fakeRSVPRepo) Delete(ctx context.Context, eventID, userID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.pairs, pairKey(eventID, userID))
	return nil
}

func (f *fakeRSVPRepo) ListAttendees(ctx context.Context, eventID string) ([]*model.Attendee, error) {
	if f.err != nil {
		return nil, f.err
	}
	if stored, ok := f.attendees[eventID]; ok {
		return stored, nil
	}
	attendees := make([]*model.Attendee, 0)
	for key := range f.pairs {
		if strings.HasPrefix(key, eventID+"|") {
			attendees = append(attendees, &model.Attendee{Name: strings.TrimPrefix(key, eventID+"|")})
		}
	}
	return attendees, nil
}

func (f *fakeRSVPRepo) count(eventID string) int {
	n := 0
	for key := range f.pairs {
		if strings.HasPrefix(key, eventID+"|") {
			n++
		}
	}
	return n
}
