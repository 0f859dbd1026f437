package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/middleware"
	"github.com/gatherly/api/internal/model"
	"github.com/gatherly/api/internal/service"
)

// ============================================================================
// In-memory repositories and a fully wired test router. Handler tests run
// the real services and route guards; only the store is faked.
// ============================================================================

type memUserRepo struct {
	users  map[string]*model.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("user:%d", r.nextID)
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (r *memUserRepo) UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) error {
	user, ok := r.users[userID]
	if !ok {
		return nil
	}
	for key, value := range fields {
		switch key {
		case "name":
			user.Name = value.(string)
		case "email":
			email := value.(string)
			for id, other := range r.users {
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

type memEventRepo struct {
	events map[string]*model.Event
}

func newMemEventRepo(events ...*model.Event) *memEventRepo {
	repo := &memEventRepo{events: make(map[string]*model.Event)}
	for _, event := range events {
		clone := *event
		repo.events[event.ID] = &clone
	}
	return repo
}

func (r *memEventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	clone := *event
	return &clone, nil
}

func (r *memEventRepo) List(ctx context.Context) ([]*model.Event, error) {
	events := make([]*model.Event, 0, len(r.events))
	for _, event := range r.events {
		clone := *event
		events = append(events, &clone)
	}
	return events, nil
}

func (r *memEventRepo) Update(ctx context.Context, eventID string, req *model.UpdateEventRequest) error {
	event, ok := r.events[eventID]
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

type memRSVPRepo struct {
	pairs map[string]bool
	users *memUserRepo
}

func newMemRSVPRepo(users *memUserRepo) *memRSVPRepo {
	return &memRSVPRepo{pairs: make(map[string]bool), users: users}
}

func (r *memRSVPRepo) Create(ctx context.Context, eventID, userID string) error {
	key := eventID + "|" + userID
	if r.pairs[key] {
		return fmt.Errorf("%w: attendance already recorded", database.ErrDuplicate)
	}
	r.pairs[key] = true
	return nil
}

func (r *memRSVPRepo) Delete(ctx context.Context, eventID, userID string) error {
	delete(r.pairs, eventID+"|"+userID)
	return nil
}

func (r *memRSVPRepo) ListAttendees(ctx context.Context, eventID string) ([]*model.Attendee, error) {
	attendees := make([]*model.Attendee, 0)
	for key := range r.pairs {
		var evID, userID string
		for i := 0; i < len(key); i++ {
			if key[i] == '|' {
				evID, userID = key[:i], key[i+1:]
				break
			}
		}
		if evID != eventID {
			continue
		}
		if user, ok := r.users.users[userID]; ok {
			attendees = append(attendees, &model.Attendee{
				Name:  user.Name,
				Email: user.Email,
				Phone: user.Phone,
			})
		}
	}
	return attendees, nil
}

// testAPI bundles the wired router with its backing fakes
type testAPI struct {
	mux       *http.ServeMux
	userRepo  *memUserRepo
	eventRepo *memEventRepo
	rsvpRepo  *memRSVPRepo
	tokens    *service.TokenService
}

// newTestAPI wires repositories, services, handlers and guards the same way
// the server entrypoint does.
func newTestAPI(events ...*model.Event) *testAPI {
	userRepo := newMemUserRepo()
	eventRepo := newMemEventRepo(events...)
	rsvpRepo := newMemRSVPRepo(userRepo)

	tokenService := service.NewTokenService(service.TokenServiceConfig{
		Secret:   "handler-test-secret-key-of-sufficient-length",
		Issuer:   "test",
		Duration: time.Hour,
	})
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	eventService := service.NewEventService(eventRepo)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo)

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService)
	eventHandler := NewEventHandler(eventService)
	rsvpHandler := NewRSVPHandler(rsvpService)

	authMW := middleware.Auth(tokenService)
	adminMW := middleware.AdminOnly(tokenService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /v1/users", userHandler.List)
	mux.Handle("GET /v1/users/{userId}", authMW(http.HandlerFunc(userHandler.Get)))
	mux.Handle("PATCH /v1/profile", authMW(http.HandlerFunc(userHandler.UpdateProfile)))
	mux.HandleFunc("GET /v1/events", eventHandler.List)
	mux.HandleFunc("GET /v1/events/{eventId}", eventHandler.Get)
	mux.Handle("PATCH /v1/events/{eventId}", adminMW(http.HandlerFunc(eventHandler.Update)))
	mux.Handle("POST /v1/events/{eventId}/rsvp", authMW(http.HandlerFunc(rsvpHandler.Add)))
	mux.Handle("DELETE /v1/events/{eventId}/rsvp", authMW(http.HandlerFunc(rsvpHandler.Cancel)))
	mux.HandleFunc("GET /v1/events/{eventId}/attendees", rsvpHandler.Attendees)

	return &testAPI{
		mux:       mux,
		userRepo:  userRepo,
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
		tokens:    tokenService,
	}
}

// tokenFor registers a user directly in the fake store and signs a token
func (a *testAPI) tokenFor(name, email string, isAdmin bool) (string, *model.User) {
	user := &model.User{Name: name, Email: email, Hash: "x", IsAdmin: isAdmin}
	_ = a.userRepo.Create(context.Background(), user)
	token, _ := a.tokens.Issue(user)
	return token, user
}
