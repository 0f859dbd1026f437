package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// UserService handles directory lookups and profile edits
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns all users ordered by creation time.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	return s.userRepo.List(ctx)
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfileRequest carries the optional profile fields. Nil fields are
// left untouched.
type UpdateProfileRequest struct {
	Name    *string
	Email   *string
	Phone   *string
	IsAdmin *bool
}

// UpdateProfile applies a partial update to the caller's own record. The
// admin flag may only be changed when the caller already holds it; everything
// else is writable by any authenticated caller. An empty update is rejected
// rather than silently accepted.
func (s *UserService) UpdateProfile(ctx context.Context, claims *model.TokenClaims, req UpdateProfileRequest) (*model.User, error) {
	fields := make(map[string]interface{})

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		fields["name"] = name
	}
	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !emailRegex.MatchString(email) {
			return nil, ErrInvalidEmail
		}
		fields["email"] = email
	}
	if req.Phone != nil {
		fields["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.IsAdmin != nil {
		if !claims.IsAdmin {
			return nil, ErrAdminRequired
		}
		fields["isAdmin"] = *req.IsAdmin
	}

	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	if err := s.userRepo.UpdateFields(ctx, claims.UserID, fields); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
