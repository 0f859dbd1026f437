package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// UserRepository handles user data access. All queries are parameterized;
// values never appear in query text.
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. The store's unique index on email makes
// duplicate registration surface as database.ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			name: $name,
			email: $email,
			phone: $phone,
			password: $password,
			isAdmin: $isAdmin,
			createdAt: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":     user.Name,
		"email":    user.Email,
		"phone":    user.Phone,
		"password": user.Hash,
		"isAdmin":  user.IsAdmin,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	rows := extractRows(result)
	if len(rows) == 0 {
		return fmt.Errorf("%w: create returned no record", database.ErrQuery)
	}
	created := parseUserRow(rows[0])
	user.ID = created.ID
	user.CreatedAt = created.CreatedAt
	return nil
}

// GetByID retrieves a user by record id. Returns nil when the user does not
// exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
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
	return parseUserRow(row), nil
}

// GetByEmail retrieves a user by exact email. Returns nil when no row
// matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

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
	return parseUserRow(row), nil
}

// List retrieves all users ordered by creation time.
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT * FROM user ORDER BY createdAt ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	rows := extractRows(result)
	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, parseUserRow(row))
	}
	return users, nil
}

// UpdateFields applies a partial update keyed by the user's own id. Keys are
// whitelisted by the caller (service layer); values are always bound as
// query parameters.
func (r *UserRepository) UpdateFields(ctx context.Context, userID string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query := `UPDATE type::record($id) SET`
	vars := map[string]interface{}{"id": userID}

	first := true
	for key, value := range fields {
		if !first {
			query += ","
		}
		query += " " + key + " = $" + key
		vars[key] = value
		first = false
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

func parseUserRow(row map[string]interface{}) *model.User {
	return &model.User{
		ID:        convertSurrealID(row["id"]),
		Name:      getString(row, "name"),
		Email:     getString(row, "email"),
		Phone:     getString(row, "phone"),
		Hash:      getString(row, "password"),
		IsAdmin:   getBool(row, "isAdmin"),
		CreatedAt: getTime(row, "createdAt"),
	}
}
