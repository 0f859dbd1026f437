// Package database provides the store abstraction for the Gatherly API.
//
// The Database interface abstracts SurrealDB operations so repositories and
// services never touch the driver directly and never see a global handle;
// every component receives its store at construction.
//
// Three query methods cover every access pattern in this service:
//   - Query: multiple results (SELECT returning lists)
//   - QueryOne: a single result (SELECT by record id)
//   - Execute: no results (CREATE/UPDATE/DELETE mutations)
//
// Every write in this service touches a single relation's row(s), so all
// mutations are single-statement atomic operations; no multi-statement
// transaction support is exposed. Uniqueness (user email, RSVP pair) is
// enforced by the store's own unique indexes, not by application locking.
//
// # Error Handling
//
// Standard errors are defined for common failure cases and are checked with
// errors.Is():
//   - ErrNotFound: record does not exist
//   - ErrDuplicate: unique constraint violation
//   - ErrConnection: connection or communication failure
//   - ErrQuery: query execution failure
//
// Raw store error text never crosses the service boundary; repositories wrap
// failures in these sentinels.
package database

import (
	"context"
	"errors"
)

// Standard errors for store operations.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation
	// (duplicate email, duplicate RSVP pair).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the store.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Database defines the interface for store operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds store connection configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
