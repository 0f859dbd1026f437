package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrNameRequired       = errors.New("name is required")
)

// ===== Token Errors =====
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// ===== Authorization Errors =====
var (
	ErrAdminRequired = errors.New("admin privileges required")
	ErrNotOwnRecord  = errors.New("cannot act on another user's record")
)

// ===== Event Errors =====
var (
	ErrEventNotFound = errors.New("event not found")
)

// ===== Profile Errors =====
var (
	ErrNoFieldsToUpdate = errors.New("no updatable fields provided")
	ErrFieldNotAllowed  = errors.New("field cannot be updated")
)
