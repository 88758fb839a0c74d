package utils

import "errors"

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
	ErrNotOwner           = errors.New("not the plan owner")
	ErrRecordNotFound     = errors.New("record not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidRole        = errors.New("role must be trainer or user")
	ErrMissingTitle       = errors.New("title is required")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidDuration    = errors.New("duration must be a positive number of days")
	ErrInvalidTarget      = errors.New("target account is not a trainer")
	ErrSelfAction         = errors.New("cannot follow or subscribe to yourself")
	ErrDatabaseError      = errors.New("database error")
)
