package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrEmptyText      = errors.New("task text cannot be empty")
	ErrNoData         = errors.New("no data in storage slot")
	ErrMalformedData  = errors.New("malformed data in storage slot")
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrInvalidTaskID  = errors.New("invalid task ID")
	ErrConfigExists   = errors.New("config file already exists")
)
