package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already taken")

	// Resource errors
	ErrResourceNotFound    = errors.New("resource not found")
	ErrUnknownResourceKind = errors.New("unknown resource kind")
)
