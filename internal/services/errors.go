package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("not authorized to perform this action")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, duplicate application
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
