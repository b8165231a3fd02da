package service

import "errors"

// Sentinel errors surfaced to handlers, which map them onto HTTP status
// codes. Messages are user-visible and deliberately generic.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrReportNotFound     = errors.New("report not found")
	ErrUsernameTaken      = errors.New("username already exists")
)
