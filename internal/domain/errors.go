package domain

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrServiceUnavailable   = errors.New("service unavailable")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrLoginInProgress      = errors.New("login already in progress")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrWrongActorKind       = errors.New("wrong actor kind")
	ErrJobNotFound          = errors.New("job not found")
	ErrNotFound             = errors.New("not found")
)
