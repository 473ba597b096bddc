package usecase

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrJobNotFound       = errors.New("job not found")
	ErrInterviewNotFound = errors.New("interview not found")
	ErrInternal          = errors.New("internal error")
)
