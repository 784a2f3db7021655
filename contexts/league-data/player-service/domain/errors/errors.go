package errors

import "errors"

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrInvalidPosition = errors.New("invalid position")
	ErrInvalidFormat   = errors.New("invalid scoring format")
	ErrInvalidWeek     = errors.New("invalid week")
	ErrEmptyBatch      = errors.New("stat sync batch is empty")
)
