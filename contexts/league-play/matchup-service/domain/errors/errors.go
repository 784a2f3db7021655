package errors

import "errors"

var (
	ErrMatchupNotFound    = errors.New("matchup not found")
	ErrInvalidFormat      = errors.New("invalid scoring format")
	ErrNotParticipant     = errors.New("user is not part of this matchup")
	ErrSelfMatchup        = errors.New("a matchup needs two distinct users")
	ErrMalformedCapacity  = errors.New("capacity values must not be negative")
	ErrMatchupFinal       = errors.New("matchup is already final")
	ErrMatchupNotActive   = errors.New("matchup is not active")
	ErrMatchupKeyConflict = errors.New("matchup already exists for this pair")
)
