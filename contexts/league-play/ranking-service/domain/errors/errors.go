package errors

import "errors"

var (
	ErrBoardNotFound     = errors.New("ranking board not found")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrInvalidFormat     = errors.New("invalid scoring format")
	ErrUnknownPlayer     = errors.New("player is not on the ranking board")
	ErrNoOpenPromotion   = errors.New("no promotion cycle is open")
	ErrPromotionMismatch = errors.New("duel does not match the open promotion cycle")
	ErrEmptyPool         = errors.New("player pool is empty")
)
