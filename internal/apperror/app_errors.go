package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotFound   = errors.New("game not found")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrInvalidPayload = errors.New("invalid payload")
)
