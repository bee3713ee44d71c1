package domain

import "errors"

var (
	// ErrGameNotFound is returned when the requested game is not part of the
	// published catalogue (never existed, deleted or still a draft).
	ErrGameNotFound = errors.New("game not found")
)
