package search

import "errors"

var (
	// ErrEngineReleased is returned when ranking is attempted after Release.
	ErrEngineReleased = errors.New("engine released")
)
