package gateway

import "errors"

var (
	// ErrNilRepository indicates that a nil catalog repository was provided.
	ErrNilRepository = errors.New("catalog repository is nil")

	// ErrNilEngine indicates that a nil ranking engine was provided.
	ErrNilEngine = errors.New("ranking engine is nil")
)
