package pipeline

import "errors"

var (
	// ErrNilWriter indicates that a nil index writer was provided.
	ErrNilWriter = errors.New("index writer is nil")

	// ErrNilBuilder indicates that a nil document builder was provided.
	ErrNilBuilder = errors.New("document builder is nil")

	// ErrNilRepository indicates that a nil catalog repository was provided.
	ErrNilRepository = errors.New("catalog repository is nil")
)
