package reindex

import "errors"

var (
	// ErrNilStore indicates that a nil snapshot store was provided.
	ErrNilStore = errors.New("snapshot store is nil")

	// ErrNilBuilder indicates that a nil document builder was provided.
	ErrNilBuilder = errors.New("document builder is nil")

	// ErrNilWriter indicates that a nil index writer was provided.
	ErrNilWriter = errors.New("index writer is nil")
)
