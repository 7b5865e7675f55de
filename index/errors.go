package index

import "errors"

var (
	// ErrWriterClosed indicates that the writer has been closed.
	ErrWriterClosed = errors.New("index writer is closed")
)
