package documents

import "errors"

var (
	// ErrNotFound is returned when a document does not exist for the owner.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput is returned for malformed upload requests.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotAnalyzable is returned when an analysis trigger races another
	// or targets a document that already left the uploaded state.
	ErrNotAnalyzable = errors.New("document is not in an analyzable state")
)
