package audits

import "errors"

var (
	// ErrNotFound is returned when an audit does not exist for the owner.
	ErrNotFound = errors.New("audit not found")
	// ErrValidation is returned for malformed audit payloads.
	ErrValidation = errors.New("invalid audit payload")
)
