package ledger

import "errors"

var (
	// ErrNotFound is returned when a ledger record does not exist for the owner.
	ErrNotFound = errors.New("ledger record not found")
	// ErrInvalidStatus is returned for write-off status transitions outside
	// pending -> approved|rejected.
	ErrInvalidStatus = errors.New("invalid write-off status")
)
