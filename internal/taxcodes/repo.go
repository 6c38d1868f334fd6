package taxcodes

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no tax code exists for a lookup.
var ErrNotFound = errors.New("tax code not found")

// Repo defines lookup operations over the tax-code table.
type Repo interface {
	GetByCategory(ctx context.Context, category string) (TaxCode, error)
	GetByID(ctx context.Context, id string) (TaxCode, error)
}
