package taxcodes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	codes map[string]TaxCode // id -> code
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{codes: make(map[string]TaxCode)}
}

// Put stores or replaces a tax code.
func (r *MemoryRepo) Put(tc TaxCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes[tc.ID] = tc
}

// GetByCategory resolves a category name to its tax code.
func (r *MemoryRepo) GetByCategory(ctx context.Context, category string) (TaxCode, error) {
	if err := ctx.Err(); err != nil {
		return TaxCode{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tc := range r.codes {
		if tc.ExpenseCategory == category {
			return tc, nil
		}
	}
	return TaxCode{}, ErrNotFound
}

// GetByID fetches a tax code by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (TaxCode, error) {
	if err := ctx.Err(); err != nil {
		return TaxCode{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tc, ok := r.codes[id]
	if !ok {
		return TaxCode{}, ErrNotFound
	}
	return tc, nil
}

var _ Repo = (*MemoryRepo)(nil)
