package ledger

import (
	"context"
	"sort"
	"sync"
)

// MemoryWriteOffRepo is an in-memory WriteOffRepo.
type MemoryWriteOffRepo struct {
	mu   sync.RWMutex
	rows map[string]WriteOff
}

// NewMemoryWriteOffRepo constructs a MemoryWriteOffRepo.
func NewMemoryWriteOffRepo() *MemoryWriteOffRepo {
	return &MemoryWriteOffRepo{rows: make(map[string]WriteOff)}
}

func (r *MemoryWriteOffRepo) Create(ctx context.Context, w WriteOff) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[w.ID] = w
	return nil
}

func (r *MemoryWriteOffRepo) ListByUser(ctx context.Context, userID string) ([]WriteOff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []WriteOff
	for _, w := range r.rows {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryWriteOffRepo) UpdateStatus(ctx context.Context, userID, id, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if status != WriteOffApproved && status != WriteOffRejected {
		return ErrInvalidStatus
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.rows[id]
	if !ok || w.UserID != userID {
		return ErrNotFound
	}
	if w.Status != WriteOffPending {
		return ErrInvalidStatus
	}
	w.Status = status
	r.rows[id] = w
	return nil
}

var _ WriteOffRepo = (*MemoryWriteOffRepo)(nil)

// MemoryRevenueRepo is an in-memory RevenueRepo.
type MemoryRevenueRepo struct {
	mu   sync.RWMutex
	rows map[string]RevenueRecord
}

// NewMemoryRevenueRepo constructs a MemoryRevenueRepo.
func NewMemoryRevenueRepo() *MemoryRevenueRepo {
	return &MemoryRevenueRepo{rows: make(map[string]RevenueRecord)}
}

func (r *MemoryRevenueRepo) Create(ctx context.Context, rec RevenueRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[rec.ID] = rec
	return nil
}

func (r *MemoryRevenueRepo) ListByUser(ctx context.Context, userID string) ([]RevenueRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []RevenueRecord
	for _, rec := range r.rows {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ RevenueRepo = (*MemoryRevenueRepo)(nil)

// MemoryBalanceSheetRepo is an in-memory BalanceSheetRepo.
type MemoryBalanceSheetRepo struct {
	mu   sync.RWMutex
	rows map[string]BalanceSheetItem
}

// NewMemoryBalanceSheetRepo constructs a MemoryBalanceSheetRepo.
func NewMemoryBalanceSheetRepo() *MemoryBalanceSheetRepo {
	return &MemoryBalanceSheetRepo{rows: make(map[string]BalanceSheetItem)}
}

func (r *MemoryBalanceSheetRepo) Create(ctx context.Context, item BalanceSheetItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[item.ID] = item
	return nil
}

func (r *MemoryBalanceSheetRepo) ListByUser(ctx context.Context, userID string) ([]BalanceSheetItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []BalanceSheetItem
	for _, item := range r.rows {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ BalanceSheetRepo = (*MemoryBalanceSheetRepo)(nil)
