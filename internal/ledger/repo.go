package ledger

import "context"

// WriteOffRepo persists write-off candidates.
type WriteOffRepo interface {
	Create(ctx context.Context, w WriteOff) error
	ListByUser(ctx context.Context, userID string) ([]WriteOff, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
}

// RevenueRepo persists revenue records.
type RevenueRepo interface {
	Create(ctx context.Context, r RevenueRecord) error
	ListByUser(ctx context.Context, userID string) ([]RevenueRecord, error)
}

// BalanceSheetRepo persists balance sheet items.
type BalanceSheetRepo interface {
	Create(ctx context.Context, item BalanceSheetItem) error
	ListByUser(ctx context.Context, userID string) ([]BalanceSheetItem, error)
}
