package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Write-off review states.
const (
	WriteOffPending  = "pending"
	WriteOffApproved = "approved"
	WriteOffRejected = "rejected"
)

// Balance sheet item categories.
const (
	ItemAsset     = "asset"
	ItemLiability = "liability"
)

// WriteOff is a deductible expense candidate awaiting review.
type WriteOff struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TaxCodeID   string          `json:"taxCodeId,omitempty"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// RevenueRecord is a recognized income entry.
type RevenueRecord struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// BalanceSheetItem is a net position derived from a document import.
type BalanceSheetItem struct {
	ID          string          `json:"id"`
	UserID      string          `json:"-"`
	Category    string          `json:"category"` // asset or liability
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
