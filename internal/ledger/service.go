package ledger

import (
	"context"
	"fmt"

	"finbooks-backend/internal/taxcodes"
)

// Service exposes ledger reads and write-off review operations.
type Service struct {
	WriteOffs    WriteOffRepo
	Revenue      RevenueRepo
	BalanceSheet BalanceSheetRepo
	TaxCodes     taxcodes.Repo
}

// ListWriteOffs returns the owner's write-offs.
func (s *Service) ListWriteOffs(ctx context.Context, userID string) ([]WriteOff, error) {
	return s.WriteOffs.ListByUser(ctx, userID)
}

// ListRevenue returns the owner's revenue records.
func (s *Service) ListRevenue(ctx context.Context, userID string) ([]RevenueRecord, error) {
	return s.Revenue.ListByUser(ctx, userID)
}

// ListBalanceSheet returns the owner's balance sheet items.
func (s *Service) ListBalanceSheet(ctx context.Context, userID string) ([]BalanceSheetItem, error) {
	return s.BalanceSheet.ListByUser(ctx, userID)
}

// ReviewWriteOff moves a pending write-off to approved or rejected.
func (s *Service) ReviewWriteOff(ctx context.Context, userID, id, status string) error {
	if err := s.WriteOffs.UpdateStatus(ctx, userID, id, status); err != nil {
		return fmt.Errorf("update write-off status: %w", err)
	}
	return nil
}
