package audits

import "context"

// Repo defines persistence operations for audits and their items.
type Repo interface {
	Create(ctx context.Context, audit Audit, items []AuditItem) error
	GetByID(ctx context.Context, userID, id string) (Audit, error)
	ListByUser(ctx context.Context, userID string) ([]Audit, error)
	ListItems(ctx context.Context, auditID string) ([]AuditItem, error)
	// SaveReport replaces the automated analysis columns and marks the
	// audit completed. Re-running an audit overwrites the prior report.
	SaveReport(ctx context.Context, userID, auditID string, report Report) error
}
