package documents

import "context"

// DocumentsRepo defines persistence operations for documents.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, userID, id string) (Document, error)
	ListByUser(ctx context.Context, userID string) ([]Document, error)
	// BeginAnalysis transitions uploaded -> analyzing. It fails with
	// ErrNotAnalyzable when the document is in any other state, which
	// makes concurrent analyze triggers lose the race cleanly.
	BeginAnalysis(ctx context.Context, userID, id string) error
	SetStatus(ctx context.Context, userID, id, status string) error
}
