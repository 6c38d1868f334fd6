package audits

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	audits map[string]Audit
	items  map[string][]AuditItem // audit_id -> items
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		audits: make(map[string]Audit),
		items:  make(map[string][]AuditItem),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, audit Audit, items []AuditItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audits[audit.ID] = audit
	r.items[audit.ID] = append([]AuditItem(nil), items...)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, id string) (Audit, error) {
	if err := ctx.Err(); err != nil {
		return Audit{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	audit, ok := r.audits[id]
	if !ok || audit.UserID != userID {
		return Audit{}, ErrNotFound
	}
	return audit, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Audit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Audit
	for _, audit := range r.audits {
		if audit.UserID == userID {
			out = append(out, audit)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) ListItems(ctx context.Context, auditID string) ([]AuditItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]AuditItem(nil), r.items[auditID]...), nil
}

func (r *MemoryRepo) SaveReport(ctx context.Context, userID, auditID string, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	audit, ok := r.audits[auditID]
	if !ok || audit.UserID != userID {
		return ErrNotFound
	}
	summary := report.Summary
	risk := report.RiskScores
	controls := report.ControlEffectiveness
	anomalies := report.AnomalyDetection
	audit.AutomatedAnalysis = &summary
	audit.RiskScores = &risk
	audit.ControlEffectiveness = &controls
	audit.AnomalyDetection = &anomalies
	audit.Status = AuditCompleted
	audit.UpdatedAt = time.Now().UTC()
	r.audits[auditID] = audit
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
