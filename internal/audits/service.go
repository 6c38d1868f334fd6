package audits

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"finbooks-backend/internal/shared/metrics"
	"finbooks-backend/internal/shared/telemetry"
)

// Service runs automated audits.
type Service struct {
	Repo Repo
}

// NewAuditInput describes an audit to create.
type NewAuditInput struct {
	Title string
	Items []NewAuditItemInput
}

// NewAuditItemInput describes one item of a new audit.
type NewAuditItemInput struct {
	Category    string
	Description string
	Amount      decimal.Decimal
	Status      string
}

// Create records a draft audit with its items.
func (s *Service) Create(ctx context.Context, userID string, in NewAuditInput) (Audit, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Audit{}, ErrValidation
	}
	now := time.Now().UTC()
	audit := Audit{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     strings.TrimSpace(in.Title),
		Status:    AuditDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	items := make([]AuditItem, 0, len(in.Items))
	for _, it := range in.Items {
		status := it.Status
		switch status {
		case "":
			status = ItemPending
		case ItemPending, ItemCleared, ItemFlagged:
		default:
			return Audit{}, ErrValidation
		}
		items = append(items, AuditItem{
			ID:          uuid.NewString(),
			AuditID:     audit.ID,
			Category:    it.Category,
			Description: it.Description,
			Amount:      it.Amount,
			Status:      status,
			CreatedAt:   now,
		})
	}
	if err := s.Repo.Create(ctx, audit, items); err != nil {
		return Audit{}, err
	}
	return audit, nil
}

// Get returns an owner-scoped audit with its items.
func (s *Service) Get(ctx context.Context, userID, id string) (Audit, []AuditItem, error) {
	audit, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil {
		return Audit{}, nil, err
	}
	items, err := s.Repo.ListItems(ctx, audit.ID)
	if err != nil {
		return Audit{}, nil, err
	}
	return audit, items, nil
}

// List returns the owner's audits.
func (s *Service) List(ctx context.Context, userID string) ([]Audit, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Run executes the automated audit: the three assessors work concurrently
// over an immutable snapshot of the items, their outputs are joined into a
// composite report, and the report replaces any previous one on the audit.
// When persistence fails the computed report is still returned with
// Persisted false; the stored audit keeps its prior state.
func (s *Service) Run(ctx context.Context, userID, auditID string) (Report, error) {
	audit, err := s.Repo.GetByID(ctx, userID, auditID)
	if err != nil {
		return Report{}, err
	}
	items, err := s.Repo.ListItems(ctx, audit.ID)
	if err != nil {
		return Report{}, err
	}

	metrics.IncAuditRunStarted()

	var (
		risk      RiskScores
		controls  ControlEffectiveness
		anomalies AnomalyReport
		wg        sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		risk = AssessRisk(items)
	}()
	go func() {
		defer wg.Done()
		controls = TestControls(items)
	}()
	go func() {
		defer wg.Done()
		anomalies = DetectAnomalies(items)
	}()
	wg.Wait()

	report := Report{
		AuditID:              audit.ID,
		Summary:              summarize(risk, controls, anomalies),
		RiskScores:           risk,
		ControlEffectiveness: controls,
		AnomalyDetection:     anomalies,
	}

	if err := s.Repo.SaveReport(ctx, userID, audit.ID, report); err != nil {
		metrics.IncAuditRunFailed()
		telemetry.Error("audit.report_persist_failed", map[string]any{
			"audit_id": audit.ID,
			"error":    err.Error(),
		})
		return report, nil
	}
	report.Persisted = true
	metrics.IncAuditRunCompleted()
	telemetry.Info("audit.run_completed", map[string]any{
		"audit_id":     audit.ID,
		"overall_risk": report.Summary.OverallRisk,
		"anomalies":    report.Summary.AnomaliesFound,
	})
	return report, nil
}

func summarize(risk RiskScores, controls ControlEffectiveness, anomalies AnomalyReport) Summary {
	overallRisk := "Low"
	if risk.OverallScore > 0.5 {
		overallRisk = "High"
	}
	controlStatus := "Needs Improvement"
	if controls.OverallEffectiveness > 0.7 {
		controlStatus = "Effective"
	}

	var recs []string
	if risk.OverallScore > 0.5 {
		recs = append(recs, "Implement additional risk monitoring procedures")
	}
	if controls.OverallEffectiveness < 0.7 {
		recs = append(recs, "Strengthen internal control framework")
	}
	if anomalies.Count > 0 {
		recs = append(recs, "Review and investigate identified anomalies")
	}
	if recs == nil {
		recs = []string{}
	}

	return Summary{
		OverallRisk:     overallRisk,
		ControlStatus:   controlStatus,
		AnomaliesFound:  anomalies.Count,
		Recommendations: recs,
		CompletedAt:     time.Now().UTC(),
	}
}
