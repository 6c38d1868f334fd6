package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finbooks-backend/internal/documents"
	"finbooks-backend/internal/extract"
	"finbooks-backend/internal/ledger"
	"finbooks-backend/internal/shared/metrics"
	"finbooks-backend/internal/shared/telemetry"
	"finbooks-backend/internal/taxcodes"
)

// Service orchestrates a document analysis run: load, extract, classify,
// persist, report.
type Service struct {
	Docs         *documents.Service
	WriteOffs    ledger.WriteOffRepo
	Revenue      ledger.RevenueRepo
	BalanceSheet ledger.BalanceSheetRepo
	TaxCodes     taxcodes.Repo
}

// Analyze runs the full pipeline for one document. The uploaded->analyzing
// transition serializes concurrent triggers: losers get
// documents.ErrNotAnalyzable. Persistence is ordered, not atomic; the first
// failure marks the document failed and propagates.
func (s *Service) Analyze(ctx context.Context, userID, documentID string) (Result, error) {
	doc, err := s.Docs.Get(ctx, userID, documentID)
	if err != nil {
		return Result{}, err
	}
	if err := s.Docs.Repo.BeginAnalysis(ctx, userID, documentID); err != nil {
		return Result{}, err
	}

	metrics.IncAnalysisStarted()
	started := time.Now()
	result, err := s.run(ctx, userID, doc)
	if err != nil {
		metrics.IncAnalysisFailed()
		if stErr := s.Docs.Repo.SetStatus(ctx, userID, documentID, documents.StatusFailed); stErr != nil {
			telemetry.Error("analysis.status_update_failed", map[string]any{
				"document_id": documentID,
				"error":       stErr.Error(),
			})
		}
		return Result{}, err
	}
	if err := s.Docs.Repo.SetStatus(ctx, userID, documentID, documents.StatusCompleted); err != nil {
		telemetry.Error("analysis.status_update_failed", map[string]any{
			"document_id": documentID,
			"error":       err.Error(),
		})
	}
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	telemetry.Info("analysis.completed", map[string]any{
		"document_id":     doc.ID,
		"risk_level":      result.RiskLevel,
		"write_offs":      result.WriteOffsCreated,
		"revenue_records": result.RevenueRecordsCreated,
	})
	return result, nil
}

func (s *Service) run(ctx context.Context, userID string, doc documents.Document) (Result, error) {
	content, err := s.Docs.ReadContent(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read document: %v", ErrDependencyUnavailable, err)
	}

	result := Result{
		DocumentID:      doc.ID,
		RiskLevel:       RiskLow,
		Transactions:    []Transaction{},
		WriteOffs:       []WriteOffCandidate{},
		Findings:        []string{},
		Recommendations: recommendations,
	}

	classifier := &Classifier{Matcher: taxcodes.NewMatcher(s.TaxCodes)}
	var tuples []extract.Tuple
	var classified Classified
	switch doc.DocumentType {
	case documents.TypeCSV:
		tuples, err = extract.Tabular(string(content))
		if err != nil {
			// Structurally unreadable input completes the run but flags
			// the document for manual review.
			result.RiskLevel = RiskHigh
			result.Findings = append(result.Findings, "Error processing CSV file: "+err.Error())
			return result, nil
		}
		classified = classifier.ClassifyTabular(tuples)
	case documents.TypePDF:
		text, err := extract.PDFText(content)
		if err != nil {
			result.RiskLevel = RiskHigh
			return result, nil
		}
		tuples = extract.FreeText(text)
		classified, err = classifier.ClassifyFreeText(ctx, tuples)
		if err != nil {
			return Result{}, fmt.Errorf("%w: tax code lookup: %v", ErrDependencyUnavailable, err)
		}
	default:
		tuples = extract.FreeText(string(content))
		classified, err = classifier.ClassifyFreeText(ctx, tuples)
		if err != nil {
			return Result{}, fmt.Errorf("%w: tax code lookup: %v", ErrDependencyUnavailable, err)
		}
	}

	if err := s.persist(ctx, userID, doc, classified); err != nil {
		return Result{}, err
	}

	for _, t := range tuples {
		result.Transactions = append(result.Transactions, Transaction{
			Amount:      t.Amount,
			Description: t.Description,
			Date:        t.Date,
			Type:        string(t.Kind),
		})
	}
	if classified.WriteOffs != nil {
		result.WriteOffs = classified.WriteOffs
	}
	result.Findings = classified.Findings
	if result.Findings == nil {
		result.Findings = []string{}
	}
	result.WriteOffsCreated = len(classified.WriteOffs)
	result.RevenueRecordsCreated = len(classified.Revenue)
	result.BalanceSheetUpdated = classified.Net.Sign() != 0
	return result, nil
}

func (s *Service) persist(ctx context.Context, userID string, doc documents.Document, classified Classified) error {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, cand := range classified.WriteOffs {
		w := ledger.WriteOff{
			ID:          uuid.NewString(),
			UserID:      userID,
			Amount:      cand.Amount,
			Description: cand.Description,
			TaxCodeID:   cand.TaxCodeID,
			Category:    cand.Category,
			Date:        today,
			Status:      ledger.WriteOffPending,
			CreatedAt:   now,
		}
		if err := s.WriteOffs.Create(ctx, w); err != nil {
			return fmt.Errorf("%w: create write-off: %v", ErrDependencyUnavailable, err)
		}
	}
	for _, cand := range classified.Revenue {
		date := cand.Date
		if date.IsZero() {
			date = today
		}
		rec := ledger.RevenueRecord{
			ID:          uuid.NewString(),
			UserID:      userID,
			Amount:      cand.Amount,
			Description: cand.Description,
			Category:    "Document Import",
			Date:        date,
			CreatedAt:   now,
		}
		if err := s.Revenue.Create(ctx, rec); err != nil {
			return fmt.Errorf("%w: create revenue record: %v", ErrDependencyUnavailable, err)
		}
	}
	if classified.Net.Sign() != 0 {
		category := ledger.ItemAsset
		if classified.Net.Sign() < 0 {
			category = ledger.ItemLiability
		}
		item := ledger.BalanceSheetItem{
			ID:          uuid.NewString(),
			UserID:      userID,
			Category:    category,
			Name:        "Document import net position",
			Amount:      classified.Net.Abs(),
			Description: doc.OriginalFilename,
			CreatedAt:   now,
		}
		if err := s.BalanceSheet.Create(ctx, item); err != nil {
			return fmt.Errorf("%w: create balance sheet item: %v", ErrDependencyUnavailable, err)
		}
	}
	return nil
}
