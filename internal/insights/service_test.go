package insights

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"finbooks-backend/internal/ledger"
	"finbooks-backend/internal/llm"
	"finbooks-backend/internal/taxcodes"
)

type stubClient struct {
	lastPrompt string
	reply      string
	err        error
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func newInsightsFixture(stub *stubClient) (*Service, *ledger.MemoryWriteOffRepo, *ledger.MemoryRevenueRepo) {
	offs := ledger.NewMemoryWriteOffRepo()
	revenue := ledger.NewMemoryRevenueRepo()
	svc := &Service{
		Ledger: &ledger.Service{
			WriteOffs:    offs,
			Revenue:      revenue,
			BalanceSheet: ledger.NewMemoryBalanceSheetRepo(),
			TaxCodes:     taxcodes.NewMemoryRepo(),
		},
		LLM: stub,
	}
	return svc, offs, revenue
}

func TestGenerateSummarizesLedger(t *testing.T) {
	stub := &stubClient{reply: "Track mileage. Defer purchases. Invoice earlier."}
	svc, offs, revenue := newInsightsFixture(stub)
	now := time.Now()
	offs.Create(context.Background(), ledger.WriteOff{
		ID: "w1", UserID: "u1", Amount: decimal.RequireFromString("1250"),
		Description: "Fuel", Category: "Transportation", Date: now,
		Status: ledger.WriteOffPending, CreatedAt: now,
	})
	revenue.Create(context.Background(), ledger.RevenueRecord{
		ID: "r1", UserID: "u1", Amount: decimal.RequireFromString("9000"),
		Description: "Invoice", Category: "Document Import", Date: now, CreatedAt: now,
	})

	insight, err := svc.Generate(context.Background(), "u1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if insight.Advice != stub.reply {
		t.Fatalf("advice = %q", insight.Advice)
	}
	if !strings.Contains(stub.lastPrompt, "Total revenue: $9,000") {
		t.Fatalf("prompt missing revenue total:\n%s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "Transportation: $1,250") {
		t.Fatalf("prompt missing category total:\n%s", stub.lastPrompt)
	}
	// Aggregates only: raw descriptions stay out of the prompt.
	if strings.Contains(stub.lastPrompt, "Fuel") {
		t.Fatalf("prompt leaks transaction detail:\n%s", stub.lastPrompt)
	}
}

func TestGenerateMapsInferenceFailure(t *testing.T) {
	stub := &stubClient{err: llm.ErrUnavailable}
	svc, _, _ := newInsightsFixture(stub)
	_, err := svc.Generate(context.Background(), "u1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestGenerateRejectsEmptyCompletion(t *testing.T) {
	stub := &stubClient{reply: "   "}
	svc, _, _ := newInsightsFixture(stub)
	_, err := svc.Generate(context.Background(), "u1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}
