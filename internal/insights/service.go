package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finbooks-backend/internal/ledger"
	"finbooks-backend/internal/llm"
	"finbooks-backend/internal/shared/telemetry"
)

// ErrUnavailable marks inference collaborator failures.
var ErrUnavailable = errors.New("insights unavailable")

// Service generates advisory text from the owner's ledger.
type Service struct {
	Ledger     *ledger.Service
	LLM        llm.Client
	LLMTimeout time.Duration
}

// Insight is a generated piece of financial advice.
type Insight struct {
	Advice      string    `json:"advice"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Generate summarizes the owner's ledger and asks the inference client
// for advice.
func (s *Service) Generate(ctx context.Context, userID string) (Insight, error) {
	offs, err := s.Ledger.ListWriteOffs(ctx, userID)
	if err != nil {
		return Insight{}, err
	}
	revenue, err := s.Ledger.ListRevenue(ctx, userID)
	if err != nil {
		return Insight{}, err
	}

	prompt := buildPrompt(offs, revenue)

	llmCtx := ctx
	if s.LLMTimeout > 0 {
		var cancel context.CancelFunc
		llmCtx, cancel = context.WithTimeout(ctx, s.LLMTimeout)
		defer cancel()
	}
	advice, err := s.LLM.Complete(llmCtx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) || errors.Is(err, llm.ErrNotConfigured) || errors.Is(err, context.DeadlineExceeded) {
			return Insight{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return Insight{}, err
	}
	advice = strings.TrimSpace(advice)
	if advice == "" {
		return Insight{}, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	telemetry.Info("insights.generated", map[string]any{
		"write_offs": len(offs),
		"revenue":    len(revenue),
		"chars":      len(advice),
	})
	return Insight{Advice: advice, GeneratedAt: time.Now().UTC()}, nil
}
