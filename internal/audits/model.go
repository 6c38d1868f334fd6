package audits

import (
	"time"

	"github.com/shopspring/decimal"
)

// Audit report states.
const (
	AuditDraft     = "draft"
	AuditCompleted = "completed"
)

// Audit item review states.
const (
	ItemPending = "pending"
	ItemCleared = "cleared"
	ItemFlagged = "flagged"
)

// Audit is an audit engagement over a set of items.
type Audit struct {
	ID                   string                `json:"id"`
	UserID               string                `json:"-"`
	Title                string                `json:"title"`
	Status               string                `json:"status"`
	AutomatedAnalysis    *Summary              `json:"automatedAnalysis,omitempty"`
	RiskScores           *RiskScores           `json:"riskScores,omitempty"`
	ControlEffectiveness *ControlEffectiveness `json:"controlEffectiveness,omitempty"`
	AnomalyDetection     *AnomalyReport        `json:"anomalyDetection,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	UpdatedAt            time.Time             `json:"updatedAt"`
}

// AuditItem is one transaction under audit.
type AuditItem struct {
	ID          string          `json:"id"`
	AuditID     string          `json:"-"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// RiskScores is the risk assessment outcome. Scores are in [0, 1].
type RiskScores struct {
	OverallScore float64            `json:"overallScore"`
	ByCategory   map[string]float64 `json:"byCategory"`
}

// ControlEffectiveness is the control testing outcome. Values are in [0, 1].
type ControlEffectiveness struct {
	OverallEffectiveness float64            `json:"overallEffectiveness"`
	ByCategory           map[string]float64 `json:"byCategory"`
}

// Anomaly is one item singled out by anomaly detection.
type Anomaly struct {
	ItemID      string          `json:"itemId"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason"`
}

// AnomalyReport is the anomaly detection outcome.
type AnomalyReport struct {
	Count     int       `json:"count"`
	Anomalies []Anomaly `json:"anomalies"`
}

// Summary condenses the three assessments for the report header.
type Summary struct {
	OverallRisk     string    `json:"overallRisk"`     // High or Low
	ControlStatus   string    `json:"controlStatus"`   // Effective or Needs Improvement
	AnomaliesFound  int       `json:"anomaliesFound"`
	Recommendations []string  `json:"recommendations"`
	CompletedAt     time.Time `json:"completedAt"`
}

// Report is the composite outcome of one automated audit run. Persisted
// records the write outcome: a report can be computed and returned while
// the stored audit kept its prior state.
type Report struct {
	AuditID              string               `json:"auditId"`
	Summary              Summary              `json:"summary"`
	RiskScores           RiskScores           `json:"riskScores"`
	ControlEffectiveness ControlEffectiveness `json:"controlEffectiveness"`
	AnomalyDetection     AnomalyReport        `json:"anomalyDetection"`
	Persisted            bool                 `json:"persisted"`
}
