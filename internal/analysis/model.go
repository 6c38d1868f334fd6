package analysis

import (
	"time"

	"github.com/shopspring/decimal"
)

// Risk levels reported by a document analysis.
const (
	RiskLow  = "low"
	RiskHigh = "high"
)

// Transaction is one extracted financial line as reported in the result.
type Transaction struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"` // expense or income
}

// Result is the outcome of a document analysis run.
type Result struct {
	DocumentID            string              `json:"documentId"`
	RiskLevel             string              `json:"riskLevel"`
	Transactions          []Transaction       `json:"transactions"`
	WriteOffs             []WriteOffCandidate `json:"writeOffs"`
	Findings              []string            `json:"findings"`
	Recommendations       []string            `json:"recommendations"`
	WriteOffsCreated      int                 `json:"writeOffsCreated"`
	RevenueRecordsCreated int                 `json:"revenueRecordsCreated"`
	BalanceSheetUpdated   bool                `json:"balanceSheetUpdated"`
}

// recommendations accompanies every analysis result; downstream review is
// always expected regardless of what was extracted.
var recommendations = []string{
	"Review generated income statement for accuracy",
	"Verify revenue and expense classifications",
	"Consider any missing transactions",
}
