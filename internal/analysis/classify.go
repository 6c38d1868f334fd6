package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finbooks-backend/internal/extract"
	"finbooks-backend/internal/shared/util"
	"finbooks-backend/internal/taxcodes"
)

// WriteOffCandidate is an expense tuple classified for persistence.
// Category is the record label ("Categorized"/"Uncategorized"); the
// underlying tax category, when one matched, travels separately in
// TaxCategory.
type WriteOffCandidate struct {
	Amount      decimal.Decimal `json:"amount"` // positive
	Description string          `json:"description"`
	Category    string          `json:"category"`
	TaxCategory string          `json:"taxCategory,omitempty"`
	TaxCodeID   string          `json:"taxCodeId,omitempty"`
}

// RevenueCandidate is an income tuple classified for persistence.
type RevenueCandidate struct {
	Amount      decimal.Decimal // positive
	Description string
	Date        time.Time
}

// Classified is the outcome of running tuples through classification.
type Classified struct {
	WriteOffs []WriteOffCandidate
	Revenue   []RevenueCandidate
	Findings  []string
	Net       decimal.Decimal // income minus expenses
}

// Classifier turns extracted tuples into ledger candidates and findings.
type Classifier struct {
	Matcher *taxcodes.Matcher
}

// ClassifyTabular handles tuples from comma-delimited documents. Row
// descriptions are free of keyword signal by assumption, so expenses land
// in the Uncategorized bucket without consulting the tax-code matcher and
// the finding interpolates the raw description.
func (c *Classifier) ClassifyTabular(tuples []extract.Tuple) Classified {
	var out Classified
	for _, t := range tuples {
		out.Net = out.Net.Add(t.Amount)
		switch t.Kind {
		case extract.KindExpense:
			abs := t.Amount.Abs()
			out.WriteOffs = append(out.WriteOffs, WriteOffCandidate{
				Amount:      abs,
				Description: t.Description,
				Category:    "Uncategorized",
			})
			out.Findings = append(out.Findings,
				fmt.Sprintf("Potential write-off detected: $%s - %s", util.FormatAmount(abs), t.Description))
		case extract.KindIncome:
			if t.Amount.Sign() > 0 {
				out.Revenue = append(out.Revenue, RevenueCandidate{
					Amount:      t.Amount,
					Description: t.Description,
					Date:        t.Date,
				})
			}
		}
	}
	return out
}

// ClassifyFreeText handles tuples from narrative documents. Each expense
// runs through the tax-code matcher; the finding reports only whether the
// expense was categorized, not the line it came from.
func (c *Classifier) ClassifyFreeText(ctx context.Context, tuples []extract.Tuple) (Classified, error) {
	var out Classified
	for _, t := range tuples {
		if t.Kind != extract.KindExpense {
			continue
		}
		out.Net = out.Net.Sub(t.Amount)

		match, err := c.Matcher.Match(ctx, t.Description)
		if err != nil {
			return Classified{}, err
		}
		label := "Categorized"
		if match.CodeID == "" {
			label = "Uncategorized"
		}
		out.WriteOffs = append(out.WriteOffs, WriteOffCandidate{
			Amount:      t.Amount,
			Description: t.Description,
			Category:    label,
			TaxCategory: match.Category,
			TaxCodeID:   match.CodeID,
		})
		out.Findings = append(out.Findings,
			fmt.Sprintf("Potential write-off detected: $%s - %s", util.FormatAmount(t.Amount), label))
	}
	return out, nil
}
