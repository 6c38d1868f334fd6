package insights

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"finbooks-backend/internal/ledger"
	"finbooks-backend/internal/shared/util"
)

// buildPrompt condenses the owner's ledger into a short advisory prompt.
// Only aggregates cross the wire; individual transactions stay local.
func buildPrompt(offs []ledger.WriteOff, revenue []ledger.RevenueRecord) string {
	totals := make(map[string]decimal.Decimal)
	var expenseTotal decimal.Decimal
	for _, off := range offs {
		totals[off.Category] = totals[off.Category].Add(off.Amount)
		expenseTotal = expenseTotal.Add(off.Amount)
	}
	var revenueTotal decimal.Decimal
	for _, rec := range revenue {
		revenueTotal = revenueTotal.Add(rec.Amount)
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("You are a financial advisor for a small business. ")
	b.WriteString("Given the figures below, give three short, practical suggestions ")
	b.WriteString("to improve tax efficiency and cash flow. Plain text, no headings.\n\n")
	fmt.Fprintf(&b, "Total revenue: $%s\n", util.FormatAmount(revenueTotal))
	fmt.Fprintf(&b, "Total deductible expenses: $%s\n", util.FormatAmount(expenseTotal))
	if len(categories) > 0 {
		b.WriteString("Expenses by category:\n")
		for _, category := range categories {
			fmt.Fprintf(&b, "- %s: $%s\n", category, util.FormatAmount(totals[category]))
		}
	}
	return b.String()
}
