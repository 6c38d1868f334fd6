package extract

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTabularClassifiesBySign(t *testing.T) {
	text := "amount,description\n-45.00,Office Depot supplies\n120.00,Client payment"
	tuples, err := Tabular(text)
	if err != nil {
		t.Fatalf("Tabular: %v", err)
	}
	if len(tuples) != 2 {
		t.Fatalf("expected 2 tuples, got %d", len(tuples))
	}
	if !tuples[0].Amount.Equal(decimal.RequireFromString("-45.00")) {
		t.Fatalf("unexpected amount: %s", tuples[0].Amount)
	}
	if tuples[0].Kind != KindExpense {
		t.Fatalf("expected expense, got %s", tuples[0].Kind)
	}
	if tuples[0].Description != "Office Depot supplies" {
		t.Fatalf("unexpected description: %q", tuples[0].Description)
	}
	if tuples[1].Kind != KindIncome {
		t.Fatalf("expected income, got %s", tuples[1].Kind)
	}
}

func TestTabularSkipsUnparsableAmounts(t *testing.T) {
	text := "amount,description\nnot-a-number,Mystery charge\n10.00,Refund"
	tuples, err := Tabular(text)
	if err != nil {
		t.Fatalf("Tabular: %v", err)
	}
	if len(tuples) != 1 {
		t.Fatalf("expected 1 tuple, got %d", len(tuples))
	}
	if tuples[0].Description != "Refund" {
		t.Fatalf("unexpected surviving row: %q", tuples[0].Description)
	}
}

func TestTabularCapitalizedAliases(t *testing.T) {
	text := "Amount,Description,Date\n-12.50,Parking fee,2024-03-01"
	tuples, err := Tabular(text)
	if err != nil {
		t.Fatalf("Tabular: %v", err)
	}
	if len(tuples) != 1 {
		t.Fatalf("expected 1 tuple, got %d", len(tuples))
	}
	if tuples[0].Description != "Parking fee" {
		t.Fatalf("unexpected description: %q", tuples[0].Description)
	}
	if got := tuples[0].Date.Format("2006-01-02"); got != "2024-03-01" {
		t.Fatalf("unexpected date: %s", got)
	}
}

func TestTabularMissingAmountColumnDefaultsToZero(t *testing.T) {
	text := "description\nJust words"
	tuples, err := Tabular(text)
	if err != nil {
		t.Fatalf("Tabular: %v", err)
	}
	if len(tuples) != 1 {
		t.Fatalf("expected 1 tuple, got %d", len(tuples))
	}
	if !tuples[0].Amount.IsZero() || tuples[0].Kind != KindIncome {
		t.Fatalf("expected zero income tuple, got %s %s", tuples[0].Amount, tuples[0].Kind)
	}
}

func TestTabularRejectsBinaryContent(t *testing.T) {
	if _, err := Tabular(string([]byte{0xff, 0xfe, 0x00, 0x41})); err == nil {
		t.Fatalf("expected structural error for binary content")
	}
}

func TestTabularEmptyDocumentIsStructuralError(t *testing.T) {
	if _, err := Tabular(""); err == nil {
		t.Fatalf("expected structural error for empty content")
	}
}

func TestFreeTextEmitsExpenseTuples(t *testing.T) {
	text := "Paid fuel expense of $1,250.00 for delivery van\nMonthly revenue was $9,000.00\nNothing financial here"
	tuples := FreeText(text)
	if len(tuples) != 1 {
		t.Fatalf("expected 1 tuple, got %d", len(tuples))
	}
	if !tuples[0].Amount.Equal(decimal.RequireFromString("1250.00")) {
		t.Fatalf("unexpected amount: %s", tuples[0].Amount)
	}
	if tuples[0].Kind != KindExpense {
		t.Fatalf("expected expense, got %s", tuples[0].Kind)
	}
	if tuples[0].Description != "Paid fuel expense of $1,250.00 for delivery van" {
		t.Fatalf("unexpected description: %q", tuples[0].Description)
	}
}

func TestFreeTextTokenWithoutKeywordIsIgnored(t *testing.T) {
	tuples := FreeText("Received $2,000.00 from a client")
	if len(tuples) != 0 {
		t.Fatalf("expected no tuples, got %d", len(tuples))
	}
}

func TestFreeTextUngroupedDigitsQuirk(t *testing.T) {
	// The currency pattern only captures the leading three digits of an
	// ungrouped run; compatibility behavior, see currencyPattern.
	tuples := FreeText("Service fee 1250 charged")
	if len(tuples) != 1 {
		t.Fatalf("expected 1 tuple, got %d", len(tuples))
	}
	if !tuples[0].Amount.Equal(decimal.NewFromInt(125)) {
		t.Fatalf("expected quirk amount 125, got %s", tuples[0].Amount)
	}
}

func TestFreeTextEmptyDocumentYieldsNoTuples(t *testing.T) {
	if tuples := FreeText(""); len(tuples) != 0 {
		t.Fatalf("expected no tuples, got %d", len(tuples))
	}
}
