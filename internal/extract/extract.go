package extract

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"
)

// Kind classifies an extracted tuple as money out or money in.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Tuple is one financial line extracted from a document. Tuples are
// ephemeral: produced and consumed within a single analysis run.
type Tuple struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Kind        Kind
}

// ErrUnsupportedInput marks structurally unreadable tabular content.
var ErrUnsupportedInput = errors.New("unsupported input")

// currencyPattern matches an optional dollar sign, a 1-3 digit group,
// optional comma-separated thousands groups, and optional cents. On
// ungrouped runs of digits it matches only the first three ("1250" -> "125");
// a known quirk kept for compatibility with existing documents.
var currencyPattern = regexp.MustCompile(`\$?\d{1,3}(,\d{3})*(\.\d{2})?`)

// expenseKeywords gates which free-text lines are treated as expenses.
var expenseKeywords = []string{"expense", "payment", "purchase", "cost", "fee", "charge"}

// Tabular parses comma-delimited content. The first line is a header naming
// fields; amount/description/date are recognized under lowercase or
// capitalized aliases. Rows whose amount does not parse are skipped silently.
// Embedded commas inside quoted fields are not handled; that is a documented
// limitation of the format this pipeline accepts, not something to repair here.
func Tabular(text string) ([]Tuple, error) {
	if !utf8.ValidString(text) {
		return nil, ErrUnsupportedInput
	}

	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, ErrUnsupportedInput
	}

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var tuples []Tuple
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(fields) {
				row[header] = strings.TrimSpace(fields[i])
			} else {
				row[header] = ""
			}
		}

		amountRaw := firstNonEmpty(row["amount"], row["Amount"], "0")
		amount, err := decimal.NewFromString(amountRaw)
		if err != nil {
			continue
		}

		kind := KindIncome
		if amount.Sign() < 0 {
			kind = KindExpense
		}

		tuples = append(tuples, Tuple{
			Amount:      amount,
			Description: firstNonEmpty(row["description"], row["Description"]),
			Date:        parseDate(firstNonEmpty(row["date"], row["Date"])),
			Kind:        kind,
		})
	}
	return tuples, nil
}

// FreeText scans line-oriented text for expense lines. A line yields a tuple
// only when it carries a currency-shaped token and an expense keyword; other
// lines are left for the income/equity collaborators.
func FreeText(text string) []Tuple {
	var tuples []Tuple
	for _, line := range strings.Split(text, "\n") {
		token := currencyPattern.FindString(line)
		if token == "" {
			continue
		}
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(token)
		amount, err := decimal.NewFromString(cleaned)
		if err != nil {
			continue
		}
		if !containsExpenseKeyword(line) {
			continue
		}
		tuples = append(tuples, Tuple{
			Amount:      amount,
			Description: strings.TrimSpace(line),
			Kind:        KindExpense,
		})
	}
	return tuples
}

// PDFText flattens a PDF payload to plain text so the free-text path can
// process it line by line.
func PDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func containsExpenseKeyword(line string) bool {
	lower := strings.ToLower(line)
	for _, keyword := range expenseKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006"}

func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC()
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
