package taxcodes

// TaxCode is one canonical deduction category identifier.
type TaxCode struct {
	ID              string
	Code            string
	ExpenseCategory string
	Description     string
}
