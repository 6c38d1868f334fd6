package taxcodes

// Defaults mirrors the seed migration; used to prime in-memory repos in dev.
func Defaults() []TaxCode {
	return []TaxCode{
		{ID: "tc-transportation", Code: "TRANS-100", ExpenseCategory: "Transportation", Description: "Vehicle, fuel, parking and toll expenses"},
		{ID: "tc-office", Code: "OFFICE-200", ExpenseCategory: "Office", Description: "Office supplies and furnishings"},
		{ID: "tc-marketing", Code: "MKTG-300", ExpenseCategory: "Marketing", Description: "Advertising and promotional expenses"},
		{ID: "tc-travel", Code: "TRAVEL-400", ExpenseCategory: "Travel", Description: "Business travel and accommodation"},
		{ID: "tc-equipment", Code: "EQUIP-500", ExpenseCategory: "Equipment", Description: "Machinery, tools and hardware"},
		{ID: "tc-services", Code: "SVC-600", ExpenseCategory: "Services", Description: "Professional services and subscriptions"},
	}
}
