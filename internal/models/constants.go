package models

// Debit category names assigned by the categorizer.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryBills         = "Bills"
	CategoryUncategorized = "Uncategorized"
)

// Credit source labels assigned by the categorizer.
const (
	SourceSalary      = "Salary"
	SourceOtherIncome = "Other Income"
)
