package models

import "github.com/shopspring/decimal"

// ExpenseEntry is a persisted debit record in the expense partition of the
// ledger. Description carries the dedup fingerprint token verbatim; it must
// stay substring-searchable.
type ExpenseEntry struct {
	Amount      decimal.Decimal `csv:"amount"`
	Category    string          `csv:"category"`
	Description string          `csv:"description"`
	Date        int64           `csv:"date"` // milliseconds since epoch
	Account     string          `csv:"account"`
}

// IncomeEntry is a persisted credit record in the income partition of the
// ledger. Same description invariant as ExpenseEntry.
type IncomeEntry struct {
	Amount      decimal.Decimal `csv:"amount"`
	Source      string          `csv:"source"`
	Description string          `csv:"description"`
	Date        int64           `csv:"date"`
	Account     string          `csv:"account"`
}
