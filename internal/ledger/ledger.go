// Package ledger persists accepted expense and income records and answers
// the duplicate lookups the sync pipeline relies on.
package ledger

import (
	"github.com/shopspring/decimal"

	"fjacquet/sms-ledger/internal/models"
)

// Store is the persistence surface consumed by the sync pipeline. Inserts
// are atomic per-record and immediately durable; Find methods do a
// substring match on the description combined with an exact amount match.
// The amount check guards against hash-truncation collisions in the
// description token.
type Store interface {
	InsertExpense(entry models.ExpenseEntry) error
	InsertIncome(entry models.IncomeEntry) error
	FindExpenses(descriptionToken string, amount decimal.Decimal) ([]models.ExpenseEntry, error)
	FindIncomes(descriptionToken string, amount decimal.Decimal) ([]models.IncomeEntry, error)
}
