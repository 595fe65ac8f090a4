package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/sms-ledger/internal/models"
)

// MockStore is an in-memory Store implementation for testing. InsertErr,
// when set, is returned by both insert methods to exercise per-record
// write failure handling; FindErr does the same for the lookup methods.
type MockStore struct {
	Expenses  []models.ExpenseEntry
	Incomes   []models.IncomeEntry
	InsertErr error
	FindErr   error
}

// NewMockStore creates an empty in-memory ledger.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// InsertExpense appends to the in-memory expense partition.
func (m *MockStore) InsertExpense(entry models.ExpenseEntry) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Expenses = append(m.Expenses, entry)
	return nil
}

// InsertIncome appends to the in-memory income partition.
func (m *MockStore) InsertIncome(entry models.IncomeEntry) error {
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Incomes = append(m.Incomes, entry)
	return nil
}

// FindExpenses filters the in-memory expense partition.
func (m *MockStore) FindExpenses(descriptionToken string, amount decimal.Decimal) ([]models.ExpenseEntry, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var matches []models.ExpenseEntry
	for _, e := range m.Expenses {
		if strings.Contains(e.Description, descriptionToken) && e.Amount.Equal(amount) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// FindIncomes filters the in-memory income partition.
func (m *MockStore) FindIncomes(descriptionToken string, amount decimal.Decimal) ([]models.IncomeEntry, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var matches []models.IncomeEntry
	for _, e := range m.Incomes {
		if strings.Contains(e.Description, descriptionToken) && e.Amount.Equal(amount) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}
