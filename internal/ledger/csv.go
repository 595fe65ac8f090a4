package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/models"
)

// CSVStore keeps the ledger in two CSV files, one per partition. Each
// insert rewrites the partition file so the record is durable before the
// next message is processed. A mutex serializes file access because other
// parts of the application read the ledger concurrently.
type CSVStore struct {
	expensesFile string
	incomesFile  string
	logger       logging.Logger
	mu           sync.Mutex
}

// NewCSVStore creates a CSV-backed ledger over the given partition files.
func NewCSVStore(expensesFile, incomesFile string, logger logging.Logger) *CSVStore {
	return &CSVStore{
		expensesFile: expensesFile,
		incomesFile:  incomesFile,
		logger:       logger,
	}
}

// InsertExpense appends a record to the expense partition.
func (s *CSVStore) InsertExpense(entry models.ExpenseEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readCSV[models.ExpenseEntry](s.expensesFile)
	if err != nil {
		return fmt.Errorf("error loading expense partition: %w", err)
	}
	entries = append(entries, entry)
	if err := writeCSV(s.expensesFile, entries); err != nil {
		return fmt.Errorf("error writing expense partition: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldAmount, Value: entry.Amount.String()},
		logging.Field{Key: logging.FieldCategory, Value: entry.Category},
		logging.Field{Key: logging.FieldAccount, Value: entry.Account},
	).Debug("Inserted expense entry")
	return nil
}

// InsertIncome appends a record to the income partition.
func (s *CSVStore) InsertIncome(entry models.IncomeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readCSV[models.IncomeEntry](s.incomesFile)
	if err != nil {
		return fmt.Errorf("error loading income partition: %w", err)
	}
	entries = append(entries, entry)
	if err := writeCSV(s.incomesFile, entries); err != nil {
		return fmt.Errorf("error writing income partition: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldAmount, Value: entry.Amount.String()},
		logging.Field{Key: "source", Value: entry.Source},
		logging.Field{Key: logging.FieldAccount, Value: entry.Account},
	).Debug("Inserted income entry")
	return nil
}

// FindExpenses returns expense records whose description contains the
// token and whose amount matches exactly.
func (s *CSVStore) FindExpenses(descriptionToken string, amount decimal.Decimal) ([]models.ExpenseEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readCSV[models.ExpenseEntry](s.expensesFile)
	if err != nil {
		return nil, fmt.Errorf("error loading expense partition: %w", err)
	}

	var matches []models.ExpenseEntry
	for _, e := range entries {
		if strings.Contains(e.Description, descriptionToken) && e.Amount.Equal(amount) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// FindIncomes returns income records whose description contains the token
// and whose amount matches exactly.
func (s *CSVStore) FindIncomes(descriptionToken string, amount decimal.Decimal) ([]models.IncomeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readCSV[models.IncomeEntry](s.incomesFile)
	if err != nil {
		return nil, fmt.Errorf("error loading income partition: %w", err)
	}

	var matches []models.IncomeEntry
	for _, e := range entries {
		if strings.Contains(e.Description, descriptionToken) && e.Amount.Equal(amount) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// readCSV reads a partition file into a slice of records. A missing file
// is an empty partition, not an error.
func readCSV[T any](filePath string) ([]T, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var rows []T
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil, nil
		}
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return rows, nil
}

// writeCSV rewrites a partition file from a slice of records.
func writeCSV[T any](filePath string, rows []T) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}
