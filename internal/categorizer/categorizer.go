// Package categorizer assigns a best-effort category (for debits) or
// source label (for credits) to a parsed transaction using ordered keyword
// group matching.
package categorizer

import (
	"strings"

	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/models"
)

// CategoryStoreInterface abstracts the keyword group store so the
// categorizer can be tested without touching the filesystem.
type CategoryStoreInterface interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// defaultGroups are the built-in debit keyword groups, matched in order
// against the lower-cased message text. User-defined groups from the store
// are tried before these.
var defaultGroups = []models.CategoryConfig{
	{
		Name: models.CategoryFood,
		Keywords: []string{
			"zomato", "swiggy", "dominos", "pizza", "restaurant",
			"cafe", "food", "eats", "dineout", "biryani",
		},
	},
	{
		Name: models.CategoryTransport,
		Keywords: []string{
			"uber", "ola cabs", "rapido", "ride", "cab", "taxi",
			"metro", "fuel", "petrol", "irctc", "redbus",
		},
	},
	{
		Name: models.CategoryBills,
		Keywords: []string{
			"electricity", "bill", "recharge", "broadband", "postpaid",
			"water", "gas", "insurance", "emi", "rent",
		},
	},
}

// Categorizer matches transactions against keyword groups. Groups loaded
// from the store take priority over the built-in defaults; within the
// combined list the first matching group wins.
type Categorizer struct {
	groups []models.CategoryConfig
	logger logging.Logger
}

// NewCategorizer creates a Categorizer, loading user-defined keyword
// groups from the store. A store load failure is logged and the built-in
// defaults are used alone.
func NewCategorizer(store CategoryStoreInterface, logger logging.Logger) *Categorizer {
	c := &Categorizer{logger: logger}

	var custom []models.CategoryConfig
	if store != nil {
		loaded, err := store.LoadCategories()
		if err != nil {
			logger.WithError(err).Warn("Failed to load category groups, using defaults")
		} else {
			custom = loaded
		}
	}
	c.groups = append(append([]models.CategoryConfig{}, custom...), defaultGroups...)
	return c
}

// Categorize returns the category for a debit or the source label for a
// credit.
func (c *Categorizer) Categorize(tx models.ParsedTransaction) string {
	if tx.IsCredit() {
		return c.creditSource(tx)
	}
	return c.debitCategory(tx)
}

// debitCategory tests the lower-cased original text against each keyword
// group in order; the first matching group wins.
func (c *Categorizer) debitCategory(tx models.ParsedTransaction) string {
	text := strings.ToLower(tx.OriginalText)

	for _, group := range c.groups {
		for _, keyword := range group.Keywords {
			if keyword == "" {
				continue
			}
			if strings.Contains(text, strings.ToLower(keyword)) {
				c.logger.WithFields(
					logging.Field{Key: logging.FieldCategory, Value: group.Name},
					logging.Field{Key: "keyword", Value: keyword},
				).Debug("Transaction categorized by keyword group")
				return group.Name
			}
		}
	}
	return models.CategoryUncategorized
}

// creditSource labels an incoming transaction. Salary detection is higher
// confidence than counter-party extraction, so it overrides the name even
// when one was found.
func (c *Categorizer) creditSource(tx models.ParsedTransaction) string {
	if strings.Contains(strings.ToLower(tx.OriginalText), "salary") {
		return models.SourceSalary
	}
	if tx.CounterpartyName != models.UnknownMerchant {
		return tx.CounterpartyName
	}
	return models.SourceOtherIncome
}
