package messagesource

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/models"
)

// sampleMessages is the built-in fixture batch used when no messages file
// is configured. Four messages parse into transactions; the last is
// ordinary conversation and does not.
var sampleMessages = []models.RawMessage{
	{
		Sender:    "HDFCBK",
		Body:      "Rs. 1500.00 debited from a/c 1234 on 12-02-25 to ZOMATO. UPI Ref: 12345678.",
		Timestamp: "1739347200000",
	},
	{
		Sender:    "ICICIB",
		Body:      "INR 450.00 debited from A/c X6789 via UPI for UBER RIDES.",
		Timestamp: "1739348400000",
	},
	{
		Sender:    "SBIINB",
		Body:      "Rs. 50000.00 credited to a/c 1234 on 30-01-25. Salary for Jan.",
		Timestamp: "1738216800000",
	},
	{
		Sender:    "AXISBK",
		Body:      "Rs. 299.00 debited from a/c 5678 for NETFLIX subscription bill payment.",
		Timestamp: "1739350200000",
	},
	{
		Sender:    "MOM",
		Body:      "Hello beta, sent you some money.",
		Timestamp: "1739351100000",
	},
}

// FixtureSource serves messages from a CSV file, or the built-in sample
// batch when no file is configured.
type FixtureSource struct {
	filePath string
	logger   logging.Logger
}

// NewFixtureSource creates a fixture-backed Source. An empty file path
// selects the built-in sample batch.
func NewFixtureSource(filePath string, logger logging.Logger) *FixtureSource {
	return &FixtureSource{filePath: filePath, logger: logger}
}

// HasReadAccess always grants access; fixtures need no permission prompt.
func (f *FixtureSource) HasReadAccess() bool {
	return true
}

// ListMessages returns at most max messages from the fixture set.
func (f *FixtureSource) ListMessages(ctx context.Context, max int) ([]models.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	messages := sampleMessages
	if f.filePath != "" {
		loaded, err := f.loadFile()
		if err != nil {
			return nil, err
		}
		messages = loaded
	}

	if max > 0 && len(messages) > max {
		messages = messages[:max]
	}
	out := make([]models.RawMessage, len(messages))
	copy(out, messages)
	return out, nil
}

func (f *FixtureSource) loadFile() ([]models.RawMessage, error) {
	file, err := os.Open(f.filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening messages file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var messages []models.RawMessage
	if err := gocsv.UnmarshalFile(file, &messages); err != nil {
		return nil, fmt.Errorf("error parsing messages file: %w", err)
	}

	f.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: f.filePath},
		logging.Field{Key: logging.FieldCount, Value: len(messages)},
	).Debug("Loaded messages from fixture file")
	return messages, nil
}
