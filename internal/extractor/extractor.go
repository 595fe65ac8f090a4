// Package extractor turns unstructured bank notification text into
// structured transactions. Every field is extracted by an ordered,
// first-match-wins rule cascade; see rules.go for the tables and their
// ordering rationale.
package extractor

import (
	"strings"

	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/models"
	"fjacquet/sms-ledger/internal/senderfilter"
	"fjacquet/sms-ledger/internal/syncerror"

	"github.com/shopspring/decimal"
)

const maxNameLength = 50

// Extractor applies the rule cascades to raw message text.
type Extractor struct {
	logger logging.Logger
}

// New creates an Extractor.
func New(logger logging.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses a single message into a transaction. It returns an
// ExtractionError when the message is not a recognizable financial event;
// callers treat that as a skip, not a failure. A transaction is returned
// only if a direction and a strictly positive amount were found; all other
// fields degrade to sentinels.
func (e *Extractor) Extract(sender, body string, timestamp int64) (*models.ParsedTransaction, error) {
	if strings.TrimSpace(body) == "" || strings.TrimSpace(sender) == "" {
		return nil, &syncerror.ExtractionError{Sender: sender, Reason: "empty sender or body"}
	}
	if senderfilter.IsIgnorable(sender) {
		return nil, &syncerror.ExtractionError{Sender: sender, Reason: "sender on deny-list"}
	}

	direction := models.DirectionDebit
	raw, ruleName, ok := firstMatch(debitRules, body)
	if !ok {
		direction = models.DirectionCredit
		raw, ruleName, ok = firstMatch(creditRules, body)
	}
	if !ok {
		return nil, &syncerror.ExtractionError{Sender: sender, Reason: "no amount pattern matched"}
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil || !amount.IsPositive() {
		return nil, &syncerror.ExtractionError{Sender: sender, Reason: "amount not a positive number"}
	}

	tx := &models.ParsedTransaction{
		Amount:           amount,
		Direction:        direction,
		CounterpartyName: models.UnknownMerchant,
		AccountSuffix:    models.UnknownAccount,
		Timestamp:        timestamp,
		OriginalText:     body,
	}

	if suffix, _, ok := firstMatch(accountRules, body); ok {
		tx.AccountSuffix = suffix
	}
	if name, _, ok := firstMatch(counterpartyRules, body); ok {
		tx.CounterpartyName = normalizeName(name)
	}

	if anyMatch(transferRules, body) {
		tx.IsTransferLike = true
		if dest, _, ok := firstMatch(destinationRules, body); ok {
			tx.DestinationSuffix = dest
		}
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldSender, Value: sender},
		logging.Field{Key: logging.FieldDirection, Value: string(direction)},
		logging.Field{Key: logging.FieldAmount, Value: amount.String()},
		logging.Field{Key: logging.FieldMerchant, Value: tx.CounterpartyName},
		logging.Field{Key: "rule", Value: ruleName},
	).Debug("Extracted transaction from message")

	return tx, nil
}

// normalizeName post-processes an extracted counter-party name: anything
// mentioning UPI collapses to a fixed label, and overlong names are
// truncated with an ellipsis.
func normalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UnknownMerchant
	}
	if strings.Contains(strings.ToLower(name), "upi") {
		return "UPI Transaction"
	}
	if len(name) > maxNameLength {
		return name[:maxNameLength-3] + "..."
	}
	return name
}
