// Package models defines the core data structures shared across the
// message-to-ledger pipeline.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sentinel values used when extraction yields no usable result.
// Extraction degrades to these rather than failing outright.
const (
	UnknownMerchant = "Unknown Merchant"
	UnknownAccount  = "Unknown"
)

// Direction indicates whether a transaction moves money out of or into
// the user's account.
type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// RawMessage is an inbound short text notification as delivered by the
// message source. It is transient and never persisted as-is.
type RawMessage struct {
	Sender    string `csv:"sender"`
	Body      string `csv:"body"`
	Timestamp string `csv:"timestamp"` // integer milliseconds, possibly as a numeric string
}

// ParsedTransaction is the pipeline's central value object. One exists only
// if both a direction and a strictly positive amount were extracted from a
// message; every other field degrades to a sentinel or stays empty.
type ParsedTransaction struct {
	Amount              decimal.Decimal
	Direction           Direction
	CounterpartyName    string
	AccountSuffix       string
	ResolvedAccountName string // set by the account resolver, empty if unmatched
	Timestamp           int64  // milliseconds since epoch
	OriginalText        string // retained for audit and dedup key material
	IsTransferLike      bool
	DestinationSuffix   string // only meaningful when IsTransferLike
}

// IsDebit returns true if the transaction is a debit.
func (t ParsedTransaction) IsDebit() bool {
	return t.Direction == DirectionDebit
}

// IsCredit returns true if the transaction is a credit.
func (t ParsedTransaction) IsCredit() bool {
	return t.Direction == DirectionCredit
}

// BankAccountMapping links an account-number suffix to a user-chosen label.
// Supplied by settings; read-only to the pipeline.
type BankAccountMapping struct {
	Last4 string `yaml:"last4"`
	Name  string `yaml:"name"`
}

// SyncProgress carries the running counters of one batch run. Total is
// fixed at batch size; Processed and Added grow monotonically.
type SyncProgress struct {
	Total        int
	Processed    int
	Added        int
	FailedWrites int
}

// CategoryConfig represents a named keyword group for debit categorization.
// Groups are matched in declaration order; the first group with a matching
// keyword wins.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the top-level structure of a categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// NormalizeSender uppercases a sender identifier and strips everything that
// is not a letter or digit. Both sender classifiers operate on this form.
func NormalizeSender(sender string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(sender) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
