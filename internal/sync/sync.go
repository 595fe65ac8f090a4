// Package sync drives a batch of raw messages through the extraction
// pipeline and reconciles the results against the ledger. Processing is
// strictly sequential: duplicate detection reads then writes the shared
// ledger, and the one-message-at-a-time loop is what keeps two messages
// with the same fingerprint from both passing the duplicate check.
package sync

import (
	"context"
	"math"
	"strconv"
	"strings"

	"fjacquet/sms-ledger/internal/accounts"
	"fjacquet/sms-ledger/internal/categorizer"
	"fjacquet/sms-ledger/internal/extractor"
	"fjacquet/sms-ledger/internal/fingerprint"
	"fjacquet/sms-ledger/internal/ledger"
	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/messagesource"
	"fjacquet/sms-ledger/internal/models"
	"fjacquet/sms-ledger/internal/store"
	"fjacquet/sms-ledger/internal/syncerror"
)

// descriptionSnippetLength is how much of the original message text is
// carried into the ledger entry description after the fingerprint token.
const descriptionSnippetLength = 50

// ProgressFunc receives the running counters during a batch run. Callbacks
// are invoked from the sync loop and must return promptly; the loop does
// not wait on slow consumers beyond the call itself.
type ProgressFunc func(models.SyncProgress)

// Syncer orchestrates one batch run end to end.
type Syncer struct {
	source           messagesource.Source
	ledger           ledger.Store
	settings         *store.Settings
	extractor        *extractor.Extractor
	categorizer      *categorizer.Categorizer
	fingerprints     *fingerprint.Generator
	logger           logging.Logger
	maxMessages      int
	progressInterval int
}

// Options configures a Syncer beyond its collaborators.
type Options struct {
	MaxMessages      int // upper bound on the fetched batch; 0 means no bound
	ProgressInterval int // progress callback cadence in messages; 0 means every 5th
}

// NewSyncer wires a Syncer from its collaborators. Settings may be empty
// but not nil-checked per call, so pass &store.Settings{} when the user
// has configured nothing.
func NewSyncer(
	source messagesource.Source,
	ledgerStore ledger.Store,
	settings *store.Settings,
	ext *extractor.Extractor,
	cat *categorizer.Categorizer,
	fp *fingerprint.Generator,
	logger logging.Logger,
	opts Options,
) *Syncer {
	interval := opts.ProgressInterval
	if interval <= 0 {
		interval = 5
	}
	return &Syncer{
		source:           source,
		ledger:           ledgerStore,
		settings:         settings,
		extractor:        ext,
		categorizer:      cat,
		fingerprints:     fp,
		logger:           logger,
		maxMessages:      opts.MaxMessages,
		progressInterval: interval,
	}
}

// SyncAll runs one batch: fetches the inbox, pushes every message through
// the pipeline, writes accepted transactions to the ledger, and returns
// the final counters. A denied authorization check fails the run before
// any progress is reported. Messages that fail to parse, are blocklisted,
// or duplicate a prior entry are counted as processed but not added. A
// per-record write failure is logged and counted without aborting the
// remaining batch.
func (s *Syncer) SyncAll(ctx context.Context, onProgress ProgressFunc) (models.SyncProgress, error) {
	if !s.source.HasReadAccess() {
		return models.SyncProgress{}, &syncerror.AuthorizationError{Source: "message source"}
	}

	messages, err := s.source.ListMessages(ctx, s.maxMessages)
	if err != nil {
		return models.SyncProgress{}, err
	}

	progress := models.SyncProgress{Total: len(messages)}
	if len(messages) == 0 {
		s.report(onProgress, progress)
		return progress, nil
	}

	for i, msg := range messages {
		if err := ctx.Err(); err != nil {
			return progress, err
		}

		s.processMessage(msg, &progress)
		progress.Processed++

		if progress.Processed%s.progressInterval == 0 || i == len(messages)-1 {
			s.report(onProgress, progress)
		}
	}

	s.logger.WithFields(
		logging.Field{Key: "total", Value: progress.Total},
		logging.Field{Key: "added", Value: progress.Added},
		logging.Field{Key: "failed_writes", Value: progress.FailedWrites},
	).Info("Sync run complete")
	return progress, nil
}

// processMessage pushes one message through filter, extraction, dedup,
// resolution, categorization, and the ledger write. Skips only log; write
// failures also show up in the counters.
func (s *Syncer) processMessage(msg models.RawMessage, progress *models.SyncProgress) {
	timestamp, ok := coerceTimestamp(msg.Timestamp)
	if !ok {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldSender, Value: msg.Sender},
			logging.Field{Key: logging.FieldReason, Value: "unparseable timestamp"},
		).Debug("Skipping message")
		return
	}

	if s.isBlocked(msg) {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldSender, Value: msg.Sender},
			logging.Field{Key: logging.FieldReason, Value: "blocklisted"},
		).Debug("Skipping message")
		return
	}

	tx, err := s.extractor.Extract(msg.Sender, msg.Body, timestamp)
	if err != nil {
		s.logger.WithError(err).Debug("Skipping non-financial message")
		return
	}

	hash := s.fingerprints.Compute(*tx)
	token := fingerprint.Token(hash)

	// A failed lookup is a read problem, not a write failure; skip the
	// message rather than risk a duplicate insert.
	duplicate, err := s.isDuplicate(*tx, token)
	if err != nil {
		s.logger.WithError(err).WithField(logging.FieldFingerprint, hash).
			Warn("Duplicate lookup failed, skipping message")
		return
	}
	if duplicate {
		s.logger.WithField(logging.FieldFingerprint, hash).Debug("Skipping duplicate transaction")
		return
	}

	if name, ok := accounts.Resolve(tx.AccountSuffix, s.settings.BankAccounts); ok {
		tx.ResolvedAccountName = name
	}

	label := s.categorizer.Categorize(*tx)
	description := token + " " + snippet(tx.OriginalText)
	account := tx.ResolvedAccountName
	if account == "" {
		account = tx.AccountSuffix
	}

	if err := s.insert(*tx, label, description, account, hash); err != nil {
		s.logger.WithError(err).Warn("Ledger write failed, continuing batch")
		progress.FailedWrites++
		return
	}
	progress.Added++
}

// isDuplicate checks the partition matching the transaction direction for
// a prior entry carrying the same fingerprint token and exact amount.
func (s *Syncer) isDuplicate(tx models.ParsedTransaction, token string) (bool, error) {
	if tx.IsDebit() {
		matches, err := s.ledger.FindExpenses(token, tx.Amount)
		return len(matches) > 0, err
	}
	matches, err := s.ledger.FindIncomes(token, tx.Amount)
	return len(matches) > 0, err
}

// insert writes the accepted transaction into its ledger partition.
func (s *Syncer) insert(tx models.ParsedTransaction, label, description, account, hash string) error {
	if tx.IsDebit() {
		err := s.ledger.InsertExpense(models.ExpenseEntry{
			Amount:      tx.Amount,
			Category:    label,
			Description: description,
			Date:        tx.Timestamp,
			Account:     account,
		})
		if err != nil {
			return &syncerror.WriteError{Partition: "expense", Fingerprint: hash, Err: err}
		}
		return nil
	}

	err := s.ledger.InsertIncome(models.IncomeEntry{
		Amount:      tx.Amount,
		Source:      label,
		Description: description,
		Date:        tx.Timestamp,
		Account:     account,
	})
	if err != nil {
		return &syncerror.WriteError{Partition: "income", Fingerprint: hash, Err: err}
	}
	return nil
}

// isBlocked applies the user's sender and keyword blocklists: substring
// match against the lower-cased sender and body respectively.
func (s *Syncer) isBlocked(msg models.RawMessage) bool {
	sender := strings.ToLower(msg.Sender)
	body := strings.ToLower(msg.Body)

	for _, blocked := range s.settings.BlockedSenders {
		if blocked != "" && strings.Contains(sender, strings.ToLower(blocked)) {
			return true
		}
	}
	for _, keyword := range s.settings.BlockedKeywords {
		if keyword != "" && strings.Contains(body, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

func (s *Syncer) report(onProgress ProgressFunc, progress models.SyncProgress) {
	if onProgress != nil {
		onProgress(progress)
	}
}

// coerceTimestamp parses an integer-milliseconds timestamp that may arrive
// as a plain integer string or a float-formatted one. Anything that does
// not resolve to a finite number disqualifies the message.
func coerceTimestamp(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ms, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}

// snippet returns the first part of the original message text for the
// ledger description. Cuts on a rune boundary so currency symbols in the
// body never leave invalid UTF-8 behind.
func snippet(text string) string {
	if len(text) <= descriptionSnippetLength {
		return text
	}
	runes := []rune(text)
	if len(runes) <= descriptionSnippetLength {
		return text
	}
	return string(runes[:descriptionSnippetLength])
}
