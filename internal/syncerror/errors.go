// Package syncerror defines the error taxonomy of the sync pipeline.
package syncerror

import "fmt"

// AuthorizationError is fatal for a sync run: the message source denied
// inbox read access. No partial progress is reported alongside it.
type AuthorizationError struct {
	Source string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("inbox read access denied by %s", e.Source)
}

// ExtractionError reports why a message did not yield a transaction.
// Callers treat it as a skip, not a failure.
type ExtractionError struct {
	Sender string
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed for sender '%s': %s", e.Sender, e.Reason)
}

// WriteError wraps a per-record ledger insert failure. The batch continues
// past it; the orchestrator counts and logs it.
type WriteError struct {
	Partition   string // "expense" or "income"
	Fingerprint string
	Err         error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("ledger write failed in %s partition for %s: %v",
		e.Partition, e.Fingerprint, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
