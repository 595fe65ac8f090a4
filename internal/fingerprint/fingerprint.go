// Package fingerprint computes the stable dedup digest of a parsed
// transaction so re-observation of the same underlying bank event can be
// recognized across scans.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"fjacquet/sms-ledger/internal/models"
)

// DefaultWindowMillis is the default timestamp bucket width. Re-scans of
// the same inbox may observe slightly different delivery timestamps for
// the same bank event; rounding to the minute absorbs that drift. Distinct
// same-amount, same-merchant transactions inside one minute are accepted
// as a collision risk.
const DefaultWindowMillis = 60_000

// hashLength is the number of hex characters kept from the digest.
const hashLength = 16

// Generator computes fingerprints with a configurable bucket width.
type Generator struct {
	windowMillis int64
}

// NewGenerator creates a Generator. A non-positive window falls back to
// the default one-minute bucket.
func NewGenerator(windowMillis int64) *Generator {
	if windowMillis <= 0 {
		windowMillis = DefaultWindowMillis
	}
	return &Generator{windowMillis: windowMillis}
}

// Compute returns the fingerprint hash of a transaction: a truncated
// SHA-256 over counter-party, amount, and the timestamp bucket.
func (g *Generator) Compute(tx models.ParsedTransaction) string {
	bucket := tx.Timestamp / g.windowMillis
	key := fmt.Sprintf("%s-%s-%d", tx.CounterpartyName, tx.Amount.String(), bucket)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:hashLength]
}

// Token wraps a fingerprint hash in the literal marker embedded in ledger
// descriptions. Duplicate detection substring-searches for this exact
// form, so it must appear verbatim in every description the pipeline
// writes.
func Token(hash string) string {
	return "[TXN:" + hash + "]"
}
