// Package accounts maps extracted account-number suffixes to user-labelled
// bank accounts.
package accounts

import (
	"strings"

	"fjacquet/sms-ledger/internal/models"
)

// minSuffixLength is the shortest cleaned suffix considered resolvable.
const minSuffixLength = 3

// Resolve maps an extracted account suffix to the name of a registered
// bank account. Masking characters are stripped, then a mapping matches if
// either cleaned string is a suffix of the other; this handles both "last 4"
// and "last 3" conventions without knowing which one a given bank uses.
// Returns false when the cleaned suffix is shorter than three digits or no
// mapping matches.
func Resolve(suffix string, mappings []models.BankAccountMapping) (string, bool) {
	cleaned := stripMask(suffix)
	if len(cleaned) < minSuffixLength {
		return "", false
	}

	for _, m := range mappings {
		registered := stripMask(m.Last4)
		if registered == "" {
			continue
		}
		if strings.HasSuffix(cleaned, registered) || strings.HasSuffix(registered, cleaned) {
			return m.Name, true
		}
	}
	return "", false
}

// stripMask removes the filler characters banks use to mask account
// numbers, keeping digits only.
func stripMask(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
