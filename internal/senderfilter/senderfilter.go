// Package senderfilter classifies raw message senders before any parsing
// is attempted. It offers two independent classifiers: a cheap negative
// exclusion (IsIgnorable) and an opt-in positive identification
// (IsBankSender). Callers choose one per use case.
package senderfilter

import (
	"strings"

	"fjacquet/sms-ledger/internal/models"
)

// ignoredTokens marks senders that are definitely non-financial: telecom
// carriers and promotional or OTP traffic. Matched as substrings of the
// normalized sender. This deny-list is unconditional and independent of
// user configuration.
var ignoredTokens = []string{
	"AIRTEL",
	"VODAFONE",
	"VODAIDEA",
	"BSNL",
	"JIOSVC",
	"JIOINFO",
	"OTP",
	"ALERT",
	"PROMO",
	"OFFER",
	"RECHARGE",
	"DTH",
	"SPAM",
}

// ignoredPrefixes marks templated ad sender IDs.
var ignoredPrefixes = []string{
	"AD",
}

// bankIdentifiers is the built-in set of bank identifier fragments used by
// the positive classifier.
var bankIdentifiers = []string{
	"HDFC",
	"ICICI",
	"SBI",
	"AXIS",
	"KOTAK",
	"PNB",
	"BOB",
	"CANARA",
	"IDFC",
	"YESBNK",
	"INDUS",
	"FEDBNK",
	"BANK",
	"UNION",
	"PAYTM",
}

// IsIgnorable reports whether a sender is definitely non-financial and the
// message should be discarded without parsing.
func IsIgnorable(sender string) bool {
	normalized := models.NormalizeSender(sender)
	if normalized == "" {
		return true
	}

	for _, token := range ignoredTokens {
		if strings.Contains(normalized, token) {
			return true
		}
	}
	for _, prefix := range ignoredPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	return false
}

// IsBankSender reports whether a sender positively identifies as a bank.
// A sender matches if it is 5-12 characters after normalization and
// contains a built-in bank identifier or one of the user-supplied custom
// identifiers, or if it is purely numeric and 5-6 digits long (the
// short-code heuristic).
func IsBankSender(sender string, customIdentifiers []string) bool {
	normalized := models.NormalizeSender(sender)

	if isNumeric(normalized) {
		return len(normalized) >= 5 && len(normalized) <= 6
	}

	if len(normalized) < 5 || len(normalized) > 12 {
		return false
	}

	for _, id := range bankIdentifiers {
		if strings.Contains(normalized, id) {
			return true
		}
	}
	for _, id := range customIdentifiers {
		custom := models.NormalizeSender(id)
		if custom != "" && strings.Contains(normalized, custom) {
			return true
		}
	}
	return false
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
