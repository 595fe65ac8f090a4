package extractor

import "regexp"

// Rule is a single named matcher in a prioritized cascade. Rules are tried
// in declaration order and the first match wins: earlier rules are stricter,
// later ones intentionally broader, so ordering is load-bearing. Each rule
// captures exactly one submatch.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// amount is the shared sub-expression for a currency amount with optional
// grouping separators and up to two decimal places.
const amount = `([\d,]+(?:\.\d{1,2})?)`

// currency matches the currency marker that precedes amounts in bank
// notifications.
const currency = `(?:\b(?:rs\.?|inr)|₹)\s*`

// debitRules extract the amount of an outgoing transaction. Ordered from
// the canonical "<currency> <amount> debited" phrasing down to looser
// "payment of" wording.
var debitRules = []Rule{
	{
		Name:    "amount-then-debited",
		Pattern: regexp.MustCompile(`(?i)` + currency + amount + `\s*(?:has been\s+|is\s+|was\s+)?debited`),
	},
	{
		Name:    "debited-then-amount",
		Pattern: regexp.MustCompile(`(?i)debited\s+(?:by|for|with)?\s*` + currency + amount),
	},
	{
		Name:    "spent-or-paid-prefix",
		Pattern: regexp.MustCompile(`(?i)(?:spent|paid|sent|withdrew)\s+` + currency + amount),
	},
	{
		Name:    "amount-then-spent",
		Pattern: regexp.MustCompile(`(?i)` + currency + amount + `\s*(?:spent|paid|sent|withdrawn)`),
	},
	{
		Name:    "payment-of-amount",
		Pattern: regexp.MustCompile(`(?i)(?:payment|purchase|txn|transaction)\s+of\s+` + currency + amount),
	},
}

// creditRules extract the amount of an incoming transaction. Checked only
// after every debit rule has failed, so a message resolves to at most one
// direction and debit precedence wins.
var creditRules = []Rule{
	{
		Name:    "amount-then-credited",
		Pattern: regexp.MustCompile(`(?i)` + currency + amount + `\s*(?:has been\s+|is\s+|was\s+)?credited`),
	},
	{
		Name:    "credited-then-amount",
		Pattern: regexp.MustCompile(`(?i)credited\s+(?:with|by|for)?\s*` + currency + amount),
	},
	{
		Name:    "received-prefix",
		Pattern: regexp.MustCompile(`(?i)(?:received|deposited)\s+` + currency + amount),
	},
	{
		Name:    "amount-then-received",
		Pattern: regexp.MustCompile(`(?i)` + currency + amount + `\s*(?:received|deposited)`),
	},
}

// accountRules pull the source account suffix. Banks mask the body of the
// number with X or * and leave the last three or four digits.
var accountRules = []Rule{
	{
		Name:    "labelled-account",
		Pattern: regexp.MustCompile(`(?i)(?:a/c|acct|account)\s*(?:no\.?\s*)?[x\*]*(\d{3,4})`),
	},
	{
		Name:    "masked-run",
		Pattern: regexp.MustCompile(`(?i)[x\*]{2,}(\d{3,4})`),
	},
	{
		Name:    "card-ending",
		Pattern: regexp.MustCompile(`(?i)card\s+(?:ending\s+(?:in\s+|with\s+)?)?[x\*]*(\d{4})`),
	},
}

// counterpartyRules pull the merchant or payer name from its proximity
// phrase. The capture must start with a capital letter or digit, which
// keeps "to a/c 1234" from being read as a name. The capture ends at
// punctuation or a following clause keyword.
var counterpartyRules = []Rule{
	{
		Name:    "to-name",
		Pattern: regexp.MustCompile(`(?:^|\s)(?i:to|towards)\s+([A-Z0-9][A-Za-z0-9&@.'_\- ]{0,58}?)(?:(?i:\s+(?:on|via|with|ref|upi))\b|\s*[.,;:!]|\s*$)`),
	},
	{
		Name:    "at-name",
		Pattern: regexp.MustCompile(`(?:^|\s)(?i:at)\s+([A-Z0-9][A-Za-z0-9&@.'_\- ]{0,58}?)(?:(?i:\s+(?:on|via|with|ref|upi))\b|\s*[.,;:!]|\s*$)`),
	},
	{
		Name:    "for-name",
		Pattern: regexp.MustCompile(`(?:^|\s)(?i:for)\s+([A-Z0-9][A-Za-z0-9&@.'_\- ]{0,58}?)(?:(?i:\s+(?:on|via|with|ref|upi))\b|\s*[.,;:!]|\s*$)`),
	},
	{
		Name:    "from-name",
		Pattern: regexp.MustCompile(`(?:^|\s)(?i:from|by)\s+([A-Z0-9][A-Za-z0-9&@.'_\- ]{0,58}?)(?:(?i:\s+(?:on|via|with|ref|upi))\b|\s*[.,;:!]|\s*$)`),
	},
}

// transferRules flag movement between the user's own accounts. Any match
// sets the transfer-like marker; no capture is used.
var transferRules = []Rule{
	{Name: "neft", Pattern: regexp.MustCompile(`(?i)\bNEFT\b`)},
	{Name: "imps", Pattern: regexp.MustCompile(`(?i)\bIMPS\b`)},
	{Name: "rtgs", Pattern: regexp.MustCompile(`(?i)\bRTGS\b`)},
	{Name: "upi-transfer", Pattern: regexp.MustCompile(`(?i)\bUPI\s+transfer\b`)},
	{Name: "self-transfer", Pattern: regexp.MustCompile(`(?i)self[\s\-]transfer`)},
	{Name: "between-accounts", Pattern: regexp.MustCompile(`(?i)between\s+(?:your\s+)?accounts`)},
	{Name: "own-account", Pattern: regexp.MustCompile(`(?i)(?:to|transferred to)\s+(?:your\s+)?own\s+(?:a/c|account)`)},
}

// destinationRules pull the destination account suffix of a transfer.
// Distinct from accountRules: these anchor on the receiving side of the
// phrase so the source suffix is not captured twice.
var destinationRules = []Rule{
	{
		Name:    "to-account",
		Pattern: regexp.MustCompile(`(?i)to\s+(?:your\s+)?(?:a/c|acct|account)\s*(?:no\.?\s*)?[x\*]*(\d{3,4})`),
	},
	{
		Name:    "credited-to-masked",
		Pattern: regexp.MustCompile(`(?i)credited\s+to\s+[x\*]*(\d{3,4})`),
	},
	{
		Name:    "beneficiary-account",
		Pattern: regexp.MustCompile(`(?i)beneficiary\s+(?:a/c|acct|account)?\s*[x\*]*(\d{3,4})`),
	},
}

// firstMatch runs a rule cascade against the body and returns the first
// captured submatch along with the winning rule's name.
func firstMatch(rules []Rule, body string) (string, string, bool) {
	for _, rule := range rules {
		matches := rule.Pattern.FindStringSubmatch(body)
		if len(matches) > 1 {
			return matches[1], rule.Name, true
		}
	}
	return "", "", false
}

// anyMatch reports whether any rule in the cascade matches the body.
func anyMatch(rules []Rule, body string) bool {
	for _, rule := range rules {
		if rule.Pattern.MatchString(body) {
			return true
		}
	}
	return false
}
