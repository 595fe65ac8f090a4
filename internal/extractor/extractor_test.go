package extractor

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/sms-ledger/internal/logging"
	"fjacquet/sms-ledger/internal/models"
	"fjacquet/sms-ledger/internal/syncerror"
)

func newExtractor() *Extractor {
	return New(&logging.MockLogger{})
}

func TestExtractDebitMessage(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("HDFCBK",
		"Rs. 1500.00 debited from a/c 1234 on 12-02-26 to ZOMATO. UPI Ref: 12345678.", 1000)
	require.NoError(t, err)
	require.NotNil(t, tx)

	assert.Equal(t, models.DirectionDebit, tx.Direction)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "1234", tx.AccountSuffix)
	assert.Equal(t, "ZOMATO", tx.CounterpartyName)
	assert.False(t, tx.IsTransferLike)
}

func TestExtractDebitWithMaskedAccount(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("ICICIB",
		"INR 450.00 debited from A/c X6789 via UPI for UBER RIDES.", 1000)
	require.NoError(t, err)

	assert.Equal(t, models.DirectionDebit, tx.Direction)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, "6789", tx.AccountSuffix)
	assert.Equal(t, "UBER RIDES", tx.CounterpartyName)
}

func TestExtractCreditMessage(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("SBIINB",
		"Rs. 50000.00 credited to a/c 1234 on 30-01-26. Salary for Jan.", 1000)
	require.NoError(t, err)

	assert.Equal(t, models.DirectionCredit, tx.Direction)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "1234", tx.AccountSuffix)
}

func TestExtractRejectsNonFinancialMessage(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("MOM", "Hello beta, sent you some money.", 1000)
	assert.Nil(t, tx)
	require.Error(t, err)
	var extractionErr *syncerror.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtractRejectsIgnorableSenderRegardlessOfBody(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("VM-AIRTEL",
		"Rs. 100.00 debited from a/c 1234 to SOMEONE.", 1000)
	assert.Nil(t, tx)
	assert.Error(t, err)
}

func TestExtractRejectsEmptyBodyAndSender(t *testing.T) {
	ext := newExtractor()

	_, err := ext.Extract("HDFCBK", "  ", 1000)
	assert.Error(t, err)

	_, err = ext.Extract("", "Rs. 100 debited from a/c 1234.", 1000)
	assert.Error(t, err)
}

func TestDebitPrecedenceOverCredit(t *testing.T) {
	ext := newExtractor()

	// Both directions appear in the text; the debit rule set runs first.
	tx, err := ext.Extract("HDFCBK",
		"Rs. 500.00 debited from a/c 1111 and credited to beneficiary.", 1000)
	require.NoError(t, err)
	assert.Equal(t, models.DirectionDebit, tx.Direction)
}

func TestExtractStripsGroupingSeparators(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("HDFCBK",
		"Rs. 1,23,456.78 debited from a/c 1234 to BIGSTORE.", 1000)
	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("123456.78")))
}

func TestExtractSentinelsWhenFieldsUnresolved(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("HDFCBK", "Rs. 250.00 debited via card.", 1000)
	require.NoError(t, err)
	assert.Equal(t, models.UnknownAccount, tx.AccountSuffix)
	assert.Equal(t, models.UnknownMerchant, tx.CounterpartyName)
}

func TestExtractNormalizesUPINames(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("HDFCBK",
		"Rs. 99.00 debited from a/c 1234 to UPI-MERCHANT123.", 1000)
	require.NoError(t, err)
	assert.Equal(t, "UPI Transaction", tx.CounterpartyName)
}

func TestExtractTruncatesLongNames(t *testing.T) {
	longName := "VERYLONGMERCHANT " + strings.Repeat("X", 40)
	ext := newExtractor()

	tx, err := ext.Extract("HDFCBK",
		"Rs. 10.00 debited from a/c 1234 to "+longName+".", 1000)
	require.NoError(t, err)
	assert.Len(t, tx.CounterpartyName, 50)
	assert.True(t, strings.HasSuffix(tx.CounterpartyName, "..."))
}

func TestExtractTransferMarkers(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "neft", body: "Rs. 2000.00 debited from a/c 1234 via NEFT to a/c 9876."},
		{name: "imps", body: "Rs. 2000.00 debited from a/c 1234. IMPS Ref 12345."},
		{name: "self transfer", body: "Rs. 2000.00 debited from a/c 1234. Self transfer completed."},
		{name: "between accounts", body: "Rs. 2000.00 debited. Moved between your accounts."},
	}

	ext := newExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := ext.Extract("HDFCBK", tt.body, 1000)
			require.NoError(t, err)
			assert.True(t, tx.IsTransferLike)
		})
	}
}

func TestExtractDestinationSuffix(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("HDFCBK",
		"Rs. 2000.00 debited from a/c 1234 via NEFT to a/c 9876.", 1000)
	require.NoError(t, err)
	require.True(t, tx.IsTransferLike)
	assert.Equal(t, "9876", tx.DestinationSuffix)
}

func TestExtractRejectsZeroAmount(t *testing.T) {
	ext := newExtractor()

	tx, err := ext.Extract("HDFCBK", "Rs. 0.00 debited from a/c 1234 to SHOP.", 1000)
	assert.Nil(t, tx)
	assert.Error(t, err)
}

func TestExtractRetainsOriginalTextAndTimestamp(t *testing.T) {
	body := "Rs. 75.00 debited from a/c 1234 to CAFE."
	ext := newExtractor()

	tx, err := ext.Extract("HDFCBK", body, 1739347200000)
	require.NoError(t, err)
	assert.Equal(t, body, tx.OriginalText)
	assert.Equal(t, int64(1739347200000), tx.Timestamp)
}
