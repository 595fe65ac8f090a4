package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSender(t *testing.T) {
	tests := []struct {
		name     string
		sender   string
		expected string
	}{
		{name: "plain short code", sender: "HDFCBK", expected: "HDFCBK"},
		{name: "templated id", sender: "VM-HDFCBK", expected: "VMHDFCBK"},
		{name: "lowercase", sender: "hdfcbk", expected: "HDFCBK"},
		{name: "numeric", sender: "56161", expected: "56161"},
		{name: "punctuation only", sender: "--::--", expected: ""},
		{name: "empty", sender: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSender(tt.sender))
		})
	}
}

func TestDirectionHelpers(t *testing.T) {
	debit := ParsedTransaction{Direction: DirectionDebit, Amount: decimal.NewFromInt(1)}
	credit := ParsedTransaction{Direction: DirectionCredit, Amount: decimal.NewFromInt(1)}

	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())
}
