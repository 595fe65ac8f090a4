package senderfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIgnorable(t *testing.T) {
	tests := []struct {
		name      string
		sender    string
		ignorable bool
	}{
		{name: "telecom carrier", sender: "AIRTEL", ignorable: true},
		{name: "templated carrier id", sender: "VM-AIRTEL", ignorable: true},
		{name: "otp sender", sender: "AX-MYOTP", ignorable: true},
		{name: "alert sender", sender: "TXALERT", ignorable: true},
		{name: "promo sender", sender: "JM-PROMO", ignorable: true},
		{name: "ad prefix", sender: "AD-SHOPX", ignorable: true},
		{name: "empty sender", sender: "", ignorable: true},
		{name: "bank short code", sender: "HDFCBK", ignorable: false},
		{name: "personal contact", sender: "MOM", ignorable: false},
		{name: "numeric short code", sender: "56161", ignorable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ignorable, IsIgnorable(tt.sender))
		})
	}
}

func TestIsIgnorableIsIndependentOfCase(t *testing.T) {
	assert.True(t, IsIgnorable("airtel"))
	assert.True(t, IsIgnorable("Vm-AirTel"))
}

func TestIsBankSender(t *testing.T) {
	tests := []struct {
		name    string
		sender  string
		custom  []string
		matches bool
	}{
		{name: "built-in identifier", sender: "HDFCBK", matches: true},
		{name: "templated bank id", sender: "VM-ICICIB", matches: true},
		{name: "five digit short code", sender: "56161", matches: true},
		{name: "six digit short code", sender: "561616", matches: true},
		{name: "four digit code too short", sender: "5616", matches: false},
		{name: "seven digit code too long", sender: "5616161", matches: false},
		{name: "too short after stripping", sender: "SBI", matches: false},
		{name: "too long after stripping", sender: "SOMEVERYLONGSENDERID", matches: false},
		{name: "unknown sender", sender: "FLPKRT", matches: false},
		{name: "custom identifier", sender: "MYCOOP", custom: []string{"mycoop"}, matches: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, IsBankSender(tt.sender, tt.custom))
		})
	}
}
